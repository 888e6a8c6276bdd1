package csv

import (
	"fmt"

	"github.com/pkg/errors"
)

// OpFunc transforms a set of records. It must not modify the given slice.
type OpFunc func(records []*Record, args FuncArgs) ([]*Record, error)

// Operation is a named record set transformation
type Operation struct {
	Name   string
	OpFunc OpFunc
	ArgDef ArgDef
}

// Execute runs the operation
func (op *Operation) Execute(records []*Record, args FuncArgs) ([]*Record, error) {
	return op.OpFunc(records, args)
}

// OperationConf is an operation step as defined in the loaded configuration
type OperationConf struct {
	Name      string `yaml:"name"`
	Operation string `yaml:"operation"`

	KeepState bool   `yaml:"keepState"`
	FromState string `yaml:"fromState"`

	Args map[string]FuncArg `yaml:"args"`
}

// AddOperations adds given operations to the registry
func (r *Registry) AddOperations(newOps ...*Operation) error {
	for _, op := range newOps {
		if _, ok := r.operations[op.Name]; ok {
			return fmt.Errorf("operation '%s' already exists", op.Name)
		}

		r.operations[op.Name] = op
	}

	return nil
}

// RunOperations runs each configured operation on the output of the previous
// one and returns the output of the last. A step with FromState starts from
// the output of the named step instead, which must have been kept with KeepState.
func (r *Registry) RunOperations(records []*Record, confs []*OperationConf) ([]*Record, error) {
	states := map[string][]*Record{}
	current := records

	for _, conf := range confs {
		operation, ok := r.operations[conf.Operation]
		if !ok {
			return nil, fmt.Errorf("operation '%s' does not exist for '%s'", conf.Operation, conf.Name)
		}

		args, err := funcArgs(operation.ArgDef, conf.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing arguments of operation '%s' named '%s'", conf.Operation, conf.Name)
		}

		input := current
		if conf.FromState != "" {
			input, ok = states[conf.FromState]
			if !ok {
				return nil, fmt.Errorf("state '%s' does not exist or was never kept", conf.FromState)
			}
		}

		current, err = operation.Execute(input, args)
		if err != nil {
			return nil, errors.Wrapf(err, "error running operation '%s' named '%s'", conf.Operation, conf.Name)
		}

		if conf.KeepState {
			states[conf.Name] = current
		}
	}

	return current, nil
}
