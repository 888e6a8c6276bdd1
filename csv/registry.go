package csv

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ConverterFactory builds a converter from its arguments
type ConverterFactory func(args FuncArgs) (Converter, error)

// ParserFactory builds a parser from its arguments
type ParserFactory func(args FuncArgs) (Parser, error)

// ConverterDef is a named converter available to column configurations
type ConverterDef struct {
	Name string
	New  ConverterFactory
	Args ArgDef
}

// ParserDef is a named parser available to column configurations
type ParserDef struct {
	Name string
	New  ParserFactory
	Args ArgDef
}

// Registry holds the converters, parsers and operations that can be
// referenced by name from a configuration
type Registry struct {
	converters map[string]*ConverterDef
	parsers    map[string]*ParserDef
	operations map[string]*Operation
}

// NewRegistry returns a registry loaded with all built-in converters,
// parsers and operations
func NewRegistry() *Registry {
	r := &Registry{
		converters: map[string]*ConverterDef{},
		parsers:    map[string]*ParserDef{},
		operations: map[string]*Operation{},
	}

	// names are unique, this can't fail
	if err := r.AddConverters(builtinConverters...); err != nil {
		panic(err)
	}
	if err := r.AddParsers(builtinParsers...); err != nil {
		panic(err)
	}
	if err := r.AddOperations(builtinOperations...); err != nil {
		panic(err)
	}

	return r
}

// AddConverters adds given converters to the registry
func (r *Registry) AddConverters(defs ...*ConverterDef) error {
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)

		if name == "" {
			return errors.New("converter's name cannot be empty")
		}

		if _, ok := r.converters[name]; ok {
			return fmt.Errorf("converter with name '%s' already exists", name)
		}

		r.converters[name] = def
	}

	return nil
}

// AddParsers adds given parsers to the registry
func (r *Registry) AddParsers(defs ...*ParserDef) error {
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)

		if name == "" {
			return errors.New("parser's name cannot be empty")
		}

		if _, ok := r.parsers[name]; ok {
			return fmt.Errorf("parser with name '%s' already exists", name)
		}

		r.parsers[name] = def
	}

	return nil
}

// Converter builds the named converter with the configured arguments
func (r *Registry) Converter(name string, args map[string]FuncArg) (Converter, error) {
	def, ok := r.converters[name]
	if !ok {
		return nil, fmt.Errorf("converter '%s' does not exist", name)
	}

	fArgs, err := funcArgs(def.Args, args)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid arguments for converter '%s'", name)
	}

	conv, err := def.New(fArgs)
	if err != nil {
		return nil, errors.Wrapf(err, "error building converter '%s'", name)
	}

	return conv, nil
}

// Parser builds the named parser with the configured arguments
func (r *Registry) Parser(name string, args map[string]FuncArg) (Parser, error) {
	def, ok := r.parsers[name]
	if !ok {
		return nil, fmt.Errorf("parser '%s' does not exist", name)
	}

	fArgs, err := funcArgs(def.Args, args)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid arguments for parser '%s'", name)
	}

	p, err := def.New(fArgs)
	if err != nil {
		return nil, errors.Wrapf(err, "error building parser '%s'", name)
	}

	return p, nil
}
