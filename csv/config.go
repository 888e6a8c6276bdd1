package csv

import (
	"github.com/pkg/errors"
)

// FuncConf references a registered converter or parser as defined in the
// loaded configuration
type FuncConf struct {
	Name string             `yaml:"name"`
	Args map[string]FuncArg `yaml:"args"`
}

// UnmarshalYAML accepts a bare name as well as the {name, args} mapping
func (fc *FuncConf) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		fc.Name = name
		return nil
	}

	type plain FuncConf
	return unmarshal((*plain)(fc))
}

// ColConf is the configuration of a column. In yaml it is either the record
// key alone or a mapping; a null entry is an inert column.
type ColConf struct {
	Key        string    `yaml:"key"`
	Header     string    `yaml:"header"`
	Required   bool      `yaml:"required"`
	ParseEmpty bool      `yaml:"parseEmpty"`
	Converter  *FuncConf `yaml:"converter"`
	Parser     *FuncConf `yaml:"parser"`

	keyOnly bool
}

// UnmarshalYAML accepts a bare key as well as the full mapping
func (cc *ColConf) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var key string
	if err := unmarshal(&key); err == nil {
		cc.Key = key
		cc.keyOnly = true
		return nil
	}

	type plain ColConf
	return unmarshal((*plain)(cc))
}

// Column resolves the configured converter and parser names in reg
func (cc *ColConf) Column(reg *Registry) (ColumnInput, error) {
	if cc == nil {
		return nil, nil
	}

	if cc.keyOnly {
		return KeyOnly(cc.Key), nil
	}

	col := &Column{
		Key:        cc.Key,
		Header:     cc.Header,
		Required:   cc.Required,
		ParseEmpty: cc.ParseEmpty,
	}

	if cc.Converter != nil {
		conv, err := reg.Converter(cc.Converter.Name, cc.Converter.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "column '%s'", col)
		}
		col.Converter = conv
	}

	if cc.Parser != nil {
		p, err := reg.Parser(cc.Parser.Name, cc.Parser.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "column '%s'", col)
		}
		col.Parser = p
	}

	return col, nil
}

// Columns resolves every configured column in reg
func Columns(reg *Registry, confs []*ColConf) ([]ColumnInput, error) {
	cols := make([]ColumnInput, len(confs))

	for i, cc := range confs {
		col, err := cc.Column(reg)
		if err != nil {
			return nil, errors.Wrapf(err, "error in column at index %d", i)
		}

		cols[i] = col
	}

	return cols, nil
}
