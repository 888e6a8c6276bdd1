package csv

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/robertkrimen/otto"
)

// jsFunc runs a javascript file once per cell.
//
// The script sees the variables value, key, row and column (plus obj, the
// record as an object, for converters) and must assign its result to the
// variable output. An undefined or null output is a nil value.
type jsFunc struct {
	name   string
	script *otto.Script
}

func compileJS(filename string) (*jsFunc, error) {
	vm := otto.New()

	// a nil source makes otto read the file
	script, err := vm.Compile(filename, nil)
	if err != nil {
		return nil, err
	}

	return &jsFunc{name: filepath.Base(filename), script: script}, nil
}

func (f *jsFunc) run(vars map[string]interface{}) (interface{}, error) {
	vm := otto.New()

	for name, val := range vars {
		if err := vm.Set(name, val); err != nil {
			return nil, errors.Wrapf(err, "js error: cannot set '%s' in '%s'", name, f.name)
		}
	}

	if _, err := vm.Run(f.script); err != nil {
		return nil, errors.Wrapf(err, "js error in '%s'", f.name)
	}

	output, err := vm.Get("output")
	if err != nil {
		return nil, err
	}

	if output.IsUndefined() || output.IsNull() {
		return nil, nil
	}

	return output.Export()
}

// Convert implements Converter
func (f *jsFunc) Convert(value interface{}, ctx ConvertContext) (interface{}, error) {
	return f.run(map[string]interface{}{
		"value":  value,
		"obj":    ctx.Record.Map(),
		"key":    ctx.Key,
		"row":    ctx.Row,
		"column": ctx.Column,
	})
}

// Parse implements Parser
func (f *jsFunc) Parse(value string, ctx ParseContext) (interface{}, error) {
	return f.run(map[string]interface{}{
		"value":  value,
		"key":    ctx.Key,
		"row":    ctx.Row,
		"column": ctx.Column,
	})
}

// NewJSConverter creates a converter named after the base name of a javascript file
func NewJSConverter(filename string) (*ConverterDef, error) {
	f, err := compileJS(filename)
	if err != nil {
		return nil, err
	}

	return &ConverterDef{
		Name: f.name,
		New:  func(FuncArgs) (Converter, error) { return f, nil },
		Args: ArgDef{},
	}, nil
}

// NewJSParser creates a parser named after the base name of a javascript file
func NewJSParser(filename string) (*ParserDef, error) {
	f, err := compileJS(filename)
	if err != nil {
		return nil, err
	}

	return &ParserDef{
		Name: f.name,
		New:  func(FuncArgs) (Parser, error) { return f, nil },
		Args: ArgDef{},
	}, nil
}
