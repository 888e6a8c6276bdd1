package csv

import (
	"fmt"
	"reflect"
	"strings"
)

// FuncArgs maps argument values by their name and is used
// when building a converter, a parser or running an operation
type FuncArgs map[string]interface{}

// ArgDef maps the argument name to its expected type
type ArgDef map[string]reflect.Type

var (
	typString = reflect.TypeOf("")
	typSlice  = reflect.TypeOf([]string{})
)

// strBool maps the accepted boolean words to their value
var strBool = map[string]bool{"no": false, "yes": true, "n/a": false, "false": false, "true": true, "0": false, "1": true, "": false}

// FuncArg is an argument as defined in the loaded configuration.
// It is either a single value or a list of values.
type FuncArg struct {
	Value  string   `yaml:"value"`
	Values []string `yaml:"values"`
}

// UnmarshalYAML accepts a scalar, a sequence, or the explicit {value, values} mapping
func (a *FuncArg) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err == nil {
		a.Value = value
		return nil
	}

	var values []string
	if err := unmarshal(&values); err == nil {
		a.Values = values
		return nil
	}

	type plain FuncArg
	return unmarshal((*plain)(a))
}

// funcArgs converts configured arguments to FuncArgs, checking them against def
func funcArgs(def ArgDef, args map[string]FuncArg) (FuncArgs, error) {
	out := FuncArgs{}

	for name, arg := range args {
		typ, ok := def[name]
		if !ok {
			return nil, fmt.Errorf("unexpected argument '%s'", name)
		}

		if typ.Kind() == reflect.Slice {
			if arg.Value != "" {
				return nil, fmt.Errorf("argument '%s' must be a list", name)
			}
			out[name] = arg.Values
			continue
		}

		if len(arg.Values) > 0 {
			return nil, fmt.Errorf("argument '%s' must be a single value", name)
		}
		out[name] = arg.Value
	}

	return out, nil
}

func argString(args FuncArgs, argName string) (string, error) {
	vI, ok := args[argName]
	if !ok {
		return "", fmt.Errorf("'%s' argument not provided", argName)
	}

	vS, ok := vI.(string)
	if !ok {
		return "", fmt.Errorf("'%s' must be a string", argName)
	}

	return vS, nil
}

// argStringOr returns the string argument or def when it wasn't provided
func argStringOr(args FuncArgs, argName, def string) (string, error) {
	if _, ok := args[argName]; !ok {
		return def, nil
	}

	return argString(args, argName)
}

func argBool(args FuncArgs, argName string) (bool, error) {
	vI, ok := args[argName]
	if !ok {
		return false, fmt.Errorf("'%s' argument not provided", argName)
	}

	vBool, ok := vI.(bool)
	if ok {
		return vBool, nil
	}

	vS, ok := vI.(string)
	if !ok {
		return false, fmt.Errorf("'%s' must be a boolean", argName)
	}

	vBool, ok = strBool[strings.ToLower(strings.TrimSpace(vS))]
	if !ok {
		return false, fmt.Errorf("'%s' must be a boolean", argName)
	}

	return vBool, nil
}

func argSliceString(args FuncArgs, argName string) ([]string, error) {
	vI, ok := args[argName]
	if !ok {
		return nil, fmt.Errorf("'%s' argument not provided", argName)
	}

	vS, ok := vI.([]string)
	if !ok {
		return nil, fmt.Errorf("'%s' must be a slice of strings", argName)
	}

	return vS, nil
}
