package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConverter(t *testing.T, name string, args map[string]FuncArg) Converter {
	t.Helper()

	conv, err := NewRegistry().Converter(name, args)
	require.NoError(t, err)
	return conv
}

func mustParser(t *testing.T, name string, args map[string]FuncArg) Parser {
	t.Helper()

	p, err := NewRegistry().Parser(name, args)
	require.NoError(t, err)
	return p
}

func TestBuiltinParsers(t *testing.T) {
	ctx := ParseContext{Key: "k", Row: 3, Column: 1}

	tests := []struct {
		parser string
		args   map[string]FuncArg
		input  string
		want   interface{}
	}{
		{"int", nil, " 42 ", 42},
		{"float", nil, "5.29", 5.29},
		{"bool", nil, "Yes", true},
		{"bool", nil, "n/a", false},
		{"bool", nil, "0", false},
		{"bool", nil, "anything", true},
		{"lowercase", nil, "MiXed", "mixed"},
		{"uppercase", nil, "MiXed", "MIXED"},
		{"trim", nil, "  padded ", "padded"},
		{"uuid", nil, "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"default", map[string]FuncArg{"value": {Value: "n/a"}}, " ", "n/a"},
		{"default", map[string]FuncArg{"value": {Value: "n/a"}}, "set", "set"},
	}

	for _, tc := range tests {
		got, err := mustParser(t, tc.parser, tc.args).Parse(tc.input, ctx)
		require.NoError(t, err, "%s(%q)", tc.parser, tc.input)
		assert.Equal(t, tc.want, got, "%s(%q)", tc.parser, tc.input)
	}
}

func TestBuiltinParserErrors(t *testing.T) {
	ctx := ParseContext{Key: "k", Row: 3, Column: 1}

	for _, name := range []string{"int", "float", "uuid"} {
		_, err := mustParser(t, name, nil).Parse("nope", ctx)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "B3", name)
	}
}

func TestFormulaConverter(t *testing.T) {
	ctx := ConvertContext{Row: 3, Column: 3}

	tests := []struct {
		expr string
		want string
	}{
		{"{cell:1}*{cell:2}", "=B3*C3"},
		{"=SUM(A{row}:{col}{row})", "=SUM(A3:D3)"},
		{"{cell}+{col:27}1", "=D3+AB1"},
		{"=1+1", "=1+1"},
	}

	for _, tc := range tests {
		conv := mustConverter(t, "formula", map[string]FuncArg{"expr": {Value: tc.expr}})

		got, err := conv.Convert("ignored", ctx)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.expr)
	}
}

func TestConcatConverter(t *testing.T) {
	conv := mustConverter(t, "concat", map[string]FuncArg{
		"cols": {Values: []string{"first", "meta", "last", "missing"}},
		"sep":  {Value: " "},
	})

	rec := NewRecord("first", "Jane", "meta", map[string]interface{}{}, "last", "Doe")
	got, err := conv.Convert(nil, ConvertContext{Record: rec})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got)
}

func TestCaseConverters(t *testing.T) {
	got, err := mustConverter(t, "uppercase", nil).Convert("abc", ConvertContext{})
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	got, err = mustConverter(t, "lowercase", nil).Convert(12, ConvertContext{})
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestBoolConverter(t *testing.T) {
	conv := mustConverter(t, "bool", nil)
	for in, want := range map[interface{}]interface{}{true: "yes", false: "no", "TRUE": "yes", "0": "no", "": "", "maybe": "maybe", 3: 3} {
		got, err := conv.Convert(in, ConvertContext{})
		require.NoError(t, err)
		assert.Equal(t, want, got, "%v", in)
	}

	conv = mustConverter(t, "bool", map[string]FuncArg{"true": {Value: "Y"}, "false": {Value: "N"}})
	got, err := conv.Convert(true, ConvertContext{})
	require.NoError(t, err)
	assert.Equal(t, "Y", got)
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Converter("nope", nil)
	assert.EqualError(t, err, "converter 'nope' does not exist")

	_, err = reg.Parser("nope", nil)
	assert.EqualError(t, err, "parser 'nope' does not exist")

	_, err = reg.Converter("formula", map[string]FuncArg{"bad": {Value: "x"}})
	assert.EqualError(t, err, "invalid arguments for converter 'formula': unexpected argument 'bad'")

	_, err = reg.Converter("formula", nil)
	assert.EqualError(t, err, "error building converter 'formula': 'expr' argument not provided")

	_, err = reg.Converter("concat", map[string]FuncArg{"cols": {Value: "a"}})
	assert.EqualError(t, err, "invalid arguments for converter 'concat': argument 'cols' must be a list")

	_, err = reg.Parser("default", map[string]FuncArg{"value": {Values: []string{"a"}}})
	assert.EqualError(t, err, "invalid arguments for parser 'default': argument 'value' must be a single value")

	assert.Error(t, reg.AddParsers(&ParserDef{Name: "int"}))
	assert.Error(t, reg.AddParsers(&ParserDef{Name: " "}))
	assert.Error(t, reg.AddConverters(&ConverterDef{Name: "concat"}))
	assert.Error(t, reg.AddConverters(&ConverterDef{Name: ""}))
}

func TestRegistryCustomFunctions(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.AddParsers(&ParserDef{
		Name: "cents",
		New: func(FuncArgs) (Parser, error) {
			return ParserFunc(func(value string, ctx ParseContext) (interface{}, error) {
				return len(value) * 100, nil
			}), nil
		},
		Args: ArgDef{},
	}))

	p, err := reg.Parser("cents", nil)
	require.NoError(t, err)

	got, err := p.Parse("abc", ParseContext{})
	require.NoError(t, err)
	assert.Equal(t, 300, got)
}
