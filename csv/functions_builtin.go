package csv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var builtinParsers = []*ParserDef{
	{Name: "int", New: simpleParser(parseInt), Args: ArgDef{}},
	{Name: "float", New: simpleParser(parseFloat), Args: ArgDef{}},
	{Name: "bool", New: simpleParser(parseBool), Args: ArgDef{}},
	{Name: "lowercase", New: simpleParser(changeCaseParser(false)), Args: ArgDef{}},
	{Name: "uppercase", New: simpleParser(changeCaseParser(true)), Args: ArgDef{}},
	{Name: "trim", New: simpleParser(trimParser), Args: ArgDef{}},
	{Name: "uuid", New: simpleParser(parseUUID), Args: ArgDef{}},
	{Name: "default", New: newDefault, Args: ArgDef{"value": typString}},
}

var builtinConverters = []*ConverterDef{
	{Name: "lowercase", New: simpleConverter(changeCase(false)), Args: ArgDef{}},
	{Name: "uppercase", New: simpleConverter(changeCase(true)), Args: ArgDef{}},
	{Name: "concat", New: newConcat, Args: ArgDef{"cols": typSlice, "sep": typString}},
	{Name: "formula", New: newFormula, Args: ArgDef{"expr": typString}},
	{Name: "bool", New: newBoolWords, Args: ArgDef{"true": typString, "false": typString}},
}

func simpleParser(f ParserFunc) ParserFactory {
	return func(FuncArgs) (Parser, error) {
		return f, nil
	}
}

func simpleConverter(f ConverterFunc) ConverterFactory {
	return func(FuncArgs) (Converter, error) {
		return f, nil
	}
}

func parseInt(value string, ctx ParseContext) (interface{}, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("not a number in cell %s: '%s'", ctx.Label(), value)
	}

	return v, nil
}

func parseFloat(value string, ctx ParseContext) (interface{}, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil, fmt.Errorf("not a float in cell %s: '%s'", ctx.Label(), value)
	}

	return v, nil
}

func parseBool(value string, ctx ParseContext) (interface{}, error) {
	v, ok := strBool[strings.TrimSpace(strings.ToLower(value))]
	if !ok {
		// If we have any other value, we assume it is true
		v = true
	}

	return v, nil
}

func parseUUID(value string, ctx ParseContext) (interface{}, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return nil, errors.Wrapf(err, "not a uuid in cell %s", ctx.Label())
	}

	return id.String(), nil
}

// newDefault replaces blank cells with the configured value.
// The column needs parseEmpty for blank cells to reach it.
func newDefault(args FuncArgs) (Parser, error) {
	def, err := argString(args, "value")
	if err != nil {
		return nil, err
	}

	return ParserFunc(func(value string, ctx ParseContext) (interface{}, error) {
		if strings.TrimSpace(value) == "" {
			return def, nil
		}

		return value, nil
	}), nil
}

func trimParser(value string, ctx ParseContext) (interface{}, error) {
	return strings.TrimSpace(value), nil
}

func changeCaseParser(upper bool) ParserFunc {
	return func(value string, ctx ParseContext) (interface{}, error) {
		if upper {
			return strings.ToUpper(value), nil
		}

		return strings.ToLower(value), nil
	}
}

// changeCase converts string values, other values are left untouched
func changeCase(upper bool) ConverterFunc {
	return func(value interface{}, ctx ConvertContext) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}

		if upper {
			return strings.ToUpper(s), nil
		}

		return strings.ToLower(s), nil
	}
}

// newConcat joins the text of the record's fields in cols with sep.
// Fields that aren't scalars are skipped.
func newConcat(args FuncArgs) (Converter, error) {
	cols, err := argSliceString(args, "cols")
	if err != nil {
		return nil, err
	}

	sep, err := argStringOr(args, "sep", "")
	if err != nil {
		return nil, err
	}

	return ConverterFunc(func(value interface{}, ctx ConvertContext) (interface{}, error) {
		var parts []string
		for _, col := range cols {
			if text, _, ok := scalarText(ctx.Record.Get(col)); ok {
				parts = append(parts, text)
			}
		}

		return strings.Join(parts, sep), nil
	}), nil
}

var formulaPlaceholder = regexp.MustCompile(`\{(row|col|cell)(?::(\d+))?\}`)

// newFormula writes a formula referring to cells of the current row.
//
//	{row}     the line number of the cell
//	{col}     the letters of the cell's column, {col:N} those of column N
//	{cell}    the cell's own reference, {cell:N} the one of column N on the same row
func newFormula(args FuncArgs) (Converter, error) {
	expr, err := argString(args, "expr")
	if err != nil {
		return nil, err
	}

	if !isFormula(expr) {
		expr = "=" + expr
	}

	return ConverterFunc(func(value interface{}, ctx ConvertContext) (interface{}, error) {
		return formulaPlaceholder.ReplaceAllStringFunc(expr, func(m string) string {
			sub := formulaPlaceholder.FindStringSubmatch(m)

			column := ctx.Column
			if sub[2] != "" {
				column, _ = strconv.Atoi(sub[2])
			}

			switch sub[1] {
			case "row":
				return strconv.Itoa(ctx.Row)
			case "col":
				return ColumnLetters(column)
			default:
				return Label(ctx.Row, column)
			}
		}), nil
	}), nil
}

// newBoolWords writes booleans as words, "yes" and "no" by default
func newBoolWords(args FuncArgs) (Converter, error) {
	yes, err := argStringOr(args, "true", "yes")
	if err != nil {
		return nil, err
	}

	no, err := argStringOr(args, "false", "no")
	if err != nil {
		return nil, err
	}

	return ConverterFunc(func(value interface{}, ctx ConvertContext) (interface{}, error) {
		switch v := value.(type) {
		case bool:
			if v {
				return yes, nil
			}
			return no, nil
		case string:
			if v == "" {
				return value, nil
			}
			b, ok := strBool[strings.TrimSpace(strings.ToLower(v))]
			if !ok {
				return value, nil
			}
			if b {
				return yes, nil
			}
			return no, nil
		}

		return value, nil
	}), nil
}
