package csv

import (
	"fmt"
	"strings"
)

// ConvertContext describes the cell a Converter is producing
type ConvertContext struct {
	Record *Record // the record being written, for reading sibling fields
	Key    string  // the column's key
	Row    int     // line number of the cell in the output text, header included
	Column int     // zero-based column index
}

// Label returns the spreadsheet reference of the cell being converted
func (c ConvertContext) Label() string {
	return Label(c.Row, c.Column)
}

// ParseContext describes the cell a Parser is reading
type ParseContext struct {
	Key    string // the column's key
	Row    int    // line number of the cell in the input text, header included
	Column int    // zero-based column index
}

// Label returns the spreadsheet reference of the cell being parsed
func (c ParseContext) Label() string {
	return Label(c.Row, c.Column)
}

// Converter turns a record value into the value written to a cell
type Converter interface {
	Convert(value interface{}, ctx ConvertContext) (interface{}, error)
}

// ConverterFunc adapts a function to the Converter interface
type ConverterFunc func(value interface{}, ctx ConvertContext) (interface{}, error)

// Convert calls f
func (f ConverterFunc) Convert(value interface{}, ctx ConvertContext) (interface{}, error) {
	return f(value, ctx)
}

// Parser turns the text of a cell into a record value
type Parser interface {
	Parse(value string, ctx ParseContext) (interface{}, error)
}

// ParserFunc adapts a function to the Parser interface
type ParserFunc func(value string, ctx ParseContext) (interface{}, error)

// Parse calls f
func (f ParserFunc) Parse(value string, ctx ParseContext) (interface{}, error) {
	return f(value, ctx)
}

// Column maps one text column to one record field.
// A column without Key renders empty cells (unless it has a Converter)
// and is ignored when decoding.
type Column struct {
	Header     string
	Key        string
	Required   bool
	ParseEmpty bool
	Converter  Converter
	Parser     Parser
}

// ColumnInput is one entry of a column list: a KeyOnly, a *Column, or nil
// for an inert column
type ColumnInput interface {
	column() *Column
}

// KeyOnly is a column given only by its record key. The empty key is inert.
type KeyOnly string

func (k KeyOnly) column() *Column {
	if k == "" {
		return nil
	}

	return &Column{Key: string(k)}
}

func (c *Column) column() *Column {
	return c
}

// String returns the column's key, or its header for keyless columns
func (c *Column) String() string {
	if c == nil {
		return "<inert>"
	}

	if c.Key != "" {
		return c.Key
	}

	return fmt.Sprintf("<%s>", c.Header)
}

// ParseColumns turns loosely typed column definitions into a column list.
// Non empty strings become KeyOnly, Column and *Column are kept, anything
// else becomes an inert column.
func ParseColumns(raw ...interface{}) []ColumnInput {
	cols := make([]ColumnInput, len(raw))

	for i, r := range raw {
		switch v := r.(type) {
		case string:
			if v != "" {
				cols[i] = KeyOnly(v)
			}
		case KeyOnly:
			if v != "" {
				cols[i] = v
			}
		case *Column:
			if v != nil {
				cols[i] = v
			}
		case Column:
			c := v
			cols[i] = &c
		}
	}

	return cols
}

// normalizeColumns resolves every input to a *Column; inert entries are nil.
// Caller supplied columns are returned as is, never copied or modified.
func normalizeColumns(in []ColumnInput) []*Column {
	cols := make([]*Column, len(in))

	for i, c := range in {
		if c != nil {
			cols[i] = c.column()
		}
	}

	return cols
}

// columnsFromRecord builds one column per key of r, using keys as headers when withHeader
func columnsFromRecord(r *Record, withHeader bool) []*Column {
	keys := r.Keys()
	cols := make([]*Column, len(keys))

	for i, k := range keys {
		cols[i] = &Column{Key: k}
		if withHeader {
			cols[i].Header = k
		}
	}

	return cols
}

// columnsFromHeader builds one column per header cell. Blank names are inert.
func columnsFromHeader(header []string) []*Column {
	cols := make([]*Column, len(header))

	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			continue
		}

		cols[i] = &Column{Key: h, Header: h}
	}

	return cols
}

// positionalColumns builds n columns named col1, col2, ...
func positionalColumns(n int) []*Column {
	cols := make([]*Column, n)

	for i := range cols {
		cols[i] = &Column{Key: fmt.Sprintf("col%d", i+1)}
	}

	return cols
}
