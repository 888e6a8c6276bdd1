package csv

import (
	"regexp"

	"github.com/pkg/errors"
)

var (
	blankLines     = regexp.MustCompile(`(?:\r?\n){2,}`)
	edgeLineBreaks = regexp.MustCompile(`^\r?\n|\r?\n$`)
)

// DecodeOptions controls Decode
type DecodeOptions struct {
	IncludeHeader      bool   // the first row is a header, not data
	IncludeEmptyValues bool   // set empty values on records instead of leaving keys out
	Delimiter          string // defaults to DefaultDelimiter
}

// Decode reads one record per data row of text.
//
// Blank lines are dropped before the text is tokenized. When cols is empty
// the columns are taken from the header row (opts.IncludeHeader) or named
// col1, col2, ... after the cells of the first row.
//
// A Required column with an empty value stops the decoding with a
// *ValidationError. Errors returned by parsers are returned unchanged.
func Decode(text string, cols []ColumnInput, opts DecodeOptions) ([]*Record, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	text = blankLines.ReplaceAllString(text, "\n")
	text = edgeLineBreaks.ReplaceAllString(text, "")
	if text == "" {
		return []*Record{}, nil
	}

	rows := Tokenize(text, delimiter)

	var columns []*Column
	switch {
	case len(cols) > 0:
		columns = normalizeColumns(cols)
	case opts.IncludeHeader:
		columns = columnsFromHeader(rows[0])
	default:
		columns = positionalColumns(len(rows[0]))
	}

	headerOffset := 0
	if opts.IncludeHeader {
		rows = rows[1:]
		headerOffset = 1
	}

	records := make([]*Record, 0, len(rows))
	for ri, row := range rows {
		rec, err := decodeRow(row, columns, ri+headerOffset+1, opts.IncludeEmptyValues)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

func decodeRow(row []string, columns []*Column, line int, includeEmpty bool) (*Record, error) {
	rec := NewRecord()

	for ci, col := range columns {
		if col == nil || col.Key == "" {
			continue
		}

		var val interface{}
		if ci < len(row) {
			cell := row[ci]
			val = cell

			if col.Parser != nil && (col.ParseEmpty || cell != "") {
				var err error
				val, err = col.Parser.Parse(cell, ParseContext{Key: col.Key, Row: line, Column: ci})
				if err != nil {
					return nil, err
				}
			}
		}

		empty := isEmpty(val)
		if empty && col.Required {
			return nil, &ValidationError{Key: col.Key, Row: line}
		}

		if includeEmpty || !empty {
			rec.Set(col.Key, val)
		}
	}

	return rec, nil
}

// DecodeValue decodes text given as a string or a []byte. Any other value
// fails with ErrInputShape.
func DecodeValue(text interface{}, cols []ColumnInput, opts DecodeOptions) ([]*Record, error) {
	switch t := text.(type) {
	case string:
		return Decode(t, cols, opts)
	case []byte:
		return Decode(string(t), cols, opts)
	}

	return nil, errors.Wrapf(ErrInputShape, "text must be a string, %T given", text)
}
