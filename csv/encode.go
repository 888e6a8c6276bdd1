package csv

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// EncodeOptions controls Encode
type EncodeOptions struct {
	IncludeHeader bool   // write a header line built from the columns' Header
	Delimiter     string // defaults to DefaultDelimiter
}

// Encode writes one line per record, preceded by a header line when
// opts.IncludeHeader is set. Lines are joined with "\n" and the text has
// no trailing line break.
//
// When cols is empty the columns are the keys of the first record, which
// also serve as headers.
//
// Errors returned by converters are returned unchanged and abort the encoding.
func Encode(records []*Record, cols []ColumnInput, opts EncodeOptions) (string, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	var columns []*Column
	if len(cols) > 0 {
		columns = normalizeColumns(cols)
	} else if len(records) > 0 {
		columns = columnsFromRecord(records[0], opts.IncludeHeader)
	}

	lines := make([]string, 0, len(records)+1)

	headerOffset := 0
	if opts.IncludeHeader {
		lines = append(lines, headerLine(columns, delimiter))
		headerOffset = 1
	}

	cells := make([]string, len(columns))
	for ri, rec := range records {
		row := ri + headerOffset + 1

		for ci, col := range columns {
			cell, err := encodeCell(rec, col, row, ci)
			if err != nil {
				return "", err
			}

			cells[ci] = cell
		}

		lines = append(lines, strings.Join(cells, delimiter))
	}

	return strings.Join(lines, "\n"), nil
}

// encodeCell converts and escapes the value of col in rec
func encodeCell(rec *Record, col *Column, row, column int) (string, error) {
	if col == nil {
		return "", nil
	}

	var val interface{}
	if col.Key != "" {
		val = rec.Get(col.Key)
	}

	if col.Converter != nil {
		var err error
		val, err = col.Converter.Convert(val, ConvertContext{
			Record: rec,
			Key:    col.Key,
			Row:    row,
			Column: column,
		})
		if err != nil {
			return "", err
		}
	}

	return cellText(val), nil
}

func headerLine(columns []*Column, delimiter string) string {
	cells := make([]string, len(columns))

	for i, col := range columns {
		if col != nil && col.Header != "" {
			cells[i] = Escape(col.Header)
		}
	}

	return strings.Join(cells, delimiter)
}

// EncodeValue encodes records given as a slice of *Record, Record,
// map[string]interface{} or yaml.MapSlice. Any other value fails with ErrInputShape.
func EncodeValue(records interface{}, cols []ColumnInput, opts EncodeOptions) (string, error) {
	recs, err := toRecords(records)
	if err != nil {
		return "", err
	}

	return Encode(recs, cols, opts)
}

func toRecords(v interface{}) ([]*Record, error) {
	switch t := v.(type) {
	case []*Record:
		return t, nil
	case []Record:
		recs := make([]*Record, len(t))
		for i := range t {
			recs[i] = &t[i]
		}
		return recs, nil
	case []map[string]interface{}:
		recs := make([]*Record, len(t))
		for i, m := range t {
			recs[i] = RecordFromMap(m)
		}
		return recs, nil
	case []yaml.MapSlice:
		recs := make([]*Record, len(t))
		for i, ms := range t {
			recs[i] = RecordFromMapSlice(ms)
		}
		return recs, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Wrapf(ErrInputShape, "records must be a slice, %T given", v)
	}

	// slices of interface values, as produced by yaml or json decoding
	recs := make([]*Record, rv.Len())
	for i := range recs {
		switch item := rv.Index(i).Interface().(type) {
		case *Record:
			recs[i] = item
		case Record:
			recs[i] = &item
		case map[string]interface{}:
			recs[i] = RecordFromMap(item)
		case yaml.MapSlice:
			recs[i] = RecordFromMapSlice(item)
		case nil:
			recs[i] = NewRecord()
		default:
			return nil, errors.Wrapf(ErrInputShape, "record at index %d must be a mapping, %T given", i, item)
		}
	}

	return recs, nil
}
