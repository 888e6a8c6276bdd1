// Package csv converts between delimited text and ordered records.
//
// A list of columns drives both directions: Encode writes one line per record,
// running each column's Converter and quoting text cells, and Decode tokenizes
// text and builds one record per row, running each column's Parser and
// checking required columns. Columns can also be built from a yaml
// configuration that references converters and parsers registered by name,
// including javascript ones.
package csv
