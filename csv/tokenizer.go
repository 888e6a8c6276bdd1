package csv

import "strings"

const (
	// DefaultDelimiter separates cells when no delimiter is configured
	DefaultDelimiter = ","

	quote = '"'
)

// Tokenize splits text into rows of unescaped cells.
//
// Cells are separated by delimiter and rows by "\n", "\r\n" or "\r". A cell
// starting with a double quote runs until the matching closing quote and may
// contain delimiters and line breaks; a doubled quote inside it stands for one
// quote. Rows keep whatever cell count they have.
//
// Tokenize never fails: an unterminated quoted cell runs to the end of text,
// and characters following a closing quote are kept as part of the cell.
// An empty text is one row holding one empty cell.
func Tokenize(text, delimiter string) [][]string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	var rows [][]string
	var row []string
	var cell strings.Builder

	pos := 0
	for {
		cell.Reset()

		if pos < len(text) && text[pos] == quote {
			pos = scanQuoted(text, pos+1, &cell)
		}
		pos = scanPlain(text, pos, delimiter, &cell)

		row = append(row, cell.String())

		if pos >= len(text) {
			break
		}

		if strings.HasPrefix(text[pos:], delimiter) {
			pos += len(delimiter)
			continue
		}

		// line break, "\r\n" counts as one
		if text[pos] == '\r' && pos+1 < len(text) && text[pos+1] == '\n' {
			pos++
		}
		pos++

		rows = append(rows, row)
		row = nil
	}

	return append(rows, row)
}

// scanQuoted reads the content of a quoted cell starting right after its
// opening quote and returns the position following the closing quote
func scanQuoted(text string, pos int, cell *strings.Builder) int {
	for pos < len(text) {
		end := strings.IndexByte(text[pos:], quote)
		if end < 0 {
			cell.WriteString(text[pos:])
			return len(text)
		}

		cell.WriteString(text[pos : pos+end])
		pos += end + 1

		if pos < len(text) && text[pos] == quote {
			cell.WriteByte(quote)
			pos++
			continue
		}

		return pos
	}

	return pos
}

// scanPlain reads up to the next delimiter or line break
func scanPlain(text string, pos int, delimiter string, cell *strings.Builder) int {
	start := pos
	for pos < len(text) {
		c := text[pos]
		if c == '\n' || c == '\r' || strings.HasPrefix(text[pos:], delimiter) {
			break
		}
		pos++
	}

	cell.WriteString(text[start:pos])
	return pos
}
