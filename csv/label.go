package csv

import "strconv"

// ColumnLetters returns the spreadsheet name of the zero-based column index:
// A, B, ..., Z, AA, AB, ... Negative indexes have no name.
func ColumnLetters(column int) string {
	if column < 0 {
		return ""
	}

	letter := string(rune('A' + column%26))
	if q := column / 26; q > 0 {
		return ColumnLetters(q-1) + letter
	}

	return letter
}

// Label returns the spreadsheet cell reference for the given column index and
// row number. The row is rendered as given, callers pass line numbers.
func Label(row, column int) string {
	return ColumnLetters(column) + strconv.Itoa(row)
}
