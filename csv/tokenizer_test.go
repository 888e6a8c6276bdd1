package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		delimiter string
		want      [][]string
	}{
		{
			name:  "basicRows",
			input: "a,b\nc,d",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "emptyText",
			input: "",
			want:  [][]string{{""}},
		},
		{
			name:  "quotedDelimiter",
			input: `"a,b",c`,
			want:  [][]string{{"a,b", "c"}},
		},
		{
			name:  "escapedQuotes",
			input: `"he said ""hi""",x`,
			want:  [][]string{{`he said "hi"`, "x"}},
		},
		{
			name:  "embeddedNewline",
			input: "\"x\ny\",z\nnext",
			want:  [][]string{{"x\ny", "z"}, {"next"}},
		},
		{
			name:  "lineEndings",
			input: "a\r\nb\rc\nd",
			want:  [][]string{{"a"}, {"b"}, {"c"}, {"d"}},
		},
		{
			name:  "emptyCells",
			input: "a,,\n",
			want:  [][]string{{"a", "", ""}, {""}},
		},
		{
			name:  "emptyLine",
			input: "a\n\nb",
			want:  [][]string{{"a"}, {""}, {"b"}},
		},
		{
			name:  "unevenRows",
			input: "a,b,c\nd",
			want:  [][]string{{"a", "b", "c"}, {"d"}},
		},
		{
			name:  "unterminatedQuote",
			input: "x,\"abc,def\nghi",
			want:  [][]string{{"x", "abc,def\nghi"}},
		},
		{
			name:  "textAfterClosingQuote",
			input: `"ab"cd,e`,
			want:  [][]string{{"abcd", "e"}},
		},
		{
			name:  "quoteInsideUnquotedCell",
			input: `a"b,c`,
			want:  [][]string{{`a"b`, "c"}},
		},
		{
			name:      "customDelimiter",
			input:     "a;\"b;c\"\nd;e",
			delimiter: ";",
			want:      [][]string{{"a", "b;c"}, {"d", "e"}},
		},
		{
			name:      "multiCharDelimiter",
			input:     "a||b|c",
			delimiter: "||",
			want:      [][]string{{"a", "b|c"}},
		},
		{
			name:  "emptyQuotedCell",
			input: `"",x`,
			want:  [][]string{{"", "x"}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Tokenize(tc.input, tc.delimiter))
		})
	}
}

func FuzzTokenizeEscaped(f *testing.F) {
	seeds := []string{"", "plain", "a,b", "\"quoted\"", "multi\nline", "\r\n", "x\"\"y"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, cell string) {
		if len(cell) > 1<<12 {
			t.Skip()
		}

		rows := Tokenize(Escape(cell)+","+Escape(cell), ",")
		require.Len(t, rows, 1)
		require.Equal(t, []string{cell, cell}, rows[0])

		// arbitrary input must not panic and always yields a row
		rows = Tokenize(cell, ",")
		require.NotEmpty(t, rows)
	})
}
