package csv

import (
	"regexp"
	"strconv"
	"strings"
)

// dateLike matches values spreadsheets detect as dates. They are written
// without quotes so the detection keeps working.
var dateLike = regexp.MustCompile(`^\d+[-/]\d+[-/]\d+$`)

// Escape wraps s in double quotes and doubles the quotes it contains
func Escape(s string) string {
	return `"` + strings.Replace(s, `"`, `""`, -1) + `"`
}

// isFormula reports whether s is a spreadsheet formula
func isFormula(s string) bool {
	return strings.HasPrefix(s, "=")
}

// needsEscape reports whether a string cell gets quoted on output
func needsEscape(s string) bool {
	return s != "" && !isFormula(s) && !dateLike.MatchString(s)
}

// isEmpty reports whether a value counts as missing: nil or the empty string
func isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}

	s, ok := v.(string)
	return ok && s == ""
}

// scalarText returns the text of a scalar value. ok is false for nil and
// for anything that isn't a string, a bool or a number.
func scalarText(v interface{}) (text string, isString bool, ok bool) {
	switch t := v.(type) {
	case string:
		return t, true, true
	case bool:
		return strconv.FormatBool(t), false, true
	case int:
		return strconv.Itoa(t), false, true
	case int8:
		return strconv.FormatInt(int64(t), 10), false, true
	case int16:
		return strconv.FormatInt(int64(t), 10), false, true
	case int32:
		return strconv.FormatInt(int64(t), 10), false, true
	case int64:
		return strconv.FormatInt(t, 10), false, true
	case uint:
		return strconv.FormatUint(uint64(t), 10), false, true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), false, true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), false, true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), false, true
	case uint64:
		return strconv.FormatUint(t, 10), false, true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), false, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), false, true
	}

	return "", false, false
}

// cellText renders a (converted) value as an output cell
func cellText(v interface{}) string {
	text, isString, ok := scalarText(v)
	if !ok {
		return ""
	}

	if isString && needsEscape(text) {
		return Escape(text)
	}

	return text
}
