package forms

import (
	"html"
	"strconv"
	"time"
	"unicode"
)

// Earliest model year a listing may carry.
const firstModelYear = 1886

// strongPassword requires 12+ characters mixing upper, lower, digit, and
// symbol. Length counts runes so multibyte characters aren't shortchanged.
func strongPassword(value string) bool {
	var upper, lower, digit, symbol bool
	length := 0
	for _, r := range value {
		length++
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return length >= 12 && upper && lower && digit && symbol
}

func nonNegativeInteger(value string) bool {
	n, err := strconv.ParseInt(value, 10, 64)
	return err == nil && n >= 0
}

func positiveID(value string) bool {
	n, err := strconv.ParseUint(value, 10, 64)
	return err == nil && n > 0
}

func modelYear(value string) bool {
	year, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	return year >= firstModelYear && year <= time.Now().Year()+1
}

// textWithin bounds the rune length of the text as the user typed it.
// Entity escaping runs earlier in the transform chain and must not count
// against the limit.
func textWithin(min, max int) func(string) bool {
	return func(value string) bool {
		length := len([]rune(html.UnescapeString(value)))
		return length >= min && length <= max
	}
}
