package reference

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DistrictSeparator splits a raw district value into name and zip code.
const DistrictSeparator = " -- "

// Capitalize lowercases every space separated word and upper-cases its first
// letter. Runs of spaces are kept as they are.
func Capitalize(s string) string {
	// cases.Caser keeps state and cannot be shared across goroutines.
	lower := cases.Lower(language.Indonesian)
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = capitalizeWord(lower, w)
	}
	return strings.Join(words, " ")
}

func capitalizeWord(lower cases.Caser, w string) string {
	if w == "" {
		return w
	}
	w = lower.String(w)
	r, size := utf8.DecodeRuneInString(w)
	if !unicode.IsLower(r) {
		return w
	}
	return string(unicode.ToTitle(r)) + w[size:]
}

// SplitDistrict turns "NAME -- 123-45" into ("Name", "12345"). A value
// without the separator yields an empty zip code; segments after a second
// separator are ignored.
func SplitDistrict(raw string) (name, zipCode string) {
	name, zip := splitDistrictRaw(raw)
	return Capitalize(name), strings.ReplaceAll(zip, "-", "")
}

func splitDistrictRaw(raw string) (name, zipCode string) {
	parts := strings.Split(raw, DistrictSeparator)
	if len(parts) < 2 {
		return raw, ""
	}
	return parts[0], parts[1]
}

// JoinDistrict is the inverse of SplitDistrict for sources that keep name and
// zip code in separate columns.
func JoinDistrict(name, zipCode string) string {
	return name + DistrictSeparator + zipCode
}
