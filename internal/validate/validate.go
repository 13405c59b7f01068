// Package validate holds the syntactic input checks shared by the services
// and the form flows. Nothing here touches the network.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MinDestinationLen is the shortest destination accepted, in characters.
const MinDestinationLen = 4

var v = validator.New()

// NormalizeEmail trims surrounding whitespace and lower-cases text.
// Guest lists compare addresses in this form.
func NormalizeEmail(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Email reports whether text is a syntactically valid email address.
func Email(text string) bool {
	return v.Var(NormalizeEmail(text), "required,email") == nil
}

// Destination reports whether name is long enough to be a destination.
func Destination(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= MinDestinationLen
}
