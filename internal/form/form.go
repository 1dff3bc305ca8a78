// Package form is a schema-driven validated form container, independent of
// any UI toolkit. A Schema declares fields and rules; a Form holds values
// and field-level error messages. Validation runs entirely client-side and
// gates submission: no network call happens while Validate reports false.
package form

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Rule checks one field value against the whole form (so rules like
// MatchField can see other fields). It returns an error message, or "" when
// the value passes.
type Rule func(value string, f *Form) string

// Field declares one form field.
type Field struct {
	Name      string
	Label     string
	Rules     []Rule
	Multiline bool
}

// Schema is an ordered list of fields.
type Schema []Field

// Form holds the values and validation errors for one schema instance.
type Form struct {
	schema Schema
	values map[string]string
	errors map[string]string
}

// New creates an empty form for the given schema.
func New(schema Schema) *Form {
	return &Form{
		schema: schema,
		values: make(map[string]string, len(schema)),
		errors: make(map[string]string, len(schema)),
	}
}

// Fields returns the schema fields in declaration order.
func (f *Form) Fields() []Field {
	return f.schema
}

// Set stores a field value and clears any stale error for that field.
func (f *Form) Set(name, value string) {
	f.values[name] = value
	delete(f.errors, name)
}

// Value returns the current value of a field.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// Error returns the validation message for a field, or "".
func (f *Form) Error(name string) string {
	return f.errors[name]
}

// Validate runs every field's rules, records the first failure per field and
// reports whether the form is submittable.
func (f *Form) Validate() bool {
	f.errors = make(map[string]string, len(f.schema))
	for _, field := range f.schema {
		value := f.values[field.Name]
		for _, rule := range field.Rules {
			if msg := rule(value, f); msg != "" {
				f.errors[field.Name] = msg
				break
			}
		}
	}
	return len(f.errors) == 0
}

// Reset clears all values and errors.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.schema))
	f.errors = make(map[string]string, len(f.schema))
}

// -- rules --

// Required fails on empty or whitespace-only values.
func Required(msg string) Rule {
	return func(value string, _ *Form) string {
		if strings.TrimSpace(value) == "" {
			return msg
		}
		return ""
	}
}

// MinLen fails when the trimmed value is shorter than n runes.
func MinLen(n int, msg string) Rule {
	return func(value string, _ *Form) string {
		if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
			return msg
		}
		return ""
	}
}

// MaxLen fails when the trimmed value is longer than n runes.
func MaxLen(n int, msg string) Rule {
	return func(value string, _ *Form) string {
		if utf8.RuneCountInString(strings.TrimSpace(value)) > n {
			return msg
		}
		return ""
	}
}

// URL fails unless the value parses as an absolute http(s) URL.
func URL(msg string) Rule {
	return func(value string, _ *Form) string {
		u, err := url.Parse(strings.TrimSpace(value))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return msg
		}
		return ""
	}
}

// Email fails unless the value parses as a single address.
func Email(msg string) Rule {
	return func(value string, _ *Form) string {
		addr, err := mail.ParseAddress(strings.TrimSpace(value))
		if err != nil || addr.Address != strings.TrimSpace(value) {
			return msg
		}
		return ""
	}
}

// MatchField fails unless the value equals another field's value. Used for
// password confirmation.
func MatchField(other, msg string) Rule {
	return func(value string, f *Form) string {
		if value != f.Value(other) {
			return msg
		}
		return ""
	}
}
