// Package forms maps raw form submissions to validated record drafts.
// Rules are declarative per-field descriptors; every rule for a field is
// evaluated even after one fails, so a submission reports all of its
// violations at once rather than just the first.
package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Violation is one (field, message) pair describing a failed rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Violations []Violation

// Messages returns the messages for a single field, in rule order.
func (v Violations) Messages(field string) []string {
	var msgs []string

	for _, violation := range v {
		if violation.Field == field {
			msgs = append(msgs, violation.Message)
		}
	}

	return msgs
}

func (v Violations) HasField(field string) bool {
	for _, violation := range v {
		if violation.Field == field {
			return true
		}
	}

	return false
}

// Rule pairs a predicate with the message reported when it fails.
type Rule struct {
	Predicate func(value string) bool
	Message   string
}

// Field is an ordered set of rules applied to one form field.
type Field struct {
	Name  string
	Rules []Rule
}

var alphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Lengths count characters, not bytes, so multibyte input is judged the
// same way as ASCII.
func MinLength(n int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

func MaxLength(n int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= n
	}
}

func Alphanumeric(value string) bool {
	return alphanumericPattern.MatchString(value)
}

// strictPolicy strips all HTML markup and escapes what remains.
var strictPolicy = bluemonday.StrictPolicy()

// Sanitize trims surrounding whitespace and HTML-escapes the value.
// Runs before validation and before storage, so rendered output never
// carries raw user markup.
func Sanitize(value string) string {
	return strictPolicy.Sanitize(strings.TrimSpace(value))
}

// Validate runs every rule of every field against the sanitized values and
// collects all violations in field-then-rule order.
func Validate(values map[string]string, fields []Field) Violations {
	var violations Violations

	for _, field := range fields {
		value := values[field.Name]

		for _, rule := range field.Rules {
			if !rule.Predicate(value) {
				violations = append(violations, Violation{Field: field.Name, Message: rule.Message})
			}
		}
	}

	return violations
}
