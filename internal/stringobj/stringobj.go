// Package stringobj aids in writing String methods for objects
// with a JSON-like output.
package stringobj

import (
	"fmt"
	"reflect"
	"strings"
)

// Builder helps build String functions for objects that skip zero-value
// attributes. Attributes are rendered in the order they were added.
type Builder struct {
	attrs []string
}

// Put adds the given attribute-value pair to the builder, skipping it if the
// value is a zero value. Strings are quoted if they contain spaces or
// punctuation that would make the output ambiguous.
func (b *Builder) Put(name string, value any) {
	if value == nil {
		return
	}
	if v := reflect.ValueOf(value); v.IsZero() {
		return
	}

	if s, ok := value.(string); ok && strings.ContainsAny(s, " ,:{}\"") {
		b.attrs = append(b.attrs, fmt.Sprintf("%s: %q", name, s))
		return
	}
	b.attrs = append(b.attrs, fmt.Sprintf("%s: %v", name, value))
}

// String returns the final string representation.
func (b *Builder) String() string {
	return "{" + strings.Join(b.attrs, ", ") + "}"
}
