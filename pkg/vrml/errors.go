// Structured diagnostic types for parse degradation. Nothing here is ever
// returned from Parse; these exist so log lines carry consistent,
// greppable text for each failure class.
package vrml

import "fmt"

// ProtoError describes a malformed prototype definition (unmatched
// delimiters, missing body). The affected block is skipped.
type ProtoError struct {
	Proto   string
	Message string
}

func (e *ProtoError) Error() string {
	if e.Proto != "" {
		return fmt.Sprintf("prototype %q: %s", e.Proto, e.Message)
	}
	return fmt.Sprintf("prototype: %s", e.Message)
}

// NewProtoError creates a prototype-level diagnostic.
func NewProtoError(proto, message string) error {
	return &ProtoError{Proto: proto, Message: message}
}

// FieldError describes a field whose declaration or override could not be
// parsed. The field falls back to a zero value or its default.
type FieldError struct {
	Proto   string
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("prototype %q field %q: %s", e.Proto, e.Field, e.Message)
}

// NewFieldError creates a field-level diagnostic.
func NewFieldError(proto, field, message string) error {
	return &FieldError{Proto: proto, Field: field, Message: message}
}

// ExpansionError describes expansion halting at the depth ceiling with
// template usages still present. The partially expanded text is returned
// as-is.
type ExpansionError struct {
	Depth   int
	Message string
}

func (e *ExpansionError) Error() string {
	return fmt.Sprintf("expansion stopped at depth %d: %s", e.Depth, e.Message)
}

// NewExpansionError creates a depth-ceiling diagnostic.
func NewExpansionError(depth int, message string) error {
	return &ExpansionError{Depth: depth, Message: message}
}
