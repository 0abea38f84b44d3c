package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // shape registration
	PhaseEncode   Phase = "encode"   // value to bytes
	PhaseDecode   Phase = "decode"   // bytes to value
	PhaseVisit    Phase = "visit"    // traversal
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedEnd       Kind = "unexpected_end"
	KindInvalidDiscriminant Kind = "invalid_discriminant"
	KindInvalidBoolean      Kind = "invalid_boolean"
	KindVarintOutOfRange    Kind = "varint_out_of_range"
	KindTrailingData        Kind = "trailing_data"
	KindInvalidVariant      Kind = "invalid_variant"
	KindIO                  Kind = "io"
	KindRegistration        Kind = "registration"
)

// Sentinels for errors.Is matching. Only Phase and Kind are compared.
var (
	ErrUnexpectedEnd       = &Error{Phase: PhaseDecode, Kind: KindUnexpectedEnd}
	ErrInvalidDiscriminant = &Error{Phase: PhaseDecode, Kind: KindInvalidDiscriminant}
	ErrInvalidBoolean      = &Error{Phase: PhaseDecode, Kind: KindInvalidBoolean}
	ErrVarintOutOfRange    = &Error{Phase: PhaseDecode, Kind: KindVarintOutOfRange}
	ErrTrailingData        = &Error{Phase: PhaseDecode, Kind: KindTrailingData}
	ErrInvalidVariant      = &Error{Phase: PhaseEncode, Kind: KindInvalidVariant}
)

// NoOffset marks errors that are not tied to a stream position.
const NoOffset = -1

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // grammar type being processed
	Detail string
	Path   []string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(JoinPath(e.Path))
	}

	if e.Offset >= 0 {
		b.WriteString(" (offset ")
		fmt.Fprintf(&b, "%d", e.Offset)
		b.WriteByte(')')
	}

	if e.Type != "" {
		b.WriteString(": ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// JoinPath renders a field path. Index segments ("[3]") attach to the
// preceding segment without a separator.
func JoinPath(path []string) string {
	var b strings.Builder
	for i, seg := range path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the grammar type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Offset sets the stream position the error refers to
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnexpectedEnd creates an error for a stream that ended before a value was complete
func UnexpectedEnd(offset int, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnexpectedEnd,
		Offset: offset,
		Detail: "unexpected end of input",
		Cause:  cause,
	}
}

// InvalidDiscriminant creates an error for a tag that matches no declared variant
func InvalidDiscriminant(typeName string, tag uint32, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidDiscriminant,
		Type:   typeName,
		Offset: offset,
		Detail: fmt.Sprintf("unknown discriminant 0x%02x", tag),
		Value:  tag,
	}
}

// InvalidBoolean creates an error for a boolean byte other than 0 or 1
func InvalidBoolean(b byte, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidBoolean,
		Type:   "bool",
		Offset: offset,
		Detail: fmt.Sprintf("invalid boolean byte 0x%02x", b),
		Value:  b,
	}
}

// VarintOutOfRange creates an error for a LEB128 value exceeding its target width
func VarintOutOfRange(bits int, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindVarintOutOfRange,
		Offset: offset,
		Detail: fmt.Sprintf("varint exceeds %d bits", bits),
		Value:  bits,
	}
}

// TrailingData creates an error for bytes left over after a bounded decode
func TrailingData(typeName string, remaining int, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTrailingData,
		Type:   typeName,
		Offset: offset,
		Detail: fmt.Sprintf("%d trailing byte(s)", remaining),
		Value:  remaining,
	}
}

// InvalidVariant creates an encode error for a value that matches no declared variant
func InvalidVariant(typeName string, value any) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidVariant,
		Type:   typeName,
		Offset: NoOffset,
		Detail: fmt.Sprintf("value %+v matches no variant", value),
		Value:  value,
	}
}

// IO wraps a failure of the underlying stream
func IO(phase Phase, offset int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Offset: offset,
		Detail: "stream error",
		Cause:  cause,
	}
}

// Registration creates an error for an invalid shape description
func Registration(typeName, detail string) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindRegistration,
		Type:   typeName,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Within prepends a path segment to err. Structured errors gain the segment in
// place; any other error is wrapped as a decode I/O failure at that path.
func Within(err error, segment string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Path = append([]string{segment}, e.Path...)
		return e
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindIO,
		Path:   []string{segment},
		Offset: NoOffset,
		Cause:  err,
	}
}

// Index formats an element index as a path segment
func Index(i int) string {
	return fmt.Sprintf("[%d]", i)
}
