// Package errors provides structured error types for the wasmbin codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the grammar type name, the field path that led to the
// failure, the stream offset, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidDiscriminant).
//		Path("TableType", "elem_type").
//		Type("ElemType").
//		Offset(12).
//		Detail("unknown discriminant 0x%02x", tag).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnexpectedEnd(offset, io.EOF)
//	err := errors.InvalidBoolean(b, offset)
//
// Nested decoders add context on the way out with Within:
//
//	return errors.Within(err, "params")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is compares Phase and Kind only, so the exported sentinels match any error of
// the same category:
//
//	if errors.Is(err, errors.ErrUnexpectedEnd) { ... }
package errors
