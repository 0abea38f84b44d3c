package wasm

import "github.com/wippyai/wasmbin/codec"

// limitsRepr is the wire shape of Limits: the flag byte selects whether a
// maximum follows the minimum.
type limitsRepr struct {
	min, max uint32
	bounded  bool
}

var limitsReprCodec = codec.Union("Limits",
	codec.Variant("Min", uint32(LimitsMinByte),
		func(r *limitsRepr) bool { return !r.bounded },
		func(r *limitsRepr) {},
		codec.Field("min", func(r *limitsRepr) *uint32 { return &r.min }, codec.U32),
	),
	codec.Variant("MinMax", uint32(LimitsMinMaxByte),
		func(r *limitsRepr) bool { return r.bounded },
		func(r *limitsRepr) { r.bounded = true },
		codec.Field("min", func(r *limitsRepr) *uint32 { return &r.min }, codec.U32),
		codec.Field("max", func(r *limitsRepr) *uint32 { return &r.max }, codec.U32),
	),
)

// limitsShape is the logical shape visited by traversals. It is not a wire
// format.
var limitsShape = codec.Struct("Limits",
	codec.Field("min", func(l *Limits) *uint32 { return &l.Min }, codec.U32),
	codec.Field("max", func(l *Limits) *codec.Option[uint32] { return &l.Max }, codec.Optional(codec.U32)),
)

// LimitsCodec encodes Limits as 0x00 min or 0x01 min max.
var LimitsCodec = codec.Override("Limits", limitsReprCodec, limitsToRepr, limitsFromRepr, limitsShape)

func limitsToRepr(l Limits) limitsRepr {
	if hi, ok := l.Max.Get(); ok {
		return limitsRepr{min: l.Min, max: hi, bounded: true}
	}
	return limitsRepr{min: l.Min}
}

func limitsFromRepr(r limitsRepr) Limits {
	if !r.bounded {
		return NewLimits(r.min)
	}
	return BoundedLimits(r.min, r.max)
}
