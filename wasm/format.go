package wasm

import (
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero/api"
)

// String returns the text format name, e.g. "i32".
func (v ValueType) String() string {
	return api.ValueTypeName(v.API())
}

// String returns "funcref".
func (e ElemType) String() string {
	if e == FuncRef {
		return "funcref"
	}
	return "unknown"
}

// String returns "empty" or the result value type.
func (b BlockType) String() string {
	if b.Kind == BlockEmpty {
		return "empty"
	}
	return b.Value.String()
}

// String renders the signature as "(i32, i64) -> (f32)".
func (f FuncType) String() string {
	var sb strings.Builder
	writeValueTypes(&sb, f.Params)
	sb.WriteString(" -> ")
	writeValueTypes(&sb, f.Results)
	return sb.String()
}

func writeValueTypes(sb *strings.Builder, ts []ValueType) {
	sb.WriteByte('(')
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(')')
}

// String renders the bounds as "min.." or "min..=max".
func (l Limits) String() string {
	s := strconv.FormatUint(uint64(l.Min), 10) + ".."
	if hi, ok := l.Max.Get(); ok {
		s += "=" + strconv.FormatUint(uint64(hi), 10)
	}
	return s
}

// String renders the memory limits.
func (m MemType) String() string {
	return m.Limits.String()
}

// String renders the table as "funcref 1..=2".
func (t TableType) String() string {
	return t.ElemType.String() + " " + t.Limits.String()
}

// String renders the global as "i32" or "mut i32".
func (g GlobalType) String() string {
	if g.Mutable {
		return "mut " + g.ValueType.String()
	}
	return g.ValueType.String()
}
