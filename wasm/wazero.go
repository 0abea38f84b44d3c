package wasm

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasmbin/errors"
)

// API returns the wazero representation of v. Both use the binary code.
func (v ValueType) API() api.ValueType {
	return api.ValueType(v)
}

// ValueTypeFromAPI converts a wazero value type. Types outside the number
// types, such as externref, fail with an invalid discriminant error.
func ValueTypeFromAPI(t api.ValueType) (ValueType, error) {
	if !ValueTypeCodec.HasTag(uint32(t)) {
		return 0, errors.InvalidDiscriminant(ValueTypeCodec.Name(), uint32(t), errors.NoOffset)
	}
	return ValueType(t), nil
}

// APITypes returns the wazero parameter and result types of f, in the form
// taken by wazero's host function builder.
func (f FuncType) APITypes() (params, results []api.ValueType) {
	return valueTypesToAPI(f.Params), valueTypesToAPI(f.Results)
}

func valueTypesToAPI(ts []ValueType) []api.ValueType {
	if ts == nil {
		return nil
	}
	out := make([]api.ValueType, len(ts))
	for i, t := range ts {
		out[i] = t.API()
	}
	return out
}

func valueTypesFromAPI(field string, ts []api.ValueType) ([]ValueType, error) {
	if len(ts) == 0 {
		return nil, nil
	}
	out := make([]ValueType, len(ts))
	for i, t := range ts {
		v, err := ValueTypeFromAPI(t)
		if err != nil {
			return nil, errors.Within(errors.Within(err, errors.Index(i)), field)
		}
		out[i] = v
	}
	return out, nil
}

// FuncTypeOf returns the signature of a function compiled by wazero.
func FuncTypeOf(def api.FunctionDefinition) (FuncType, error) {
	params, err := valueTypesFromAPI("params", def.ParamTypes())
	if err != nil {
		return FuncType{}, errors.Within(err, FuncTypeCodec.Name())
	}
	results, err := valueTypesFromAPI("results", def.ResultTypes())
	if err != nil {
		return FuncType{}, errors.Within(err, FuncTypeCodec.Name())
	}
	return FuncType{Params: params, Results: results}, nil
}

// MemTypeOf returns the type of a memory defined or imported by a wazero
// module.
func MemTypeOf(def api.MemoryDefinition) MemType {
	if hi, ok := def.Max(); ok {
		return MemType{Limits: BoundedLimits(def.Min(), hi)}
	}
	return MemType{Limits: NewLimits(def.Min())}
}

// GlobalTypeOf returns the type of an instantiated global.
func GlobalTypeOf(g api.Global) (GlobalType, error) {
	vt, err := ValueTypeFromAPI(g.Type())
	if err != nil {
		return GlobalType{}, errors.Within(err, GlobalTypeCodec.Name())
	}
	_, mutable := g.(api.MutableGlobal)
	return GlobalType{ValueType: vt, Mutable: mutable}, nil
}
