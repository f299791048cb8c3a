package distaff

// Package distaff provides:
//
// - Schema-driven validation and coercion of dynamic data (ToNative/ToSerializable)
// - A shape-preserving error model via ErrorTree (per-field nested errors, JSON-ready)
// - An open type-plugin registry resolved by string tag (dict/list/scalars/any)
// - Schema self-validation against per-type meta-schemas at compile time
//
// Design policy:
// - Keep only public APIs in the root package; built-in types live under dtype/.
// - Place localized messages under i18n/ and the CLI under cmd/distaff.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := dtype.NewRegistry()
//	schema := reg.MustCompile(map[string]any{
//		"type": "dict",
//		"items": map[string]any{
//			"id":   map[string]any{"type": "integer", "required": true},
//			"name": map[string]any{"type": "string"},
//		},
//	})
//	value, errs := schema.ToNative(data)
//	if !errs.Empty() { ... }
//
// Schemas are immutable after Compile and safe for concurrent reuse; every
// processing pass owns its ErrorTree exclusively.
