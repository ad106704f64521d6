// Package wire is the serialization layer that consumes a compaction table.
//
// Values are handled in their logical form as generic trees, the shape
// encoding/json produces when decoding into an any:
//
//   - a struct is a map[string]any keyed by field name
//   - an enum value is externally tagged, {"Tag": {fields}}; a variant
//     without fields may also be the bare tag string
//   - list fields are []any, map fields are map[string]any
//
// Translator rewrites such trees to their code-keyed wire form and back.
// Encoder wraps a Translator and a Codec (JSON, MessagePack, optionally zstd
// compressed) to turn Go values into compact payloads and back.
package wire
