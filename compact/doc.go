// Package compact assigns short deterministic codes to the wire names of a
// schema.
//
// Every variant tag and field name reachable from a schema is collected into
// one global set, sorted byte-wise and paired with the codes a, b, ..., z,
// aa, ab, ... in order. The result is an immutable Table used to replace
// names with codes when encoding and codes with names when decoding.
//
// Properties:
//   - one code per distinct name, shared by every struct and variant that
//     declares it
//   - no two names share a code
//   - the same set of names always yields the same table, whatever the
//     declaration order
//   - no name is skipped
//
// Tables are safe for concurrent use. Cache memoizes tables per schema and
// builds each one at most once. Tables can be pinned in a YAML lock file and
// checked against the schema later with Verify.
package compact
