// Package diagnostic provides structured errors and warnings collected while
// checking a schema before it is compacted.
//
// Key capabilities:
//   - Coded findings ("duplicate_field", "empty_tag", ...) with the type and
//     field they belong to
//   - Warnings for legal but suspicious shapes (empty enums)
//   - Conversion of all error findings into one error that still matches
//     the sentinel errors attached to each finding via errors.Is
package diagnostic
