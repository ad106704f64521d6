// Package rewrite applies a compaction table to a schema, producing the
// code-keyed schema a serialization layer encodes and decodes against.
package rewrite
