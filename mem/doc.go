// Package mem is the in-memory channel: it adapts a value's token sequence
// directly as a pull source, skipping byte encoding entirely. Cloning a
// value is a Capture followed by a Restore into a fresh instance; no
// intermediate buffer is allocated and the tree is never materialized as a
// whole.
package mem
