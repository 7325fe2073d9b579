// Package token defines the structural records produced while walking a
// value tree, and the Source/Sink abstractions the channels implement.
//
// A well-formed token sequence has the shape:
//
//	FormatVersion
//	ObjectHeader{schema version, type name}
//	  Property{name, scalar} | Property{name, recurse} + nested block
//	  ListHeader{name, n} + n × (ListItem{scalar} | ListItem{recurse} + nested block)
//	  ...
//	ObjectFooter
//
// where a nested block is a complete ObjectHeader...ObjectFooter sequence
// without a leading FormatVersion. Every ObjectHeader has exactly one
// matching ObjectFooter and nesting is strictly tree-shaped.
//
// # Related Packages
//
//   - github.com/relic-format/go-relic/walk - produces and consumes tokens
//   - github.com/relic-format/go-relic/wire - binary channel
//   - github.com/relic-format/go-relic/mem - in-memory channel
package token
