// Package relic is a version-tolerant object-graph codec: a typed value
// tree describes itself once and can be written to a byte stream, read back
// by a newer or older revision of its own schema, deep-cloned, snapshotted
// as a restorable memento, and rendered as a deterministic text tree, all
// through one shared traversal protocol.
//
// Types participate by implementing walk.Describer and walk.Loader; each
// type carries its own schema version and tolerates version skew locally,
// with no central schema registry. See the walk package for the contract.
//
// # Operations
//
//	relic.Persist(w, v)            // write token stream to bytes
//	v, err := relic.Restore[*T](r) // read it back
//	b, err := relic.ToBytes(v)     // buffer-valued variants
//	v, err := relic.FromBytes[*T](b)
//	c, err := relic.Clone(v)       // deep copy, no byte medium
//	m, err := relic.Snapshot(v)    // reusable memento
//	m.Reset(); m.Restore(target)
//	relic.Render(v)                // indented text tree
//
// Everything is single-threaded and synchronous; an instance of any codec
// object (writer, reader, memento, snapshot) belongs to one operation at a
// time.
package relic
