// Package walk turns self-describing values into token sequences and back.
//
// Types opt in by implementing Describer (a schema version plus an ordered
// part layout) and Loader (reconstruction from a pull-based Reader given the
// version that was stored). The engine performs a pre-order, depth-first
// traversal; each nesting level is staged lazily so a large tree is never
// materialized as tokens all at once.
//
// # Example: a versioned type
//
//	type Person struct {
//	    Name string
//	    Age  int64
//	}
//
//	func (p *Person) SchemaVersion() int { return 2 }
//
//	func (p *Person) Describe(f *walk.Formatter) []walk.Part {
//	    return []walk.Part{
//	        f.Format("Name", p.Name),
//	        f.Format("Age", p.Age),
//	    }
//	}
//
//	func (p *Person) Load(r *walk.Reader, storedVersion int) error {
//	    var err error
//	    if p.Name, err = walk.ReadScalar[string](r); err != nil {
//	        return err
//	    }
//	    if storedVersion < 2 {
//	        return nil // Age added in version 2
//	    }
//	    p.Age, err = walk.ReadScalar[int64](r)
//	    return err
//	}
//
// Load must consume parts in exactly the order Describe emits them. The
// engine delivers the stored version and the raw stored values; it does not
// detect a mis-ordered load (set RELIC_DEBUG_ORDER for an opt-in check on
// same-version loads).
//
// # Related Packages
//
//   - github.com/relic-format/go-relic/token - token model
//   - github.com/relic-format/go-relic/wire - byte-stream backend
//   - github.com/relic-format/go-relic/mem - in-memory backend
package walk
