package walk

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/relic-format/go-relic/token"
)

// The describe/load order pairing is enforced by convention. With
// RELIC_DEBUG_ORDER set, loads of a stream written at the target's own
// schema version additionally assert that the part names consumed match the
// names Describe declares, in order. Version-skewed loads are exempt: their
// whole point is reading a layout that differs from the current one.
var debugOrder = boolEnv("RELIC_DEBUG_ORDER")

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func checkOrder(target Loader, storedVersion int, consumed []string) error {
	if storedVersion != target.SchemaVersion() {
		return nil
	}
	parts := target.Describe(NewFormatter())
	for i, name := range consumed {
		if i >= len(parts) {
			return errors.Wrapf(token.ErrMalformedStream,
				"order check: %s load consumed %d parts, describe declares %d",
				TypeName(target), len(consumed), len(parts))
		}
		if parts[i].Name != name {
			return errors.Wrapf(token.ErrMalformedStream,
				"order check: %s load read %q at position %d, describe declares %q",
				TypeName(target), name, i, parts[i].Name)
		}
	}
	return nil
}
