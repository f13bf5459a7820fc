package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// newExecutor creates a single-node chain with the committee account acting
// as both validator and committee, matching the governance setup the
// EcoLedger contracts are deployed with.
func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// iteratorToArray drains a storage iterator returned by a view method (e.g.
// iterateReports) into a slice of stack items.
func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	items := make([]stackitem.Item, 0)
	for iter.Next() {
		items = append(items, iter.Value())
	}
	return items
}
