package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// HasUpdateAccess returns true if the calling transaction carries the
// committee witness, the only authority allowed to update the EcoLedger
// contracts.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}
