package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

var (
	bondPrefix   = []byte{0x01}
	refundPrefix = []byte{0x02}
	marketPrefix = []byte{0x03}
)

// BondTransferDetails is attached to the GAS transfer pulling a challenge
// bond for the given report. GAS transfers carrying non-nil details are
// internal to the contract suite and must not be treated as plain reserve
// deposits by receiving contracts.
func BondTransferDetails(reportID int) []byte {
	return append(bondPrefix, convert.ToBytes(reportID)...)
}

// RefundTransferDetails is attached to the GAS transfer returning a
// challenge bond for the given report.
func RefundTransferDetails(reportID int) []byte {
	return append(refundPrefix, convert.ToBytes(reportID)...)
}

// MarketTransferDetails is attached to GAS transfers made by the token
// market on buy and sell operations.
func MarketTransferDetails() []byte {
	return marketPrefix
}

// AbortWithMessage calls `runtime.Log` with passed message
// and calls `ABORT` opcode.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}
