package tokenconst

const (
	// DefaultBasePrice is the bonding curve price of the first token,
	// in GAS minimal units, used unless overridden on deploy.
	DefaultBasePrice = 1000
	// DefaultSlope is the bonding curve price increase per token of
	// supply, in GAS minimal units, used unless overridden on deploy.
	DefaultSlope = 1

	// ErrRestricted is returned on mint/burn attempts bypassing the
	// verification contract.
	ErrRestricted = "mint and burn are restricted to the verification contract"
	// ErrNonPositiveAmount is returned on operations with zero or
	// negative token amounts.
	ErrNonPositiveAmount = "amount must be positive"
	// ErrInsufficientBalance is returned when an account holds fewer
	// tokens than an operation needs.
	ErrInsufficientBalance = "insufficient token balance"
	// ErrInsufficientReserve is returned when the market cannot cover a
	// sell payout from its GAS reserve.
	ErrInsufficientReserve = "insufficient market reserve"
	// ErrCostTransfer is returned when the purchase cost cannot be
	// pulled from the buyer.
	ErrCostTransfer = "failed to pull purchase cost"
	// ErrPayoutTransfer is returned when the sell payout transfer fails.
	ErrPayoutTransfer = "failed to transfer sell payout"
	// ErrSupplyExceeded is returned on burn quotes bigger than the
	// current total supply.
	ErrSupplyExceeded = "amount exceeds total supply"
	// ErrReentrancy is returned on re-entrant market calls.
	ErrReentrancy = "market operation already in progress"
)
