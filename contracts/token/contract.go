package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/ecoledger-dev/ecoverify-contract/common"
	"github.com/ecoledger-dev/ecoverify-contract/contracts/token/tokenconst"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}
)

const (
	symbol      = "ECO"
	decimals    = 0
	circulation = "TokenSupply"

	accPrefix = 'a'

	verifyContractKey = 'v'
	basePriceKey      = 'b'
	slopeKey          = 's'
	marketGuardKey    = 'g'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	basePrice := tokenconst.DefaultBasePrice
	slope := tokenconst.DefaultSlope

	if data != nil {
		args := data.([]any)
		if len(args) >= 1 && args[0].(int) > 0 {
			basePrice = args[0].(int)
		}
		if len(args) >= 2 && args[1].(int) >= 0 {
			slope = args[1].(int)
		}
	}

	storage.Put(ctx, basePriceKey, basePrice)
	storage.Put(ctx, slopeKey, slope)

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// SetVerifyContract stores the script hash of the verification contract that
// is allowed to mint and burn tokens. It can be invoked only by committee.
func SetVerifyContract(addr interop.Hash160) {
	if !common.HasUpdateAccess() {
		panic("only committee can set the verification contract")
	}
	if len(addr) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(storage.GetContext(), verifyContractKey, addr)
}

// VerifyContract returns the script hash of the verification contract.
func VerifyContract() interop.Hash160 {
	addr := storage.Get(storage.GetReadOnlyContext(), verifyContractKey)
	if addr == nil {
		panic("verification contract is not set")
	}

	return addr.(interop.Hash160)
}

// Symbol is a NEP-17 standard method that returns the eco token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of eco token
// balances. Eco tokens are integral.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of eco
// tokens in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the eco token balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers eco tokens from one
// account to another. It can be invoked only by the account owner.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount)
}

// Mint credits eco tokens to the specified account and increases total
// supply. It can be invoked only by the verification contract, which uses it
// to pay producer and judge rewards.
//
// It produces Transfer notification with empty sender.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	checkVerifyWitness(ctx)

	if amount <= 0 {
		panic(tokenconst.ErrNonPositiveAmount)
	}

	mint(ctx, to, amount)
	runtime.Log("reward tokens minted")
}

// Burn debits eco tokens from the specified account and decreases total
// supply. It can be invoked only by the verification contract, which uses it
// to apply fines, penalties and debt settlement.
//
// It produces Transfer notification with empty receiver.
func Burn(from interop.Hash160, amount int) {
	ctx := storage.GetContext()

	checkVerifyWitness(ctx)

	if amount <= 0 {
		panic(tokenconst.ErrNonPositiveAmount)
	}

	burn(ctx, from, amount)
	runtime.Log("tokens burned")
}

// Price returns the bonding curve price of the next minted token at the
// current total supply, in GAS minimal units.
func Price() int {
	ctx := storage.GetReadOnlyContext()
	return curvePrice(ctx, token.getSupply(ctx))
}

// MintCost returns the exact GAS cost of minting the given token amount at
// the current supply. The cost is the trapezoidal integral of the curve
// between the current and the target supply: amount*(price(s)+price(s+amount))/2.
func MintCost(amount int) int {
	if amount <= 0 {
		panic(tokenconst.ErrNonPositiveAmount)
	}

	ctx := storage.GetReadOnlyContext()
	return mintCost(ctx, token.getSupply(ctx), amount)
}

// BurnPayout returns the exact GAS payout for burning the given token amount
// at the current supply. It is symmetric to MintCost: burning an amount just
// minted yields exactly what was paid when supply did not change in between.
func BurnPayout(amount int) int {
	if amount <= 0 {
		panic(tokenconst.ErrNonPositiveAmount)
	}

	ctx := storage.GetReadOnlyContext()
	return burnPayout(ctx, token.getSupply(ctx), amount)
}

// Reserve returns the GAS amount custodied by the market.
func Reserve() int {
	return gas.BalanceOf(runtime.GetExecutingScriptHash())
}

// BuyTokens mints the requested eco token amount to the buyer after pulling
// the exact bonding curve cost in GAS from the buyer's account. It can be
// invoked only by the buyer. The cost is pulled precisely, so there is never
// an excess to refund.
//
// It produces TokensPurchased and Transfer notifications.
func BuyTokens(buyer interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(buyer)

	if amount <= 0 {
		panic(tokenconst.ErrNonPositiveAmount)
	}

	takeMarketGuard(ctx)

	cost := mintCost(ctx, token.getSupply(ctx), amount)
	if !gas.Transfer(buyer, runtime.GetExecutingScriptHash(), cost, common.MarketTransferDetails()) {
		panic(tokenconst.ErrCostTransfer)
	}

	mint(ctx, buyer, amount)

	releaseMarketGuard(ctx)
	runtime.Notify("TokensPurchased", buyer, amount, cost)
}

// SellTokens burns the requested eco token amount from the seller and pays
// out the bonding curve value in GAS. It can be invoked only by the seller.
// The operation fails without burning anything if the market reserve cannot
// cover the payout.
//
// It produces TokensSold and Transfer notifications.
func SellTokens(seller interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(seller)

	if amount <= 0 {
		panic(tokenconst.ErrNonPositiveAmount)
	}

	takeMarketGuard(ctx)

	payout := burnPayout(ctx, token.getSupply(ctx), amount)

	self := runtime.GetExecutingScriptHash()
	if gas.BalanceOf(self) < payout {
		panic(tokenconst.ErrInsufficientReserve)
	}

	// internal accounting must be settled before value leaves the contract
	burn(ctx, seller, amount)

	if !gas.Transfer(self, seller, payout, common.MarketTransferDetails()) {
		panic(tokenconst.ErrPayoutTransfer)
	}

	releaseMarketGuard(ctx)
	runtime.Notify("TokensSold", seller, amount, payout)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Plain GAS transfers (without details) are accepted as market reserve
// top-ups and produce Deposit notification. Transfers carrying details are
// internal market movements and are accepted silently.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("only GAS can be accepted into the reserve")
	}

	if data != nil {
		return
	}

	runtime.Notify("Deposit", from, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// curvePrice evaluates the linear bonding curve at the given supply.
func curvePrice(ctx storage.Context, supply int) int {
	base := storage.Get(ctx, basePriceKey).(int)
	slope := storage.Get(ctx, slopeKey).(int)

	return base + supply*slope
}

func mintCost(ctx storage.Context, supply, amount int) int {
	p1 := curvePrice(ctx, supply)
	p2 := curvePrice(ctx, supply+amount)

	return amount * (p1 + p2) / 2
}

func burnPayout(ctx storage.Context, supply, amount int) int {
	if amount > supply {
		panic(tokenconst.ErrSupplyExceeded)
	}

	p1 := curvePrice(ctx, supply-amount)
	p2 := curvePrice(ctx, supply)

	return amount * (p1 + p2) / 2
}

func mint(ctx storage.Context, to interop.Hash160, amount int) {
	setBalance(ctx, to, token.balanceOf(ctx, to)+amount)

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply+amount)

	runtime.Notify("Transfer", nil, to, amount)
}

func burn(ctx storage.Context, from interop.Hash160, amount int) {
	balance := token.balanceOf(ctx, from)
	if balance < amount {
		panic(tokenconst.ErrInsufficientBalance)
	}

	setBalance(ctx, from, balance-amount)

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}
	storage.Put(ctx, token.CirculationKey, supply-amount)

	runtime.Notify("Transfer", from, nil, amount)
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	return common.GetIntOrZero(ctx, t.CirculationKey)
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return common.GetIntOrZero(ctx, append([]byte{accPrefix}, holder...))
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	if amount < 0 {
		panic("negative amount")
	}

	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		runtime.Log("bad script hashes")
		return false
	}

	if !isUsableAddress(from) {
		runtime.Log("sender is not authorized")
		return false
	}

	balance := t.balanceOf(ctx, from)
	if balance < amount {
		runtime.Log("not enough tokens")
		return false
	}

	setBalance(ctx, from, balance-amount)
	setBalance(ctx, to, t.balanceOf(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)

	return true
}

func setBalance(ctx storage.Context, holder interop.Hash160, balance int) {
	key := append([]byte{accPrefix}, holder...)
	if balance == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance)
	}
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

func checkVerifyWitness(ctx storage.Context) {
	verifyH := storage.Get(ctx, verifyContractKey)
	if verifyH == nil || !runtime.GetCallingScriptHash().Equals(verifyH.(interop.Hash160)) {
		panic(tokenconst.ErrRestricted)
	}
}

func takeMarketGuard(ctx storage.Context) {
	if storage.Get(ctx, marketGuardKey) != nil {
		panic(tokenconst.ErrReentrancy)
	}
	storage.Put(ctx, marketGuardKey, 1)
}

func releaseMarketGuard(ctx storage.Context) {
	storage.Delete(ctx, marketGuardKey)
}
