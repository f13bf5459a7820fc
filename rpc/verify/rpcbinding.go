// Package verify contains RPC wrappers for EcoLedger Verify contract.
package verify

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// VerifyProductionMetrics is a contract-specific verify.ProductionMetrics type used by its methods.
type VerifyProductionMetrics struct {
	Quantity      *big.Int
	Energy        *big.Int
	Water         *big.Int
	Chemical      *big.Int
	Logistics     *big.Int
	Sequestration *big.Int
}

// VerifyReport is a contract-specific verify.Report type used by its methods.
type VerifyReport struct {
	ID             *big.Int
	Producer       util.Uint160
	Evidence       string
	Metrics        *VerifyProductionMetrics
	Emissions      *big.Int
	Threshold      *big.Int
	Status         *big.Int
	OriginalStatus *big.Int
	VotesFor       *big.Int
	VotesAgainst   *big.Int
	ChallengeEnd   *big.Int
	Challenger     util.Uint160
	Voters         []util.Uint160
}

// VerifyVote is a contract-specific verify.Vote type used by its methods.
type VerifyVote struct {
	Support bool
	Weight  *big.Int
}

// ReportSubmittedEvent represents "ReportSubmitted" event emitted by the contract.
type ReportSubmittedEvent struct {
	ReportID  *big.Int
	Producer  util.Uint160
	Emissions *big.Int
	Threshold *big.Int
}

// VoteCastEvent represents "VoteCast" event emitted by the contract.
type VoteCastEvent struct {
	ReportID *big.Int
	Judge    util.Uint160
	Support  bool
	Weight   *big.Int
}

// QuorumResolvedEvent represents "QuorumResolved" event emitted by the contract.
type QuorumResolvedEvent struct {
	ReportID     *big.Int
	Status       *big.Int
	ChallengeEnd *big.Int
}

// ChallengeRaisedEvent represents "ChallengeRaised" event emitted by the contract.
type ChallengeRaisedEvent struct {
	ReportID   *big.Int
	Challenger util.Uint160
	Bond       *big.Int
}

// ChallengeResolvedEvent represents "ChallengeResolved" event emitted by the contract.
type ChallengeResolvedEvent struct {
	ReportID        *big.Int
	Uphold          bool
	VerifiedCorrect bool
	SpotPrice       *big.Int
	RewardTokens    *big.Int
}

// ReportFinalizedEvent represents "ReportFinalized" event emitted by the contract.
type ReportFinalizedEvent struct {
	ReportID        *big.Int
	VerifiedCorrect bool
}

// JudgeRewardedEvent represents "JudgeRewarded" event emitted by the contract.
type JudgeRewardedEvent struct {
	ReportID   *big.Int
	Judge      util.Uint160
	Reputation *big.Int
	Tokens     *big.Int
}

// JudgeSlashedEvent represents "JudgeSlashed" event emitted by the contract.
type JudgeSlashedEvent struct {
	ReportID   *big.Int
	Judge      util.Uint160
	Reputation *big.Int
}

// ProducerRewardedEvent represents "ProducerRewarded" event emitted by the contract.
type ProducerRewardedEvent struct {
	ReportID *big.Int
	Producer util.Uint160
	Amount   *big.Int
}

// ProducerPenalizedEvent represents "ProducerPenalized" event emitted by the contract.
type ProducerPenalizedEvent struct {
	ReportID    *big.Int
	Producer    util.Uint160
	Burned      *big.Int
	DebtAccrued *big.Int
}

// DebtSettledEvent represents "DebtSettled" event emitted by the contract.
type DebtSettledEvent struct {
	Producer  util.Uint160
	Amount    *big.Int
	Remaining *big.Int
}

// ThresholdUpdatedEvent represents "ThresholdUpdated" event emitted by the contract.
type ThresholdUpdatedEvent struct {
	Previous *big.Int
	Current  *big.Int
}

// RoleGrantedEvent represents "RoleGranted" event emitted by the contract.
type RoleGrantedEvent struct {
	Account util.Uint160
	Role    *big.Int
}

// RoleRevokedEvent represents "RoleRevoked" event emitted by the contract.
type RoleRevokedEvent struct {
	Account util.Uint160
	Role    *big.Int
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	From   util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Config invokes `config` method of contract.
func (c *ContractReader) Config(key string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "config", key))
}

// DebtOf invokes `debtOf` method of contract.
func (c *ContractReader) DebtOf(producer util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "debtOf", producer))
}

// GetReport invokes `getReport` method of contract.
func (c *ContractReader) GetReport(reportID *big.Int) (*VerifyReport, error) {
	return itemToVerifyReport(unwrap.Item(c.invoker.Call(c.hash, "getReport", reportID)))
}

// GetVote invokes `getVote` method of contract.
func (c *ContractReader) GetVote(reportID *big.Int, judge util.Uint160) (*VerifyVote, error) {
	return itemToVerifyVote(unwrap.Item(c.invoker.Call(c.hash, "getVote", reportID, judge)))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(account util.Uint160, role *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", account, role))
}

// IterateReports invokes `iterateReports` method of contract.
func (c *ContractReader) IterateReports() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateReports"))
}

// IterateReportsExpanded is similar to IterateReports (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateReportsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateReports", _numOfIteratorItems))
}

// ReportCount invokes `reportCount` method of contract.
func (c *ContractReader) ReportCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reportCount"))
}

// ReputationOf invokes `reputationOf` method of contract.
func (c *ContractReader) ReputationOf(judge util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reputationOf", judge))
}

// Threshold invokes `threshold` method of contract.
func (c *ContractReader) Threshold() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "threshold"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CastVote creates a transaction invoking `castVote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CastVote(reportID *big.Int, judge util.Uint160, support bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "castVote", reportID, judge, support)
}

// CastVoteTransaction creates a transaction invoking `castVote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CastVoteTransaction(reportID *big.Int, judge util.Uint160, support bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "castVote", reportID, judge, support)
}

// CastVoteUnsigned creates a transaction invoking `castVote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CastVoteUnsigned(reportID *big.Int, judge util.Uint160, support bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "castVote", nil, reportID, judge, support)
}

// Finalize creates a transaction invoking `finalize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Finalize(reportID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "finalize", reportID)
}

// FinalizeTransaction creates a transaction invoking `finalize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FinalizeTransaction(reportID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "finalize", reportID)
}

// FinalizeUnsigned creates a transaction invoking `finalize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FinalizeUnsigned(reportID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "finalize", nil, reportID)
}

// GrantRole creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GrantRole(governor util.Uint160, account util.Uint160, role *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "grantRole", governor, account, role)
}

// GrantRoleTransaction creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GrantRoleTransaction(governor util.Uint160, account util.Uint160, role *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "grantRole", governor, account, role)
}

// GrantRoleUnsigned creates a transaction invoking `grantRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GrantRoleUnsigned(governor util.Uint160, account util.Uint160, role *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "grantRole", nil, governor, account, role)
}

// RaiseChallenge creates a transaction invoking `raiseChallenge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RaiseChallenge(reportID *big.Int, challenger util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "raiseChallenge", reportID, challenger)
}

// RaiseChallengeTransaction creates a transaction invoking `raiseChallenge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RaiseChallengeTransaction(reportID *big.Int, challenger util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "raiseChallenge", reportID, challenger)
}

// RaiseChallengeUnsigned creates a transaction invoking `raiseChallenge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RaiseChallengeUnsigned(reportID *big.Int, challenger util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "raiseChallenge", nil, reportID, challenger)
}

// ResolveChallenge creates a transaction invoking `resolveChallenge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveChallenge(governor util.Uint160, reportID *big.Int, uphold bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveChallenge", governor, reportID, uphold)
}

// ResolveChallengeTransaction creates a transaction invoking `resolveChallenge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveChallengeTransaction(governor util.Uint160, reportID *big.Int, uphold bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveChallenge", governor, reportID, uphold)
}

// ResolveChallengeUnsigned creates a transaction invoking `resolveChallenge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveChallengeUnsigned(governor util.Uint160, reportID *big.Int, uphold bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveChallenge", nil, governor, reportID, uphold)
}

// ResolveQuorum creates a transaction invoking `resolveQuorum` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveQuorum(reportID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveQuorum", reportID)
}

// ResolveQuorumTransaction creates a transaction invoking `resolveQuorum` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveQuorumTransaction(reportID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveQuorum", reportID)
}

// ResolveQuorumUnsigned creates a transaction invoking `resolveQuorum` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveQuorumUnsigned(reportID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveQuorum", nil, reportID)
}

// RevokeRole creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeRole(governor util.Uint160, account util.Uint160, role *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeRole", governor, account, role)
}

// RevokeRoleTransaction creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeRoleTransaction(governor util.Uint160, account util.Uint160, role *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeRole", governor, account, role)
}

// RevokeRoleUnsigned creates a transaction invoking `revokeRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeRoleUnsigned(governor util.Uint160, account util.Uint160, role *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeRole", nil, governor, account, role)
}

// SetConfig creates a transaction invoking `setConfig` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetConfig(governor util.Uint160, key string, val *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setConfig", governor, key, val)
}

// SetConfigTransaction creates a transaction invoking `setConfig` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetConfigTransaction(governor util.Uint160, key string, val *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setConfig", governor, key, val)
}

// SetConfigUnsigned creates a transaction invoking `setConfig` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetConfigUnsigned(governor util.Uint160, key string, val *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setConfig", nil, governor, key, val)
}

// SettleDebt creates a transaction invoking `settleDebt` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SettleDebt(producer util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "settleDebt", producer, amount)
}

// SettleDebtTransaction creates a transaction invoking `settleDebt` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SettleDebtTransaction(producer util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "settleDebt", producer, amount)
}

// SettleDebtUnsigned creates a transaction invoking `settleDebt` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SettleDebtUnsigned(producer util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "settleDebt", nil, producer, amount)
}

// SubmitReport creates a transaction invoking `submitReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitReport(producer util.Uint160, evidence string, quantity *big.Int, energy *big.Int, water *big.Int, chemical *big.Int, logistics *big.Int, sequestration *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitReport", producer, evidence, quantity, energy, water, chemical, logistics, sequestration)
}

// SubmitReportTransaction creates a transaction invoking `submitReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitReportTransaction(producer util.Uint160, evidence string, quantity *big.Int, energy *big.Int, water *big.Int, chemical *big.Int, logistics *big.Int, sequestration *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitReport", producer, evidence, quantity, energy, water, chemical, logistics, sequestration)
}

// SubmitReportUnsigned creates a transaction invoking `submitReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitReportUnsigned(producer util.Uint160, evidence string, quantity *big.Int, energy *big.Int, water *big.Int, chemical *big.Int, logistics *big.Int, sequestration *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitReport", nil, producer, evidence, quantity, energy, water, chemical, logistics, sequestration)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	if _, ok := item.(stackitem.Null); ok {
		// unset Hash160 fields (e.g. Challenger of an unchallenged
		// report) are stored as Null
		return util.Uint160{}, nil
	}
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

// itemToVerifyProductionMetrics converts stack item into *VerifyProductionMetrics.
func itemToVerifyProductionMetrics(item stackitem.Item, err error) (*VerifyProductionMetrics, error) {
	if err != nil {
		return nil, err
	}
	var res = new(VerifyProductionMetrics)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of VerifyProductionMetrics from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *VerifyProductionMetrics) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Quantity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	index++
	res.Energy, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Energy: %w", err)
	}

	index++
	res.Water, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Water: %w", err)
	}

	index++
	res.Chemical, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Chemical: %w", err)
	}

	index++
	res.Logistics, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Logistics: %w", err)
	}

	index++
	res.Sequestration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Sequestration: %w", err)
	}

	return nil
}

// itemToVerifyReport converts stack item into *VerifyReport.
func itemToVerifyReport(item stackitem.Item, err error) (*VerifyReport, error) {
	if err != nil {
		return nil, err
	}
	var res = new(VerifyReport)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of VerifyReport from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *VerifyReport) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 13 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Producer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Producer: %w", err)
	}

	index++
	res.Evidence, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Evidence: %w", err)
	}

	index++
	res.Metrics, err = itemToVerifyProductionMetrics(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Metrics: %w", err)
	}

	index++
	res.Emissions, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Emissions: %w", err)
	}

	index++
	res.Threshold, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Threshold: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.OriginalStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OriginalStatus: %w", err)
	}

	index++
	res.VotesFor, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VotesFor: %w", err)
	}

	index++
	res.VotesAgainst, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VotesAgainst: %w", err)
	}

	index++
	res.ChallengeEnd, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ChallengeEnd: %w", err)
	}

	index++
	res.Challenger, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Challenger: %w", err)
	}

	index++
	res.Voters, err = func(item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = itemToUint160(arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Voters: %w", err)
	}

	return nil
}

// itemToVerifyVote converts stack item into *VerifyVote.
func itemToVerifyVote(item stackitem.Item, err error) (*VerifyVote, error) {
	if err != nil {
		return nil, err
	}
	var res = new(VerifyVote)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of VerifyVote from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *VerifyVote) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Support, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Support: %w", err)
	}

	index++
	res.Weight, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Weight: %w", err)
	}

	return nil
}

// ReportSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportSubmitted" name from the provided [result.ApplicationLog].
func ReportSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportSubmitted" {
				continue
			}
			event := new(ReportSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Producer, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Producer: %w", err)
	}

	index++
	e.Emissions, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Emissions: %w", err)
	}

	index++
	e.Threshold, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Threshold: %w", err)
	}

	return nil
}

// VoteCastEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteCast" name from the provided [result.ApplicationLog].
func VoteCastEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteCastEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteCastEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteCast" {
				continue
			}
			event := new(VoteCastEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteCastEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteCastEvent or
// returns an error if it's not possible to do to so.
func (e *VoteCastEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Judge, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Judge: %w", err)
	}

	index++
	e.Support, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Support: %w", err)
	}

	index++
	e.Weight, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Weight: %w", err)
	}

	return nil
}

// QuorumResolvedEventsFromApplicationLog retrieves a set of all emitted events
// with "QuorumResolved" name from the provided [result.ApplicationLog].
func QuorumResolvedEventsFromApplicationLog(log *result.ApplicationLog) ([]*QuorumResolvedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*QuorumResolvedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "QuorumResolved" {
				continue
			}
			event := new(QuorumResolvedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize QuorumResolvedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to QuorumResolvedEvent or
// returns an error if it's not possible to do to so.
func (e *QuorumResolvedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	e.ChallengeEnd, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ChallengeEnd: %w", err)
	}

	return nil
}

// ChallengeRaisedEventsFromApplicationLog retrieves a set of all emitted events
// with "ChallengeRaised" name from the provided [result.ApplicationLog].
func ChallengeRaisedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ChallengeRaisedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ChallengeRaisedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ChallengeRaised" {
				continue
			}
			event := new(ChallengeRaisedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ChallengeRaisedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ChallengeRaisedEvent or
// returns an error if it's not possible to do to so.
func (e *ChallengeRaisedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Challenger, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Challenger: %w", err)
	}

	index++
	e.Bond, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bond: %w", err)
	}

	return nil
}

// ChallengeResolvedEventsFromApplicationLog retrieves a set of all emitted events
// with "ChallengeResolved" name from the provided [result.ApplicationLog].
func ChallengeResolvedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ChallengeResolvedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ChallengeResolvedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ChallengeResolved" {
				continue
			}
			event := new(ChallengeResolvedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ChallengeResolvedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ChallengeResolvedEvent or
// returns an error if it's not possible to do to so.
func (e *ChallengeResolvedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Uphold, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Uphold: %w", err)
	}

	index++
	e.VerifiedCorrect, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field VerifiedCorrect: %w", err)
	}

	index++
	e.SpotPrice, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SpotPrice: %w", err)
	}

	index++
	e.RewardTokens, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardTokens: %w", err)
	}

	return nil
}

// ReportFinalizedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportFinalized" name from the provided [result.ApplicationLog].
func ReportFinalizedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportFinalizedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportFinalizedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportFinalized" {
				continue
			}
			event := new(ReportFinalizedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportFinalizedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportFinalizedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportFinalizedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.VerifiedCorrect, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field VerifiedCorrect: %w", err)
	}

	return nil
}

// JudgeRewardedEventsFromApplicationLog retrieves a set of all emitted events
// with "JudgeRewarded" name from the provided [result.ApplicationLog].
func JudgeRewardedEventsFromApplicationLog(log *result.ApplicationLog) ([]*JudgeRewardedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*JudgeRewardedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "JudgeRewarded" {
				continue
			}
			event := new(JudgeRewardedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize JudgeRewardedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to JudgeRewardedEvent or
// returns an error if it's not possible to do to so.
func (e *JudgeRewardedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Judge, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Judge: %w", err)
	}

	index++
	e.Reputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reputation: %w", err)
	}

	index++
	e.Tokens, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Tokens: %w", err)
	}

	return nil
}

// JudgeSlashedEventsFromApplicationLog retrieves a set of all emitted events
// with "JudgeSlashed" name from the provided [result.ApplicationLog].
func JudgeSlashedEventsFromApplicationLog(log *result.ApplicationLog) ([]*JudgeSlashedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*JudgeSlashedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "JudgeSlashed" {
				continue
			}
			event := new(JudgeSlashedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize JudgeSlashedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to JudgeSlashedEvent or
// returns an error if it's not possible to do to so.
func (e *JudgeSlashedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Judge, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Judge: %w", err)
	}

	index++
	e.Reputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reputation: %w", err)
	}

	return nil
}

// ProducerRewardedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProducerRewarded" name from the provided [result.ApplicationLog].
func ProducerRewardedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProducerRewardedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProducerRewardedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProducerRewarded" {
				continue
			}
			event := new(ProducerRewardedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProducerRewardedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProducerRewardedEvent or
// returns an error if it's not possible to do to so.
func (e *ProducerRewardedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Producer, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Producer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ProducerPenalizedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProducerPenalized" name from the provided [result.ApplicationLog].
func ProducerPenalizedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProducerPenalizedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProducerPenalizedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProducerPenalized" {
				continue
			}
			event := new(ProducerPenalizedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProducerPenalizedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProducerPenalizedEvent or
// returns an error if it's not possible to do to so.
func (e *ProducerPenalizedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Producer, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Producer: %w", err)
	}

	index++
	e.Burned, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Burned: %w", err)
	}

	index++
	e.DebtAccrued, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DebtAccrued: %w", err)
	}

	return nil
}

// DebtSettledEventsFromApplicationLog retrieves a set of all emitted events
// with "DebtSettled" name from the provided [result.ApplicationLog].
func DebtSettledEventsFromApplicationLog(log *result.ApplicationLog) ([]*DebtSettledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DebtSettledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DebtSettled" {
				continue
			}
			event := new(DebtSettledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DebtSettledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DebtSettledEvent or
// returns an error if it's not possible to do to so.
func (e *DebtSettledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Producer, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Producer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Remaining, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Remaining: %w", err)
	}

	return nil
}

// ThresholdUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ThresholdUpdated" name from the provided [result.ApplicationLog].
func ThresholdUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ThresholdUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ThresholdUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ThresholdUpdated" {
				continue
			}
			event := new(ThresholdUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ThresholdUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ThresholdUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ThresholdUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Previous, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Previous: %w", err)
	}

	index++
	e.Current, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Current: %w", err)
	}

	return nil
}

// RoleGrantedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleGranted" name from the provided [result.ApplicationLog].
func RoleGrantedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleGrantedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleGrantedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleGranted" {
				continue
			}
			event := new(RoleGrantedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleGrantedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleGrantedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleGrantedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Account, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Role, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	return nil
}

// RoleRevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleRevoked" name from the provided [result.ApplicationLog].
func RoleRevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleRevokedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleRevokedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleRevoked" {
				continue
			}
			event := new(RoleRevokedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleRevokedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleRevokedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleRevokedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Account, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Role, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.From, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
