package verify

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/ecoledger-dev/ecoverify-contract/common"
	cst "github.com/ecoledger-dev/ecoverify-contract/contracts/verify/verifyconst"
)

type (
	// ProductionMetrics are the raw figures a producer reports for one
	// production batch. All values are non-negative integers in
	// caller-chosen units; Quantity must be positive.
	ProductionMetrics struct {
		Quantity      int
		Energy        int
		Water         int
		Chemical      int
		Logistics     int
		Sequestration int
	}

	// Report is a single emissions report together with its full
	// lifecycle state. Threshold is the global threshold snapshotted at
	// submission time; later global changes never affect it.
	Report struct {
		ID             int
		Producer       interop.Hash160
		Evidence       string
		Metrics        ProductionMetrics
		Emissions      int
		Threshold      int
		Status         int
		OriginalStatus int
		VotesFor       int
		VotesAgainst   int
		ChallengeEnd   int
		Challenger     interop.Hash160
		Voters         []interop.Hash160
	}

	// Vote is a single judge ballot recorded for a report.
	Vote struct {
		Support bool
		Weight  int
	}
)

const (
	reportPrefix     = 'r'
	votePrefix       = 'v'
	reputationPrefix = 'u'
	debtPrefix       = 'd'
	rolePrefix       = 'R'

	reportCountKey   = "reportID"
	thresholdKey     = "threshold"
	tokenContractKey = "tokenScriptHash"
	guardKey         = "guard"
)

var (
	configPrefix = []byte("config")
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	addrToken := args[0].(interop.Hash160)
	if len(addrToken) != interop.Hash160Len {
		panic("incorrect length of token contract script hash")
	}

	governor := args[1].(interop.Hash160)
	if len(governor) != interop.Hash160Len {
		panic("incorrect length of governance account script hash")
	}

	threshold := cst.DefaultThreshold
	if len(args) >= 3 && args[2].(int) > 0 {
		threshold = args[2].(int)
	}

	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, thresholdKey, threshold)
	storage.Put(ctx, roleKey(governor, cst.RoleGovernance), 1)

	if len(args) >= 4 && args[3] != nil {
		pairs := args[3].([][]byte)
		if len(pairs)%2 != 0 {
			panic("bad configuration")
		}

		for i := 0; i < len(pairs)/2; i++ {
			key := pairs[i*2]
			val := pairs[i*2+1]

			setConfig(ctx, key, val)
		}
	}

	runtime.Log("verification contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("verification contract updated")
}

// GrantRole adds the account to the given role. Judges additionally get the
// onboarding reputation unless they already have a reputation record. It can
// be invoked only by a governance account.
//
// It produces RoleGranted notification.
func GrantRole(governor, account interop.Hash160, role int) {
	ctx := storage.GetContext()

	checkGovernance(ctx, governor)
	checkRoleValue(role)

	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}

	storage.Put(ctx, roleKey(account, role), 1)

	if role == cst.RoleJudge && storage.Get(ctx, reputationKey(account)) == nil {
		storage.Put(ctx, reputationKey(account), cfg(ctx, cst.InitialReputationKey))
	}

	runtime.Notify("RoleGranted", account, role)
}

// RevokeRole removes the account from the given role. Reputation and debt
// records are kept for audit. It can be invoked only by a governance account.
//
// It produces RoleRevoked notification.
func RevokeRole(governor, account interop.Hash160, role int) {
	ctx := storage.GetContext()

	checkGovernance(ctx, governor)
	checkRoleValue(role)

	storage.Delete(ctx, roleKey(account, role))
	runtime.Notify("RoleRevoked", account, role)
}

// HasRole returns true if the account belongs to the given role.
func HasRole(account interop.Hash160, role int) bool {
	checkRoleValue(role)
	return storage.Get(storage.GetReadOnlyContext(), roleKey(account, role)) != nil
}

// SubmitReport stores a new Pending emissions report for the producer and
// returns its identifier. The per-unit emissions figure is computed from the
// metrics once, and the current global threshold is snapshotted into the
// report. A producer with outstanding carbon debt cannot submit. It can be
// invoked only by an account with the Producer role.
//
// It produces ReportSubmitted notification.
func SubmitReport(producer interop.Hash160, evidence string,
	quantity, energy, water, chemical, logistics, sequestration int) int {
	ctx := storage.GetContext()

	requireRole(ctx, producer, cst.RoleProducer)
	common.CheckOwnerWitness(producer)

	if common.GetIntOrZero(ctx, debtKey(producer)) > 0 {
		panic(cst.ErrDebtOutstanding)
	}

	metrics := ProductionMetrics{
		Quantity:      quantity,
		Energy:        energy,
		Water:         water,
		Chemical:      chemical,
		Logistics:     logistics,
		Sequestration: sequestration,
	}
	emissions := perUnitEmissions(metrics)

	id := common.GetIntOrZero(ctx, reportCountKey) + 1
	storage.Put(ctx, reportCountKey, id)

	r := Report{
		ID:        id,
		Producer:  producer,
		Evidence:  evidence,
		Metrics:   metrics,
		Emissions: emissions,
		Threshold: storage.Get(ctx, thresholdKey).(int),
		Status:    cst.StatusPending,
		Voters:    []interop.Hash160{},
	}
	putReport(ctx, r)

	runtime.Notify("ReportSubmitted", id, producer, emissions, r.Threshold)

	return id
}

// CastVote records a reputation-weighted ballot of the judge on a Pending
// report. The vote weight equals the judge's current reputation; a judge
// with zero reputation cannot vote. Each judge votes at most once per
// report and the voter list is bounded. It can be invoked only by an
// account with the Judge role.
//
// It produces VoteCast notification.
func CastVote(reportID int, judge interop.Hash160, support bool) {
	ctx := storage.GetContext()

	requireRole(ctx, judge, cst.RoleJudge)
	common.CheckOwnerWitness(judge)

	r := getReport(ctx, reportID)
	if r.Status != cst.StatusPending {
		panic(cst.ErrNotPending)
	}

	if storage.Get(ctx, voteKey(reportID, judge)) != nil {
		panic(cst.ErrAlreadyVoted)
	}

	weight := common.GetIntOrZero(ctx, reputationKey(judge))
	if weight <= 0 {
		panic(cst.ErrNoReputation)
	}

	if len(r.Voters) >= cfg(ctx, cst.MaxVotersKey) {
		panic(cst.ErrVoterLimit)
	}

	if support {
		r.VotesFor += weight
	} else {
		r.VotesAgainst += weight
	}
	r.Voters = append(r.Voters, judge)
	putReport(ctx, r)

	common.SetSerialized(ctx, voteKey(reportID, judge), Vote{
		Support: support,
		Weight:  weight,
	})

	runtime.Notify("VoteCast", reportID, judge, support, weight)
}

// ResolveQuorum closes voting on a Pending report once the combined vote
// weight has reached the quorum, sets the provisional verdict (ties are
// rejected) and opens the challenge window. It can be invoked by anyone.
//
// It produces QuorumResolved notification.
func ResolveQuorum(reportID int) {
	ctx := storage.GetContext()

	r := getReport(ctx, reportID)
	if r.Status != cst.StatusPending {
		panic(cst.ErrNotPending)
	}

	if r.VotesFor+r.VotesAgainst < cfg(ctx, cst.QuorumKey) {
		panic(cst.ErrQuorumNotReached)
	}

	if r.VotesFor > r.VotesAgainst {
		r.Status = cst.StatusVerified
	} else {
		r.Status = cst.StatusRejected
	}
	r.OriginalStatus = r.Status
	r.ChallengeEnd = runtime.GetTime() + cfg(ctx, cst.ChallengeWindowKey)
	putReport(ctx, r)

	runtime.Notify("QuorumResolved", reportID, r.Status, r.ChallengeEnd)
}

// RaiseChallenge disputes a provisional verdict within the challenge window.
// The challenge bond is pulled in GAS from the challenger to the contract
// account; the report moves to Challenged and awaits arbitration. Only one
// challenge can ever be raised per report. It can be invoked only by the
// challenger.
//
// It produces ChallengeRaised notification.
func RaiseChallenge(reportID int, challenger interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(challenger)

	r := getReport(ctx, reportID)
	if r.Status != cst.StatusVerified && r.Status != cst.StatusRejected {
		panic(cst.ErrInvalidState)
	}

	if runtime.GetTime() >= r.ChallengeEnd {
		panic(cst.ErrWindowClosed)
	}

	takeGuard(ctx)

	bond := cfg(ctx, cst.ChallengeBondKey)
	if !gas.Transfer(challenger, runtime.GetExecutingScriptHash(), bond,
		common.BondTransferDetails(reportID)) {
		panic(cst.ErrBondTransfer)
	}

	r.OriginalStatus = r.Status
	r.Status = cst.StatusChallenged
	r.Challenger = challenger
	putReport(ctx, r)

	releaseGuard(ctx)
	runtime.Notify("ChallengeRaised", reportID, challenger, bond)
}

// ResolveChallenge arbitrates a Challenged report and finalizes it. If the
// original verdict is upheld, the challenger's bond is forfeited to the
// contract account. If it is overturned, the bond is refunded and the
// challenger is additionally rewarded with tokens worth the bond at the
// current spot price, and every judge who voted for the overturned verdict
// is slashed. Either way the eco-logic and the threshold update run exactly
// once with the corrected verdict. It can be invoked only by a governance
// account.
//
// It produces ChallengeResolved notification.
func ResolveChallenge(governor interop.Hash160, reportID int, uphold bool) {
	ctx := storage.GetContext()

	checkGovernance(ctx, governor)

	r := getReport(ctx, reportID)
	if r.Status != cst.StatusChallenged {
		panic(cst.ErrInvalidState)
	}

	takeGuard(ctx)

	r.Status = cst.StatusFinalized
	putReport(ctx, r)

	var (
		verifiedCorrect = r.OriginalStatus == cst.StatusVerified
		bond            = cfg(ctx, cst.ChallengeBondKey)
		spot            int
		rewardTokens    int
	)

	if !uphold {
		verifiedCorrect = r.OriginalStatus == cst.StatusRejected

		// the bond is converted at the spot price of the moment of
		// arbitration, not of the challenge
		spot = tokenPrice(ctx)
		rewardTokens = bond / spot

		if !gas.Transfer(runtime.GetExecutingScriptHash(), r.Challenger, bond,
			common.RefundTransferDetails(reportID)) {
			panic(cst.ErrRefundTransfer)
		}
		if rewardTokens > 0 {
			tokenMint(ctx, r.Challenger, rewardTokens)
		}

		for i := 0; i < len(r.Voters); i++ {
			v := getVote(ctx, reportID, r.Voters[i])
			if v.Support != verifiedCorrect {
				slashJudge(ctx, reportID, r.Voters[i])
			}
		}
	}

	applyEcoLogic(ctx, r, verifiedCorrect)

	releaseGuard(ctx)
	runtime.Notify("ChallengeResolved", reportID, uphold, verifiedCorrect, spot, rewardTokens)
}

// Finalize completes an unchallenged report after its challenge window has
// fully elapsed. Judges that voted with the verdict gain reputation and a
// token reward, judges that voted against it are slashed. The eco-logic and
// the threshold update run with the verdict from the vote tally. It can be
// invoked by anyone.
//
// It produces ReportFinalized notification.
func Finalize(reportID int) {
	ctx := storage.GetContext()

	r := getReport(ctx, reportID)
	if r.Status != cst.StatusVerified && r.Status != cst.StatusRejected {
		panic(cst.ErrInvalidState)
	}

	if runtime.GetTime() <= r.ChallengeEnd {
		panic(cst.ErrWindowOpen)
	}

	r.Status = cst.StatusFinalized
	putReport(ctx, r)

	isVerified := r.VotesFor > r.VotesAgainst

	for i := 0; i < len(r.Voters); i++ {
		v := getVote(ctx, reportID, r.Voters[i])
		if v.Support == isVerified {
			rewardJudge(ctx, reportID, r.Voters[i])
		} else {
			slashJudge(ctx, reportID, r.Voters[i])
		}
	}

	applyEcoLogic(ctx, r, isVerified)

	runtime.Notify("ReportFinalized", reportID, isVerified)
}

// SettleDebt burns the producer's tokens against the outstanding carbon
// debt. Partial settlement is allowed; settling more than is owed burns only
// the owed amount. It can be invoked only by the producer.
//
// It produces DebtSettled notification.
func SettleDebt(producer interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(producer)

	if amount <= 0 {
		panic("amount must be positive")
	}

	debt := common.GetIntOrZero(ctx, debtKey(producer))
	if debt == 0 {
		panic(cst.ErrNoDebt)
	}

	pay := amount
	if pay > debt {
		pay = debt
	}

	tokenBurn(ctx, producer, pay)

	debt -= pay
	if debt == 0 {
		storage.Delete(ctx, debtKey(producer))
	} else {
		storage.Put(ctx, debtKey(producer), debt)
	}

	runtime.Notify("DebtSettled", producer, pay, debt)
}

// GetReport returns the report with the given identifier.
func GetReport(reportID int) Report {
	return getReport(storage.GetReadOnlyContext(), reportID)
}

// GetVote returns the recorded ballot of the judge on the report.
func GetVote(reportID int, judge interop.Hash160) Vote {
	return getVote(storage.GetReadOnlyContext(), reportID, judge)
}

// ReportCount returns the number of reports ever submitted. Report
// identifiers are sequential starting from 1.
func ReportCount() int {
	return common.GetIntOrZero(storage.GetReadOnlyContext(), reportCountKey)
}

// IterateReports returns an iterator over all stored reports.
func IterateReports() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{reportPrefix},
		storage.ValuesOnly|storage.DeserializeValues)
}

// ReputationOf returns the current reputation score of the judge.
func ReputationOf(judge interop.Hash160) int {
	return common.GetIntOrZero(storage.GetReadOnlyContext(), reputationKey(judge))
}

// DebtOf returns the outstanding carbon debt of the producer.
func DebtOf(producer interop.Hash160) int {
	return common.GetIntOrZero(storage.GetReadOnlyContext(), debtKey(producer))
}

// Threshold returns the current global per-unit emissions threshold. Every
// report is judged against the snapshot taken at its submission, not against
// this live value.
func Threshold() int {
	return storage.Get(storage.GetReadOnlyContext(), thresholdKey).(int)
}

// Config returns the effective value of the configuration record, falling
// back to the built-in default when the record was never set.
func Config(key string) int {
	return cfg(storage.GetReadOnlyContext(), key)
}

// SetConfig stores a configuration record. It can be invoked only by a
// governance account.
func SetConfig(governor interop.Hash160, key string, val int) {
	ctx := storage.GetContext()

	checkGovernance(ctx, governor)

	if val < 0 {
		panic("configuration value must be non-negative")
	}
	if val == 0 {
		// zero divisors would make every slash and threshold update fault
		switch key {
		case cst.SlashDivisorKey, cst.TightenDenKey, cst.RelaxDenKey:
			panic("configuration value must be positive")
		}
	}

	setConfig(ctx, key, val)
	runtime.Log("configuration has been updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Plain GAS transfers (without details) are accepted into the penalty pool
// and produce Deposit notification; transfers carrying details are bond
// movements and are accepted silently.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("only GAS can be accepted")
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

// perUnitEmissions turns raw production metrics into the per-unit emissions
// figure: a fixed linear combination of the four impact factors minus the
// sequestration credit (never negative), divided by the produced quantity
// with truncation.
func perUnitEmissions(m ProductionMetrics) int {
	if m.Quantity <= 0 {
		panic(cst.ErrZeroProduction)
	}

	gross := m.Energy*cst.EnergyFactor +
		m.Water*cst.WaterFactor +
		m.Chemical*cst.ChemicalFactor +
		m.Logistics*cst.LogisticsFactor

	gross -= m.Sequestration
	if gross < 0 {
		gross = 0
	}

	return gross / m.Quantity
}

// applyEcoLogic settles the economic outcome of a finalized report. For a
// correct verification it mints a reward proportional to the savings or
// fines the excess, then adapts the global threshold; for a correct
// rejection it applies the flat producer penalty.
func applyEcoLogic(ctx storage.Context, r Report, verifiedCorrect bool) {
	if !verifiedCorrect {
		applyPenalty(ctx, r.ID, r.Producer, cfg(ctx, cst.RejectPenaltyKey))
		return
	}

	if r.Emissions <= r.Threshold {
		reward := (r.Threshold - r.Emissions) * cfg(ctx, cst.RewardRateKey)
		if reward > 0 {
			tokenMint(ctx, r.Producer, reward)
			runtime.Notify("ProducerRewarded", r.ID, r.Producer, reward)
		}
	} else {
		fine := (r.Emissions - r.Threshold) * cfg(ctx, cst.FineRateKey)
		applyPenalty(ctx, r.ID, r.Producer, fine)
	}

	adaptThreshold(ctx, r.Emissions)
}

// applyPenalty burns up to the penalty amount from the producer's token
// balance and accrues the unpayable remainder as carbon debt.
func applyPenalty(ctx storage.Context, reportID int, producer interop.Hash160, amount int) {
	if amount <= 0 {
		return
	}

	burned := amount
	if balance := tokenBalance(ctx, producer); balance < burned {
		burned = balance
	}
	if burned > 0 {
		tokenBurn(ctx, producer, burned)
	}

	shortfall := amount - burned
	if shortfall > 0 {
		key := debtKey(producer)
		storage.Put(ctx, key, common.GetIntOrZero(ctx, key)+shortfall)
	}

	runtime.Notify("ProducerPenalized", reportID, producer, burned, shortfall)
}

// adaptThreshold ratchets the global threshold towards the emissions of the
// latest correctly verified report: it tightens by a larger fraction of the
// gap than it relaxes, biasing the economy towards improvement.
func adaptThreshold(ctx storage.Context, emissions int) {
	threshold := storage.Get(ctx, thresholdKey).(int)

	updated := threshold
	if emissions < threshold {
		updated = threshold - (threshold-emissions)*cfg(ctx, cst.TightenNumKey)/cfg(ctx, cst.TightenDenKey)
	} else if emissions > threshold {
		updated = threshold + (emissions-threshold)*cfg(ctx, cst.RelaxNumKey)/cfg(ctx, cst.RelaxDenKey)
	}

	if updated != threshold {
		storage.Put(ctx, thresholdKey, updated)
		runtime.Notify("ThresholdUpdated", threshold, updated)
	}
}

// rewardJudge pays a judge whose vote matched the final verdict: a fixed
// reputation award and a fixed token reward.
func rewardJudge(ctx storage.Context, reportID int, judge interop.Hash160) {
	reputation := common.GetIntOrZero(ctx, reputationKey(judge)) + cfg(ctx, cst.ReputationAwardKey)
	storage.Put(ctx, reputationKey(judge), reputation)

	tokens := cfg(ctx, cst.JudgeRewardKey)
	if tokens > 0 {
		tokenMint(ctx, judge, tokens)
	}

	runtime.Notify("JudgeRewarded", reportID, judge, reputation, tokens)
}

// slashJudge halves the reputation of a judge whose vote contradicted the
// final verdict, zeroing it once it falls below the minimum.
func slashJudge(ctx storage.Context, reportID int, judge interop.Hash160) {
	reputation := common.GetIntOrZero(ctx, reputationKey(judge)) / cfg(ctx, cst.SlashDivisorKey)
	if reputation < cfg(ctx, cst.MinReputationKey) {
		reputation = 0
	}
	storage.Put(ctx, reputationKey(judge), reputation)

	runtime.Notify("JudgeSlashed", reportID, judge, reputation)
}

func getReport(ctx storage.Context, reportID int) Report {
	data := storage.Get(ctx, reportKey(reportID))
	if data == nil {
		panic(cst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Report)
}

func putReport(ctx storage.Context, r Report) {
	common.SetSerialized(ctx, reportKey(r.ID), r)
}

func getVote(ctx storage.Context, reportID int, judge interop.Hash160) Vote {
	data := storage.Get(ctx, voteKey(reportID, judge))
	if data == nil {
		panic("vote does not exist")
	}

	return std.Deserialize(data.([]byte)).(Vote)
}

func reportKey(reportID int) []byte {
	return append([]byte{reportPrefix}, convert.ToBytes(reportID)...)
}

func voteKey(reportID int, judge interop.Hash160) []byte {
	key := append([]byte{votePrefix}, convert.ToBytes(reportID)...)
	return append(key, judge...)
}

func reputationKey(judge interop.Hash160) []byte {
	return append([]byte{reputationPrefix}, judge...)
}

func debtKey(producer interop.Hash160) []byte {
	return append([]byte{debtPrefix}, producer...)
}

func roleKey(account interop.Hash160, role int) []byte {
	key := append([]byte{rolePrefix}, byte(role))
	return append(key, account...)
}

func requireRole(ctx storage.Context, account interop.Hash160, role int) {
	if storage.Get(ctx, roleKey(account, role)) == nil {
		panic(cst.ErrUnauthorized)
	}
}

func checkGovernance(ctx storage.Context, governor interop.Hash160) {
	requireRole(ctx, governor, cst.RoleGovernance)
	common.CheckOwnerWitness(governor)
}

func checkRoleValue(role int) {
	if role < cst.RoleProducer || role > cst.RoleGovernance {
		panic("unknown role")
	}
}

func cfg(ctx storage.Context, key string) int {
	data := storage.Get(ctx, append(configPrefix, key...))
	if data != nil {
		return data.(int)
	}

	return defaultConfig(key)
}

func setConfig(ctx storage.Context, key, val any) {
	storage.Put(ctx, append(configPrefix, convert.ToBytes(key)...), val)
}

func defaultConfig(key string) int {
	switch key {
	case cst.QuorumKey:
		return cst.DefaultQuorum
	case cst.ChallengeWindowKey:
		return cst.DefaultChallengeWindow
	case cst.ChallengeBondKey:
		return cst.DefaultChallengeBond
	case cst.JudgeRewardKey:
		return cst.DefaultJudgeReward
	case cst.MaxVotersKey:
		return cst.DefaultMaxVoters
	case cst.InitialReputationKey:
		return cst.DefaultInitialReputation
	case cst.MinReputationKey:
		return cst.DefaultMinReputation
	case cst.SlashDivisorKey:
		return cst.DefaultSlashDivisor
	case cst.ReputationAwardKey:
		return cst.DefaultReputationAward
	case cst.RewardRateKey:
		return cst.DefaultRewardRate
	case cst.FineRateKey:
		return cst.DefaultFineRate
	case cst.RejectPenaltyKey:
		return cst.DefaultRejectPenalty
	case cst.TightenNumKey:
		return cst.DefaultTightenNum
	case cst.TightenDenKey:
		return cst.DefaultTightenDen
	case cst.RelaxNumKey:
		return cst.DefaultRelaxNum
	case cst.RelaxDenKey:
		return cst.DefaultRelaxDen
	default:
		panic("unknown configuration key")
	}
}

func tokenContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, tokenContractKey).(interop.Hash160)
}

func tokenMint(ctx storage.Context, to interop.Hash160, amount int) {
	contract.Call(tokenContract(ctx), "mint", contract.All, to, amount)
}

func tokenBurn(ctx storage.Context, from interop.Hash160, amount int) {
	contract.Call(tokenContract(ctx), "burn", contract.All, from, amount)
}

func tokenBalance(ctx storage.Context, account interop.Hash160) int {
	return contract.Call(tokenContract(ctx), "balanceOf", contract.ReadOnly, account).(int)
}

func tokenPrice(ctx storage.Context) int {
	return contract.Call(tokenContract(ctx), "price", contract.ReadOnly).(int)
}

func takeGuard(ctx storage.Context) {
	if storage.Get(ctx, guardKey) != nil {
		panic(cst.ErrReentrancy)
	}
	storage.Put(ctx, guardKey, 1)
}

func releaseGuard(ctx storage.Context) {
	storage.Delete(ctx, guardKey)
}
