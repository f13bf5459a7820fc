package verifyconst

// Report lifecycle states. A report enters Pending on submission, gets a
// provisional verdict at quorum, may be challenged within the challenge
// window and always ends up Finalized.
const (
	StatusPending = iota
	StatusVerified
	StatusRejected
	StatusChallenged
	StatusFinalized
)

// Account roles of the verification economy.
const (
	RoleProducer = iota + 1
	RoleJudge
	RoleGovernance
)

// Fixed per-unit coefficients of the gross emissions formula. Raw metrics
// are weighted with these, the sequestration credit is subtracted (floored
// at zero) and the result is divided by the produced quantity.
const (
	EnergyFactor    = 2
	WaterFactor     = 1
	ChemicalFactor  = 5
	LogisticsFactor = 3
)

// Configuration record keys. Every value is an integer; defaults below
// apply until overridden on deploy or via SetConfig.
const (
	// QuorumKey is the combined vote weight required to resolve voting.
	QuorumKey = "Quorum"
	// ChallengeWindowKey is the challenge window duration in milliseconds.
	ChallengeWindowKey = "ChallengeWindow"
	// ChallengeBondKey is the GAS bond required to raise a challenge.
	ChallengeBondKey = "ChallengeBond"
	// JudgeRewardKey is the token reward minted per correct judge vote.
	JudgeRewardKey = "JudgeTokenReward"
	// MaxVotersKey bounds the number of judges voting on one report.
	MaxVotersKey = "MaxVoters"
	// InitialReputationKey is the reputation seeded to a new judge.
	InitialReputationKey = "InitialReputation"
	// MinReputationKey is the floor below which a slash zeroes reputation.
	MinReputationKey = "MinReputation"
	// SlashDivisorKey divides reputation on a slash.
	SlashDivisorKey = "SlashDivisor"
	// ReputationAwardKey is added to reputation per correct vote.
	ReputationAwardKey = "ReputationAward"
	// RewardRateKey is tokens minted per gram of emissions saved.
	RewardRateKey = "RewardRate"
	// FineRateKey is tokens burned per gram of emissions in excess.
	FineRateKey = "FineRate"
	// RejectPenaltyKey is the flat token penalty for a rejected report.
	RejectPenaltyKey = "RejectPenalty"
	// TightenNumKey/TightenDenKey set the fraction of the gap by which the
	// global threshold tightens when a verified report lands below it.
	TightenNumKey = "TightenNum"
	TightenDenKey = "TightenDen"
	// RelaxNumKey/RelaxDenKey set the fraction of the gap by which the
	// global threshold relaxes when a verified report lands above it.
	RelaxNumKey = "RelaxNum"
	RelaxDenKey = "RelaxDen"
)

const (
	DefaultQuorum            = 50
	DefaultChallengeWindow   = 3_600_000 // 1 hour
	DefaultChallengeBond     = 5_0000_0000
	DefaultJudgeReward       = 10
	DefaultMaxVoters         = 32
	DefaultInitialReputation = 10
	DefaultMinReputation     = 2
	DefaultSlashDivisor      = 2
	DefaultReputationAward   = 5
	DefaultRewardRate        = 1
	DefaultFineRate          = 2
	DefaultRejectPenalty     = 100
	DefaultTightenNum        = 1
	DefaultTightenDen        = 5 // 20% of the gap
	DefaultRelaxNum          = 1
	DefaultRelaxDen          = 20 // 5% of the gap
	DefaultThreshold         = 1500
)

const (
	// ErrNotFound is returned when the requested report does not exist.
	ErrNotFound = "report does not exist"
	// ErrNotPending is returned on vote or quorum operations against a
	// report that already has a verdict.
	ErrNotPending = "report is not pending"
	// ErrInvalidState is returned on lifecycle transitions attempted from
	// a state that forbids them.
	ErrInvalidState = "invalid report state"
	// ErrUnauthorized is returned when the caller lacks the required role.
	ErrUnauthorized = "caller lacks required role"
	// ErrAlreadyVoted is returned on repeated votes of one judge.
	ErrAlreadyVoted = "judge has already voted on this report"
	// ErrNoReputation is returned when a zero-reputation judge votes.
	ErrNoReputation = "judge has no reputation"
	// ErrVoterLimit is returned when the voter list is full.
	ErrVoterLimit = "voter limit reached"
	// ErrQuorumNotReached is returned when accumulated vote weight is
	// below the quorum.
	ErrQuorumNotReached = "quorum not reached"
	// ErrWindowClosed is returned on challenges raised past the window.
	ErrWindowClosed = "challenge window has closed"
	// ErrWindowOpen is returned on finalization within a live window.
	ErrWindowOpen = "challenge window is still open"
	// ErrDebtOutstanding is returned on submissions of indebted producers.
	ErrDebtOutstanding = "producer has outstanding carbon debt"
	// ErrZeroProduction is returned on metrics with zero quantity.
	ErrZeroProduction = "zero production quantity"
	// ErrNoDebt is returned on settlement with nothing to settle.
	ErrNoDebt = "no outstanding carbon debt"
	// ErrBondTransfer is returned when the challenge bond cannot be
	// pulled from the challenger.
	ErrBondTransfer = "failed to pull challenge bond"
	// ErrRefundTransfer is returned when the bond refund fails.
	ErrRefundTransfer = "failed to refund challenge bond"
	// ErrReentrancy is returned on re-entrant payable calls.
	ErrReentrancy = "operation already in progress"
)
