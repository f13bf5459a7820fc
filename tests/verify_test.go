package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/ecoledger-dev/ecoverify-contract/common"
	"github.com/ecoledger-dev/ecoverify-contract/contracts/token/tokenconst"
	cst "github.com/ecoledger-dev/ecoverify-contract/contracts/verify/verifyconst"
)

type reportState struct {
	producer       util.Uint160
	emissions      int64
	threshold      int64
	status         int64
	originalStatus int64
	votesFor       int64
	votesAgainst   int64
	challengeEnd   int64
	challenger     []byte
	voters         int
}

func getReportState(t *testing.T, c *neotest.ContractInvoker, id int64) reportState {
	s, err := c.TestInvoke(t, "getReport", id)
	require.NoError(t, err)

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 13)

	num := func(i int) int64 {
		v, err := arr[i].TryInteger()
		require.NoError(t, err)
		return v.Int64()
	}

	producerBytes, err := arr[1].TryBytes()
	require.NoError(t, err)
	producer, err := util.Uint160DecodeBytesBE(producerBytes)
	require.NoError(t, err)

	var challenger []byte
	if _, isNull := arr[11].(stackitem.Null); !isNull {
		challenger, err = arr[11].TryBytes()
		require.NoError(t, err)
	}

	voters, ok := arr[12].Value().([]stackitem.Item)
	require.True(t, ok)

	return reportState{
		producer:       producer,
		emissions:      num(4),
		threshold:      num(5),
		status:         num(6),
		originalStatus: num(7),
		votesFor:       num(8),
		votesAgainst:   num(9),
		challengeEnd:   num(10),
		challenger:     challenger,
		voters:         len(voters),
	}
}

func findEvents(aer *state.AppExecResult, name string) []state.NotificationEvent {
	var evs []state.NotificationEvent
	for _, ev := range aer.Events {
		if ev.Name == name {
			evs = append(evs, ev)
		}
	}
	return evs
}

func TestVerify_Deploy(t *testing.T) {
	ec := newEconomy(t, testThreshold)

	ec.verify.Invoke(t, stackitem.Make(testThreshold), "threshold")
	ec.verify.Invoke(t, stackitem.Make(cst.DefaultQuorum), "config", cst.QuorumKey)
	ec.verify.Invoke(t, stackitem.Make(cst.DefaultChallengeBond), "config", cst.ChallengeBondKey)
	ec.verify.Invoke(t, stackitem.Make(common.Version), "version")
	ec.verify.Invoke(t, stackitem.Make(true), "hasRole",
		ec.CommitteeHash, int64(cst.RoleGovernance))
	ec.verify.Invoke(t, stackitem.Make(0), "reportCount")

	t.Run("penalty pool deposit", func(t *testing.T) {
		donor := ec.verify.NewAccount(t)
		gasInvoker := ec.NewInvoker(ec.NativeHash(t, nativenames.Gas), donor)
		h := gasInvoker.Invoke(t, stackitem.Make(true), "transfer",
			donor.ScriptHash(), ec.verifyHash, int64(1_0000_0000), nil)
		aer := gasInvoker.CheckHalt(t, h)
		require.Len(t, findEvents(aer, "Deposit"), 1)
	})
}

func TestVerify_Roles(t *testing.T) {
	ec := newEconomy(t, testThreshold)

	acc := ec.verify.NewAccount(t)
	ec.verify.Invoke(t, stackitem.Make(false), "hasRole", acc.ScriptHash(), int64(cst.RoleProducer))
	ec.verify.Invoke(t, stackitem.Null{}, "grantRole",
		ec.CommitteeHash, acc.ScriptHash(), int64(cst.RoleProducer))
	ec.verify.Invoke(t, stackitem.Make(true), "hasRole", acc.ScriptHash(), int64(cst.RoleProducer))

	ec.verify.Invoke(t, stackitem.Null{}, "revokeRole",
		ec.CommitteeHash, acc.ScriptHash(), int64(cst.RoleProducer))
	ec.verify.Invoke(t, stackitem.Make(false), "hasRole", acc.ScriptHash(), int64(cst.RoleProducer))

	t.Run("judge onboarding reputation", func(t *testing.T) {
		judge := ec.newJudges(t, 1)[0]
		ec.verify.Invoke(t, stackitem.Make(cst.DefaultInitialReputation),
			"reputationOf", judge.ScriptHash())

		// a re-grant must not reset an existing reputation record
		ec.verify.Invoke(t, stackitem.Null{}, "revokeRole",
			ec.CommitteeHash, judge.ScriptHash(), int64(cst.RoleJudge))
		ec.setConfig(t, cst.InitialReputationKey, 42)
		ec.verify.Invoke(t, stackitem.Null{}, "grantRole",
			ec.CommitteeHash, judge.ScriptHash(), int64(cst.RoleJudge))
		ec.verify.Invoke(t, stackitem.Make(cst.DefaultInitialReputation),
			"reputationOf", judge.ScriptHash())
	})

	t.Run("authorization", func(t *testing.T) {
		cAcc := ec.verify.WithSigners(acc)
		cAcc.InvokeFail(t, cst.ErrUnauthorized, "grantRole",
			acc.ScriptHash(), acc.ScriptHash(), int64(cst.RoleProducer))
		cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "grantRole",
			ec.CommitteeHash, acc.ScriptHash(), int64(cst.RoleProducer))
		ec.verify.InvokeFail(t, "unknown role", "grantRole",
			ec.CommitteeHash, acc.ScriptHash(), int64(7))
	})
}

func TestVerify_SubmitReport(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	producer := ec.newProducer(t)

	// (10*2 + 20*1 + 2*5 + 4*3 - 5) / 3 with truncation
	h := ec.verify.WithSigners(producer).Invoke(t, stackitem.Make(1), "submitReport",
		producer.ScriptHash(), randomEvidenceRef(), int64(3),
		int64(10), int64(20), int64(2), int64(4), int64(5))
	aer := ec.verify.CheckHalt(t, h)
	evs := findEvents(aer, "ReportSubmitted")
	require.Len(t, evs, 1)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(1),
		stackitem.Make(producer.ScriptHash().BytesBE()),
		stackitem.Make(19),
		stackitem.Make(testThreshold),
	}), evs[0].Item)

	r := getReportState(t, ec.verify, 1)
	require.EqualValues(t, 19, r.emissions)
	require.EqualValues(t, testThreshold, r.threshold)
	require.EqualValues(t, cst.StatusPending, r.status)
	require.Equal(t, producer.ScriptHash(), r.producer)
	require.Zero(t, r.voters)

	t.Run("sequestration floors at zero", func(t *testing.T) {
		ec.submitReport(t, producer, 2, 5, 1, 1, 1, 1, 1_000_000)
		require.Zero(t, getReportState(t, ec.verify, 2).emissions)
	})

	t.Run("identifiers are sequential", func(t *testing.T) {
		ec.submitReport(t, producer, 3, 1, 0, 0, 0, 0, 0)
		ec.verify.Invoke(t, stackitem.Make(3), "reportCount")

		s, err := ec.verify.TestInvoke(t, "iterateReports")
		require.NoError(t, err)
		iter, ok := s.Pop().Value().(*storage.Iterator)
		require.True(t, ok)
		require.Len(t, iteratorToArray(iter), 3)
	})

	t.Run("validation", func(t *testing.T) {
		cProducer := ec.verify.WithSigners(producer)
		cProducer.InvokeFail(t, cst.ErrZeroProduction, "submitReport",
			producer.ScriptHash(), randomEvidenceRef(), int64(0),
			int64(1), int64(0), int64(0), int64(0), int64(0))

		stranger := ec.verify.NewAccount(t)
		ec.verify.WithSigners(stranger).InvokeFail(t, cst.ErrUnauthorized, "submitReport",
			stranger.ScriptHash(), randomEvidenceRef(), int64(1),
			int64(0), int64(0), int64(0), int64(0), int64(0))
		ec.verify.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed, "submitReport",
			producer.ScriptHash(), randomEvidenceRef(), int64(1),
			int64(0), int64(0), int64(0), int64(0), int64(0))
	})
}

func TestVerify_CastVote(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.QuorumKey, 20)

	producer := ec.newProducer(t)
	judges := ec.newJudges(t, 2)
	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)

	ec.castVote(t, 1, judges[0], true)

	s, err := ec.verify.TestInvoke(t, "getVote", int64(1), judges[0].ScriptHash())
	require.NoError(t, err)
	vote, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	support, err := vote[0].TryBool()
	require.NoError(t, err)
	require.True(t, support)
	weight, err := vote[1].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, cst.DefaultInitialReputation, weight.Int64())

	r := getReportState(t, ec.verify, 1)
	require.EqualValues(t, 10, r.votesFor)
	require.Zero(t, r.votesAgainst)
	require.Equal(t, 1, r.voters)

	cJudge := ec.verify.WithSigners(judges[0])
	cJudge.InvokeFail(t, cst.ErrAlreadyVoted, "castVote", int64(1), judges[0].ScriptHash(), false)
	cJudge.InvokeFail(t, cst.ErrNotFound, "castVote", int64(99), judges[0].ScriptHash(), true)
	ec.verify.WithSigners(producer).InvokeFail(t, cst.ErrUnauthorized,
		"castVote", int64(1), producer.ScriptHash(), true)
	ec.verify.WithSigners(judges[1]).InvokeFail(t, common.ErrOwnerWitnessFailed,
		"castVote", int64(1), judges[0].ScriptHash(), true)

	t.Run("zero reputation", func(t *testing.T) {
		ec.setConfig(t, cst.InitialReputationKey, 0)
		novice := ec.grantRole(t, int64(cst.RoleJudge))
		ec.verify.WithSigners(novice).InvokeFail(t, cst.ErrNoReputation,
			"castVote", int64(1), novice.ScriptHash(), true)
		ec.setConfig(t, cst.InitialReputationKey, cst.DefaultInitialReputation)
	})

	t.Run("voter limit", func(t *testing.T) {
		ec.setConfig(t, cst.MaxVotersKey, 1)
		ec.verify.WithSigners(judges[1]).InvokeFail(t, cst.ErrVoterLimit,
			"castVote", int64(1), judges[1].ScriptHash(), false)
		ec.setConfig(t, cst.MaxVotersKey, cst.DefaultMaxVoters)
	})

	t.Run("voting closes at quorum resolution", func(t *testing.T) {
		ec.castVote(t, 1, judges[1], true)
		ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))

		third := ec.grantRole(t, int64(cst.RoleJudge))
		ec.verify.WithSigners(third).InvokeFail(t, cst.ErrNotPending,
			"castVote", int64(1), third.ScriptHash(), true)
	})
}

func TestVerify_ResolveQuorum(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.QuorumKey, 25)

	producer := ec.newProducer(t)
	judges := ec.newJudges(t, 3)

	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)
	ec.castVote(t, 1, judges[0], true)
	ec.castVote(t, 1, judges[1], true)

	ec.verify.InvokeFail(t, cst.ErrQuorumNotReached, "resolveQuorum", int64(1))

	ec.castVote(t, 1, judges[2], true)
	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))

	r := getReportState(t, ec.verify, 1)
	require.EqualValues(t, cst.StatusVerified, r.status)
	require.EqualValues(t, cst.StatusVerified, r.originalStatus)
	require.Positive(t, r.challengeEnd)

	ec.verify.InvokeFail(t, cst.ErrNotPending, "resolveQuorum", int64(1))
	ec.verify.InvokeFail(t, cst.ErrNotFound, "resolveQuorum", int64(99))

	t.Run("tie is rejected", func(t *testing.T) {
		ec.setConfig(t, cst.QuorumKey, 20)
		ec.submitReport(t, producer, 2, 1, 500, 0, 0, 0, 0)
		ec.castVote(t, 2, judges[0], true)
		ec.castVote(t, 2, judges[1], false)
		ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(2))

		require.EqualValues(t, cst.StatusRejected, getReportState(t, ec.verify, 2).status)
	})
}

func TestVerify_FinalizeLifecycle(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.ChallengeWindowKey, 0)

	producer := ec.newProducer(t)
	judges := ec.newJudges(t, 6)

	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)
	for _, j := range judges {
		ec.castVote(t, 1, j, true)
	}

	r := getReportState(t, ec.verify, 1)
	require.EqualValues(t, 60, r.votesFor)

	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))
	require.EqualValues(t, cst.StatusVerified, getReportState(t, ec.verify, 1).status)

	h := ec.verify.Invoke(t, stackitem.Null{}, "finalize", int64(1))
	aer := ec.verify.CheckHalt(t, h)

	require.EqualValues(t, cst.StatusFinalized, getReportState(t, ec.verify, 1).status)

	// the savings of 200 units are minted at the reward rate
	require.EqualValues(t, 200, ec.tokenBalance(t, producer.ScriptHash()))
	evs := findEvents(aer, "ProducerRewarded")
	require.Len(t, evs, 1)

	// the threshold tightens by a fifth of the 200 unit gap
	ec.verify.Invoke(t, stackitem.Make(1160), "threshold")
	evs = findEvents(aer, "ThresholdUpdated")
	require.Len(t, evs, 1)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(testThreshold),
		stackitem.Make(1160),
	}), evs[0].Item)

	require.Len(t, findEvents(aer, "JudgeRewarded"), 6)
	for _, j := range judges {
		ec.verify.Invoke(t, stackitem.Make(15), "reputationOf", j.ScriptHash())
		require.EqualValues(t, cst.DefaultJudgeReward, ec.tokenBalance(t, j.ScriptHash()))
	}

	ec.verify.InvokeFail(t, cst.ErrInvalidState, "finalize", int64(1))

	t.Run("dissenting judge is slashed", func(t *testing.T) {
		ec.submitReport(t, producer, 2, 1, 500, 0, 0, 0, 0)
		for _, j := range judges[:5] {
			ec.castVote(t, 2, j, true)
		}
		ec.castVote(t, 2, judges[5], false)

		ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(2))
		h := ec.verify.Invoke(t, stackitem.Null{}, "finalize", int64(2))
		aer := ec.verify.CheckHalt(t, h)

		require.Len(t, findEvents(aer, "JudgeRewarded"), 5)
		require.Len(t, findEvents(aer, "JudgeSlashed"), 1)
		ec.verify.Invoke(t, stackitem.Make(7), "reputationOf", judges[5].ScriptHash())
	})

	t.Run("window must elapse", func(t *testing.T) {
		ec.setConfig(t, cst.ChallengeWindowKey, cst.DefaultChallengeWindow)
		ec.submitReport(t, producer, 3, 1, 500, 0, 0, 0, 0)
		for _, j := range judges[:5] {
			ec.castVote(t, 3, j, true)
		}
		ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(3))
		ec.verify.InvokeFail(t, cst.ErrWindowOpen, "finalize", int64(3))
	})

	t.Run("pending report cannot be finalized", func(t *testing.T) {
		ec.submitReport(t, producer, 4, 1, 500, 0, 0, 0, 0)
		ec.verify.InvokeFail(t, cst.ErrInvalidState, "finalize", int64(4))
	})
}

func TestVerify_ThresholdRelax(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.QuorumKey, 10)
	ec.setConfig(t, cst.ChallengeWindowKey, 0)

	producer := ec.newProducer(t)
	judge := ec.newJudges(t, 1)[0]

	// 1300 per unit, 100 over the threshold
	ec.submitReport(t, producer, 1, 1, 650, 0, 0, 0, 0)
	ec.castVote(t, 1, judge, true)
	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))
	h := ec.verify.Invoke(t, stackitem.Null{}, "finalize", int64(1))
	aer := ec.verify.CheckHalt(t, h)

	// the excess is fined at double rate; with no token balance the
	// whole fine accrues as carbon debt
	evs := findEvents(aer, "ProducerPenalized")
	require.Len(t, evs, 1)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(1),
		stackitem.Make(producer.ScriptHash().BytesBE()),
		stackitem.Make(0),
		stackitem.Make(200),
	}), evs[0].Item)
	ec.verify.Invoke(t, stackitem.Make(200), "debtOf", producer.ScriptHash())

	// the threshold relaxes by a twentieth of the 100 unit gap
	ec.verify.Invoke(t, stackitem.Make(1205), "threshold")
}

func TestVerify_ThresholdSnapshot(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.QuorumKey, 10)
	ec.setConfig(t, cst.ChallengeWindowKey, 0)

	producer := ec.newProducer(t)
	judge := ec.newJudges(t, 1)[0]

	// both reports come in at 1000 per unit against the 1200 threshold
	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)
	ec.submitReport(t, producer, 2, 1, 500, 0, 0, 0, 0)

	// finalizing the second report tightens the global threshold
	ec.castVote(t, 2, judge, true)
	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(2))
	ec.verify.Invoke(t, stackitem.Null{}, "finalize", int64(2))
	ec.verify.Invoke(t, stackitem.Make(1160), "threshold")

	// the first report keeps the threshold snapshotted at submission
	require.EqualValues(t, testThreshold, getReportState(t, ec.verify, 1).threshold)

	balanceBefore := ec.tokenBalance(t, producer.ScriptHash())

	ec.castVote(t, 1, judge, true)
	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))
	h := ec.verify.Invoke(t, stackitem.Null{}, "finalize", int64(1))
	aer := ec.verify.CheckHalt(t, h)

	// the reward is settled against the 1200 snapshot, not the live 1160
	evs := findEvents(aer, "ProducerRewarded")
	require.Len(t, evs, 1)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(1),
		stackitem.Make(producer.ScriptHash().BytesBE()),
		stackitem.Make(200),
	}), evs[0].Item)
	require.EqualValues(t, balanceBefore+200, ec.tokenBalance(t, producer.ScriptHash()))

	// adaptation, by contrast, ratchets the live threshold further down
	ec.verify.Invoke(t, stackitem.Make(1128), "threshold")
}

func TestVerify_Challenge(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.QuorumKey, 10)

	producer := ec.newProducer(t)
	judge := ec.newJudges(t, 1)[0]
	challenger := ec.verify.NewAccount(t)
	cChallenger := ec.verify.WithSigners(challenger)

	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)
	cChallenger.InvokeFail(t, cst.ErrInvalidState, "raiseChallenge",
		int64(1), challenger.ScriptHash())

	ec.castVote(t, 1, judge, true)
	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))

	h := cChallenger.Invoke(t, stackitem.Null{}, "raiseChallenge",
		int64(1), challenger.ScriptHash())
	aer := cChallenger.CheckHalt(t, h)
	evs := findEvents(aer, "ChallengeRaised")
	require.Len(t, evs, 1)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(1),
		stackitem.Make(challenger.ScriptHash().BytesBE()),
		stackitem.Make(cst.DefaultChallengeBond),
	}), evs[0].Item)

	r := getReportState(t, ec.verify, 1)
	require.EqualValues(t, cst.StatusChallenged, r.status)
	require.EqualValues(t, cst.StatusVerified, r.originalStatus)
	require.Equal(t, challenger.ScriptHash().BytesBE(), r.challenger)

	// the bond is custodied by the contract until arbitration
	require.EqualValues(t, cst.DefaultChallengeBond,
		ec.Chain.GetUtilityTokenBalance(ec.verifyHash).Int64())

	cChallenger.InvokeFail(t, cst.ErrInvalidState, "raiseChallenge",
		int64(1), challenger.ScriptHash())
	ec.verify.InvokeFail(t, cst.ErrInvalidState, "finalize", int64(1))

	t.Run("closed window", func(t *testing.T) {
		ec.setConfig(t, cst.ChallengeWindowKey, 0)
		ec.submitReport(t, producer, 2, 1, 500, 0, 0, 0, 0)
		judge2 := ec.newJudges(t, 1)[0]
		ec.castVote(t, 2, judge2, true)
		ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(2))
		cChallenger.InvokeFail(t, cst.ErrWindowClosed, "raiseChallenge",
			int64(2), challenger.ScriptHash())
	})
}

func TestVerify_ResolveChallengeUphold(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.QuorumKey, 10)

	producer := ec.newProducer(t)
	judge := ec.newJudges(t, 1)[0]
	challenger := ec.verify.NewAccount(t)

	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)
	ec.castVote(t, 1, judge, true)
	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))
	ec.verify.WithSigners(challenger).Invoke(t, stackitem.Null{}, "raiseChallenge",
		int64(1), challenger.ScriptHash())

	ec.verify.WithSigners(challenger).InvokeFail(t, cst.ErrUnauthorized,
		"resolveChallenge", challenger.ScriptHash(), int64(1), true)

	h := ec.verify.Invoke(t, stackitem.Null{}, "resolveChallenge",
		ec.CommitteeHash, int64(1), true)
	aer := ec.verify.CheckHalt(t, h)
	evs := findEvents(aer, "ChallengeResolved")
	require.Len(t, evs, 1)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(1),
		stackitem.Make(true),
		stackitem.Make(true),
		stackitem.Make(0),
		stackitem.Make(0),
	}), evs[0].Item)

	require.EqualValues(t, cst.StatusFinalized, getReportState(t, ec.verify, 1).status)

	// the bond is forfeited and stays on the contract account
	require.EqualValues(t, cst.DefaultChallengeBond,
		ec.Chain.GetUtilityTokenBalance(ec.verifyHash).Int64())
	require.Zero(t, ec.tokenBalance(t, challenger.ScriptHash()))

	// the original verdict settles: producer reward, untouched judge
	require.EqualValues(t, 200, ec.tokenBalance(t, producer.ScriptHash()))
	ec.verify.Invoke(t, stackitem.Make(cst.DefaultInitialReputation),
		"reputationOf", judge.ScriptHash())
	ec.verify.Invoke(t, stackitem.Make(1160), "threshold")

	ec.verify.InvokeFail(t, cst.ErrInvalidState, "resolveChallenge",
		ec.CommitteeHash, int64(1), true)
}

func TestVerify_ResolveChallengeOverturn(t *testing.T) {
	ec := newEconomy(t, testThreshold)

	producer := ec.newProducer(t)
	judges := ec.newJudges(t, 5)
	challenger := ec.verify.NewAccount(t)

	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)
	for _, j := range judges {
		ec.castVote(t, 1, j, false)
	}
	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))
	require.EqualValues(t, cst.StatusRejected, getReportState(t, ec.verify, 1).status)

	ec.verify.WithSigners(challenger).Invoke(t, stackitem.Null{}, "raiseChallenge",
		int64(1), challenger.ScriptHash())

	h := ec.verify.Invoke(t, stackitem.Null{}, "resolveChallenge",
		ec.CommitteeHash, int64(1), false)
	aer := ec.verify.CheckHalt(t, h)

	// the bond is refunded and additionally converted to tokens at the
	// spot price of the arbitration moment
	const rewardTokens = cst.DefaultChallengeBond / testBasePrice
	evs := findEvents(aer, "ChallengeResolved")
	require.Len(t, evs, 1)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(1),
		stackitem.Make(false),
		stackitem.Make(true),
		stackitem.Make(testBasePrice),
		stackitem.Make(rewardTokens),
	}), evs[0].Item)

	require.Zero(t, ec.Chain.GetUtilityTokenBalance(ec.verifyHash).Int64())
	require.EqualValues(t, rewardTokens, ec.tokenBalance(t, challenger.ScriptHash()))

	// every judge voted for the overturned verdict and is slashed
	require.Len(t, findEvents(aer, "JudgeSlashed"), 5)
	for _, j := range judges {
		ec.verify.Invoke(t, stackitem.Make(5), "reputationOf", j.ScriptHash())
	}

	// the corrected verdict settles as a verification
	require.EqualValues(t, 200, ec.tokenBalance(t, producer.ScriptHash()))
	ec.verify.Invoke(t, stackitem.Make(1160), "threshold")
	require.EqualValues(t, cst.StatusFinalized, getReportState(t, ec.verify, 1).status)
}

func TestVerify_JudgeSlashFloor(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.QuorumKey, 5)
	ec.setConfig(t, cst.ChallengeWindowKey, 0)
	ec.setConfig(t, cst.InitialReputationKey, 3)

	producer := ec.newProducer(t)
	judges := ec.newJudges(t, 3)

	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)
	ec.castVote(t, 1, judges[0], true)
	ec.castVote(t, 1, judges[1], false)
	ec.castVote(t, 1, judges[2], false)

	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))
	ec.verify.Invoke(t, stackitem.Null{}, "finalize", int64(1))

	// halving 3 lands below the minimum of 2 and zeroes out
	ec.verify.Invoke(t, stackitem.Make(0), "reputationOf", judges[0].ScriptHash())
	ec.verify.Invoke(t, stackitem.Make(8), "reputationOf", judges[1].ScriptHash())

	ec.submitReport(t, producer, 2, 1, 500, 0, 0, 0, 0)
	ec.verify.WithSigners(judges[0]).InvokeFail(t, cst.ErrNoReputation,
		"castVote", int64(2), judges[0].ScriptHash(), true)
}

func TestVerify_SettleDebt(t *testing.T) {
	ec := newEconomy(t, testThreshold)
	ec.setConfig(t, cst.QuorumKey, 10)
	ec.setConfig(t, cst.ChallengeWindowKey, 0)

	producer := ec.newProducer(t)
	judge := ec.newJudges(t, 1)[0]
	cProducer := ec.verify.WithSigners(producer)

	ec.submitReport(t, producer, 1, 1, 500, 0, 0, 0, 0)
	ec.castVote(t, 1, judge, false)
	ec.verify.Invoke(t, stackitem.Null{}, "resolveQuorum", int64(1))
	ec.verify.Invoke(t, stackitem.Null{}, "finalize", int64(1))

	// a correct rejection applies the flat penalty, all of it as debt
	// since the producer holds no tokens
	ec.verify.Invoke(t, stackitem.Make(cst.DefaultRejectPenalty),
		"debtOf", producer.ScriptHash())

	cProducer.InvokeFail(t, cst.ErrDebtOutstanding, "submitReport",
		producer.ScriptHash(), randomEvidenceRef(), int64(1),
		int64(0), int64(0), int64(0), int64(0), int64(0))
	cProducer.InvokeFail(t, tokenconst.ErrInsufficientBalance,
		"settleDebt", producer.ScriptHash(), int64(40))
	cProducer.InvokeFail(t, "amount must be positive",
		"settleDebt", producer.ScriptHash(), int64(0))

	ec.token.WithSigners(producer).Invoke(t, stackitem.Null{},
		"buyTokens", producer.ScriptHash(), int64(200))

	cProducer.Invoke(t, stackitem.Null{}, "settleDebt", producer.ScriptHash(), int64(40))
	ec.verify.Invoke(t, stackitem.Make(60), "debtOf", producer.ScriptHash())
	require.EqualValues(t, 160, ec.tokenBalance(t, producer.ScriptHash()))

	// overpaying burns only what is owed
	h := cProducer.Invoke(t, stackitem.Null{}, "settleDebt", producer.ScriptHash(), int64(1000))
	aer := cProducer.CheckHalt(t, h)
	evs := findEvents(aer, "DebtSettled")
	require.Len(t, evs, 1)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(producer.ScriptHash().BytesBE()),
		stackitem.Make(60),
		stackitem.Make(0),
	}), evs[0].Item)

	ec.verify.Invoke(t, stackitem.Make(0), "debtOf", producer.ScriptHash())
	require.EqualValues(t, 100, ec.tokenBalance(t, producer.ScriptHash()))

	cProducer.InvokeFail(t, cst.ErrNoDebt, "settleDebt", producer.ScriptHash(), int64(1))

	// the cleared producer can submit again
	ec.submitReport(t, producer, 2, 1, 500, 0, 0, 0, 0)
}

func TestVerify_Config(t *testing.T) {
	ec := newEconomy(t, testThreshold)

	ec.verify.Invoke(t, stackitem.Make(cst.DefaultQuorum), "config", cst.QuorumKey)
	ec.setConfig(t, cst.QuorumKey, 25)
	ec.verify.Invoke(t, stackitem.Make(25), "config", cst.QuorumKey)

	ec.verify.InvokeFail(t, "unknown configuration key", "config", "NoSuchKey")
	ec.verify.InvokeFail(t, "configuration value must be non-negative",
		"setConfig", ec.CommitteeHash, cst.QuorumKey, int64(-1))

	acc := ec.verify.NewAccount(t)
	ec.verify.WithSigners(acc).InvokeFail(t, cst.ErrUnauthorized,
		"setConfig", acc.ScriptHash(), cst.QuorumKey, int64(1))

	t.Run("zero divisors are rejected", func(t *testing.T) {
		for _, key := range []string{cst.SlashDivisorKey, cst.TightenDenKey, cst.RelaxDenKey} {
			ec.verify.InvokeFail(t, "configuration value must be positive",
				"setConfig", ec.CommitteeHash, key, int64(0))
		}
		ec.setConfig(t, cst.SlashDivisorKey, 3)
		ec.verify.Invoke(t, stackitem.Make(3), "config", cst.SlashDivisorKey)

		// zero stays valid for non-divisor records
		ec.setConfig(t, cst.ChallengeWindowKey, 0)
	})
}
