package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	cst "github.com/ecoledger-dev/ecoverify-contract/contracts/verify/verifyconst"
)

const (
	tokenPath  = "../contracts/token"
	verifyPath = "../contracts/verify"
)

const (
	testBasePrice = 1000
	testSlope     = 1
	testThreshold = 1200
)

func deployTokenContract(t *testing.T, e *neotest.Executor, basePrice, slope int64) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))

	args := make([]any, 2)
	args[0] = basePrice
	args[1] = slope

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployVerifyContract(t *testing.T, e *neotest.Executor, addrToken util.Uint160, threshold int64) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, verifyPath, path.Join(verifyPath, "config.yml"))

	args := make([]any, 3)
	args[0] = addrToken
	args[1] = e.CommitteeHash
	args[2] = threshold

	e.DeployContract(t, c, args)
	return c.Hash
}

func newTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployTokenContract(t, e, testBasePrice, testSlope)
	return e.CommitteeInvoker(h)
}

// economy wires the contract pair the way it is deployed to the chain: the
// token market plus the verification contract bound to it, with the committee
// acting as the governance account.
type economy struct {
	*neotest.Executor

	tokenHash  util.Uint160
	verifyHash util.Uint160

	token  *neotest.ContractInvoker
	verify *neotest.ContractInvoker
}

func newEconomy(t *testing.T, threshold int64) *economy {
	e := newExecutor(t)

	tokenHash := deployTokenContract(t, e, testBasePrice, testSlope)
	verifyHash := deployVerifyContract(t, e, tokenHash, threshold)

	token := e.CommitteeInvoker(tokenHash)
	token.Invoke(t, stackitem.Null{}, "setVerifyContract", verifyHash)

	return &economy{
		Executor:   e,
		tokenHash:  tokenHash,
		verifyHash: verifyHash,
		token:      token,
		verify:     e.CommitteeInvoker(verifyHash),
	}
}

func (ec *economy) setConfig(t *testing.T, key string, val int64) {
	ec.verify.Invoke(t, stackitem.Null{}, "setConfig", ec.CommitteeHash, key, val)
}

func (ec *economy) grantRole(t *testing.T, role int64) neotest.Signer {
	acc := ec.verify.NewAccount(t)
	ec.verify.Invoke(t, stackitem.Null{}, "grantRole", ec.CommitteeHash, acc.ScriptHash(), role)
	return acc
}

func (ec *economy) newProducer(t *testing.T) neotest.Signer {
	return ec.grantRole(t, int64(cst.RoleProducer))
}

func (ec *economy) newJudges(t *testing.T, n int) []neotest.Signer {
	judges := make([]neotest.Signer, n)
	for i := range judges {
		judges[i] = ec.grantRole(t, int64(cst.RoleJudge))
	}
	return judges
}

func (ec *economy) submitReport(t *testing.T, producer neotest.Signer, id int64,
	quantity, energy, water, chemical, logistics, sequestration int64) {
	ec.verify.WithSigners(producer).Invoke(t, stackitem.Make(id), "submitReport",
		producer.ScriptHash(), randomEvidenceRef(),
		quantity, energy, water, chemical, logistics, sequestration)
}

func (ec *economy) castVote(t *testing.T, id int64, judge neotest.Signer, support bool) {
	ec.verify.WithSigners(judge).Invoke(t, stackitem.Null{}, "castVote",
		id, judge.ScriptHash(), support)
}

func (ec *economy) tokenBalance(t *testing.T, acc util.Uint160) int64 {
	s, err := ec.token.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)

	v, err := s.Pop().Item().TryInteger()
	require.NoError(t, err)
	return v.Int64()
}
