// Package deploy provides chain deployment of the EcoLedger contract pair.
package deploy

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for EcoLedger deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// TokenContractPrm groups deployment parameters of the EcoLedger Token contract.
type TokenContractPrm struct {
	Common CommonDeployPrm

	// Bonding curve parameters in GAS minimal units per token. Zero values
	// leave the contract defaults in effect.
	BasePrice int64
	Slope     int64
}

// VerifyContractPrm groups deployment parameters of the EcoLedger Verify contract.
type VerifyContractPrm struct {
	Common CommonDeployPrm

	// Starting emission intensity threshold of the verification state machine.
	InitialThreshold int64
}

// Prm groups all parameters of the EcoLedger deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Governance account used for transaction signing (must be unlocked). It
	// pays for deployment and becomes the governance authority of the Verify
	// contract, so in practice it is the committee account. The account must
	// be able to fully sign transactions on its own.
	CommitteeAccount *wallet.Account

	TokenContract  TokenContractPrm
	VerifyContract VerifyContractPrm
}

// Contracts groups addresses of the deployed EcoLedger contracts.
type Contracts struct {
	Token  util.Uint160
	Verify util.Uint160
}

// Deploy initializes the EcoLedger system on the Neo network represented by
// given Prm.Blockchain. The procedure is idempotent: contracts already present
// on the chain are left untouched, so it can be safely re-run after a partial
// failure or by a redundant deployer process.
//
// Summary of stages:
//  1. Token contract deployment (the bonding curve market)
//  2. Verify contract deployment (the verification state machine)
//  3. binding the Verify contract to the token market, opening mint and burn
//     to it exclusively
//
// Deploy aborts only by context or when a fatal error occurs. Deployment
// progress is logged in detail.
func Deploy(ctx context.Context, prm Prm) (Contracts, error) {
	var res Contracts

	committeeHash := prm.CommitteeAccount.ScriptHash()

	act, err := actor.NewTuned(prm.Blockchain, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account: committeeHash,
			Scopes:  transaction.Global,
		},
		Account: prm.CommitteeAccount,
	}}, actor.Options{
		CheckerModifier: deployTransactionModifier(func() uint32 {
			height, err := prm.Blockchain.GetBlockCount()
			if err != nil {
				prm.Logger.Warn("failed to read current chain height", zap.Error(err))
				return 0
			}
			return height
		}),
	})
	if err != nil {
		return res, fmt.Errorf("init transaction sender from the governance account: %w", err)
	}

	mgmt := management.New(act)

	syncPrm := syncContractPrm{
		blockchain: prm.Blockchain,
		actor:      act,
		management: mgmt,
	}

	// Deploy the contracts in strict order, the market comes first since the
	// verification contract binds to it at construction.

	syncPrm.logger = prm.Logger.With(zap.String("contract", prm.TokenContract.Common.Manifest.Name))
	syncPrm.localNEF = prm.TokenContract.Common.NEF
	syncPrm.localManifest = prm.TokenContract.Common.Manifest
	syncPrm.deployArgs = []any{prm.TokenContract.BasePrice, prm.TokenContract.Slope}

	prm.Logger.Info("synchronizing Token contract with the chain...")

	res.Token, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync Token contract with the chain: %w", err)
	}

	prm.Logger.Info("Token contract successfully synchronized", zap.Stringer("address", res.Token))

	syncPrm.logger = prm.Logger.With(zap.String("contract", prm.VerifyContract.Common.Manifest.Name))
	syncPrm.localNEF = prm.VerifyContract.Common.NEF
	syncPrm.localManifest = prm.VerifyContract.Common.Manifest
	syncPrm.deployArgs = []any{res.Token, committeeHash, prm.VerifyContract.InitialThreshold}

	prm.Logger.Info("synchronizing Verify contract with the chain...")

	res.Verify, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync Verify contract with the chain: %w", err)
	}

	prm.Logger.Info("Verify contract successfully synchronized", zap.Stringer("address", res.Verify))

	err = bindVerifyContract(ctx, prm.Logger, prm.Blockchain, act, res.Token, res.Verify)
	if err != nil {
		return res, fmt.Errorf("bind Verify contract to the token market: %w", err)
	}

	return res, nil
}

type syncContractPrm struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	management *management.Contract

	localNEF      nef.File
	localManifest manifest.Manifest
	deployArgs    []any
}

// syncContract makes sure the locally built contract is on the chain. The
// expected address is a function of the deploying account, so a re-run finds
// the previously deployed instance instead of duplicating it. Code changes of
// a contract that is already on the chain are not applied here, they go
// through the contract's own update method.
func syncContract(ctx context.Context, prm syncContractPrm) (util.Uint160, error) {
	hash := state.CreateContractHash(prm.actor.Sender(), prm.localNEF.Checksum, prm.localManifest.Name)

	onChainState, err := prm.blockchain.GetContractStateByHash(hash)
	if err != nil && !isErrContractNotFound(err) {
		return util.Uint160{}, fmt.Errorf("read on-chain state of the contract: %w", err)
	}

	if onChainState != nil {
		if onChainState.NEF.Checksum != prm.localNEF.Checksum {
			prm.logger.Info("contract is on the chain with different code, update goes through the contract's own method, skipping",
				zap.Uint32("local checksum", prm.localNEF.Checksum),
				zap.Uint32("chain checksum", onChainState.NEF.Checksum))
		} else {
			prm.logger.Info("contract is already on the chain")
		}
		return hash, nil
	}

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	prm.logger.Info("contract is missing on the chain, deploying...")

	txHash, vub, err := prm.management.Deploy(&prm.localNEF, &prm.localManifest, prm.deployArgs)
	aer, err := prm.actor.Wait(txHash, vub, err)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("deploy contract: %w", err)
	}
	if aer.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deploy transaction %s failed: %s", txHash, aer.FaultException)
	}

	prm.logger.Info("contract successfully deployed", zap.Stringer("address", hash))

	return hash, nil
}

// bindVerifyContract opens mint and burn of the token market to the
// verification contract. Without the binding finalization cannot pay rewards.
func bindVerifyContract(ctx context.Context, l *zap.Logger, b Blockchain, act *actor.Actor, tokenContract, verifyContract util.Uint160) error {
	// the getter faults while the binding is unset
	current, err := unwrap.Uint160(invoker.New(b, nil).Call(tokenContract, "verifyContract"))
	if err == nil {
		if current.Equals(verifyContract) {
			l.Info("verification contract is already bound to the token market")
			return nil
		}
		return fmt.Errorf("token market is bound to unexpected verification contract %s", current.StringLE())
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	l.Info("binding verification contract to the token market...")

	txHash, vub, err := act.SendCall(tokenContract, "setVerifyContract", verifyContract)
	aer, err := act.Wait(txHash, vub, err)
	if err != nil {
		return fmt.Errorf("set verification contract: %w", err)
	}
	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("binding transaction %s failed: %s", txHash, aer.FaultException)
	}

	l.Info("verification contract successfully bound to the token market")

	return nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

// returns actor.TransactionCheckerModifier which checks that invocation
// finished with 'HALT' state and, if so, sets transaction's nonce and
// ValidUntilBlock to 100*N and 100*(N+1) correspondingly, where
// 100*N <= current height < 100*(N+1). With this, redundant deployer
// processes compose identical transactions and the chain deduplicates them.
func deployTransactionModifier(getBlockchainHeight func() uint32) actor.TransactionCheckerModifier {
	return func(r *result.Invoke, tx *transaction.Transaction) error {
		err := actor.DefaultCheckerModifier(r, tx)
		if err != nil {
			return err
		}

		curHeight := getBlockchainHeight()
		const span = 100
		n := curHeight / span

		tx.Nonce = n * span

		if math.MaxUint32-span > tx.Nonce {
			tx.ValidUntilBlock = tx.Nonce + span
		} else {
			tx.ValidUntilBlock = math.MaxUint32
		}

		return nil
	}
}
