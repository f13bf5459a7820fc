/*
Package verify implements the EcoVerify contract deployed to the EcoLedger
chain.

EcoVerify coordinates the closed verification economy: producers submit
environmental-impact reports, judges vote on them with reputation-weighted
ballots, disputed verdicts go through governance arbitration, and finalized
outcomes are settled in eco tokens through the token contract. The contract
owns the report lifecycle state machine (Pending, Verified, Rejected,
Challenged, Finalized), the reputation and carbon-debt ledgers, the role
registry and the adaptive global emissions threshold. All value movements
are atomic with the state transition that causes them: a failed call leaves
no partial state behind.

# Contract notifications

ReportSubmitted notification. Produced when a producer stores a new report.

	ReportSubmitted:
	  - name: reportID
	    type: Integer
	  - name: producer
	    type: Hash160
	  - name: emissions
	    type: Integer
	  - name: threshold
	    type: Integer

VoteCast notification. Produced per accepted judge ballot.

	VoteCast:
	  - name: reportID
	    type: Integer
	  - name: judge
	    type: Hash160
	  - name: support
	    type: Boolean
	  - name: weight
	    type: Integer

QuorumResolved notification. Produced when voting closes with a provisional
verdict and the challenge window opens.

	QuorumResolved:
	  - name: reportID
	    type: Integer
	  - name: status
	    type: Integer
	  - name: challengeEnd
	    type: Integer

ChallengeRaised notification. Produced when a challenger bonds against a
provisional verdict.

	ChallengeRaised:
	  - name: reportID
	    type: Integer
	  - name: challenger
	    type: Hash160
	  - name: bond
	    type: Integer

ChallengeResolved notification. Produced on governance arbitration. The spot
price at which an overturning challenger's bond was converted to tokens is
included so that indexers can audit the conversion.

	ChallengeResolved:
	  - name: reportID
	    type: Integer
	  - name: uphold
	    type: Boolean
	  - name: verifiedCorrect
	    type: Boolean
	  - name: spotPrice
	    type: Integer
	  - name: rewardTokens
	    type: Integer

ReportFinalized notification. Produced on expiry-path finalization.

	ReportFinalized:
	  - name: reportID
	    type: Integer
	  - name: verifiedCorrect
	    type: Boolean

JudgeRewarded, JudgeSlashed, ProducerRewarded, ProducerPenalized,
DebtSettled, ThresholdUpdated, RoleGranted, RoleRevoked and Deposit
notifications carry the identifiers and amounts of the respective
settlement steps.
*/
package verify

/*
Contract storage model.

# Summary
Current conventions:
 <id>: variable-length little-endian integer report identifier bytes
 <account>: 20-byte NEO account script hash

Key-value storage format:
 - 'r<id>' -> std.Serialize(Report)
   report records, the single source of lifecycle truth
 - 'v<id><account>' -> std.Serialize(Vote)
   one ballot per (report, judge), existence means the judge has voted
 - 'u<account>' -> int
   judge reputation score
 - 'd<account>' -> int
   producer carbon debt, absent when zero
 - 'R<role><account>' -> int
   role membership records (producer, judge, governance)
 - 'reportID' -> int
   identifier of the latest submitted report
 - 'threshold' -> int
   live global per-unit emissions threshold
 - 'tokenScriptHash' -> interop.Hash160
   token contract reference
 - 'config<name>' -> int
   configuration records overriding built-in defaults
 - 'guard' -> int
   re-entrancy guard, present only within a payable operation

# Reports
Report records are never deleted; Finalized is terminal and the history
stays available for audit. The threshold stored in a report is the global
threshold snapshotted at submission time.

# Challenge bonds
Bonds are custodied as native GAS on the contract account. A forfeited bond
simply stays there.
*/
