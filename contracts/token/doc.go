/*
Package token implements the EcoToken contract deployed to the EcoLedger
chain.

EcoToken is the NEP-17 fungible token of the closed verification economy.
Besides the standard token surface it runs the bonding curve market: the
price of a token is a linear function of total supply, and buying or selling
is priced as the exact trapezoidal integral of the curve between the old and
the new supply. The market custodies its GAS reserve on the contract
account. Mint and burn primitives are reserved for the verification
contract, which uses them to pay rewards and apply fines.

# Contract notifications

Transfer notification. Produced on every token movement, including mints
(empty from) and burns (empty to), as per NEP-17.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Deposit notification. Produced when plain GAS is transferred to the contract
account as a reserve top-up.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

TokensPurchased notification. Produced when a buyer mints tokens through the
market.

	TokensPurchased:
	  - name: buyer
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: cost
	    type: Integer

TokensSold notification. Produced when a seller burns tokens through the
market.

	TokensSold:
	  - name: seller
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: payout
	    type: Integer
*/
package token

/*
Contract storage model.

# Summary
Current conventions:
 <holder>: 20-byte NEO account script hash

Key-value storage format:
 - 'a<holder>' -> int
   eco token balance of the holder, absent when zero
 - 'TokenSupply' -> int
   amount of eco tokens in circulation
 - 'v' -> interop.Hash160
   verification contract reference, the only account allowed to mint/burn
 - 'b' -> int
   bonding curve base price in GAS minimal units
 - 's' -> int
   bonding curve slope in GAS minimal units per token
 - 'g' -> int
   market re-entrancy guard, present only within a market operation

# Market
The GAS reserve backing sell payouts is not tracked in storage, it is the
native GAS balance of the contract account.
*/
