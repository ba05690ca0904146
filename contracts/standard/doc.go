/*
Package standard implements the plain T0 token contract.

T0 is a NEP-17 token with 18 decimals extended with ERC-20 style allowances
(approve, allowance and transferFrom). It carries no settlement policy of its
own and is the usual asset held by the escrow contract. The whole initial
supply is minted to the owner at deployment.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. It is produced when an allowance is set.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

OwnershipTransferred notification.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package standard

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner
 - 'supply' -> int
   circulating supply of T0 tokens
 - 'b'<interop.Hash160> -> int
   account balances, missing for empty accounts
 - 'p'<owner><spender> -> int
   remaining allowances, both parts are interop.Hash160
*/
