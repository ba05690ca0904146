/*
Package godmode implements the T3 token contract with a privileged override
transfer.

Besides regular NEP-17 transfers with allowances, the contract owner can move
tokens between any two accounts with transferWithGodMode. The override ignores
the sender's witness and allowances but still can't move more than the sender
holds.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification, it is also
produced by the override transfer.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification.

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
package godmode

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner allowed to use override transfers
 - 'supply' -> int
   circulating supply of T3 tokens
 - 'b'<interop.Hash160> -> int
   account balances
 - 'p'<owner><spender> -> int
   remaining allowances
*/
