/*
Package sanction implements the T1 token contract with an owner-managed ban
list.

T1 is a regular settlement ledger (NEP-17 with allowances) which refuses every
transfer touching a banned account. The sender is checked before the receiver,
so a transfer between two banned accounts always fails as a banned sender.
The contract can't ban itself.

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

Banned notification. It is produced when a new address gets into the ban list.

	Banned:
	  - name: address
	    type: Hash160

Unbanned notification. It is produced when an address is removed from the ban
list.

	Unbanned:
	  - name: address
	    type: Hash160

OwnershipTransferred notification.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package sanction

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner, the only account managing the ban list
 - 'supply' -> int
   circulating supply of T1 tokens
 - 'b'<interop.Hash160> -> int
   account balances
 - 'p'<owner><spender> -> int
   remaining allowances
 - 'x'<interop.Hash160> -> []byte{1}
   banned addresses
*/
