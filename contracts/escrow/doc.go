/*
Package escrow implements Escrow contract holding third-party token transfers
for a cooling-off period.

The payer approves the escrow contract on some NEP-17 asset with allowances
and calls receiveTokens. The call must be witnessed by the payer itself, so
an allowance alone does not let a third party start the cooling-off period
on the payer's funds. Escrow checks the allowance, records the vault entry
of the recipient and then pulls the tokens with transferFrom. After the
cooling-off period (at least three days, set at deployment) anyone can call
releaseTokens to pay the locked tokens out to the recipient. Each recipient
has one entry per asset; repeated payments accumulate and move the deadline.

# Contract notifications

Received notification. It is produced when tokens are locked in escrow.

	Received:
	  - name: asset
	    type: Hash160
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: until
	    type: Integer

Released notification. It is produced when locked tokens are paid out.

	Released:
	  - name: asset
	    type: Hash160
	  - name: to
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
package escrow

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner
 - 'coolingOff' -> int
   cooling-off period in milliseconds
 - 'v'<asset><beneficiary> -> std.Serialize(timelock.Entry)
   pending vault entries, both parts are interop.Hash160
 - 'i'<asset> -> []byte{1}
   set only while receiveTokens pulls the asset
*/
