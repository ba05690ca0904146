/*
Package bondingcurve implements the T2 token contract issued against GAS by a
linear-price bonding curve.

The price of a token at supply x is x/S, where S is the slope fixed at
deployment, so raising the supply from s0 to s1 costs (s1² - s0²) / 2S GAS.
GAS sent to the contract mints the amount of tokens it buys at the committed
supply. Minted tokens do not enter circulation right away: they are locked in
the beneficiary's vault entry for the release delay and count only toward the
committed supply used for pricing. ReleaseTokens moves unlocked tokens to the
beneficiary's balance, increasing circulating (total) supply.

Burning released tokens pays back the price of the top of the circulating
supply from the GAS reserve. GAS amounts (8 decimals) are scaled by 10^10 to
the token precision and scaled back rounding down, so the reserve always
covers the curve.

# Contract notifications

Mint notification. It is produced when GAS is received and tokens are minted
into the vault.

	Mint:
	  - name: beneficiary
	    type: Hash160
	  - name: value
	    type: Integer
	  - name: amount
	    type: Integer

Locked notification. It contains the whole pending vault entry of the
beneficiary after a mint.

	Locked:
	  - name: beneficiary
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: until
	    type: Integer

Released notification. It is produced when locked tokens are released.

	Released:
	  - name: beneficiary
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification. It is produced when tokens are burnt for a GAS refund.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: refund
	    type: Integer

Transfer, Approval and OwnershipTransferred notifications are the same as in
other settlement token contracts.
*/
package bondingcurve

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'owner' -> interop.Hash160
   contract owner
 - 'slope' -> int
   curve parameter S in token fractions
 - 'delay' -> int
   release delay in milliseconds
 - 'committed' -> int
   supply used for pricing, including locked tokens
 - 'reserve' -> int
   GAS backing the curve
 - 'supply' -> int
   circulating supply of T2 tokens
 - 'b'<interop.Hash160> -> int
   account balances
 - 'p'<owner><spender> -> int
   remaining allowances
 - 'v'<interop.Hash160> -> std.Serialize(timelock.Entry)
   pending vault entries by beneficiary
*/
