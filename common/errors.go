package common

const (
	// ErrInsufficientBalance appears when an account holds less than the
	// amount being moved or burnt.
	ErrInsufficientBalance = "insufficient balance"
	// ErrInsufficientAllowance appears when a spender is approved for less
	// than the amount it tries to move.
	ErrInsufficientAllowance = "insufficient allowance"
	// ErrUnauthorized appears when an owner-only method is called without
	// the owner's witness.
	ErrUnauthorized = "caller is not the owner"
	// ErrWitnessFailed appears when the method must be witnessed by the
	// account it operates on but was not.
	ErrWitnessFailed = "witness check failed"
	// ErrInvalidAddress appears on malformed or self-referential addresses.
	ErrInvalidAddress = "invalid address"
	// ErrInvalidRecipient appears when value is sent to the null address.
	ErrInvalidRecipient = "invalid recipient: zero address"
	// ErrBannedSender appears when the sender of a transfer is sanctioned.
	ErrBannedSender = "the address of the sender is banned"
	// ErrBannedReceiver appears when the receiver of a transfer is sanctioned.
	ErrBannedReceiver = "the address of the receiver is banned"
	// ErrStillLocked appears when a timelock is released before its deadline.
	ErrStillLocked = "tokens are still locked"
	// ErrNothingToRelease appears when a timelock holds nothing.
	ErrNothingToRelease = "nothing to release"
	// ErrInsufficientReserve means the issuer reserve can't cover a refund.
	// It is unreachable while pricing invariants hold and signals a bug.
	ErrInsufficientReserve = "insufficient reserve"
	// ErrZeroAmount appears when a value-moving call carries no value.
	ErrZeroAmount = "amount must be positive"
)
