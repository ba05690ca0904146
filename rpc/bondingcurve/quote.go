package bondingcurve

import (
	"errors"
	"fmt"
	"math/big"
)

// GASScale converts GAS fractions (8 decimals) to T2 fractions (18 decimals).
var GASScale = big.NewInt(10_000_000_000)

var (
	errInvalidSlope  = errors.New("slope must be positive")
	errInvalidSupply = errors.New("invalid supply range")
	errInvalidValue  = errors.New("invalid mint value")
	errInvalidBurn   = errors.New("invalid burn amount")
)

// MintQuote returns the amount of T2 minted for value GAS fractions paid at the
// committed supply s0. It mirrors the contract: the result is rounded down and
// may be zero for dust payments, which the contract rejects.
func MintQuote(s0, value, slope *big.Int) (*big.Int, error) {
	if slope.Sign() <= 0 {
		return nil, errInvalidSlope
	}
	if s0.Sign() < 0 || value.Sign() < 0 {
		return nil, errInvalidValue
	}

	// s1 = isqrt(s0² + 2·S·v)
	r := new(big.Int).Mul(s0, s0)
	pay := new(big.Int).Mul(value, GASScale)
	pay.Mul(pay, slope)
	pay.Lsh(pay, 1)
	r.Add(r, pay)
	r.Sqrt(r)

	return r.Sub(r, s0), nil
}

// BurnQuote returns GAS fractions refunded for burning amount of T2 at the
// circulating supply s0.
func BurnQuote(s0, amount, slope *big.Int) (*big.Int, error) {
	if amount.Sign() < 0 || amount.Cmp(s0) > 0 {
		return nil, errInvalidBurn
	}

	return CostQuote(new(big.Int).Sub(s0, amount), s0, slope)
}

// CostQuote returns GAS fractions needed to move supply from s0 to s1, rounded
// down, the same value `cost` method returns.
func CostQuote(s0, s1, slope *big.Int) (*big.Int, error) {
	if slope.Sign() <= 0 {
		return nil, errInvalidSlope
	}
	if s0.Sign() < 0 || s1.Cmp(s0) < 0 {
		return nil, errInvalidSupply
	}

	// (s1² - s0²) / (2·S) / scale
	r := new(big.Int).Mul(s1, s1)
	r.Sub(r, new(big.Int).Mul(s0, s0))
	r.Quo(r, new(big.Int).Lsh(slope, 1))

	return r.Quo(r, GASScale), nil
}

// QuoteMint returns T2 amount minted for value GAS fractions at the current
// state of the curve.
func (c *ContractReader) QuoteMint(value *big.Int) (*big.Int, error) {
	s0, err := c.CommittedSupply()
	if err != nil {
		return nil, fmt.Errorf("get committed supply: %w", err)
	}

	slope, err := c.Slope()
	if err != nil {
		return nil, fmt.Errorf("get slope: %w", err)
	}

	return MintQuote(s0, value, slope)
}

// QuoteBurn returns GAS fractions refunded for burning amount of T2 at the
// current state of the curve.
func (c *ContractReader) QuoteBurn(amount *big.Int) (*big.Int, error) {
	s0, err := c.TotalSupply()
	if err != nil {
		return nil, fmt.Errorf("get total supply: %w", err)
	}

	slope, err := c.Slope()
	if err != nil {
		return nil, fmt.Errorf("get slope: %w", err)
	}

	return BurnQuote(s0, amount, slope)
}
