// Package commission computes brokerage fees and settlement amounts for
// trades on the Tehran exchanges.
package commission

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/kinko/pms/persian"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidAssetClass = errors.New("invalid asset class")
)

// AssetClass is the trade category chosen on the order form.
type AssetClass string

const (
	Stock     AssetClass = "Stock"
	Rights    AssetClass = "Rights"
	Bonds     AssetClass = "Bonds"
	Gold      AssetClass = "Gold"
	Fixed     AssetClass = "Fixed"
	ETFEquity AssetClass = "ETF_Equity"
)

var assetClasses = []AssetClass{Stock, Rights, Bonds, Gold, Fixed, ETFEquity}

// ParseAssetClass matches s against the known classes, ignoring case.
func ParseAssetClass(s string) (AssetClass, error) {
	s = strings.TrimSpace(s)
	for _, c := range assetClasses {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidAssetClass)
}

// Result is the breakdown of one trade.
type Result struct {
	BaseValue   decimal.Decimal
	Commission  decimal.Decimal // whole rials, rounded down
	FinalAmount decimal.Decimal
	RateUsed    decimal.Decimal
}

func (r Result) BaseValueFloat() float64   { return r.BaseValue.InexactFloat64() }
func (r Result) CommissionInt() int64      { return r.Commission.IntPart() }
func (r Result) FinalAmountFloat() float64 { return r.FinalAmount.InexactFloat64() }
func (r Result) RateFloat() float64        { return r.RateUsed.InexactFloat64() }

// Engine computes commissions from a rate table. The zero value uses
// DefaultRates.
type Engine struct {
	Rates RateTable

	// ExactClassRates reads the Rights and Bonds rows for those classes.
	// When false every non ETF class is charged at the Stock rate of its
	// market.
	ExactClassRates bool
}

// Calculate computes a trade with the default engine.
func Calculate(price, qty float64, side Side, class AssetClass, market Market) (Result, error) {
	return Engine{}.Calculate(price, qty, side, class, market)
}

// Calculate returns the trade value, the fee and the amount that changes
// hands. Buys pay value plus fee, sells receive value minus fee. Gold,
// Fixed and ETF_Equity are priced from the ETF rows whatever the market;
// any market other than IFB is treated as TSE.
func (e Engine) Calculate(price, qty float64, side Side, class AssetClass, market Market) (Result, error) {
	if err := checkAmount("price", price); err != nil {
		return Result{}, err
	}
	if err := checkAmount("quantity", qty); err != nil {
		return Result{}, err
	}

	rate, err := e.rate(side, class, market)
	if err != nil {
		return Result{}, err
	}

	base := decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(qty))
	fee := base.Mul(rate).Floor()

	final := base.Add(fee)
	if side == Sell {
		final = base.Sub(fee)
	}

	return Result{
		BaseValue:   base,
		Commission:  fee,
		FinalAmount: final,
		RateUsed:    rate,
	}, nil
}

// CalculateText is Calculate for numbers as typed in the order form,
// possibly in Persian digits with thousands separators.
func (e Engine) CalculateText(price, qty string, side Side, class AssetClass, market Market) (Result, error) {
	p, err := persian.ParseNumber(price)
	if err != nil {
		return Result{}, fmt.Errorf("price: %w: %w", ErrInvalidInput, err)
	}
	q, err := persian.ParseNumber(qty)
	if err != nil {
		return Result{}, fmt.Errorf("quantity: %w: %w", ErrInvalidInput, err)
	}
	return e.Calculate(p, q, side, class, market)
}

func (e Engine) rate(side Side, class AssetClass, market Market) (decimal.Decimal, error) {
	table := e.Rates
	if table == nil {
		table = DefaultRates
	}

	if side != Buy && side != Sell {
		return decimal.Zero, fmt.Errorf("side %q: %w", side, ErrInvalidAssetClass)
	}

	switch class {
	case Gold:
		return table.Lookup(ETF, ClassGold, side)
	case Fixed:
		return table.Lookup(ETF, ClassFixed, side)
	case ETFEquity:
		return table.Lookup(ETF, ClassEquity, side)
	case Stock, Rights, Bonds:
	default:
		return decimal.Zero, fmt.Errorf("%q: %w", class, ErrInvalidAssetClass)
	}

	mkt := TSE
	if market == IFB {
		mkt = IFB
	}
	row := ClassStock
	if e.ExactClassRates {
		row = Class(class)
	}
	return table.Lookup(mkt, row, side)
}

func checkAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s %v: %w", name, v, ErrInvalidInput)
	}
	return nil
}
