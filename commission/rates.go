package commission

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Market string

const (
	TSE Market = "TSE" // Tehran Stock Exchange
	IFB Market = "IFB" // Iran Fara Bourse
	ETF Market = "ETF"
)

// Class is a row of the rate table.
type Class string

const (
	ClassStock  Class = "Stock"
	ClassRights Class = "Rights"
	ClassBonds  Class = "Bonds"
	ClassEquity Class = "Equity"
	ClassFixed  Class = "Fixed"
	ClassGold   Class = "Gold"
)

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// SideRates holds the fee rate of each side, as a fraction of trade value.
type SideRates struct {
	Buy  decimal.Decimal `yaml:"buy" json:"buy"`
	Sell decimal.Decimal `yaml:"sell" json:"sell"`
}

func (r SideRates) get(s Side) (decimal.Decimal, bool) {
	switch s {
	case Buy:
		return r.Buy, true
	case Sell:
		return r.Sell, true
	}
	return decimal.Zero, false
}

// RateTable maps market and class to side rates.
type RateTable map[Market]map[Class]SideRates

func rates(buy, sell string) SideRates {
	return SideRates{Buy: decimal.RequireFromString(buy), Sell: decimal.RequireFromString(sell)}
}

// DefaultRates is the fee schedule in force on the exchanges.
var DefaultRates = RateTable{
	TSE: {
		ClassStock:  rates("0.003712", "0.0088"),
		ClassRights: rates("0.003712", "0.0088"),
	},
	IFB: {
		ClassStock:  rates("0.003632", "0.00891"),
		ClassRights: rates("0.003632", "0.00891"),
		ClassBonds:  rates("0.000725", "0.000725"),
	},
	ETF: {
		ClassEquity: rates("0.00116", "0.0011875"),
		ClassFixed:  rates("0.0001875", "0.0001875"),
		ClassGold:   rates("0.0011", "0.0011"),
	},
}

// Lookup returns the rate for one cell of the table.
func (t RateTable) Lookup(m Market, c Class, s Side) (decimal.Decimal, error) {
	row, ok := t[m][c]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s/%s: %w", m, c, ErrInvalidAssetClass)
	}
	r, ok := row.get(s)
	if !ok {
		return decimal.Zero, fmt.Errorf("side %q: %w", s, ErrInvalidAssetClass)
	}
	return r, nil
}

// Clone returns a deep copy of t.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for m, classes := range t {
		cp := make(map[Class]SideRates, len(classes))
		for c, r := range classes {
			cp[c] = r
		}
		out[m] = cp
	}
	return out
}

// Validate checks that every rate is in [0, 1).
func (t RateTable) Validate() error {
	one := decimal.NewFromInt(1)
	for m, classes := range t {
		for c, r := range classes {
			for _, v := range []decimal.Decimal{r.Buy, r.Sell} {
				if v.IsNegative() || v.GreaterThanOrEqual(one) {
					return fmt.Errorf("rate %s/%s = %s out of range", m, c, v)
				}
			}
		}
	}
	return nil
}

// ParseSide parses "buy" or "sell", ignoring case.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	}
	return "", fmt.Errorf("side %q: %w", s, ErrInvalidAssetClass)
}

// ParseMarket parses a market name, ignoring case. Empty means TSE.
func ParseMarket(s string) (Market, error) {
	switch Market(strings.ToUpper(strings.TrimSpace(s))) {
	case "", TSE:
		return TSE, nil
	case IFB:
		return IFB, nil
	}
	return "", fmt.Errorf("market %q: %w", s, ErrInvalidInput)
}
