package commission

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculate_StockBuyTSE(t *testing.T) {
	t.Parallel()

	got, err := Calculate(1000, 10, Buy, Stock, TSE)
	require.NoError(t, err)

	assertDec(t, "10000", got.BaseValue)
	assertDec(t, "0.003712", got.RateUsed)
	assertDec(t, "37", got.Commission)
	assertDec(t, "10037", got.FinalAmount)
	assert.Equal(t, int64(37), got.CommissionInt())
	assert.InDelta(t, 10037.0, got.FinalAmountFloat(), 1e-9)
}

func TestCalculate_GoldIgnoresMarket(t *testing.T) {
	t.Parallel()

	for _, m := range []Market{"", TSE, IFB} {
		got, err := Calculate(1000, 10, Sell, Gold, m)
		require.NoError(t, err)
		assertDec(t, "0.0011", got.RateUsed)
		assertDec(t, "11", got.Commission)
		assertDec(t, "9989", got.FinalAmount)
	}
}

func TestCalculate_Rates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		side   Side
		class  AssetClass
		market Market
		rate   string
	}{
		{"tse stock sell", Sell, Stock, TSE, "0.0088"},
		{"ifb stock buy", Buy, Stock, IFB, "0.003632"},
		{"ifb stock sell", Sell, Stock, IFB, "0.00891"},
		{"unknown market is tse", Buy, Stock, Market("XYZ"), "0.003712"},
		{"default market", Buy, Stock, "", "0.003712"},
		{"fixed buy", Buy, Fixed, IFB, "0.0001875"},
		{"etf equity buy", Buy, ETFEquity, TSE, "0.00116"},
		{"etf equity sell", Sell, ETFEquity, TSE, "0.0011875"},
		{"rights uses stock row", Buy, Rights, TSE, "0.003712"},
		{"bonds uses stock row", Sell, Bonds, IFB, "0.00891"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Calculate(100, 1, tt.side, tt.class, tt.market)
			require.NoError(t, err)
			assertDec(t, tt.rate, got.RateUsed)
		})
	}
}

func TestCalculate_ExactClassRates(t *testing.T) {
	t.Parallel()

	e := Engine{ExactClassRates: true}

	got, err := e.Calculate(1000, 1000, Buy, Bonds, IFB)
	require.NoError(t, err)
	assertDec(t, "0.000725", got.RateUsed)
	assertDec(t, "725", got.Commission)

	// No bonds row on TSE.
	_, err = e.Calculate(1000, 1000, Buy, Bonds, TSE)
	assert.ErrorIs(t, err, ErrInvalidAssetClass)
}

func TestCalculate_FeeRoundsDown(t *testing.T) {
	t.Parallel()

	got, err := Calculate(999, 1, Buy, Stock, TSE)
	require.NoError(t, err)
	// 999 * 0.003712 = 3.708288
	assertDec(t, "3", got.Commission)
	assertDec(t, "1002", got.FinalAmount)

	got, err = Calculate(999, 1, Sell, Stock, TSE)
	require.NoError(t, err)
	// 999 * 0.0088 = 8.7912
	assertDec(t, "8", got.Commission)
	assertDec(t, "991", got.FinalAmount)
}

func TestCalculate_Zero(t *testing.T) {
	t.Parallel()

	got, err := Calculate(0, 100, Buy, Stock, TSE)
	require.NoError(t, err)
	assert.True(t, got.BaseValue.IsZero())
	assert.True(t, got.Commission.IsZero())
	assert.True(t, got.FinalAmount.IsZero())
}

func TestCalculate_Errors(t *testing.T) {
	t.Parallel()

	_, err := Calculate(-1, 10, Buy, Stock, TSE)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Calculate(1, math.NaN(), Buy, Stock, TSE)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Calculate(math.Inf(1), 1, Buy, Stock, TSE)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Calculate(1, 1, Side("hold"), Stock, TSE)
	assert.ErrorIs(t, err, ErrInvalidAssetClass)

	_, err = Calculate(1, 1, Buy, AssetClass("Crypto"), TSE)
	assert.ErrorIs(t, err, ErrInvalidAssetClass)

	_, err = Engine{Rates: RateTable{}}.Calculate(1, 1, Buy, Gold, TSE)
	assert.ErrorIs(t, err, ErrInvalidAssetClass)
}

func TestCalculateText(t *testing.T) {
	t.Parallel()

	got, err := Engine{}.CalculateText("۱,۰۰۰", "۱۰", Buy, Stock, TSE)
	require.NoError(t, err)
	assertDec(t, "10037", got.FinalAmount)

	_, err = Engine{}.CalculateText("abc", "10", Buy, Stock, TSE)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Engine{}.CalculateText("100", "", Buy, Stock, TSE)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := ParseSide(" SELL ")
	require.NoError(t, err)
	assert.Equal(t, Sell, s)
	_, err = ParseSide("short")
	assert.ErrorIs(t, err, ErrInvalidAssetClass)

	c, err := ParseAssetClass("etf_equity")
	require.NoError(t, err)
	assert.Equal(t, ETFEquity, c)
	_, err = ParseAssetClass("Equity")
	assert.ErrorIs(t, err, ErrInvalidAssetClass)

	m, err := ParseMarket("")
	require.NoError(t, err)
	assert.Equal(t, TSE, m)
	m, err = ParseMarket("ifb")
	require.NoError(t, err)
	assert.Equal(t, IFB, m)
	_, err = ParseMarket("NYSE")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRateTable(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultRates.Validate())

	cp := DefaultRates.Clone()
	cp[TSE][ClassStock] = SideRates{Buy: dec("0.5"), Sell: dec("0.5")}
	assertDec(t, "0.003712", DefaultRates[TSE][ClassStock].Buy)

	bad := RateTable{TSE: {ClassStock: {Buy: dec("-0.1"), Sell: dec("0.1")}}}
	assert.Error(t, bad.Validate())
}

func TestCalculateProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := float64(rapid.IntRange(0, 10_000_000).Draw(t, "price"))
		qty := float64(rapid.IntRange(0, 1_000_000).Draw(t, "qty"))
		side := rapid.SampledFrom([]Side{Buy, Sell}).Draw(t, "side")
		class := rapid.SampledFrom(assetClasses).Draw(t, "class")
		market := rapid.SampledFrom([]Market{TSE, IFB}).Draw(t, "market")

		a, err := Calculate(price, qty, side, class, market)
		if err != nil {
			t.Fatalf("calculate: %v", err)
		}
		b, _ := Calculate(price, qty, side, class, market)
		if !a.FinalAmount.Equal(b.FinalAmount) || !a.Commission.Equal(b.Commission) {
			t.Fatalf("not idempotent: %v vs %v", a, b)
		}

		exact := a.BaseValue.Mul(a.RateUsed)
		if a.Commission.GreaterThan(exact) || exact.Sub(a.Commission).GreaterThanOrEqual(decimal.NewFromInt(1)) {
			t.Fatalf("fee %s is not floor of %s", a.Commission, exact)
		}
		if !a.Commission.Equal(a.Commission.Floor()) {
			t.Fatalf("fee %s is not whole", a.Commission)
		}

		diff := a.FinalAmount.Sub(a.BaseValue)
		if side == Buy && !diff.Equal(a.Commission) {
			t.Fatalf("buy final %s base %s fee %s", a.FinalAmount, a.BaseValue, a.Commission)
		}
		if side == Sell && !diff.Equal(a.Commission.Neg()) {
			t.Fatalf("sell final %s base %s fee %s", a.FinalAmount, a.BaseValue, a.Commission)
		}
	})
}
