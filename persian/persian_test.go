package persian

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestToPersianDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "۱۴۰۲/۰۷/۰۵", ToPersianDigits("1402/07/05"))
	assert.Equal(t, "فولاد", ToPersianDigits("فولاد"))
	assert.Equal(t, "", ToPersianDigits(""))
}

func TestToLatinDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1234567890", ToLatinDigits("۱۲۳۴۵۶۷۸۹۰"))
	assert.Equal(t, "42", ToLatinDigits("٤٢"))
	assert.Equal(t, "a1b", ToLatinDigits("a۱b"))
}

func TestDigitsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64().Draw(t, "n")
		s := strconv.FormatInt(n, 10)
		if got := ToLatinDigits(ToPersianDigits(s)); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	})
}

func TestNormalizeLetters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "کیمیا", NormalizeLetters("كيميا"))
	assert.Equal(t, "کیمیا", NormalizeLetters("کیمیا"))
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", Fold("ABC"))
	assert.Equal(t, Fold("شپديس"), Fold("شپدیس"))
	assert.Equal(t, "بانک", Fold("بانك"))
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain", "1000", 1000},
		{"grouped", "12,345", 12345},
		{"persian", "۱۲٬۳۴۵", 12345},
		{"decimal mark", "۱٫۵", 1.5},
		{"spaces", "  7 ", 7},
		{"negative", "-20", -20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseNumber(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseNumber("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ParseNumber(" , ")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ParseNumber("abc")
	assert.ErrorIs(t, err, ErrNotNumber)

	_, err = ParseNumber("NaN")
	assert.ErrorIs(t, err, ErrNotNumber)
}

func TestFormatMoneyInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12,345", FormatMoneyInput("۱۲۳۴۵"))
	assert.Equal(t, "1,000,000", FormatMoneyInput("1,000,000"))
	assert.Equal(t, "1,234", FormatMoneyInput("ریال 1234"))
	assert.Equal(t, "5", FormatMoneyInput("0005"))
	assert.Equal(t, "", FormatMoneyInput("abc"))
	assert.Equal(t, "123,456,789,012,345,678,901", FormatMoneyInput("123456789012345678901"))
}

func TestFormatLarge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "۱۰,۰۳۷", FormatLarge(10037))
	assert.Equal(t, "۹,۹۸۹", FormatLarge(9989.9))
	assert.Equal(t, "۰", FormatLarge(0))
	assert.Equal(t, "-۱,۲۳۴", FormatLarge(-1234))
	assert.Equal(t, "۰", FormatLarge(-0.5))
	assert.Empty(t, FormatLarge(math.NaN()))
	assert.Empty(t, FormatLarge(math.Inf(1)))
}

func TestFormatLargeBeyondInt64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "۱۰,۰۰۰,۰۰۰,۰۰۰,۰۰۰,۰۰۰,۰۰۰", FormatLarge(1e19))
	assert.Equal(t, "-۱۰,۰۰۰,۰۰۰,۰۰۰,۰۰۰,۰۰۰,۰۰۰", FormatLarge(-1e19))
	assert.Equal(t, "۹,۲۲۳,۳۷۲,۰۳۶,۸۵۴,۷۷۵,۸۰۸", FormatLarge(math.Exp2(63)))
}
