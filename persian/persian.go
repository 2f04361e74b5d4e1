// Package persian holds the text helpers shared by the search and order
// entry screens: digit conversion, Arabic to Persian letter
// canonicalization and the money input formatter.
package persian

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

var (
	ErrEmpty     = errors.New("empty number")
	ErrNotNumber = errors.New("not a number")
)

const (
	persianZero = '۰' // U+06F0
	arabicZero  = '٠' // U+0660
)

var letters = strings.NewReplacer("ي", "ی", "ك", "ک")

// ToPersianDigits replaces ASCII digits with Persian digits.
func ToPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianZero + (r - '0')
		}
		return r
	}, s)
}

// ToLatinDigits replaces Persian and Arabic-Indic digits with ASCII digits.
func ToLatinDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= persianZero && r <= persianZero+9:
			return '0' + (r - persianZero)
		case r >= arabicZero && r <= arabicZero+9:
			return '0' + (r - arabicZero)
		}
		return r
	}, s)
}

// NormalizeLetters maps the Arabic yeh and kaf to their Persian forms.
func NormalizeLetters(s string) string {
	return letters.Replace(s)
}

// Fold canonicalizes letters and case folds s for comparison.
func Fold(s string) string {
	// A Caser keeps state, so one per call.
	return cases.Fold().String(NormalizeLetters(s))
}

// ParseNumber parses a user typed number. Persian digits, thousands
// separators and the Persian decimal mark are accepted.
func ParseNumber(s string) (float64, error) {
	clean := strings.TrimSpace(ToLatinDigits(s))
	clean = strings.NewReplacer(",", "", "٬", "", "٫", ".").Replace(clean)
	if clean == "" {
		return 0, ErrEmpty
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumber)
	}
	return v, nil
}

// FormatMoneyInput is the live formatter for money fields: every non digit
// is dropped and the rest is grouped by thousands with commas. It returns
// the empty string when no digit is left.
func FormatMoneyInput(s string) string {
	var b strings.Builder
	for _, r := range ToLatinDigits(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	n, ok := new(big.Int).SetString(b.String(), 10)
	if !ok {
		return ""
	}
	return humanize.BigComma(n)
}

// FormatLarge renders the integer part of v grouped by thousands, in
// Persian digits. Magnitudes beyond int64 are kept exact.
func FormatLarge(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return ToPersianDigits(humanize.BigComma(decimal.NewFromFloat(v).Truncate(0).BigInt()))
}
