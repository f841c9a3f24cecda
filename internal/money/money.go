// Package money contains parsing and formatting helpers for monetary
// amounts. Amounts travel as decimal strings with two fraction digits and
// all arithmetic happens in decimal space, never in binary floating point.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ErrAmountInvalid = errors.New("the amount could not be parsed as a number")

// Parse parses a monetary amount from free-text input.
//
// Users type amounts with locale dependent grouping and decimal
// separators ("1 234,56", "1,234.56", "1234.56"), optionally with a
// currency sign. Whichever of "," and "." occurs last is treated as the
// decimal separator, the other one as grouping.
func Parse(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimSuffix(s, "₽")
	s = strings.TrimSuffix(s, "руб.")
	s = strings.TrimSpace(s)

	// Spaces and non-breaking spaces are always grouping
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, "\u202f", "")

	if s == "" {
		return decimal.Decimal{}, ErrAmountInvalid
	}

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")

	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			// 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			// 1,234,567 - grouping only
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case dot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrAmountInvalid
	}

	return d, nil
}

// Format renders an amount for display in the given locale, with grouping
// and two fraction digits.
func Format(amount decimal.Decimal, tag language.Tag) string {
	p := message.NewPrinter(tag)
	f, _ := amount.Round(2).Float64()

	return p.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// String returns the canonical wire representation of an amount: a
// decimal string with two fraction digits.
func String(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
