package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"gridsheet/contracts"
)

var groupingPrinter = message.NewPrinter(language.English)

// FormatNumber renders a finite formula result per its format tag.
//
// Percentage treats the stored value as a raw fraction: 0.5 renders as
// "50%". General and Percentage drop an all-zero cent suffix so integer
// results render without decimals; Currency keeps fixed cents.
func FormatNumber(value float64, tag contracts.FormatTag) string {
	switch tag {
	case contracts.FormatCurrency:
		return fmt.Sprintf("$%.2f", value)
	case contracts.FormatPercentage:
		return trimEvenCents(fmt.Sprintf("%.2f", value*100)) + "%"
	case contracts.FormatThousands:
		return groupingPrinter.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(2)))
	default:
		return trimEvenCents(fmt.Sprintf("%.2f", value))
	}
}

func trimEvenCents(formatted string) string {
	return strings.TrimSuffix(formatted, ".00")
}
