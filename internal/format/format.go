// Package format provides display-only number formatting for the REPL
// and CLI. It never touches the core Number payload, which stays a
// machine int64 in the node model.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Pretty renders n with thousands separators, e.g. 1000000 -> "1,000,000".
func Pretty(n int64) string {
	d := decimal.NewFromInt(n)
	negative := d.IsNegative()
	intStr := fmt.Sprintf("%d", d.Abs().IntPart())
	grouped := addThousandsSeparators(intStr)
	if negative {
		return "-" + grouped
	}
	return grouped
}

func addThousandsSeparators(s string) string {
	var result strings.Builder
	for i := len(s) - 1; i >= 0; i-- {
		if (len(s)-i)%3 == 1 && i != len(s)-1 {
			result.WriteByte(',')
		}
		result.WriteByte(s[i])
	}
	reversed := result.String()
	runes := []rune(reversed)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
