package currency

import (
	"fmt"
	"math"
)

// FormatUSD renders an amount as whole dollars for display: "$1,234".
func FormatUSD(amount float64) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intStr := fmt.Sprintf("%.0f", rounded)
	formatted := "$" + addThousandsSeparator(intStr, ",")
	if negative {
		formatted = "-" + formatted
	}

	return formatted
}

// Format renders an amount with its currency code, using symbol formatting
// for USD and a "CODE 1,234" fallback for everything else.
func Format(amount float64, code string) string {
	if code == "" || code == "USD" {
		return FormatUSD(amount)
	}

	rounded := math.Round(amount)
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intStr := fmt.Sprintf("%.0f", rounded)
	formatted := code + " " + addThousandsSeparator(intStr, ",")
	if negative {
		formatted = "-" + formatted
	}

	return formatted
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
