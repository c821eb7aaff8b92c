package templating

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders an amount in US dollars: 2200 -> "$2,200.00", -5.5 -> "-$5.50".
func FormatCurrency(amount float64) string {
	cents := int64(math.Round(math.Abs(amount) * 100))
	sign := ""
	if amount < 0 && cents > 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(cents/100), cents%100)
}
