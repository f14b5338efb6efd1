// Package format holds the display formatting helpers shared by the table
// and dashboard payloads.
package format

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date renders a calendar date as "2 Jan 2006" regardless of host locale.
func Date(t time.Time) string {
	return t.Format("2 Jan 2006")
}

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// Currency abbreviates dollar amounts: "$1.2M" from one million up, "$45K"
// from one thousand up, otherwise the plain amount prefixed with "$".
func Currency(amount decimal.Decimal) string {
	switch {
	case amount.GreaterThanOrEqual(million):
		return fmt.Sprintf("$%sM", amount.Div(million).StringFixed(1))
	case amount.GreaterThanOrEqual(thousand):
		return fmt.Sprintf("$%sK", amount.Div(thousand).StringFixed(0))
	default:
		return "$" + amount.String()
	}
}

// AvatarURL derives a deterministic placeholder image locator seeded by the
// employee's full name, used when no profile photo is set.
func AvatarURL(firstName, lastName string) string {
	seed := strings.ReplaceAll(url.QueryEscape(firstName+" "+lastName), "+", "%20")
	return "https://api.dicebear.com/7.x/initials/png?seed=" + seed
}
