// Package currency holds the currencies the app can display amounts in
// and the formatting rules for each of them.
package currency

import (
	"math"
	"strconv"
	"strings"
)

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var supported = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
}

// Supported returns the list of currencies a profile may select.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// ByCode looks up a currency by its ISO code. Unknown codes fall back
// to USD so a stale profile value never breaks rendering.
func ByCode(code string) Currency {
	for _, c := range supported {
		if c.Code == code {
			return c
		}
	}
	return supported[0]
}

func Symbol(code string) string {
	return ByCode(code).Symbol
}

// Format renders an amount with the currency symbol and Indian-style
// digit grouping: the last three digits stand alone, every group
// before them has two digits (1234567 -> 12,34,567). The amount is
// rounded to the nearest whole unit first.
func Format(amount float64, code string) string {
	c := ByCode(code)

	rounded := int64(math.Round(math.Abs(amount)))
	grouped := groupIndian(strconv.FormatInt(rounded, 10))

	var b strings.Builder
	if amount < 0 {
		b.WriteString("-")
	}
	b.WriteString(c.Symbol)
	b.WriteString(grouped)
	return b.String()
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}

// DetectFromTimezone maps an IANA timezone reported at sign-up to a
// default currency. Coarse on purpose; the user can change it later.
func DetectFromTimezone(tz string) string {
	switch {
	case strings.HasPrefix(tz, "Asia/Kolkata"), strings.HasPrefix(tz, "Asia/Calcutta"):
		return "INR"
	case tz == "Europe/London":
		return "GBP"
	case strings.HasPrefix(tz, "Europe/"):
		return "EUR"
	case tz == "Asia/Tokyo", strings.HasPrefix(tz, "Japan"):
		return "JPY"
	default:
		return "USD"
	}
}
