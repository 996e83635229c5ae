package compute

import "strconv"

// Currency pairs a display symbol with the locale its formatting
// conventions come from. The table is fixed: templates reference
// currencies by symbol and the renderer looks the locale up here.
type Currency struct {
	Symbol string
	Locale string
}

var currencies = []Currency{
	{"$", "en-US"},
	{"€", "de-DE"},
	{"£", "en-GB"},
	{"₹", "en-IN"},
	{"¥", "ja-JP"},
	{"R", "en-ZA"},
	{"A$", "en-AU"},
	{"C$", "en-CA"},
}

// Currencies returns the supported symbol table, in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// LocaleFor returns the locale tag for a currency symbol, defaulting to
// en-US for unknown symbols.
func LocaleFor(symbol string) string {
	for _, c := range currencies {
		if c.Symbol == symbol {
			return c.Locale
		}
	}
	return "en-US"
}

// FormatMoney renders an amount with a currency symbol prefix and
// exactly two decimal places. Inputs carry full precision up to this
// point; this is the only place monetary values are rounded.
func FormatMoney(symbol string, amount float64) string {
	if symbol == "" {
		symbol = "$"
	}
	if amount < 0 {
		return "-" + symbol + strconv.FormatFloat(-amount, 'f', 2, 64)
	}
	return symbol + strconv.FormatFloat(amount, 'f', 2, 64)
}
