package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoneyTwoDecimals(t *testing.T) {
	assert.Equal(t, "$2255.00", FormatMoney("$", 2255))
	assert.Equal(t, "€0.50", FormatMoney("€", 0.5))
	assert.Equal(t, "£1234.57", FormatMoney("£", 1234.5678), "rounding happens only at display time")
	assert.Equal(t, "-$12.30", FormatMoney("$", -12.3))
	assert.Equal(t, "$0.00", FormatMoney("", 0), "unknown symbol falls back to $")
}

func TestLocaleFor(t *testing.T) {
	assert.Equal(t, "de-DE", LocaleFor("€"))
	assert.Equal(t, "en-IN", LocaleFor("₹"))
	assert.Equal(t, "en-US", LocaleFor("??"), "unknown symbols default to en-US")
}

func TestCurrenciesCopy(t *testing.T) {
	c := Currencies()
	c[0].Symbol = "clobbered"
	assert.Equal(t, "$", Currencies()[0].Symbol)
}
