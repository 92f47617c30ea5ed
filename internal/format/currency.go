package format

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount renders v as a currency string for the given BCP 47 locale and
// ISO 4217 code, e.g. ("en-GB", "GBP", 1000) → "£ 1,000.00".
func Amount(locale, code string, v float64) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", err
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", err
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(v))), nil
}
