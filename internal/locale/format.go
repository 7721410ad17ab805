package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/uptown-october/uptown-docs/internal/money"
)

// Monetary values are grouped and fraction-fixed with the CLDR English
// pattern regardless of document language; only the currency label is
// localized. Arabic documents keep Latin digits.
var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with exactly two fraction digits and
// thousands grouping, e.g. 1,080,000.00.
func FormatAmount(a money.Amount) string {
	return amountPrinter.Sprintf("%v", number.Decimal(a.Float(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// arabicCurrencyLabels maps ISO codes to the short Arabic label used next to
// numeric amounts.
var arabicCurrencyLabels = map[string]string{
	"EGP": "جم",
	"USD": "دولار",
	"SAR": "ريال",
	"AED": "درهم",
}

// CurrencyLabel returns the per-language label rendered after a numeric
// amount. Unknown codes fall back to the raw code in both languages.
func CurrencyLabel(code string, lang Lang) string {
	if code == "" {
		code = "EGP"
	}
	if lang == Arabic {
		if label, ok := arabicCurrencyLabels[code]; ok {
			return label
		}
	}
	return code
}

// FormatMoney renders an amount followed by its localized currency label.
func FormatMoney(a money.Amount, lang Lang, currency string) string {
	return FormatAmount(a) + " " + CurrencyLabel(currency, lang)
}
