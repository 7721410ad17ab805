package locale

import (
	"strings"

	"github.com/uptown-october/uptown-docs/internal/money"
)

// NumberSpeller converts a monetary amount into localized words. Kept as an
// interface so the backend can be swapped without touching the composer.
type NumberSpeller interface {
	Spell(a money.Amount, lang Lang, currency string) string
}

// Speller is the built-in bilingual speller.
type Speller struct{}

type currencyWords struct {
	major string
	minor string
}

var englishCurrencies = map[string]currencyWords{
	"EGP": {"Egyptian Pounds", "Piasters"},
	"USD": {"US Dollars", "Cents"},
	"SAR": {"Saudi Riyals", "Halalas"},
	"AED": {"UAE Dirhams", "Fils"},
}

var arabicCurrencies = map[string]currencyWords{
	"EGP": {"جنيه مصري", "قرش"},
	"USD": {"دولار أمريكي", "سنت"},
	"SAR": {"ريال سعودي", "هللة"},
	"AED": {"درهم إماراتي", "فلس"},
}

func currencyFor(code string, lang Lang) currencyWords {
	if code == "" {
		code = "EGP"
	}
	table := englishCurrencies
	if lang == Arabic {
		table = arabicCurrencies
	}
	if cw, ok := table[code]; ok {
		return cw
	}
	return currencyWords{major: code}
}

// Spell renders the amount in words with its currency name, e.g.
// "One Million Eighty Thousand Egyptian Pounds" or
// "مليون وثمانون ألف جنيه مصري". Negative amounts are spelled by absolute
// value; the pipeline never produces them.
func (Speller) Spell(a money.Amount, lang Lang, currency string) string {
	major, minor := a.Units()
	if major < 0 {
		major = -major
	}
	cw := currencyFor(currency, lang)
	if lang == Arabic {
		out := spellArabic(major)
		if cw.major != "" {
			out += " " + cw.major
		}
		if minor > 0 && cw.minor != "" {
			out += " و" + spellArabic(minor) + " " + cw.minor
		}
		return out
	}
	out := spellEnglish(major)
	if cw.major != "" {
		out += " " + cw.major
	}
	if minor > 0 && cw.minor != "" {
		out += " and " + spellEnglish(minor) + " " + cw.minor
	}
	return out
}

var enOnes = [20]string{
	"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var enTens = [10]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

var enScales = [5]string{"", "Thousand", "Million", "Billion", "Trillion"}

func spellEnglish(n int64) string {
	if n == 0 {
		return enOnes[0]
	}
	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}
	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		word := spellEnglishHundreds(g)
		if enScales[i] != "" {
			word += " " + enScales[i]
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

func spellEnglishHundreds(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, enOnes[n/100]+" Hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, enOnes[n])
	default:
		word := enTens[n/10]
		if n%10 != 0 {
			word += "-" + enOnes[n%10]
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

var arOnes = [20]string{
	"صفر", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة",
	"ثمانية", "تسعة", "عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر",
	"أربعة عشر", "خمسة عشر", "ستة عشر", "سبعة عشر", "ثمانية عشر",
	"تسعة عشر",
}

var arTens = [10]string{
	"", "", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون",
	"ثمانون", "تسعون",
}

var arHundreds = [10]string{
	"", "مائة", "مائتان", "ثلاثمائة", "أربعمائة", "خمسمائة", "ستمائة",
	"سبعمائة", "ثمانمائة", "تسعمائة",
}

// arScale holds singular, dual, and plural forms for each thousand group.
type arScale struct {
	one  string
	two  string
	many string
}

var arScales = [5]arScale{
	{},
	{"ألف", "ألفان", "آلاف"},
	{"مليون", "مليونان", "ملايين"},
	{"مليار", "ملياران", "مليارات"},
	{"تريليون", "تريليونان", "تريليونات"},
}

func spellArabic(n int64) string {
	if n == 0 {
		return arOnes[0]
	}
	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}
	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		parts = append(parts, spellArabicGroup(g, i))
	}
	return strings.Join(parts, " و")
}

// spellArabicGroup renders one thousand-group with its scale word, using the
// dual for 2 and the plural for 3..10.
func spellArabicGroup(g int64, scale int) string {
	if scale == 0 {
		return spellArabicHundreds(g)
	}
	sc := arScales[scale]
	switch {
	case g == 1:
		return sc.one
	case g == 2:
		return sc.two
	case g >= 3 && g <= 10:
		return spellArabicHundreds(g) + " " + sc.many
	default:
		return spellArabicHundreds(g) + " " + sc.one
	}
}

func spellArabicHundreds(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, arHundreds[n/100])
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, arOnes[n])
	default:
		if n%10 != 0 {
			parts = append(parts, arOnes[n%10]+" و"+arTens[n/10])
		} else {
			parts = append(parts, arTens[n/10])
		}
	}
	return strings.Join(parts, " و")
}
