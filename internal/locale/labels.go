package locale

import (
	"regexp"
	"strconv"
	"strings"
)

// Schedule label remapping is a data table so the rewrite rules can be
// tested in isolation. Only exact (case-insensitive, trimmed) matches are
// remapped; unmatched labels pass through untouched.
var arabicScheduleLabels = map[string]string{
	"down payment":      "دفعة التعاقد",
	"equal installment": "قسط متساوي",
	"handover":          "دفعة الاستلام",
	"maintenance":       "وديعة الصيانة",
	"garage fee":        "رسوم الجراج",
}

// yearLabelPattern matches labels like "Year 2 (quarterly)" or
// "Year 3 (bi-annual)".
var yearLabelPattern = regexp.MustCompile(`(?i)^year\s+(\d+)\s*\(\s*([^)]*?)\s*\)$`)

// arabicFrequency translates the frequency keyword inside a year label.
// Keyword matching is substring based; "bi" covers bi-annual, biannual and
// bi-yearly spellings.
func arabicFrequency(freq string) string {
	f := strings.ToLower(freq)
	switch {
	case strings.Contains(f, "month"):
		return "شهري"
	case strings.Contains(f, "quarter"):
		return "ربع سنوي"
	case strings.Contains(f, "bi"):
		return "نصف سنوي"
	default:
		return freq
	}
}

// LocalizeLabel rewrites a schedule label for the target language. English
// documents always keep the stored label.
func LocalizeLabel(label string, lang Lang) string {
	if lang != Arabic {
		return label
	}
	key := strings.ToLower(strings.TrimSpace(label))
	if mapped, ok := arabicScheduleLabels[key]; ok {
		return mapped
	}
	if m := yearLabelPattern.FindStringSubmatch(strings.TrimSpace(label)); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			return "السنة " + strconv.Itoa(year) + " (" + arabicFrequency(m[2]) + ")"
		}
	}
	return label
}
