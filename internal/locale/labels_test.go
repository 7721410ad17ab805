package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalizeLabelExactMatches(t *testing.T) {
	cases := map[string]string{
		"Down Payment":      "دفعة التعاقد",
		"down payment":      "دفعة التعاقد",
		"Equal Installment": "قسط متساوي",
		"Handover":          "دفعة الاستلام",
		"Maintenance":       "وديعة الصيانة",
		"Garage Fee":        "رسوم الجراج",
	}
	for input, want := range cases {
		require.Equal(t, want, LocalizeLabel(input, Arabic), input)
	}
}

func TestLocalizeLabelYearPattern(t *testing.T) {
	require.Equal(t, "السنة 1 (شهري)", LocalizeLabel("Year 1 (monthly)", Arabic))
	require.Equal(t, "السنة 2 (ربع سنوي)", LocalizeLabel("Year 2 (quarterly)", Arabic))
	require.Equal(t, "السنة 2 (نصف سنوي)", LocalizeLabel("Year 2 (bi-annual)", Arabic))
	require.Equal(t, "السنة 3 (نصف سنوي)", LocalizeLabel("Year 3 (biannual)", Arabic))
}

func TestLocalizeLabelPassThrough(t *testing.T) {
	require.Equal(t, "Final Settlement", LocalizeLabel("Final Settlement", Arabic))
	require.Equal(t, "Year (monthly)", LocalizeLabel("Year (monthly)", Arabic))
}

func TestLocalizeLabelEnglishUntouched(t *testing.T) {
	require.Equal(t, "Down Payment", LocalizeLabel("Down Payment", English))
	require.Equal(t, "Year 2 (quarterly)", LocalizeLabel("Year 2 (quarterly)", English))
}
