package deals

import (
	"fmt"
	"strconv"
	"strings"
)

// Buyer is the per-buyer view extracted from the snapshot's clientInfo or
// supplied directly by the caller.
type Buyer struct {
	Name           string `json:"buyer_name"`
	Nationality    string `json:"nationality"`
	IDOrPassport   string `json:"id_or_passport"`
	IDIssueDate    string `json:"id_issue_date"`
	BirthDate      string `json:"birth_date"`
	Address        string `json:"address"`
	PhonePrimary   string `json:"phone_primary"`
	PhoneSecondary string `json:"phone_secondary"`
	Email          string `json:"email"`
}

// MaxBuyers caps the buyer grid.
const MaxBuyers = 4

// Buyers extracts up to four buyers from clientInfo. Buyer i uses the bare
// field name for i=1 and the `_i` suffix for i in [2,4];
// number_of_buyers is clamped to [1,4].
func (s *CalculatorSnapshot) Buyers() []Buyer {
	if s == nil || len(s.ClientInfo) == 0 {
		return nil
	}
	n := looseInt(s.ClientInfo["number_of_buyers"])
	if n < 1 {
		n = 1
	}
	if n > MaxBuyers {
		n = MaxBuyers
	}
	buyers := make([]Buyer, 0, n)
	for i := 1; i <= n; i++ {
		suffix := ""
		if i > 1 {
			suffix = "_" + strconv.Itoa(i)
		}
		get := func(field string) string {
			return looseString(s.ClientInfo[field+suffix])
		}
		buyers = append(buyers, Buyer{
			Name:           get("buyer_name"),
			Nationality:    get("nationality"),
			IDOrPassport:   get("id_or_passport"),
			IDIssueDate:    get("id_issue_date"),
			BirthDate:      get("birth_date"),
			Address:        get("address"),
			PhonePrimary:   get("phone_primary"),
			PhoneSecondary: get("phone_secondary"),
			Email:          get("email"),
		})
	}
	return buyers
}

func looseString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func looseInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	case int:
		return t
	}
	return 0
}
