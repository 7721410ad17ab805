package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFloatRounding(t *testing.T) {
	require.Equal(t, Amount(100000), FromFloat(1000))
	require.Equal(t, Amount(105), FromFloat(1.045))
	require.Equal(t, Amount(104), FromFloat(1.044))
	require.Equal(t, Amount(-105), FromFloat(-1.045))
	require.Equal(t, Amount(0), FromFloat(0))
}

func TestSubFloorNeverNegative(t *testing.T) {
	require.Equal(t, Amount(0), FromFloat(100).SubFloor(FromFloat(150)))
	require.Equal(t, FromFloat(50), FromFloat(150).SubFloor(FromFloat(100)))
}

func TestUnits(t *testing.T) {
	major, minor := FromFloat(1080000).Units()
	require.Equal(t, int64(1080000), major)
	require.Equal(t, int64(0), minor)

	major, minor = FromFloat(12.34).Units()
	require.Equal(t, int64(12), major)
	require.Equal(t, int64(34), minor)
}

func TestUnmarshalLooseInputs(t *testing.T) {
	type doc struct {
		A Amount `json:"a"`
	}
	cases := map[string]Amount{
		`{"a": 1000000}`:  FromFloat(1000000),
		`{"a": "50000"}`:  FromFloat(50000),
		`{"a": null}`:     0,
		`{"a": ""}`:       0,
		`{"a": "seven"}`:  0,
		`{"a": 199.995}`:  FromMinor(20000),
		`{"a": "12.345"}`: FromMinor(1235),
	}
	for raw, want := range cases {
		var d doc
		require.NoError(t, json.Unmarshal([]byte(raw), &d), raw)
		require.Equal(t, want, d.A, raw)
	}
}

func TestParseLoose(t *testing.T) {
	require.Equal(t, FromFloat(4), ParseLoose(float64(4)))
	require.Equal(t, FromFloat(4), ParseLoose("4"))
	require.Equal(t, Amount(0), ParseLoose(nil))
	require.Equal(t, Amount(0), ParseLoose([]string{"x"}))
	require.Equal(t, FromFloat(3), ParseLoose(3))
}

func TestStringFixedFraction(t *testing.T) {
	require.Equal(t, "200000.00", FromFloat(200000).String())
	require.Equal(t, "12.05", FromMinor(1205).String())
	require.Equal(t, "-0.25", FromMinor(-25).String())
}
