package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Cents
	}{
		{"15.99", 1599},
		{"10", 1000},
		{"5.5", 550},
		{"0.07", 7},
		{"0", 0},
		{" 12.00 ", 1200},
		{"-3.25", -325},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "9.999", "12,50", ".", "1.-5", "1.+5", "++1.00", "- 2"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "15.99", Cents(1599).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "-3.25", Cents(-325).String())
}

func TestMul(t *testing.T) {
	// 10.00 monthly over a year
	assert.Equal(t, Cents(12000), Cents(1000).Mul(12))
	// 5.00 weekly over a year
	assert.Equal(t, Cents(26000), Cents(500).Mul(52))
}

func TestDivRound(t *testing.T) {
	assert.Equal(t, Cents(500), Cents(1000).DivRound(2))
	assert.Equal(t, Cents(333), Cents(1000).DivRound(3))
	assert.Equal(t, Cents(334), Cents(1001).DivRound(3))
	assert.Equal(t, Cents(0), Cents(1000).DivRound(0))
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Cents(1599))
	require.NoError(t, err)
	assert.Equal(t, `"15.99"`, string(b))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte(`"15.99"`), &c))
	assert.Equal(t, Cents(1599), c)

	// Numeric literals are accepted too
	require.NoError(t, json.Unmarshal([]byte(`12.5`), &c))
	assert.Equal(t, Cents(1250), c)
}

func TestScan(t *testing.T) {
	var c Cents
	require.NoError(t, c.Scan([]byte("15.99")))
	assert.Equal(t, Cents(1599), c)

	require.NoError(t, c.Scan("120.00"))
	assert.Equal(t, Cents(12000), c)

	v, err := Cents(1599).Value()
	require.NoError(t, err)
	assert.Equal(t, "15.99", v)
}
