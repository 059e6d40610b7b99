package currency

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WellKnown(t *testing.T) {
	tests := []struct {
		code   string
		factor int64
	}{
		{"THB", 100},
		{"JPY", 1},
		{"IDR", 100},
		{"SGD", 100},
		{"USD", 100},
		{"GBP", 100},
		{"EUR", 100},
		{"MYR", 100},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c := New(tt.code)
			if c.Code() != tt.code {
				t.Errorf("Code() = %q, want %q", c.Code(), tt.code)
			}
			if c.Factor() != tt.factor {
				t.Errorf("Factor() = %d, want %d", c.Factor(), tt.factor)
			}
		})
	}
}

func TestNew_CaseInsensitive(t *testing.T) {
	c := New("thb")
	if c.Code() != "THB" {
		t.Errorf("Code() = %q, want THB", c.Code())
	}
	if !c.Equal(THB) {
		t.Errorf("New(thb) should equal THB")
	}
}

func TestNew_ISOFallback(t *testing.T) {
	// KWD uses three minor-unit digits in the ISO table.
	kwd := New("KWD")
	assert.EqualValues(t, 1000, kwd.Factor())

	// Krona currencies fall back to the standard two digits.
	sek := New("SEK")
	assert.EqualValues(t, 100, sek.Factor())
}

func TestNew_UnknownCodeNeverFails(t *testing.T) {
	c := New("ZZZ")
	assert.Equal(t, "ZZZ", c.Code())
	assert.EqualValues(t, 1, c.Factor())
}

func TestCustom_ClampsFactor(t *testing.T) {
	c := Custom("XTS", 0)
	assert.EqualValues(t, 1, c.Factor())
}

func TestSubunitConversion(t *testing.T) {
	assert.EqualValues(t, 10050, THB.ToSubunit(100.50))
	assert.EqualValues(t, 100, JPY.ToSubunit(100))
	assert.InDelta(t, 100.50, THB.ToUnit(10050), 1e-9)
	assert.InDelta(t, 100, JPY.ToUnit(100), 1e-9)
}

func TestSubunitRoundTripWithinFactor(t *testing.T) {
	values := []float64{0, 0.01, 1, 99.99, 2000, 123456.78}
	for _, v := range values {
		got := THB.ToUnit(THB.ToSubunit(v))
		if math.Abs(got-v) > 1.0/float64(THB.Factor()) {
			t.Errorf("round trip of %v drifted to %v", v, got)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(THB)
	require.NoError(t, err)
	assert.Equal(t, `"THB"`, string(data))

	var decoded Currency
	require.NoError(t, json.Unmarshal([]byte(`"thb"`), &decoded))
	assert.True(t, decoded.Equal(THB))
}

func TestUnmarshalJSON_NonString(t *testing.T) {
	var c Currency
	err := json.Unmarshal([]byte(`42`), &c)
	require.Error(t, err)
}
