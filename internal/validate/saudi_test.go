package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSaudiPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already international", "+966501234567", "+966501234567"},
		{"local with leading zero", "0501234567", "+966501234567"},
		{"bare subscriber number", "501234567", "+966501234567"},
		{"spaces stripped", " 050 123 4567 ", "+966501234567"},
		{"empty passes through", "", ""},
		{"garbage passes through", "12345", "12345"},
		{"too long passes through", "05012345678", "05012345678"},
		{"non-saudi country code passes through", "+15551234567", "+15551234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSaudiPhone(tt.in))
		})
	}
}

func TestNormalizeSaudiPhone_SameSubscriber(t *testing.T) {
	// All three shapes of the same subscriber normalize identically.
	inputs := []string{"0512345678", "+966512345678", "512345678"}
	for _, in := range inputs {
		assert.Equal(t, "+966512345678", NormalizeSaudiPhone(in), "input %q", in)
	}
}

func TestValidSaudiPhone(t *testing.T) {
	assert.True(t, ValidSaudiPhone("+966501234567"))
	assert.True(t, ValidSaudiPhone("0501234567"))
	assert.False(t, ValidSaudiPhone("501234567")) // bare form must be normalized first
	assert.False(t, ValidSaudiPhone("+96650123456"))
	assert.False(t, ValidSaudiPhone(""))
}

func TestValidNationalID(t *testing.T) {
	assert.True(t, ValidNationalID("1234567890"))
	assert.False(t, ValidNationalID("123456789"))
	assert.False(t, ValidNationalID("12345678901"))
	assert.False(t, ValidNationalID("12345678ab"))
	assert.False(t, ValidNationalID(""))
}
