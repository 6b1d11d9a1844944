package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcceptance(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{"", false, false},
		{"on", true, false},
		{"true", true, false},
		{"1", true, false},
		{"off", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"ON", false, true},
	}
	for _, tt := range tests {
		got, err := parseAcceptance(tt.value)
		if tt.wantErr {
			assert.Error(t, err, "value %q", tt.value)
			continue
		}
		require.NoError(t, err, "value %q", tt.value)
		assert.Equal(t, tt.want, got, "value %q", tt.value)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		value   string
		want    float64
		wantErr bool
	}{
		{"5", 5, false},
		{"1500", 1500, false},
		{"2.5", 2.5, false},
		{" 42 ", 42, false},
		{"-1", -1, false},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-Inf", 0, true},
	}
	for _, tt := range tests {
		got, err := parseNumber(tt.value)
		if tt.wantErr {
			assert.ErrorIs(t, err, errInvalidNumber, "value %q", tt.value)
			continue
		}
		require.NoError(t, err, "value %q", tt.value)
		assert.Equal(t, tt.want, got, "value %q", tt.value)
	}
}
