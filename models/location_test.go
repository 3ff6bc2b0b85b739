package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		input string
		want  Location
	}{
		{"JO", LocationJordan},
		{"jo", LocationJordan},
		{"Jordan", LocationJordan},
		{"JORDAN", LocationJordan},
		{"  jordan  ", LocationJordan},
		{"SA", LocationSaudi},
		{"sa", LocationSaudi},
		{"ksa", LocationSaudi},
		{"KSA", LocationSaudi},
		{"Saudi", LocationSaudi},
		{"Saudi Arabia", LocationSaudi},
		{"SAUDI ARABIA", LocationSaudi},
		{"\tsaudi arabia\n", LocationSaudi},
		{"", ""},
		{"   ", ""},
		{"UAE", ""},
		{"Jordania", ""},
		{"saudi  arabia", ""}, // internal whitespace is not collapsed
		{"J O", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLocation(tt.input), "input %q", tt.input)
	}
}

func TestIsLocationCode(t *testing.T) {
	assert.True(t, IsLocationCode("JO"))
	assert.True(t, IsLocationCode("SA"))
	assert.False(t, IsLocationCode("jo"))
	assert.False(t, IsLocationCode("KSA"))
	assert.False(t, IsLocationCode(""))
}
