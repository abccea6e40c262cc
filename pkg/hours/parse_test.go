package hours

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseRoutes(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"1,2", []int{1, 2}},
		{" 3 , 4 ,5", []int{3, 4, 5}},
		{"1, x, 2,,", []int{1, 2}},
		{"-3, 7", []int{7}},
		{"+5, 07", []int{5, 7}},
		{"", []int{}},
		{"abc", []int{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRoutes(tt.in), "input %q", tt.in)
	}
}

func TestParsePassengerCount(t *testing.T) {
	n, err := ParsePassengerCount(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParsePassengerCount("0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = ParsePassengerCount("-1")
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = ParsePassengerCount("many")
	assert.ErrorIs(t, err, ErrMalformedNumber)

	_, err = ParsePassengerCount("")
	assert.ErrorIs(t, err, ErrMalformedNumber)
}

func TestParseIndex(t *testing.T) {
	n, err := ParseIndex("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ParseIndex("-1")
	require.NoError(t, err)
	assert.Equal(t, -1, n)

	_, err = ParseIndex("first")
	assert.ErrorIs(t, err, ErrMalformedNumber)
}
