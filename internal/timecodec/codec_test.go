package timecodec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"01:30", 90},
		{"00:00", 0},
		{"01:05", 65},
		{"01:00:05", 3605},
		{"27:83", 1703},
		{"99:99", 6039},
		{"2:3:4", 7384},
		{" 10 : 00 ", 600},
		{"00:25:00", 1500},
		{"25:", 1500},
		{":30", 30},
		{" :30", 30},
		{"1::05", 3605},
		{":", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"90",
		"1:2:3:4",
		"ab:cd",
		"10:x",
		"1.5:00",
		"5124095576030432:00:00",
		"00:9223372036854775807",
		"99999999999999999999:00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, input, pe.Input)
		})
	}
}

func TestParseGroupBounds(t *testing.T) {
	got, err := Parse(fmt.Sprintf("%d:00:00", maxGroup))
	require.NoError(t, err)
	assert.Equal(t, maxGroup*3600, got)
	assert.Positive(t, got)

	_, err = Parse(fmt.Sprintf("%d:00:00", maxGroup+1))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Reason, "out of range")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{1703, "28:23"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3605, "01:00:05"},
		{45296, "12:34:56"},
		{360000, "100:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.seconds))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for n := 0; n < 2*3600; n += 7 {
		got, err := Parse(Format(n))
		require.NoError(t, err)
		require.Equal(t, n, got, "round trip of %d via %q", n, Format(n))
	}
}
