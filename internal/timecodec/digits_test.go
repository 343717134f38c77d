package timecodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDigits(t *testing.T) {
	tests := []struct {
		digits string
		want   string
	}{
		{"", "00:00:00"},
		{"5", "00:00:05"},
		{"130", "00:01:30"},
		{"13000", "01:30:00"},
		{"123456", "12:34:56"},
		{"9123456", "12:34:56"},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDigits(tt.digits))
		})
	}
}

func TestDigitBuffer(t *testing.T) {
	var b DigitBuffer
	assert.Equal(t, "", b.Display())

	for _, r := range "2530" {
		assert.True(t, b.Push(r))
	}
	assert.Equal(t, "00:25:30", b.Display())

	assert.False(t, b.Push('x'))
	assert.Equal(t, "2530", b.Digits())

	b.Backspace()
	assert.Equal(t, "00:02:53", b.Display())

	for _, r := range "1234567" {
		b.Push(r)
	}
	assert.Equal(t, "234567", b.Digits())
	assert.Equal(t, "23:45:67", b.Display())
}

func TestDigitBufferBackspaceToEmpty(t *testing.T) {
	b := NewDigitBuffer("05")
	b.Backspace()
	b.Backspace()
	b.Backspace()
	assert.Equal(t, "", b.Digits())
	assert.Equal(t, "", b.Display())
}

func TestNewDigitBufferFromDisplay(t *testing.T) {
	b := NewDigitBuffer(Format(3605))
	assert.Equal(t, "010005", b.Digits())
	assert.Equal(t, "01:00:05", b.Display())

	b = NewDigitBuffer("1:02:03:04")
	assert.Equal(t, "020304", b.Digits())
}
