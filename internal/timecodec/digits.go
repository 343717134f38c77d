package timecodec

import "strings"

// maxDigits is the width of the HHMMSS entry mask.
const maxDigits = 6

// FormatDigits renders a run of digits as "hh:mm:ss". The digits are
// left-padded with zeros to six and only the last six are used, so the
// result always has three fields.
func FormatDigits(digits string) string {
	if len(digits) < maxDigits {
		digits = strings.Repeat("0", maxDigits-len(digits)) + digits
	}
	s := digits[len(digits)-maxDigits:]
	return s[0:2] + ":" + s[2:4] + ":" + s[4:6]
}

// DigitBuffer holds the digits typed into a time field, most recent last.
// The zero value is an empty buffer.
type DigitBuffer struct {
	digits string
}

// NewDigitBuffer seeds a buffer from an existing display string.
func NewDigitBuffer(display string) *DigitBuffer {
	b := &DigitBuffer{}
	b.Reset(display)
	return b
}

// Push appends a digit, discarding the oldest once six are held.
// Non-digit runes are ignored and report false.
func (b *DigitBuffer) Push(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	b.digits = keepLast(b.digits + string(r))
	return true
}

// Backspace removes the most recent digit.
func (b *DigitBuffer) Backspace() {
	if b.digits != "" {
		b.digits = b.digits[:len(b.digits)-1]
	}
}

// Reset replaces the buffer with the digits found in display.
func (b *DigitBuffer) Reset(display string) {
	var sb strings.Builder
	for _, r := range display {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	b.digits = keepLast(sb.String())
}

// Digits returns the raw buffered digits.
func (b *DigitBuffer) Digits() string {
	return b.digits
}

// Display returns the "hh:mm:ss" rendering, or "" for an empty buffer.
func (b *DigitBuffer) Display() string {
	if b.digits == "" {
		return ""
	}
	return FormatDigits(b.digits)
}

func keepLast(s string) string {
	if len(s) > maxDigits {
		return s[len(s)-maxDigits:]
	}
	return s
}
