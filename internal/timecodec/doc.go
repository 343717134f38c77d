// Package timecodec converts between elapsed-time display strings and
// whole seconds.
//
// Two display forms are accepted by Parse:
//   - "mm:ss"     minutes*60 + seconds
//   - "hh:mm:ss"  hours*3600 + minutes*60 + seconds
//
// Groups are not range checked: "99:99" is 6039 seconds. Format produces the
// canonical form, dropping the hour field when it is zero.
//
// DigitBuffer backs live digit entry, where keystrokes fill an HHMMSS mask
// from the right and the display always carries three fields.
package timecodec
