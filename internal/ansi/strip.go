// Package ansi removes terminal escape sequences from pasted or piped input.
// Copying a token out of a terminal often drags along color codes or
// bracketed-paste markers that would otherwise defeat classification.
package ansi

import "strings"

type escState int

const (
	stateText escState = iota
	stateEscStart
	stateCSI
	stateString // OSC, DCS, SOS, PM, APC: terminated by BEL (OSC only) or ST
)

// Strip returns s without escape sequences or other C0 control bytes.
// Newlines and tabs are kept. An unterminated sequence is dropped.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	state := stateText
	osc := false
	sawEsc := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateText:
			switch {
			case c == 0x1b:
				state = stateEscStart
			case c == '\n' || c == '\t':
				b.WriteByte(c)
			case c < 0x20 || c == 0x7f:
				// dropped
			default:
				b.WriteByte(c)
			}
		case stateEscStart:
			switch c {
			case '[':
				state = stateCSI
			case ']', 'P', 'X', '^', '_':
				state = stateString
				osc = c == ']'
				sawEsc = false
			default:
				state = stateText
			}
		case stateCSI:
			if c >= 0x40 && c <= 0x7e {
				state = stateText
			}
		case stateString:
			switch {
			case osc && c == 0x07:
				state = stateText
			case sawEsc && c == '\\':
				state = stateText
			default:
				sawEsc = c == 0x1b
			}
		}
	}
	return b.String()
}
