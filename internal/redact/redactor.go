// Package redact turns raw secrets into display-safe strings. Every function
// is pure: the same input always yields the same output.
//
// Operators learn to recognize a provider by its redaction shape, so the
// segment boundaries and mask widths here are part of the output contract.
package redact

import "strings"

const maskChar = "*"

// Func redacts a single token.
type Func func(token string) string

// Default shows the first 7 and last 3 characters, masking the middle with at
// least 3 asterisks. Tokens of 10 characters or fewer are returned unchanged.
func Default(token string) string {
	r := []rune(token)
	if len(r) == 0 {
		return ""
	}
	if len(r) <= 10 {
		return token
	}
	return head(r, 7) + mask(max(len(r)-10, 3)) + tail(r, 3)
}

// DotHash redacts `<prefix>.<hash>` tokens: the prefix stays, the hash keeps
// its first and last 3 characters.
func DotHash(token string) string {
	if token == "" {
		return ""
	}
	prefix, hash, ok := strings.Cut(token, ".")
	if !ok {
		return token
	}
	h := []rune(hash)
	if len(h) <= 6 {
		return token
	}
	return prefix + "." + head(h, 3) + mask(len(h)-6) + tail(h, 3)
}

// SlackUser redacts dash-separated user tokens (xoxp). The first segment
// stays, the second keeps 2 leading characters, the third is fully masked and
// the fourth is masked up to the last 4 characters of the final segment.
func SlackUser(token string) string {
	if token == "" {
		return ""
	}
	parts := splitNonEmptyTail(token, "-")
	if len(parts) < 4 {
		return token
	}
	last := lastChars(parts[len(parts)-1], 4)
	return parts[0] + "-" +
		partial(parts[1]) + "-" +
		mask(runeLen(parts[2])) + "-" +
		mask(runeLen(parts[3])-runeLen(last)) + last
}

// SlackClient redacts scraped client tokens (xoxc). Like SlackUser with one
// more fully masked segment.
func SlackClient(token string) string {
	if token == "" {
		return ""
	}
	parts := splitNonEmptyTail(token, "-")
	if len(parts) < 5 {
		return token
	}
	last := lastChars(parts[len(parts)-1], 4)
	return parts[0] + "-" +
		partial(parts[1]) + "-" +
		mask(runeLen(parts[2])) + "-" +
		mask(runeLen(parts[3])) + "-" +
		mask(runeLen(parts[4])-runeLen(last)) + last
}

// Underscored redacts `<a>_<b>_<env>_<data>` keys: the three prefix segments
// stay, data keeps its first 3 and last 2 characters.
func Underscored(token string) string {
	if token == "" {
		return ""
	}
	if runeLen(token) <= 13 {
		return token
	}
	parts := splitNonEmptyTail(token, "_")
	if len(parts) < 4 {
		return token
	}
	data := []rune(parts[3])
	return strings.Join(parts[:3], "_") + "_" + head(data, 3) + mask(max(len(data)-5, 3)) + tail(data, 2)
}

// splitNonEmptyTail splits like strings.Split but drops trailing empty fields.
func splitNonEmptyTail(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func partial(segment string) string {
	r := []rune(segment)
	return head(r, 2) + mask(len(r)-2)
}

func lastChars(segment string, n int) string {
	r := []rune(segment)
	if len(r) >= n {
		return string(r[len(r)-n:])
	}
	return segment
}

func head(r []rune, n int) string {
	if len(r) < n {
		return string(r)
	}
	return string(r[:n])
}

// tail returns the last n runes, or "" when r is shorter than n.
func tail(r []rune, n int) string {
	if len(r) < n {
		return ""
	}
	return string(r[len(r)-n:])
}

func mask(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(maskChar, n)
}

func runeLen(s string) int {
	return len([]rune(s))
}
