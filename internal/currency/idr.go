// Package currency renders Indonesian rupiah amounts the way the admin
// screens display them: whole rupiah, dot-grouped thousands, "Rp" prefix.
package currency

import "strings"

// FormatIDR formats a numeric string as rupiah.
// "1250000" -> "Rp 1.250.000". Non-digit characters are ignored; an
// input with no digits formats to the empty string.
func FormatIDR(value string) string {
	digits := UnformatIDR(value)
	if digits == "" {
		return ""
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	var b strings.Builder
	b.WriteString("Rp ")
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// UnformatIDR strips rupiah formatting back to a bare digit string.
// "Rp 1.250.000" -> "1250000".
func UnformatIDR(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
