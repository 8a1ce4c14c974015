package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts thousand separators into a decimal digit
// string, honoring a single leading '-'. It operates on strings rather than
// a numeric type so it can annotate digit counts and byte sizes — values
// already too large for any machine integer — without first parsing them.
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var sb strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}

// FormatBytes renders a byte count with the most legible binary-prefix unit
// (B, KiB, MiB, ...), matching FormatExecutionDuration's approach of picking
// the unit that keeps the number readable instead of always using the same one.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
