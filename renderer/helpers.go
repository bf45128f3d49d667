package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	dashboard "github.com/onurcandonmezer/ai-project-dashboard"
)

// title capitalizes the first letter of each underscore- or space-separated
// word of an enum value for display.
func title(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(first)) + w[size:]
	}
	return strings.Join(words, " ")
}

// truncate shortens long free-text cells for tables, counting runes so a
// multibyte character is never cut in half.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// percent renders a ratio as a percentage, or "n/a" when undefined.
func percent(r dashboard.Ratio) string {
	if !r.Defined {
		return "n/a"
	}
	return r.Percent().String()
}

// joinList joins names with commas, in the order given.
func joinList(names []string) string { return strings.Join(names, ", ") }

func score(v float64) string { return fmt.Sprintf("%.0f", v) }
