package locfetch

import "strings"

// Replace substitutes every "{name}" token in s with replacements["name"].
// Tokens without a replacement are left verbatim, as is everything that
// only looks like a token.
func Replace(s string, replacements map[string]string) string {
	if len(replacements) == 0 || !strings.Contains(s, "{") {
		return s
	}

	pairs := make([]string, 0, len(replacements)*2)
	for name, value := range replacements {
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(s)
}
