package locfetch

import "strings"

// CacheKey derives the cache key for a platform+language pair.
// The same key addresses the memory tier, the persistent tier and the
// attempt tracker.
func CacheKey(platform, language string) string {
	return strings.ToLower(platform) + "_" + strings.ToLower(language)
}
