// Package locfetch provides a caching translation-retrieval client.
//
// Given a platform, language, section and key, locfetch returns a
// localized string, transparently fetching from a remote translation
// service and caching results in two tiers: a process-local memory map
// and an optional persistent store (Redis). Cached records expire
// after a configurable TTL, and a failure suppression window prevents
// hammering an upstream that is currently down.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/locfetch"
//	    "github.com/ZaguanLabs/locfetch/cache"
//	    "github.com/ZaguanLabs/locfetch/remote"
//	)
//
//	func main() {
//	    store, err := cache.NewRedisStore(cache.RedisOptions{
//	        URL: "redis://localhost:6379",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    client := locfetch.NewClient(
//	        remote.NewHTTPClient(remote.HTTPConfig{
//	            BaseURL: "https://translations.example.com",
//	        }),
//	        locfetch.WithStore(store),
//	        locfetch.WithDefaults("web", "da"),
//	    )
//
//	    greeting := client.Get(context.Background(), locfetch.Query{
//	        Section:      "general",
//	        Key:          "welcome",
//	        Replacements: map[string]string{"name": "Jan"},
//	    })
//	    fmt.Println(greeting) // "Velkommen, Jan"
//	}
//
// Lookups never fail from the caller's perspective: when a section or
// key is missing, or the service is unreachable with no cached
// fallback, Get returns the visible placeholder "section.key".
package locfetch
