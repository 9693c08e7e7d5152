// Command locfetch resolves localized strings from a translation service.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ZaguanLabs/locfetch"
	"github.com/ZaguanLabs/locfetch/cache"
	"github.com/ZaguanLabs/locfetch/remote"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = locfetch.Version
	commit    = locfetch.GitCommit
	buildDate = locfetch.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("locfetch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	configPath := fs.String("config", "", "Path to YAML config file")
	service := fs.String("service", "", "Base URL of the translation service")
	token := fs.String("token", "", "Bearer token for the service (default: LOCFETCH_TOKEN env)")
	platform := fs.String("platform", "", "Platform to resolve (default from config)")
	lang := fs.String("lang", "", "Language to resolve (default from config)")
	section := fs.String("section", "", "Translation section")
	key := fs.String("key", "", "Translation key (omit to print the whole section)")
	replace := fs.String("replace", "", "Comma-separated name=value placeholder replacements")
	redisURL := fs.String("redis", "", "Redis URL for the persistent cache tier")
	redisPrefix := fs.String("redis-prefix", "", "Key prefix for the Redis tier")
	cacheTTL := fs.Int("cache-ttl", 0, "Cache TTL in minutes (0 = config default)")
	suppress := fs.Int("suppress", 0, "Failure suppression window in seconds (0 = config default)")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", locfetch.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	cfg, err := buildConfig(*configPath, *service, *cacheTTL, *suppress)
	if err != nil {
		return err
	}

	if *section == "" {
		fs.Usage()
		return fmt.Errorf("--section is required")
	}

	apiToken := *token
	if apiToken == "" {
		apiToken = os.Getenv("LOCFETCH_TOKEN")
	}

	fetcher := remote.NewHTTPClient(remote.HTTPConfig{
		BaseURL:  cfg.ServiceURL,
		APIToken: apiToken,
		Timeout:  cfg.RequestTimeout(),
	})

	opts := []locfetch.ClientOption{
		locfetch.WithTTL(cfg.TTL()),
		locfetch.WithSuppressionWindow(cfg.SuppressionWindow()),
		locfetch.WithDefaults(cfg.DefaultPlatform, cfg.DefaultLanguage),
	}

	storeURL := *redisURL
	if storeURL == "" {
		storeURL = cfg.Redis.URL
	}
	if storeURL != "" {
		prefix := *redisPrefix
		if prefix == "" {
			prefix = cfg.Redis.KeyPrefix
		}
		store, err := cache.NewRedisStore(cache.RedisOptions{
			URL:       storeURL,
			KeyPrefix: prefix,
		})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer store.Close()
		opts = append(opts, locfetch.WithStore(store))
	}

	client := locfetch.NewClient(fetcher, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := locfetch.Query{
		Platform:     *platform,
		Language:     *lang,
		Section:      *section,
		Key:          *key,
		Replacements: parseReplacements(*replace),
	}

	// Section-only query prints the raw sub-document.
	if *key == "" {
		sec, err := client.Section(ctx, query)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sec)
	}

	result := client.Get(ctx, query)

	if *jsonOutput {
		enc := json.NewEncoder(stdout)
		return enc.Encode(map[string]string{
			"section": *section,
			"key":     *key,
			"value":   result,
		})
	}

	fmt.Fprintln(stdout, result)
	return nil
}

// buildConfig loads the config file when given and lets flags override it.
func buildConfig(path, service string, cacheTTL, suppress int) (*locfetch.Config, error) {
	var cfg *locfetch.Config

	if path != "" {
		loaded, err := locfetch.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &locfetch.Config{}
	}

	if service != "" {
		cfg.ServiceURL = service
	}
	if cacheTTL > 0 {
		cfg.CacheMinutes = cacheTTL
	}
	if suppress > 0 {
		cfg.SuppressSeconds = suppress
	}

	if cfg.ServiceURL == "" {
		return nil, fmt.Errorf("--service or a config file with service_url is required")
	}
	if cfg.DefaultPlatform == "" {
		cfg.DefaultPlatform = locfetch.DefaultPlatform
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = locfetch.DefaultLanguage
	}
	if cfg.CacheMinutes <= 0 {
		cfg.CacheMinutes = int(locfetch.DefaultTTL / time.Minute)
	}
	if cfg.SuppressSeconds <= 0 {
		cfg.SuppressSeconds = int(locfetch.DefaultSuppressionWindow / time.Second)
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = 10
	}

	return cfg, nil
}

// parseReplacements parses "name=value,other=value" into a map.
func parseReplacements(s string) map[string]string {
	if s == "" {
		return nil
	}

	replacements := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		replacements[strings.TrimSpace(name)] = value
	}
	return replacements
}
