// ABOUTME: Advanced example showing file configuration, feature flags and error handling
// ABOUTME: Demonstrates dependency injection and the live loading path without fallback

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	bearpage "bearpage/bearpage-lib"
	"bearpage/infrastructure/cache/memory"
	"bearpage/pkg/featureflags"
)

func main() {
	// Example 1: Create client with custom configuration
	fmt.Println("=== Custom Configuration ===")

	configPath := os.Getenv("BEARPAGE_CONFIG")
	if configPath == "" {
		configPath = "bearpage.yml"
	}

	client, err := bearpage.NewClient(
		// YAML file when present, then BEARPAGE_* environment overrides
		bearpage.WithConfigFile(configPath),

		// Short-lived response cache
		bearpage.WithCache(memory.NewMemoryCacheWithExpiration(5*time.Minute, time.Minute)),

		// Feature flags from FEATURE_* environment variables
		bearpage.WithEnvFlags("FEATURE_"),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	settings := client.Settings()
	fmt.Printf("Page: %s, strategy: %s\n", settings.Wiki.PageID, settings.Wiki.Strategy)

	// Example 2: Context with timeout
	fmt.Println("\n=== Live Load with Timeout ===")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	species, err := client.LoadSpeciesLive(ctx, "")
	if err != nil {
		// Example 3: Error handling
		switch {
		case bearpage.IsNetworkError(err):
			fmt.Println("Network error occurred:", err)
		case bearpage.IsParsingError(err):
			fmt.Println("Parsing error occurred:", err)
		default:
			fmt.Println("Other error occurred:", err)
		}
	} else {
		fmt.Printf("Loaded %d species\n", len(species))
	}

	// Example 4: Rendered-HTML strategy through a static flag set
	fmt.Println("\n=== Rendered HTML Strategy ===")
	htmlClient, err := bearpage.NewClient(
		bearpage.WithFlags(featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
			featureflags.RenderedHTMLStrategy: true,
			featureflags.ResponseCacheBypass:  true,
		})),
		bearpage.WithQuietMode(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	for i, s := range htmlClient.LoadSpecies(ctx, "") {
		if i >= 5 {
			break
		}
		fmt.Printf("- %s %s\n", s.CommonName, s.Image)
	}

	fmt.Println("\nDone!")
}
