// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory TTL cache backed by patrickmn/go-cache
// - http/standard: net/http client with retries, timeouts and a token-bucket rate limiter
// - logger/structured: logrus logger with optional lumberjack file rotation
//
// # Cache
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "species:wikitext:List_of_ursids", payload, 1*time.Hour)
//	value, err := cache.Get(ctx, "species:wikitext:List_of_ursids")
//
// # HTTP Client
//
// The HTTP client retries transport errors and 5xx responses with
// exponential backoff and waits on the limiter before every attempt:
//
//	client := standard.NewStandardHTTPClientWithOptions(standard.Options{
//	    Timeout:   30 * time.Second,
//	    RateLimit: 5,
//	    RateBurst: 5,
//	})
//	resp, err := client.Get(ctx, "https://en.wikipedia.org/w/api.php?action=parse&page=List_of_ursids&prop=wikitext&format=json")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.NewLoggerWithOptions(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Species loaded", map[string]interface{}{
//	    "page":    "List_of_ursids",
//	    "records": 8,
//	})
package infrastructure
