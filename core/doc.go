// Package core contains the business logic for the bear page enhancer.
// It is framework-agnostic: HTTP, caching and logging are injected through
// interfaces, and documents are plain golang.org/x/net/html trees.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SpeciesRecord, MatchSpan, Comment) and the fallback list
// - species: Species loader with the wikitext and rendered-HTML extraction strategies
// - highlight: In-place search highlighting over a DOM subtree
// - page: Card rendering and composition of loader and highlighter over a document
// - comments: Comment panel toggling and comment submission
// - errors: Custom error types classifying loader failures
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - The species loader never fails outward; it falls back to a static list
//
// # Usage Example
//
//	import (
//	    "bearpage/core/interfaces"
//	    "bearpage/core/species"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	loader := species.NewLoader(deps, species.DefaultConfig())
//	records := loader.Load(ctx, "List_of_ursids")
package core
