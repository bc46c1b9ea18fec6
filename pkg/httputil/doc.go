// Package httputil provides HTTP utilities for catalog downloads.
//
// # Overview
//
// This package provides the infrastructure the element-code fetchers
// use:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/lpub3dnext/)
// with configurable TTL, so part element tables are fetched once and
// reused across runs.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	var data []byte
//	ok, err := cache.Get("lego:codes.txt", &data) // Check cache
//	if !ok {
//	    data = fetchFromSource()
//	    cache.Set("lego:codes.txt", data)         // Store for later
//	}
//
// Cache keys should be namespaced by source to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient
// failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid hammering a struggling source:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetch(url)
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/lpub3dnext/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `lpub3dnext cache clear` or by deleting
// the cache directory.
package httputil
