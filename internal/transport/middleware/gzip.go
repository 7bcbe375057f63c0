package middleware

import (
	"fmt"

	"github.com/NYTimes/gziphandler"
)

// gzipMinSize skips compression for small JSON bodies.
const gzipMinSize = 1024

// Gzip compresses responses for clients that accept gzip encoding.
// Used on the public read endpoints that return whole collections.
func Gzip() (Middleware, error) {
	wrap, err := gziphandler.GzipHandlerWithOpts(gziphandler.MinSize(gzipMinSize))
	if err != nil {
		return nil, fmt.Errorf("gzip handler: %w", err)
	}
	return Middleware(wrap), nil
}
