// Package lifecycle holds shared timing constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work such as DB pings
// and HTTP server drain.
const DefaultTimeout = 10 * time.Second
