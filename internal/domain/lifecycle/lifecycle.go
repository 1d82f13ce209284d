// Package lifecycle holds shared lifecycle constants for infrastructure components.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of infrastructure components.
const DefaultTimeout = 10 * time.Second
