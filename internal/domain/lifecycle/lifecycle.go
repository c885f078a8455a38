// Package lifecycle holds shared timing constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook (DB ping, Redis ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
