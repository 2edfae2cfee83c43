// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks: database pings, server shutdown, hub drain.
const DefaultTimeout = 15 * time.Second
