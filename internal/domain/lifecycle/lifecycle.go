// Package lifecycle holds shared constants for component start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to shut down gracefully.
const DefaultTimeout = 10 * time.Second
