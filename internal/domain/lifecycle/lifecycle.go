// Package lifecycle holds shared process-lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work such as draining the HTTP
// server.
const DefaultTimeout = 10 * time.Second
