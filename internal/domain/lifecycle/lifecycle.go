// Package lifecycle holds process lifecycle constants shared by the
// delivery and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations,
// such as draining the HTTP server or pinging the database on boot.
const DefaultTimeout = 10 * time.Second
