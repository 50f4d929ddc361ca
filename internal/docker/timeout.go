package docker

import "time"

const (
	TimeoutPing     = 5 * time.Second
	TimeoutSnapshot = 30 * time.Second
	TimeoutAction   = 10 * time.Second
	TimeoutLogs     = 30 * time.Second
	TimeoutReset    = 60 * time.Second
	TimeoutCompose  = 5 * time.Minute
	// NOTE: No timeout for the exec session itself -- it is interactive with no predictable duration
)
