// Package task supervises the background shell tasks shown in the dashboard.
// A task runs as its own process group so stopping it takes the whole
// subtree down, and its output arrives on a single ordered line channel.
package task

// Status is the lifecycle state of a task.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusOk
	StatusFailed
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "…"
	case StatusRunning:
		return "RUN"
	case StatusOk:
		return "OK"
	case StatusFailed:
		return "FAIL"
	case StatusStopped:
		return "STOP"
	default:
		return "?"
	}
}

// Terminal reports whether the status is a resting state a restart may
// leave from.
func (s Status) Terminal() bool {
	return s == StatusOk || s == StatusFailed || s == StatusStopped
}

// Spec identifies a task: a display name and the shell command it runs.
type Spec struct {
	Name string
	Cmd  string
}
