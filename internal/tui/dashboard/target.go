package dashboard

// TargetKind tags what a Target points at.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetTask
	TargetContainer
)

// Target identifies the task or container whose logs fill the visible
// buffer. Exactly one target is active at any time (possibly TargetNone
// before the first selection).
type Target struct {
	Kind TargetKind
	ID   string // task name or container ID
}

// IsTask reports whether the target is the named task.
func (t Target) IsTask(name string) bool {
	return t.Kind == TargetTask && t.ID == name
}
