package dashboard

import (
	"time"

	"github.com/bsisduck/tentacle/internal/docker"
)

// pumpTickMsg drives the drain protocol at a bounded cadence so background
// output and exit detection are never starved by absence of input.
type pumpTickMsg time.Time

// refreshTickMsg is the periodic snapshot timer.
type refreshTickMsg time.Time

// snapshotMsg carries the result of a snapshot fetch.
type snapshotMsg struct {
	summaries []docker.ContainerSummary
	err       error
}

// actionDoneMsg carries the result of a lifecycle action together with the
// immediate post-action snapshot, so the list reflects the action without
// waiting for the next periodic tick.
type actionDoneMsg struct {
	lines []string // progress/result lines for the visible buffer
	snap  snapshotMsg
}

// inspectMsg carries a container's inspect detail for the popup.
type inspectMsg struct {
	title   string
	summary string
	raw     []byte
	err     error
}

// shellDoneMsg signals that an interactive container shell session ended.
type shellDoneMsg struct {
	err error
}
