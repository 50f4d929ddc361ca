package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/bsisduck/tentacle/internal/docker"
	"github.com/bsisduck/tentacle/internal/task"
)

// The log pane shows exactly one source at a time. Task output is always
// drained into each task's own history buffer, so switching to a task is a
// buffer swap; container logs have no retained history and restart from a
// fresh follower on every switch.

// switchTarget moves the visible log pane to t. The previous follower, if
// any, is cancelled first and its channel dropped so queued lines from the
// old source can never land in the new view.
func (m *Model) switchTarget(t Target) {
	if m.target == t {
		return
	}
	m.dropFollower()
	m.target = t
	m.scroll = 0
	m.stickBottom = true

	switch t.Kind {
	case TargetTask:
		rt, ok := m.tasks[t.ID]
		if !ok {
			m.logView.Replace(nil)
			return
		}
		m.logView.Replace(rt.history.Lines())
	case TargetContainer:
		m.logView.Replace([]string{fmt.Sprintf("--- streaming logs for %s ---", m.containerName(t.ID))})
		if m.engineOK {
			lines, cancel := m.engine.StreamLogs(m.streamCtx(), t.ID, m.cfg.TailLines)
			m.follower = &follower{containerID: t.ID, lines: lines, cancel: cancel}
		}
	default:
		m.logView.Replace(nil)
	}
}

// streamCtx is the lifetime context for log followers. Cancellation is
// per-follower via the returned CancelFunc, so Background is fine here.
func (m *Model) streamCtx() context.Context {
	return context.Background()
}

// dropFollower cancels and forgets the active container follower.
func (m *Model) dropFollower() {
	if m.follower == nil {
		return
	}
	m.follower.cancel()
	m.follower = nil
}

// pump drains all pending producer output into buffers. Called on every
// pump tick and before every view-affecting transition, so output latency
// is bounded by the tick interval.
func (m *Model) pump() {
	m.pumpFollower()
	for _, name := range m.taskOrder {
		m.pumpTask(name)
	}
}

// pumpFollower moves queued container log lines into the visible buffer.
func (m *Model) pumpFollower() {
	if m.follower == nil {
		return
	}
	for {
		select {
		case line, ok := <-m.follower.lines:
			if !ok {
				m.follower = nil
				return
			}
			m.appendVisible(renderLogLine(line))
		default:
			return
		}
	}
}

// pumpTask drains one task's queued output into its history (and the
// visible buffer when the task is on screen), then polls for exit. The
// exit code only becomes observable after the output channel closes, so
// by the time PollExit reports done every line has been drained and the
// completion marker lands strictly after the final output line.
func (m *Model) pumpTask(name string) {
	rt := m.tasks[name]
	if rt.handle == nil {
		return
	}

	active := m.target.IsTask(name)
	prefix := "[" + name + "] "

drain:
	for rt.lines != nil {
		select {
		case line, ok := <-rt.lines:
			if !ok {
				rt.lines = nil
				break drain
			}
			rt.history.Append(prefix + line)
			if active {
				m.appendVisible(prefix + line)
			}
		default:
			break drain
		}
	}

	code, done := rt.handle.PollExit()
	if !done {
		return
	}

	// Channel is closed by now; finish any lines that raced in.
	for rt.lines != nil {
		line, ok := <-rt.lines
		if !ok {
			rt.lines = nil
			break
		}
		rt.history.Append(prefix + line)
		if active {
			m.appendVisible(prefix + line)
		}
	}

	rt.handle = nil
	marker := "==> OK"
	if code == 0 {
		rt.status = task.StatusOk
	} else {
		rt.status = task.StatusFailed
		marker = fmt.Sprintf("==> FAIL (exit %d)", code)
	}
	rt.history.Append(prefix + marker)
	if active {
		m.appendVisible(prefix + marker)
	}
}

// appendVisible appends to the visible buffer and keeps the stick-to-bottom
// scroll pinned.
func (m *Model) appendVisible(line string) {
	m.logView.Append(line)
	if m.stickBottom {
		m.scroll = 0
	}
}

// renderLogLine flattens a container log line for display.
func renderLogLine(l docker.LogLine) string {
	content := strings.TrimRight(l.Content, "\r\n")
	if l.Stream == "stderr" {
		return "[ERR] " + content
	}
	return content
}

// containerName resolves an ID to the snapshot's display name, falling
// back to the ID itself.
func (m *Model) containerName(id string) string {
	for _, c := range m.snapshot {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
