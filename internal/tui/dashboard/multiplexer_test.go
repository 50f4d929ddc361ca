package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsisduck/tentacle/internal/config"
	"github.com/bsisduck/tentacle/internal/docker"
	"github.com/bsisduck/tentacle/internal/task"
)

func TestSwitchTarget_TaskShowsItsHistory(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "echo"}}, nil)
	m.tasks["web"].history.Append("[web] [OUT] ready")

	m.switchTarget(Target{Kind: TargetTask, ID: "web"})

	assert.Equal(t, []string{"[web] [OUT] ready"}, m.logView.Lines())
	assert.True(t, m.stickBottom)
	assert.Zero(t, m.scroll)
}

func TestSwitchTarget_ContainerStartsFollowerWithBanner(t *testing.T) {
	var gotID string
	var gotTail int
	ch := make(chan docker.LogLine)
	engine := &docker.MockEngineService{
		StreamLogsFn: func(ctx context.Context, id string, tail int) (<-chan docker.LogLine, docker.CancelFunc) {
			gotID, gotTail = id, tail
			return ch, func() {}
		},
	}
	m := testModel(t, nil, engine)
	m.snapshot = []docker.ContainerSummary{{ID: "c1", Name: "db", State: "running"}}

	m.switchTarget(Target{Kind: TargetContainer, ID: "c1"})

	assert.Equal(t, "c1", gotID)
	assert.Equal(t, 10, gotTail)
	require.NotNil(t, m.follower)
	assert.Equal(t, []string{"--- streaming logs for db ---"}, m.logView.Lines())
}

func TestSwitchTarget_CancelsPreviousFollower(t *testing.T) {
	cancelled := false
	stale := make(chan docker.LogLine, 1)
	stale <- docker.LogLine{Stream: "stdout", Content: "queued line from old container"}

	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "echo"}}, nil)
	m.target = Target{Kind: TargetContainer, ID: "old"}
	m.follower = &follower{
		containerID: "old",
		lines:       stale,
		cancel:      func() { cancelled = true },
	}

	m.switchTarget(Target{Kind: TargetTask, ID: "web"})
	m.pump()

	assert.True(t, cancelled)
	assert.Nil(t, m.follower)
	// The queued line from the old source must never surface.
	for _, line := range m.logView.Lines() {
		assert.NotContains(t, line, "queued line")
	}
}

func TestSwitchTarget_SameTargetIsNoop(t *testing.T) {
	cancelled := false
	m := testModel(t, nil, nil)
	m.target = Target{Kind: TargetContainer, ID: "c1"}
	m.follower = &follower{containerID: "c1", lines: make(chan docker.LogLine), cancel: func() { cancelled = true }}

	m.switchTarget(Target{Kind: TargetContainer, ID: "c1"})

	assert.False(t, cancelled)
	assert.NotNil(t, m.follower)
}

func TestPumpFollower_RoutesLinesToVisibleBuffer(t *testing.T) {
	ch := make(chan docker.LogLine, 4)
	ch <- docker.LogLine{Stream: "stdout", Content: "hello"}
	ch <- docker.LogLine{Stream: "stderr", Content: "warning"}

	m := testModel(t, nil, nil)
	m.logView.Clear()
	m.follower = &follower{containerID: "c1", lines: ch, cancel: func() {}}

	m.pump()

	assert.Equal(t, []string{"hello", "[ERR] warning"}, m.logView.Lines())
}

func TestPumpFollower_ClosedChannelClearsFollower(t *testing.T) {
	ch := make(chan docker.LogLine)
	close(ch)

	m := testModel(t, nil, nil)
	m.follower = &follower{containerID: "c1", lines: ch, cancel: func() {}}

	m.pump()

	assert.Nil(t, m.follower)
}

// pumpUntilDone drives pump until the named task reaches a terminal
// status.
func pumpUntilDone(t *testing.T, m *Model, name string) {
	t.Helper()
	require.Eventually(t, func() bool {
		m.pump()
		return m.tasks[name].status.Terminal()
	}, 10*time.Second, 10*time.Millisecond)
}

func TestPumpTask_SuccessMarkerAfterOutput(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "echo ready"}}, nil)
	m.switchTarget(Target{Kind: TargetTask, ID: "web"})
	m.runTask("web")

	pumpUntilDone(t, &m, "web")

	assert.Equal(t, task.StatusOk, m.tasks["web"].status)
	lines := m.tasks["web"].history.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "[web] ==> OK", lines[len(lines)-1])
	assert.Contains(t, lines, "[web] [OUT] ready")
	// Visible buffer mirrors the history for the active task.
	visible := m.logView.Lines()
	assert.Equal(t, "[web] ==> OK", visible[len(visible)-1])
}

func TestPumpTask_FailureMarkerCarriesExitCode(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "echo hi; exit 3"}}, nil)
	m.runTask("web")

	pumpUntilDone(t, &m, "web")

	assert.Equal(t, task.StatusFailed, m.tasks["web"].status)
	lines := m.tasks["web"].history.Lines()
	assert.Equal(t, "[web] ==> FAIL (exit 3)", lines[len(lines)-1])
}

func TestPumpTask_MarkerIsLastLineEvenWithBurstOutput(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "burst", Cmd: "seq 1 50"}}, nil)
	m.runTask("burst")

	pumpUntilDone(t, &m, "burst")

	lines := m.tasks["burst"].history.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "[burst] ==> OK", lines[len(lines)-1])
	assert.Equal(t, "[burst] [OUT] 50", lines[len(lines)-2])
}

func TestPumpTask_BackgroundTaskKeepsHistoryOffScreen(t *testing.T) {
	m := testModel(t, []config.TaskSpec{
		{Name: "fg", Cmd: "echo fg"},
		{Name: "bg", Cmd: "echo background-line"},
	}, nil)
	m.switchTarget(Target{Kind: TargetTask, ID: "fg"})
	m.runTask("bg")

	pumpUntilDone(t, &m, "bg")

	assert.Contains(t, m.tasks["bg"].history.Lines(), "[bg] [OUT] background-line")
	for _, line := range m.logView.Lines() {
		assert.NotContains(t, line, "background-line")
	}

	// Switching over later shows the retained history.
	m.switchTarget(Target{Kind: TargetTask, ID: "bg"})
	assert.Contains(t, m.logView.Lines(), "[bg] [OUT] background-line")
}
