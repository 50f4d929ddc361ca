package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsisduck/tentacle/internal/config"
	"github.com/bsisduck/tentacle/internal/docker"
	"github.com/bsisduck/tentacle/internal/task"
)

func TestRunTask_StartsWithRestartMarker(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "echo ready"}}, nil)

	m.runTask("web")

	rt := m.tasks["web"]
	assert.Equal(t, task.StatusRunning, rt.status)
	require.NotNil(t, rt.handle)
	lines := rt.history.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "[web] ==> RESTART: echo ready", lines[0])

	pumpUntilDone(t, &m, "web")
}

func TestRunTask_RestartClearsOldHistory(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "echo run"}}, nil)
	m.runTask("web")
	pumpUntilDone(t, &m, "web")
	require.Contains(t, m.tasks["web"].history.Lines(), "[web] [OUT] run")

	m.runTask("web")

	lines := m.tasks["web"].history.Lines()
	assert.Equal(t, "[web] ==> RESTART: echo run", lines[0])
	assert.NotContains(t, lines, "[web] ==> OK")

	pumpUntilDone(t, &m, "web")
}

func TestRunTask_SpawnFailureStaysPending(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "echo hi"}}, nil)
	m.sup.WorkDir = "/nonexistent/path/for/sure"

	m.runTask("web")

	rt := m.tasks["web"]
	assert.Equal(t, task.StatusPending, rt.status)
	assert.Nil(t, rt.handle)
	lines := rt.history.Lines()
	assert.Contains(t, lines[len(lines)-1], "==> FAIL:")
}

func TestStopTask_AppendsStoppedMarker(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "sleep 60"}}, nil)
	m.switchTarget(Target{Kind: TargetTask, ID: "web"})
	m.runTask("web")
	require.Equal(t, task.StatusRunning, m.tasks["web"].status)

	m.stopTask("web")

	rt := m.tasks["web"]
	assert.Equal(t, task.StatusStopped, rt.status)
	assert.Nil(t, rt.handle)
	lines := rt.history.Lines()
	assert.Equal(t, "[web] ==> STOPPED (user)", lines[len(lines)-1])
	visible := m.logView.Lines()
	assert.Equal(t, "[web] ==> STOPPED (user)", visible[len(visible)-1])
}

func TestStopTask_NoopWhenNotRunning(t *testing.T) {
	m := testModel(t, []config.TaskSpec{{Name: "web", Cmd: "echo"}}, nil)

	m.stopTask("web")

	assert.Equal(t, task.StatusPending, m.tasks["web"].status)
	assert.Empty(t, m.tasks["web"].history.Lines())
}

func TestContainerAction_ReportsErrorAndRefreshes(t *testing.T) {
	engine := &docker.MockEngineService{
		StartContainerFn: func(ctx context.Context, id string) error {
			return assert.AnError
		},
		SnapshotFn: func(ctx context.Context) ([]docker.ContainerSummary, error) {
			return []docker.ContainerSummary{{ID: "c1", Name: "db", State: "exited"}}, nil
		},
	}
	m := testModel(t, nil, engine)

	cmd := m.containerAction("Starting", "c1", m.engine.StartContainer)
	require.True(t, m.inFlight)

	msg := cmd()
	done, ok := msg.(actionDoneMsg)
	require.True(t, ok)
	require.Len(t, done.lines, 1)
	assert.Contains(t, done.lines[0], "ERROR")
	require.Len(t, done.snap.summaries, 1)
}

func TestOpenBrowser_NoPublishedPort(t *testing.T) {
	m := testModel(t, nil, nil)
	m.logView.Clear()

	m.openBrowser(row{name: "db", target: Target{Kind: TargetContainer, ID: "c1"}})

	lines := m.logView.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "no published port")
}
