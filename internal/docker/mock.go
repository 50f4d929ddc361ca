package docker

import (
	"context"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/system"
)

// Compile-time interface check
var _ EngineService = (*MockEngineService)(nil)

// MockEngineService is a hand-rolled mock implementation of EngineService.
// Use it in tests by setting the function fields to return specific values.
type MockEngineService struct {
	PingFn             func(ctx context.Context) error
	CloseFn            func() error
	ServerInfoFn       func(ctx context.Context) (system.Info, error)
	SnapshotFn         func(ctx context.Context) ([]ContainerSummary, error)
	GetContainerLogsFn func(ctx context.Context, id string, tail int) ([]LogLine, error)
	StreamLogsFn       func(ctx context.Context, id string, tail int) (<-chan LogLine, CancelFunc)
	StartContainerFn   func(ctx context.Context, id string) error
	StopContainerFn    func(ctx context.Context, id string) error
	RestartContainerFn func(ctx context.Context, id string) error
	PauseContainerFn   func(ctx context.Context, id string) error
	UnpauseContainerFn func(ctx context.Context, id string) error
	KillContainerFn    func(ctx context.Context, id string) error
	RemoveContainerFn  func(ctx context.Context, id string, force bool) error
	InspectRawFn       func(ctx context.Context, id string) ([]byte, error)
	ResetContainerFn   func(ctx context.Context, id string) ([]string, error)
}

func (m *MockEngineService) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

func (m *MockEngineService) Close() error {
	if m.CloseFn != nil {
		return m.CloseFn()
	}
	return nil
}

func (m *MockEngineService) ServerInfo(ctx context.Context) (system.Info, error) {
	if m.ServerInfoFn != nil {
		return m.ServerInfoFn(ctx)
	}
	return system.Info{}, nil
}

func (m *MockEngineService) Snapshot(ctx context.Context) ([]ContainerSummary, error) {
	if m.SnapshotFn != nil {
		return m.SnapshotFn(ctx)
	}
	return nil, nil
}

func (m *MockEngineService) GetContainerLogs(ctx context.Context, id string, tail int) ([]LogLine, error) {
	if m.GetContainerLogsFn != nil {
		return m.GetContainerLogsFn(ctx, id, tail)
	}
	return nil, nil
}

func (m *MockEngineService) StreamLogs(ctx context.Context, id string, tail int) (<-chan LogLine, CancelFunc) {
	if m.StreamLogsFn != nil {
		return m.StreamLogsFn(ctx, id, tail)
	}
	ch := make(chan LogLine)
	close(ch)
	return ch, func() {}
}

func (m *MockEngineService) StartContainer(ctx context.Context, id string) error {
	if m.StartContainerFn != nil {
		return m.StartContainerFn(ctx, id)
	}
	return nil
}

func (m *MockEngineService) StopContainer(ctx context.Context, id string) error {
	if m.StopContainerFn != nil {
		return m.StopContainerFn(ctx, id)
	}
	return nil
}

func (m *MockEngineService) RestartContainer(ctx context.Context, id string) error {
	if m.RestartContainerFn != nil {
		return m.RestartContainerFn(ctx, id)
	}
	return nil
}

func (m *MockEngineService) PauseContainer(ctx context.Context, id string) error {
	if m.PauseContainerFn != nil {
		return m.PauseContainerFn(ctx, id)
	}
	return nil
}

func (m *MockEngineService) UnpauseContainer(ctx context.Context, id string) error {
	if m.UnpauseContainerFn != nil {
		return m.UnpauseContainerFn(ctx, id)
	}
	return nil
}

func (m *MockEngineService) KillContainer(ctx context.Context, id string) error {
	if m.KillContainerFn != nil {
		return m.KillContainerFn(ctx, id)
	}
	return nil
}

func (m *MockEngineService) RemoveContainer(ctx context.Context, id string, force bool) error {
	if m.RemoveContainerFn != nil {
		return m.RemoveContainerFn(ctx, id, force)
	}
	return nil
}

func (m *MockEngineService) InspectRaw(ctx context.Context, id string) ([]byte, error) {
	if m.InspectRawFn != nil {
		return m.InspectRawFn(ctx, id)
	}
	return []byte("{}"), nil
}

func (m *MockEngineService) ResetContainer(ctx context.Context, id string) ([]string, error) {
	if m.ResetContainerFn != nil {
		return m.ResetContainerFn(ctx, id)
	}
	return nil, nil
}

func (m *MockEngineService) API() EngineAPI {
	return nil
}

// Compile-time interface check
var _ EngineAPI = (*MockEngineAPI)(nil)

// MockEngineAPI is a hand-rolled mock of the raw SDK surface, for testing
// Client's transformations without a daemon.
type MockEngineAPI struct {
	PingFn                    func(ctx context.Context) (types.Ping, error)
	InfoFn                    func(ctx context.Context) (system.Info, error)
	CloseFn                   func() error
	ContainerListFn           func(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	ContainerInspectWithRawFn func(ctx context.Context, containerID string, getSize bool) (types.ContainerJSON, []byte, error)
	ContainerLogsFn           func(ctx context.Context, container string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerStartFn          func(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStopFn           func(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRestartFn        func(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerPauseFn          func(ctx context.Context, containerID string) error
	ContainerUnpauseFn        func(ctx context.Context, containerID string) error
	ContainerKillFn           func(ctx context.Context, containerID, signal string) error
	ContainerRemoveFn         func(ctx context.Context, containerID string, options container.RemoveOptions) error
	VolumeRemoveFn            func(ctx context.Context, volumeID string, force bool) error
	ContainerExecCreateFn     func(ctx context.Context, containerID string, options container.ExecOptions) (types.IDResponse, error)
	ContainerExecAttachFn     func(ctx context.Context, execID string, config container.ExecAttachOptions) (types.HijackedResponse, error)
	ContainerExecResizeFn     func(ctx context.Context, execID string, options container.ResizeOptions) error
}

func (m *MockEngineAPI) Ping(ctx context.Context) (types.Ping, error) {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return types.Ping{}, nil
}

func (m *MockEngineAPI) Info(ctx context.Context) (system.Info, error) {
	if m.InfoFn != nil {
		return m.InfoFn(ctx)
	}
	return system.Info{}, nil
}

func (m *MockEngineAPI) Close() error {
	if m.CloseFn != nil {
		return m.CloseFn()
	}
	return nil
}

func (m *MockEngineAPI) ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error) {
	if m.ContainerListFn != nil {
		return m.ContainerListFn(ctx, options)
	}
	return nil, nil
}

func (m *MockEngineAPI) ContainerInspectWithRaw(ctx context.Context, containerID string, getSize bool) (types.ContainerJSON, []byte, error) {
	if m.ContainerInspectWithRawFn != nil {
		return m.ContainerInspectWithRawFn(ctx, containerID, getSize)
	}
	return types.ContainerJSON{}, []byte("{}"), nil
}

func (m *MockEngineAPI) ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error) {
	if m.ContainerLogsFn != nil {
		return m.ContainerLogsFn(ctx, containerID, options)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func (m *MockEngineAPI) ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error {
	if m.ContainerStartFn != nil {
		return m.ContainerStartFn(ctx, containerID, options)
	}
	return nil
}

func (m *MockEngineAPI) ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error {
	if m.ContainerStopFn != nil {
		return m.ContainerStopFn(ctx, containerID, options)
	}
	return nil
}

func (m *MockEngineAPI) ContainerRestart(ctx context.Context, containerID string, options container.StopOptions) error {
	if m.ContainerRestartFn != nil {
		return m.ContainerRestartFn(ctx, containerID, options)
	}
	return nil
}

func (m *MockEngineAPI) ContainerPause(ctx context.Context, containerID string) error {
	if m.ContainerPauseFn != nil {
		return m.ContainerPauseFn(ctx, containerID)
	}
	return nil
}

func (m *MockEngineAPI) ContainerUnpause(ctx context.Context, containerID string) error {
	if m.ContainerUnpauseFn != nil {
		return m.ContainerUnpauseFn(ctx, containerID)
	}
	return nil
}

func (m *MockEngineAPI) ContainerKill(ctx context.Context, containerID, signal string) error {
	if m.ContainerKillFn != nil {
		return m.ContainerKillFn(ctx, containerID, signal)
	}
	return nil
}

func (m *MockEngineAPI) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	if m.ContainerRemoveFn != nil {
		return m.ContainerRemoveFn(ctx, containerID, options)
	}
	return nil
}

func (m *MockEngineAPI) VolumeRemove(ctx context.Context, volumeID string, force bool) error {
	if m.VolumeRemoveFn != nil {
		return m.VolumeRemoveFn(ctx, volumeID, force)
	}
	return nil
}

func (m *MockEngineAPI) ContainerExecCreate(ctx context.Context, containerID string, options container.ExecOptions) (types.IDResponse, error) {
	if m.ContainerExecCreateFn != nil {
		return m.ContainerExecCreateFn(ctx, containerID, options)
	}
	return types.IDResponse{}, nil
}

func (m *MockEngineAPI) ContainerExecAttach(ctx context.Context, execID string, config container.ExecAttachOptions) (types.HijackedResponse, error) {
	if m.ContainerExecAttachFn != nil {
		return m.ContainerExecAttachFn(ctx, execID, config)
	}
	return types.HijackedResponse{}, nil
}

func (m *MockEngineAPI) ContainerExecResize(ctx context.Context, execID string, options container.ResizeOptions) error {
	if m.ContainerExecResizeFn != nil {
		return m.ContainerExecResizeFn(ctx, execID, options)
	}
	return nil
}
