package docker

import (
	"context"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/system"
)

// EngineAPI is the subset of the raw Docker SDK client Tentacle touches.
// The SDK's *client.Client satisfies it implicitly; tests substitute a mock.
type EngineAPI interface {
	Ping(ctx context.Context) (types.Ping, error)
	Info(ctx context.Context) (system.Info, error)
	Close() error
	ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	ContainerInspectWithRaw(ctx context.Context, containerID string, getSize bool) (types.ContainerJSON, []byte, error)
	ContainerLogs(ctx context.Context, container string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRestart(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerPause(ctx context.Context, containerID string) error
	ContainerUnpause(ctx context.Context, containerID string) error
	ContainerKill(ctx context.Context, containerID, signal string) error
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	VolumeRemove(ctx context.Context, volumeID string, force bool) error
	ContainerExecCreate(ctx context.Context, containerID string, options container.ExecOptions) (types.IDResponse, error)
	ContainerExecAttach(ctx context.Context, execID string, config container.ExecAttachOptions) (types.HijackedResponse, error)
	ContainerExecResize(ctx context.Context, execID string, options container.ResizeOptions) error
}

// EngineService provides the domain-level container engine operations the
// dashboard consumes: a batched snapshot, a start/stop-able log stream, and
// fire-and-forget lifecycle actions. All methods take a context for
// cancellation.
type EngineService interface {
	Ping(ctx context.Context) error
	Close() error
	ServerInfo(ctx context.Context) (system.Info, error)

	// Snapshot returns all containers (running or not) with their port
	// mappings, sorted by display name. A malformed record is skipped,
	// never fatal to the rest of the snapshot.
	Snapshot(ctx context.Context) ([]ContainerSummary, error)

	// GetContainerLogs fetches the last tail lines, one-shot.
	GetContainerLogs(ctx context.Context, id string, tail int) ([]LogLine, error)

	// StreamLogs follows a container's logs starting tail lines back.
	// Per-channel emission order is preserved; the channel is closed on
	// cancellation or end-of-stream, which consumers treat as "nothing
	// further", not an error.
	StreamLogs(ctx context.Context, id string, tail int) (<-chan LogLine, CancelFunc)

	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error
	RestartContainer(ctx context.Context, id string) error
	PauseContainer(ctx context.Context, id string) error
	UnpauseContainer(ctx context.Context, id string) error
	KillContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string, force bool) error

	// InspectRaw returns the container's raw inspect JSON.
	InspectRaw(ctx context.Context, id string) ([]byte, error)

	// ResetContainer stops the container, force-removes it and deletes its
	// named volumes, returning progress lines for the log pane.
	ResetContainer(ctx context.Context, id string) ([]string, error)

	// API exposes the underlying EngineAPI (used by the in-container shell).
	API() EngineAPI
}
