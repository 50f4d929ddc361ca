package docker

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inspectFixture = `{
	"Id": "abcdef1234567890abcdef1234567890",
	"Created": "2026-02-10T09:00:00Z",
	"State": {"Status": "running", "Pid": 4242, "ExitCode": 0},
	"Config": {
		"Image": "postgres:16",
		"Env": ["POSTGRES_DB=app", "LANG=C.UTF-8"]
	},
	"NetworkSettings": {
		"Ports": {
			"5432/tcp": [{"HostIp": "", "HostPort": "54321"}],
			"9187/tcp": []
		}
	},
	"Mounts": [
		{"Type": "volume", "Name": "pgdata", "Source": "/var/lib/docker/volumes/pgdata/_data", "Destination": "/var/lib/postgresql/data"},
		{"Type": "bind", "Source": "/home/dev/init.sql", "Destination": "/docker-entrypoint-initdb.d/init.sql"}
	]
}`

func TestVolumeNames_OnlyNamedVolumes(t *testing.T) {
	names := volumeNames([]byte(inspectFixture))
	assert.Equal(t, []string{"pgdata"}, names)
}

func TestVolumeNames_EmptyJSON(t *testing.T) {
	assert.Empty(t, volumeNames([]byte(`{}`)))
}

func TestFormatContainerInfo(t *testing.T) {
	out := FormatContainerInfo([]byte(inspectFixture))

	assert.Contains(t, out, "ID: abcdef123456")
	assert.Contains(t, out, "Image: postgres:16")
	assert.Contains(t, out, "Status: running (Pid: 4242, Exit: 0)")
	assert.Contains(t, out, "5432/tcp -> 0.0.0.0:54321")
	assert.Contains(t, out, "9187/tcp (not exposed)")
	assert.Contains(t, out, "volume: /var/lib/docker/volumes/pgdata/_data -> /var/lib/postgresql/data")
	assert.Contains(t, out, "POSTGRES_DB=app")
}

func TestFormatContainerInfo_EmptySections(t *testing.T) {
	out := FormatContainerInfo([]byte(`{"Id": "1234567890ab"}`))

	assert.Contains(t, out, "PORTS:\n  (none)")
	assert.Contains(t, out, "MOUNTS:\n  (none)")
	assert.Contains(t, out, "ENV VARIABLES:\n  (none)")
}

func TestResetContainer_RemovesContainerAndVolumes(t *testing.T) {
	var removedContainer string
	var removedVolumes []string

	mock := &MockEngineAPI{
		ContainerInspectWithRawFn: func(ctx context.Context, id string, getSize bool) (types.ContainerJSON, []byte, error) {
			return types.ContainerJSON{}, []byte(inspectFixture), nil
		},
		ContainerRemoveFn: func(ctx context.Context, id string, opts container.RemoveOptions) error {
			require.True(t, opts.Force)
			removedContainer = id
			return nil
		},
		VolumeRemoveFn: func(ctx context.Context, name string, force bool) error {
			removedVolumes = append(removedVolumes, name)
			return nil
		},
	}

	client := &Client{api: mock}
	lines, err := client.ResetContainer(context.Background(), "abcdef123456")

	require.NoError(t, err)
	assert.Equal(t, "abcdef123456", removedContainer)
	assert.Equal(t, []string{"pgdata"}, removedVolumes)
	assert.Contains(t, lines, "Reset complete for abcdef123456")
}

func TestResetContainer_IgnoresStopFailure(t *testing.T) {
	mock := &MockEngineAPI{
		ContainerInspectWithRawFn: func(ctx context.Context, id string, getSize bool) (types.ContainerJSON, []byte, error) {
			return types.ContainerJSON{}, []byte(`{}`), nil
		},
		ContainerStopFn: func(ctx context.Context, id string, opts container.StopOptions) error {
			return errors.New("already stopped")
		},
	}

	client := &Client{api: mock}
	_, err := client.ResetContainer(context.Background(), "c1")
	assert.NoError(t, err)
}

func TestResetContainer_RemoveFailureIsFatal(t *testing.T) {
	wantErr := errors.New("in use")
	mock := &MockEngineAPI{
		ContainerInspectWithRawFn: func(ctx context.Context, id string, getSize bool) (types.ContainerJSON, []byte, error) {
			return types.ContainerJSON{}, []byte(inspectFixture), nil
		},
		ContainerRemoveFn: func(ctx context.Context, id string, opts container.RemoveOptions) error {
			return wantErr
		},
	}

	client := &Client{api: mock}
	_, err := client.ResetContainer(context.Background(), "c1")
	assert.ErrorIs(t, err, wantErr)
}

func TestResetContainer_VolumeFailureContinues(t *testing.T) {
	mock := &MockEngineAPI{
		ContainerInspectWithRawFn: func(ctx context.Context, id string, getSize bool) (types.ContainerJSON, []byte, error) {
			return types.ContainerJSON{}, []byte(inspectFixture), nil
		},
		VolumeRemoveFn: func(ctx context.Context, name string, force bool) error {
			return errors.New("volume busy")
		},
	}

	client := &Client{api: mock}
	lines, err := client.ResetContainer(context.Background(), "c1")

	require.NoError(t, err)
	assert.Contains(t, lines, "Failed to remove volume pgdata: volume busy")
	assert.Contains(t, lines, "Reset complete for c1")
}
