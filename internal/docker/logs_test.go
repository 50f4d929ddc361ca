package docker

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// muxLine builds a line as the engine emits it for non-TTY containers:
// 8-byte stream header, RFC3339Nano timestamp, then the message.
func muxLine(stream byte, ts, msg string) string {
	header := string([]byte{stream, 0, 0, 0, 0, 0, 0, 0})
	return header + ts + " " + msg
}

func TestParseLogLine_StdoutWithHeader(t *testing.T) {
	line, ok := parseLogLine(muxLine(1, "2026-02-10T09:00:00.123456789Z", "listening on :3000"))

	require.True(t, ok)
	assert.Equal(t, "stdout", line.Stream)
	assert.Equal(t, "listening on :3000", line.Content)
	assert.Equal(t, 2026, line.Timestamp.Year())
}

func TestParseLogLine_StderrWithHeader(t *testing.T) {
	line, ok := parseLogLine(muxLine(2, "2026-02-10T09:00:00Z", "panic: oops"))

	require.True(t, ok)
	assert.Equal(t, "stderr", line.Stream)
	assert.Equal(t, "panic: oops", line.Content)
}

func TestParseLogLine_TTYModeNoHeader(t *testing.T) {
	line, ok := parseLogLine("plain output without header or timestamp")

	require.True(t, ok)
	assert.Equal(t, "stdout", line.Stream)
	assert.Equal(t, "plain output without header or timestamp", line.Content)
	assert.True(t, line.Timestamp.IsZero())
}

func TestParseLogLine_EmptyLineSkipped(t *testing.T) {
	_, ok := parseLogLine("")
	assert.False(t, ok)
}

func TestGetContainerLogs_ParsesStream(t *testing.T) {
	payload := muxLine(1, "2026-02-10T09:00:00Z", "first") + "\n" +
		muxLine(2, "2026-02-10T09:00:01Z", "second") + "\n"

	mock := &MockEngineAPI{
		ContainerLogsFn: func(ctx context.Context, id string, opts container.LogsOptions) (io.ReadCloser, error) {
			assert.Equal(t, "200", opts.Tail)
			assert.False(t, opts.Follow)
			return io.NopCloser(strings.NewReader(payload)), nil
		},
	}

	client := &Client{api: mock}
	lines, err := client.GetContainerLogs(context.Background(), "c1", 200)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Content)
	assert.Equal(t, "stderr", lines[1].Stream)
}

func TestStreamLogs_DeliversInOrderAndCloses(t *testing.T) {
	payload := muxLine(1, "2026-02-10T09:00:00Z", "one") + "\n" +
		muxLine(1, "2026-02-10T09:00:01Z", "two") + "\n"

	mock := &MockEngineAPI{
		ContainerLogsFn: func(ctx context.Context, id string, opts container.LogsOptions) (io.ReadCloser, error) {
			assert.True(t, opts.Follow)
			return io.NopCloser(strings.NewReader(payload)), nil
		},
	}

	client := &Client{api: mock}
	lines, cancel := client.StreamLogs(context.Background(), "c1", 200)
	defer cancel()

	var got []string
	for line := range lines {
		got = append(got, line.Content)
	}
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestStreamLogs_CancelClosesChannel(t *testing.T) {
	blockForever, blockWriter := io.Pipe()
	mock := &MockEngineAPI{
		ContainerLogsFn: func(ctx context.Context, id string, opts container.LogsOptions) (io.ReadCloser, error) {
			return blockForever, nil
		},
	}
	defer blockWriter.Close()

	client := &Client{api: mock}
	lines, cancel := client.StreamLogs(context.Background(), "c1", 0)
	cancel()
	blockWriter.Close()

	select {
	case _, open := <-lines:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
