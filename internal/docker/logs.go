package docker

import (
	"bufio"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
)

// logChanCapacity buffers follower output between dashboard drains.
const logChanCapacity = 4096

// GetContainerLogs fetches the last tail lines of a container's logs.
func (c *Client) GetContainerLogs(ctx context.Context, id string, tail int) ([]LogLine, error) {
	reader, err := c.api.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: true,
		Tail:       strconv.Itoa(tail),
	})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var lines []LogLine
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line, ok := parseLogLine(scanner.Text()); ok {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// StreamLogs follows a container's logs starting tail lines back. Lines are
// delivered in emission order on the returned channel, which is closed when
// the stream ends or the returned cancel runs. The reader goroutine holds no
// shared state; dropping the channel after cancel discards queued lines.
func (c *Client) StreamLogs(ctx context.Context, id string, tail int) (<-chan LogLine, CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	lines := make(chan LogLine, logChanCapacity)

	go func() {
		defer close(lines)

		reader, err := c.api.ContainerLogs(ctx, id, container.LogsOptions{
			ShowStdout: true,
			ShowStderr: true,
			Follow:     true,
			Timestamps: true,
			Tail:       strconv.Itoa(tail),
		})
		if err != nil {
			return
		}
		defer reader.Close()

		scanner := bufio.NewScanner(reader)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line, ok := parseLogLine(scanner.Text())
			if !ok {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case lines <- line:
			}
		}
	}()

	return lines, CancelFunc(cancel)
}

// parseLogLine strips the engine's multiplexed-stream header (present when
// the container has no TTY) and the leading RFC3339Nano timestamp.
func parseLogLine(raw string) (LogLine, bool) {
	if len(raw) == 0 {
		return LogLine{}, false
	}

	stream := "stdout"
	message := raw
	if len(raw) > 8 {
		switch raw[0] {
		case 1:
			stream = "stdout"
			message = raw[8:]
		case 2:
			stream = "stderr"
			message = raw[8:]
		}
	}

	var ts time.Time
	if end := strings.IndexByte(message, ' '); end > 0 {
		if parsed, err := time.Parse(time.RFC3339Nano, message[:end]); err == nil {
			ts = parsed
			message = message[end+1:]
		}
	}

	return LogLine{Timestamp: ts, Stream: stream, Content: message}, true
}
