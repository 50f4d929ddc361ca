package task

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// lineChanCapacity buffers producer output between dashboard drains.
// Memory is still bounded at the consumer's log buffers; this only has to
// absorb bursts between two drain cycles.
const lineChanCapacity = 4096

// Supervisor spawns shell tasks with a fixed working directory and
// environment.
type Supervisor struct {
	WorkDir string
	Env     []string
}

// Handle owns a running task process. Exit status is delivered through an
// internal channel so PollExit never blocks.
type Handle struct {
	cmd      *exec.Cmd
	exit     chan int
	done     chan struct{}
	killOnce sync.Once
}

// Spawn starts the shell command in a new process group and wires combined
// stdout/stderr into one ordered channel. Each line is tagged with its
// origin stream. The channel is closed after both streams end; the exit
// code becomes observable only after that, so a drained-to-closure channel
// is guaranteed complete once PollExit reports done.
func (s *Supervisor) Spawn(spec Spec) (*Handle, <-chan string, error) {
	cmd := shellCommand(spec.Cmd)
	cmd.Dir = s.WorkDir
	cmd.Env = s.Env

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("starting %q: %w", spec.Cmd, err)
	}

	h := &Handle{
		cmd:  cmd,
		exit: make(chan int, 1),
		done: make(chan struct{}),
	}

	lines := make(chan string, lineChanCapacity)
	var readers sync.WaitGroup
	readers.Add(2)
	go scanInto(stdout, "[OUT]", lines, h.done, &readers)
	go scanInto(stderr, "[ERR]", lines, h.done, &readers)

	go func() {
		readers.Wait()
		close(lines)
		h.exit <- waitCode(cmd)
	}()

	return h, lines, nil
}

// Kill sends a best-effort termination signal to the whole process group.
// It does not wait; termination is observed later via PollExit. Killing
// also releases the scanner goroutines: once the consumer stops draining,
// a chatty task can fill the line channel, and without the release a
// blocked send would keep the channel open and the child unreaped.
func (h *Handle) Kill() {
	killGroup(h.cmd)
	h.killOnce.Do(func() { close(h.done) })
}

// PollExit reports the exit code if the process has finished. It never
// blocks: (0, false) means still running.
func (h *Handle) PollExit() (code int, done bool) {
	select {
	case code = <-h.exit:
		return code, true
	default:
		return 0, false
	}
}

func scanInto(r io.Reader, tag string, lines chan<- string, done <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		select {
		case lines <- tag + " " + line:
		case <-done:
			// Task was killed; remaining output is discarded so the send
			// can never wedge on a full channel nobody drains anymore.
			return
		}
	}
}

func waitCode(cmd *exec.Cmd) int {
	err := cmd.Wait()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		// Killed by signal: report a conventional non-zero code.
		return 1
	}
	return 1
}
