package docker

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"golang.org/x/term"
)

// ContainerShell is an interactive exec session inside a container. It
// satisfies tea.ExecCommand so the dashboard can suspend itself, hand the
// terminal over, and resume when the shell exits.
type ContainerShell struct {
	api         EngineAPI
	containerID string
	shell       string
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

// NewContainerShell prepares a shell session for the given container.
func NewContainerShell(api EngineAPI, containerID, shell string) *ContainerShell {
	return &ContainerShell{api: api, containerID: containerID, shell: shell}
}

func (d *ContainerShell) SetStdin(r io.Reader)  { d.stdin = r }
func (d *ContainerShell) SetStdout(w io.Writer) { d.stdout = w }
func (d *ContainerShell) SetStderr(w io.Writer) { d.stderr = w }

// Run creates and attaches an exec instance, puts the local terminal into
// raw mode, forwards window resizes, and streams bytes both ways until
// the remote shell exits.
func (d *ContainerShell) Run() error {
	ctx := context.Background()

	created, err := d.api.ContainerExecCreate(ctx, d.containerID, container.ExecOptions{
		Cmd:          []string{d.shell},
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		Tty:          true,
	})
	if err != nil {
		return err
	}

	attached, err := d.api.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{Tty: true})
	if err != nil {
		return err
	}
	defer attached.Close()

	fd := int(os.Stdin.Fd())
	restore, err := rawMode(fd)
	if err != nil {
		return err
	}
	defer restore()

	done := make(chan struct{})
	defer close(done)
	go forwardResizes(ctx, d.api, created.ID, fd, done)
	resizeExec(ctx, d.api, created.ID, fd)

	d.stream(attached)
	return nil
}

// stream copies input and output until the remote side hangs up.
func (d *ContainerShell) stream(attached types.HijackedResponse) {
	stdin := d.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := d.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	outputDone := make(chan struct{})
	go func() {
		_, _ = io.Copy(stdout, attached.Reader)
		close(outputDone)
	}()
	go func() {
		_, _ = io.Copy(attached.Conn, stdin)
		_ = attached.CloseWrite()
	}()

	<-outputDone
}

// rawMode switches the terminal to raw mode and returns the restorer.
func rawMode(fd int) (func(), error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}

// forwardResizes pushes local terminal size changes to the exec session
// until done closes.
func forwardResizes(ctx context.Context, api EngineAPI, execID string, fd int, done <-chan struct{}) {
	sigCh := make(chan os.Signal, 1)
	startResizeListener(sigCh)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-sigCh:
			resizeExec(ctx, api, execID, fd)
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// resizeExec sends the current terminal size, best-effort.
func resizeExec(ctx context.Context, api EngineAPI, execID string, fd int) {
	width, height, err := term.GetSize(fd)
	if err != nil {
		return
	}
	_ = api.ContainerExecResize(ctx, execID, container.ResizeOptions{
		Height: uint(height),
		Width:  uint(width),
	})
}
