package docker

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/client"
)

// Compile-time interface check
var _ EngineService = (*Client)(nil)

// Client wraps the Docker SDK client with the snapshot and lifecycle
// helpers the dashboard needs. It talks to the SDK through the EngineAPI
// interface for testability.
type Client struct {
	api EngineAPI
}

// NewClient creates an engine client with automatic socket detection and
// verifies connectivity with a ping.
func NewClient() (*Client, error) {
	host := os.Getenv("DOCKER_HOST")
	if host == "" {
		host = detectDockerSocket()
	}

	opts := []client.Opt{
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TimeoutPing)
	defer cancel()
	if _, err := cli.Ping(ctx); err != nil {
		cli.Close()
		return nil, fmt.Errorf("failed to connect to the container engine: %w", err)
	}

	return &Client{api: cli}, nil
}

// Ping returns nil if the engine is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.Ping(ctx)
	return err
}

// Close closes the engine connection.
func (c *Client) Close() error {
	return c.api.Close()
}

// ServerInfo returns engine daemon information.
func (c *Client) ServerInfo(ctx context.Context) (system.Info, error) {
	return c.api.Info(ctx)
}

// API returns the underlying EngineAPI.
func (c *Client) API() EngineAPI {
	return c.api
}

// Snapshot lists all containers with their ports, sorted by name.
// A record without an ID is skipped; the rest of the snapshot still applies.
func (c *Client) Snapshot(ctx context.Context) ([]ContainerSummary, error) {
	list, err := c.api.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, err
	}

	result := make([]ContainerSummary, 0, len(list))
	for _, ct := range list {
		if ct.ID == "" {
			continue
		}

		name := ""
		if len(ct.Names) > 0 {
			name = ct.Names[0]
			if len(name) > 0 && name[0] == '/' {
				name = name[1:]
			}
		}

		ports := make([]PortMapping, 0, len(ct.Ports))
		for _, p := range ct.Ports {
			ports = append(ports, PortMapping{
				IP:      p.IP,
				Private: p.PrivatePort,
				Public:  p.PublicPort,
				Type:    p.Type,
			})
		}
		sort.Slice(ports, func(i, j int) bool { return ports[i].Private < ports[j].Private })

		state := ct.State
		if state == "" {
			state = "unknown"
		}

		result = append(result, ContainerSummary{
			ID:      truncateID(ct.ID, 12),
			Name:    name,
			Image:   ct.Image,
			Status:  ct.Status,
			State:   state,
			Created: time.Unix(ct.Created, 0),
			Ports:   ports,
			Labels:  ct.Labels,
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// StartContainer starts a container by ID.
func (c *Client) StartContainer(ctx context.Context, id string) error {
	return c.api.ContainerStart(ctx, id, container.StartOptions{})
}

// StopContainer stops a container by ID.
func (c *Client) StopContainer(ctx context.Context, id string) error {
	return c.api.ContainerStop(ctx, id, container.StopOptions{})
}

// RestartContainer restarts a container by ID.
func (c *Client) RestartContainer(ctx context.Context, id string) error {
	return c.api.ContainerRestart(ctx, id, container.StopOptions{})
}

// PauseContainer pauses a container by ID.
func (c *Client) PauseContainer(ctx context.Context, id string) error {
	return c.api.ContainerPause(ctx, id)
}

// UnpauseContainer unpauses a container by ID.
func (c *Client) UnpauseContainer(ctx context.Context, id string) error {
	return c.api.ContainerUnpause(ctx, id)
}

// KillContainer sends the default kill signal to a container.
func (c *Client) KillContainer(ctx context.Context, id string) error {
	return c.api.ContainerKill(ctx, id, "")
}

// RemoveContainer removes a container by ID.
func (c *Client) RemoveContainer(ctx context.Context, id string, force bool) error {
	return c.api.ContainerRemove(ctx, id, container.RemoveOptions{Force: force})
}

// truncateID returns the first maxLen characters of an ID string.
func truncateID(id string, maxLen int) string {
	if len(id) > maxLen {
		return id[:maxLen]
	}
	return id
}
