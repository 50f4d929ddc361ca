package docker

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// InspectRaw returns the raw inspect JSON for a container.
func (c *Client) InspectRaw(ctx context.Context, id string) ([]byte, error) {
	_, raw, err := c.api.ContainerInspectWithRaw(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// ResetContainer stops a container, force-removes it, and deletes its named
// volumes. Each step reports a progress line; stop failures are ignored
// (the container may already be down), remove failures are fatal, and a
// volume that will not delete only adds a line instead of aborting the rest.
func (c *Client) ResetContainer(ctx context.Context, id string) ([]string, error) {
	progress := []string{fmt.Sprintf("Inspecting %s...", id)}

	raw, err := c.InspectRaw(ctx, id)
	if err != nil {
		return progress, fmt.Errorf("inspecting %s: %w", id, err)
	}
	volumes := volumeNames(raw)

	_ = c.StopContainer(ctx, id)

	progress = append(progress, fmt.Sprintf("Removing container %s...", id))
	if err := c.RemoveContainer(ctx, id, true); err != nil {
		return progress, fmt.Errorf("removing %s: %w", id, err)
	}

	for _, v := range volumes {
		progress = append(progress, fmt.Sprintf("Removing volume %s...", v))
		if err := c.api.VolumeRemove(ctx, v, false); err != nil {
			progress = append(progress, fmt.Sprintf("Failed to remove volume %s: %v", v, err))
		}
	}

	progress = append(progress, fmt.Sprintf("Reset complete for %s", id))
	return progress, nil
}

// volumeNames extracts the named volumes from raw inspect JSON.
func volumeNames(raw []byte) []string {
	var names []string
	gjson.GetBytes(raw, "Mounts").ForEach(func(_, mount gjson.Result) bool {
		if mount.Get("Type").String() == "volume" {
			if name := mount.Get("Name").String(); name != "" {
				names = append(names, name)
			}
		}
		return true
	})
	return names
}

// FormatContainerInfo renders raw inspect JSON as the human-readable
// summary shown in the inspect popup.
func FormatContainerInfo(raw []byte) string {
	j := gjson.ParseBytes(raw)

	var out []string
	out = append(out, "ID: "+truncateID(j.Get("Id").String(), 12))
	out = append(out, "Image: "+j.Get("Config.Image").String())
	out = append(out, fmt.Sprintf("Status: %s (Pid: %d, Exit: %d)",
		j.Get("State.Status").String(), j.Get("State.Pid").Int(), j.Get("State.ExitCode").Int()))
	out = append(out, "Created: "+j.Get("Created").String())
	out = append(out, "")

	out = append(out, "PORTS:")
	ports := j.Get("NetworkSettings.Ports")
	if ports.Exists() && len(ports.Map()) > 0 {
		keys := make([]string, 0, len(ports.Map()))
		for k := range ports.Map() {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			binding := ports.Map()[k]
			if !binding.IsArray() || len(binding.Array()) == 0 {
				out = append(out, fmt.Sprintf("  %s (not exposed)", k))
				continue
			}
			var mapped []string
			for _, b := range binding.Array() {
				hostPort := b.Get("HostPort").String()
				if hostPort == "" {
					continue
				}
				hostIP := b.Get("HostIp").String()
				if hostIP == "" {
					hostIP = "0.0.0.0"
				}
				mapped = append(mapped, hostIP+":"+hostPort)
			}
			out = append(out, fmt.Sprintf("  %s -> %s", k, strings.Join(mapped, ", ")))
		}
	} else {
		out = append(out, "  (none)")
	}

	out = append(out, "")
	out = append(out, "MOUNTS:")
	mounts := j.Get("Mounts").Array()
	if len(mounts) == 0 {
		out = append(out, "  (none)")
	}
	for _, m := range mounts {
		out = append(out, fmt.Sprintf("  %s: %s -> %s",
			m.Get("Type").String(), m.Get("Source").String(), m.Get("Destination").String()))
	}

	out = append(out, "")
	out = append(out, "ENV VARIABLES:")
	env := j.Get("Config.Env").Array()
	if len(env) == 0 {
		out = append(out, "  (none)")
	} else {
		vars := make([]string, 0, len(env))
		for _, e := range env {
			vars = append(vars, e.String())
		}
		sort.Strings(vars)
		for _, e := range vars {
			out = append(out, "  "+e)
		}
	}

	return strings.Join(out, "\n")
}
