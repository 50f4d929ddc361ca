package docker

import (
	"fmt"
	"strings"
	"time"
)

// ContainerSummary holds one container's row of the engine snapshot.
type ContainerSummary struct {
	ID      string
	Name    string
	Image   string
	Status  string
	State   string
	Created time.Time
	Ports   []PortMapping
	Labels  map[string]string
}

// PortMapping is a single published or exposed port.
type PortMapping struct {
	IP      string
	Private uint16
	Public  uint16
	Type    string
}

// LogLine is a single line from a container's log stream.
type LogLine struct {
	Timestamp time.Time
	Stream    string // "stdout" or "stderr"
	Content   string
}

// CancelFunc stops a running log follower. Safe to call more than once.
type CancelFunc func()

// DisplayPorts renders the port list the way `docker ps` does.
func DisplayPorts(ports []PortMapping) string {
	if len(ports) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		if p.Public != 0 {
			parts = append(parts, fmt.Sprintf("%d->%d/%s", p.Public, p.Private, p.Type))
		} else {
			parts = append(parts, fmt.Sprintf("%d/%s", p.Private, p.Type))
		}
	}
	return strings.Join(parts, ", ")
}

// Private ports tried first when picking a port to open in the browser:
// common web dev servers, then admin UIs. Falls back to well-known public
// ports, then any published tcp port.
var (
	preferredPrivatePorts = []uint16{3000, 8025, 54323, 5678, 5173, 4173, 8080, 80, 1337}
	preferredPublicPorts  = []uint16{80, 3000, 8080, 54324}
)

// BestPublicPort picks the most likely-to-be-a-web-UI published tcp port,
// or 0 if none is published.
func BestPublicPort(ports []PortMapping) uint16 {
	var tcp []PortMapping
	for _, p := range ports {
		if p.Public != 0 && (p.Type == "" || p.Type == "tcp") {
			tcp = append(tcp, p)
		}
	}
	for _, want := range preferredPrivatePorts {
		for _, p := range tcp {
			if p.Private == want {
				return p.Public
			}
		}
	}
	for _, want := range preferredPublicPorts {
		for _, p := range tcp {
			if p.Public == want {
				return p.Public
			}
		}
	}
	if len(tcp) > 0 {
		return tcp[0].Public
	}
	return 0
}
