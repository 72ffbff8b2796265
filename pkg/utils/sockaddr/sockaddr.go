package sockaddr

import "strings"

// Parse splits a listen address into a network and an address for net.Listen
// and net.Dial. It accepts unix://path, tcp://host:port, a bare socket path
// (anything containing a slash) or a bare host:port.
func Parse(addr string) (network, address string) {
	switch {
	case strings.HasPrefix(addr, "unix://"):
		return "unix", strings.TrimPrefix(addr, "unix://")
	case strings.HasPrefix(addr, "tcp://"):
		return "tcp", strings.TrimPrefix(addr, "tcp://")
	case strings.Contains(addr, "/"):
		return "unix", addr
	default:
		return "tcp", addr
	}
}
