// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsconn

import "net"

const (
	// DefaultPort is used when no port is given.
	DefaultPort = "443"

	// maxPortLen is the longest port token kept; "65535" is five characters.
	maxPortLen = 5
)

// Target identifies the endpoint to connect to.
//
// Host is used verbatim for both dialing and SNI. Port is an opaque token passed to
// the dialer; it is not checked against the 1-65535 range, so a bad value surfaces
// as a connection failure.
type Target struct {
	Host string
	Port string
}

// NewTarget returns a Target for host and port. An empty port becomes [DefaultPort]
// and a port token longer than five characters is truncated.
func NewTarget(host, port string) Target {
	if port == "" {
		port = DefaultPort
	}
	if len(port) > maxPortLen {
		port = port[:maxPortLen]
	}
	return Target{Host: host, Port: port}
}

// Address returns the host:port string handed to the dialer.
func (t Target) Address() string { return net.JoinHostPort(t.Host, t.Port) }
