// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsconn

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrContextInit indicates that the TLS client context could not be constructed.
	ErrContextInit = errors.New("tlsconn: failed to create TLS context")

	// ErrSessionInit indicates that the per-connection TLS session could not be created.
	ErrSessionInit = errors.New("tlsconn: failed to create TLS session")

	// ErrConnect indicates that the TCP connection or the TLS handshake did not complete.
	ErrConnect = errors.New("tlsconn: failed to connect")

	// ErrNoCertificate indicates that the handshake completed without a peer certificate.
	ErrNoCertificate = errors.New("tlsconn: no certificate presented by peer")
)

// client is the part of [tls.Conn] a Session relies on.
type client interface {
	HandshakeContext(ctx context.Context) error
	ConnectionState() tls.ConnectionState
	Close() error
}

// Context is the TLS client engine. It is safe to build several independent
// Contexts in one process; none of them touches global state.
type Context struct {
	minVersion uint16
	maxVersion uint16
	dialer     *net.Dialer

	// newClient wraps a dialed connection; tests replace it.
	newClient func(conn net.Conn, config *tls.Config) client
}

// Option configures a [Context].
type Option func(*Context) error

// WithMinVersion sets the lowest TLS version offered. The default is TLS 1.2.
func WithMinVersion(v uint16) Option {
	return func(c *Context) error {
		if !knownVersion(v) {
			return fmt.Errorf("unsupported minimum TLS version 0x%04x", v)
		}
		c.minVersion = v
		return nil
	}
}

// WithMaxVersion sets the highest TLS version offered. Zero leaves the
// crypto/tls default in place.
func WithMaxVersion(v uint16) Option {
	return func(c *Context) error {
		if v != 0 && !knownVersion(v) {
			return fmt.Errorf("unsupported maximum TLS version 0x%04x", v)
		}
		c.maxVersion = v
		return nil
	}
}

// WithDialer replaces the dialer used for the TCP connection. The default dialer has
// no timeout of its own; the dial is bounded only by the caller's context and the
// operating system.
func WithDialer(d *net.Dialer) Option {
	return func(c *Context) error {
		if d == nil {
			return errors.New("nil dialer")
		}
		c.dialer = d
		return nil
	}
}

// New constructs a Context. Any invalid option yields an error wrapping [ErrContextInit].
func New(opts ...Option) (*Context, error) {
	c := &Context{
		minVersion: tls.VersionTLS12,
		dialer:     &net.Dialer{},
		newClient: func(conn net.Conn, config *tls.Config) client {
			return tls.Client(conn, config)
		},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContextInit, err)
		}
	}

	if c.maxVersion != 0 && c.minVersion > c.maxVersion {
		return nil, fmt.Errorf("%w: minimum version %s is above maximum version %s",
			ErrContextInit, tls.VersionName(c.minVersion), tls.VersionName(c.maxVersion))
	}

	return c, nil
}

// NewSession prepares a single connection attempt to target. The session's TLS
// configuration carries target.Host as the SNI server name.
func (c *Context) NewSession(target Target) (*Session, error) {
	if target.Host == "" {
		return nil, fmt.Errorf("%w: empty server name", ErrSessionInit)
	}

	config := &tls.Config{
		ServerName: target.Host,
		MinVersion: c.minVersion,
		MaxVersion: c.maxVersion,
		// Only the presented certificate is inspected; trust is not evaluated.
		InsecureSkipVerify: true, // #nosec G402
	}

	return &Session{
		target: target,
		config: config,
		dialer: c.dialer,
		wrap:   c.newClient,
	}, nil
}

// Fetch creates a session for target and performs its handshake.
func (c *Context) Fetch(ctx context.Context, target Target) (*PeerCertificate, error) {
	s, err := c.NewSession(target)
	if err != nil {
		return nil, err
	}
	return s.Handshake(ctx)
}

// ParseVersion maps a version string such as "1.2" to its crypto/tls constant.
func ParseVersion(s string) (uint16, error) {
	switch s {
	case "1.0":
		return tls.VersionTLS10, nil
	case "1.1":
		return tls.VersionTLS11, nil
	case "1.2":
		return tls.VersionTLS12, nil
	case "1.3":
		return tls.VersionTLS13, nil
	default:
		return 0, fmt.Errorf("%w: unknown TLS version %q", ErrContextInit, s)
	}
}

func knownVersion(v uint16) bool {
	switch v {
	case tls.VersionTLS10, tls.VersionTLS11, tls.VersionTLS12, tls.VersionTLS13:
		return true
	}
	return false
}
