// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsconn

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
)

// PeerCertificate is the leaf certificate obtained from a completed handshake,
// together with the parameters that handshake negotiated.
type PeerCertificate struct {
	Leaf        *x509.Certificate
	Version     uint16
	CipherSuite uint16
}

// Session is a single connection attempt to one [Target].
type Session struct {
	target Target
	config *tls.Config
	dialer *net.Dialer
	wrap   func(conn net.Conn, config *tls.Config) client
}

// Target returns the endpoint this session connects to.
func (s *Session) Target() Target { return s.target }

// ServerName returns the SNI value sent during the handshake.
func (s *Session) ServerName() string { return s.config.ServerName }

// Handshake dials the target once, completes the TLS handshake and returns the
// peer's leaf certificate. The connection is closed before Handshake returns,
// whatever the outcome.
//
// Dial and handshake failures wrap [ErrConnect]; a handshake without a peer
// certificate yields [ErrNoCertificate].
func (s *Session) Handshake(ctx context.Context) (*PeerCertificate, error) {
	addr := s.target.Address()

	raw, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w to %s: %w", ErrConnect, addr, err)
	}

	conn := s.wrap(raw, s.config)
	defer conn.Close()

	if err := conn.HandshakeContext(ctx); err != nil {
		return nil, fmt.Errorf("%w to %s: %w", ErrConnect, addr, err)
	}

	state := conn.ConnectionState()
	if len(state.PeerCertificates) == 0 || state.PeerCertificates[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoCertificate, addr)
	}

	return &PeerCertificate{
		Leaf:        state.PeerCertificates[0],
		Version:     state.Version,
		CipherSuite: state.CipherSuite,
	}, nil
}
