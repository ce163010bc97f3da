// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package testcert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"sync"
	"testing"
	"time"
)

// New returns a self-signed certificate for commonName that expires at notAfter.
// NotBefore is set two days before notAfter so expired certificates stay well-formed.
func New(tb testing.TB, commonName string, notAfter time.Time) tls.Certificate {
	tb.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		tb.Fatalf("generate key: %v", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		tb.Fatalf("generate serial: %v", err)
	}

	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             notAfter.Add(-48 * time.Hour),
		NotAfter:              notAfter,
		DNSNames:              []string{commonName},
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		tb.Fatalf("create certificate: %v", err)
	}

	leaf, err := x509.ParseCertificate(der)
	if err != nil {
		tb.Fatalf("parse certificate: %v", err)
	}

	return tls.Certificate{
		Certificate: [][]byte{der},
		PrivateKey:  key,
		Leaf:        leaf,
	}
}

// Server is a local TLS listener that picks its certificate by SNI.
type Server struct {
	ln       net.Listener
	fallback tls.Certificate
	byName   map[string]tls.Certificate

	mu          sync.Mutex
	serverNames []string
	wg          sync.WaitGroup
}

// NewServer starts a listener on 127.0.0.1 presenting fallback unless the client's
// SNI matches a key of byName. The listener is closed when the test ends.
func NewServer(tb testing.TB, fallback tls.Certificate, byName map[string]tls.Certificate) *Server {
	tb.Helper()

	s := &Server{fallback: fallback, byName: byName}
	config := &tls.Config{
		GetCertificate: s.getCertificate,
		MinVersion:     tls.VersionTLS12,
	}

	ln, err := tls.Listen("tcp", "127.0.0.1:0", config)
	if err != nil {
		tb.Fatalf("listen: %v", err)
	}
	s.ln = ln

	s.wg.Add(1)
	go s.serve()

	tb.Cleanup(s.Close)
	return s
}

// Addr returns the listener address as host and port.
func (s *Server) Addr() (host, port string) {
	host, port, _ = net.SplitHostPort(s.ln.Addr().String())
	return host, port
}

// ServerNames returns the SNI values received so far, in arrival order.
func (s *Server) ServerNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.serverNames...)
}

// Close stops the listener and waits for the accept loop to exit.
func (s *Server) Close() {
	s.ln.Close()
	s.wg.Wait()
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go func(c net.Conn) {
			defer c.Close()
			if tc, ok := c.(*tls.Conn); ok {
				_ = tc.Handshake()
			}
		}(conn)
	}
}

func (s *Server) getCertificate(hello *tls.ClientHelloInfo) (*tls.Certificate, error) {
	s.mu.Lock()
	s.serverNames = append(s.serverNames, hello.ServerName)
	s.mu.Unlock()

	if cert, ok := s.byName[hello.ServerName]; ok {
		return &cert, nil
	}
	return &s.fallback, nil
}

// ClosedPort returns a loopback port with nothing listening on it.
func ClosedPort(tb testing.TB) string {
	tb.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("listen: %v", err)
	}
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	ln.Close()
	return port
}
