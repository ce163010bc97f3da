// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package check

import (
	"context"
	"crypto/x509"
	"time"

	"github.com/H0llyW00dzZ/sslcheck/src/internal/tlsconn"
	x509certs "github.com/H0llyW00dzZ/sslcheck/src/internal/x509/certs"
	x509expiry "github.com/H0llyW00dzZ/sslcheck/src/internal/x509/expiry"
)

// Result is the outcome of one check. Days is nil whenever Err is set.
type Result struct {
	Domain   string
	Port     string
	Days     *int
	NotAfter time.Time

	// Peer is the handshake that produced the certificate; nil for file checks
	// and for failures before a handshake completed.
	Peer *tlsconn.PeerCertificate

	Err error
}

// OK reports whether the check produced a day count.
func (r Result) OK() bool { return r.Err == nil && r.Days != nil }

// Kind returns the failure kind, or [KindUnknown] for a successful result.
func (r Result) Kind() Kind { return KindOf(r.Err) }

// Failed builds the result of a check that could not run, for example because the
// TLS context failed to initialise.
func Failed(domain, port string, err error) Result {
	return Result{Domain: domain, Port: port, Err: newError(domain, err)}
}

// Remote retrieves the certificate presented by target and computes its days
// until expiry. The domain reported is the literal target host.
func Remote(ctx context.Context, tc *tlsconn.Context, target tlsconn.Target, calc x509expiry.Calculator) Result {
	peer, err := tc.Fetch(ctx, target)
	if err != nil {
		return Failed(target.Host, target.Port, err)
	}

	r := evaluate(target.Host, peer.Leaf, calc)
	r.Port = target.Port
	r.Peer = peer
	return r
}

// File computes the days until expiry of the first certificate in path.
// label is reported as the domain; it defaults to path.
func File(path, label string, calc x509expiry.Calculator) Result {
	if label == "" {
		label = path
	}

	cert, err := x509certs.New().Load(path)
	if err != nil {
		return Failed(label, "", err)
	}
	return evaluate(label, cert, calc)
}

// Certificate computes the days until expiry of cert, reported under domain.
func Certificate(domain string, cert *x509.Certificate, calc x509expiry.Calculator) Result {
	return evaluate(domain, cert, calc)
}

func evaluate(domain string, cert *x509.Certificate, calc x509expiry.Calculator) Result {
	days, err := calc.DaysUntil(cert)
	if err != nil {
		return Failed(domain, "", err)
	}

	return Result{
		Domain:   domain,
		Days:     &days,
		NotAfter: cert.NotAfter,
	}
}
