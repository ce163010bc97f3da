// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package check

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/sslcheck/src/internal/tlsconn"
	x509certs "github.com/H0llyW00dzZ/sslcheck/src/internal/x509/certs"
	x509expiry "github.com/H0llyW00dzZ/sslcheck/src/internal/x509/expiry"
)

// Kind identifies where along the check a failure happened.
type Kind int

const (
	// KindUnknown is reported for errors that did not come from a check.
	KindUnknown Kind = iota
	// KindContextInit: the TLS client context could not be built.
	KindContextInit
	// KindSessionInit: the per-connection TLS session could not be built.
	KindSessionInit
	// KindConnect: dial or handshake did not complete.
	KindConnect
	// KindNoCertificate: the handshake completed without a peer certificate.
	KindNoCertificate
	// KindExpiryParse: notAfter could not be interpreted.
	KindExpiryParse
	// KindExpired: notAfter is at least one full day in the past.
	KindExpired
	// KindCertificateLoad: a local certificate file could not be read or decoded.
	KindCertificateLoad
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindContextInit:     "context init",
	KindSessionInit:     "session init",
	KindConnect:         "connect",
	KindNoCertificate:   "no certificate",
	KindExpiryParse:     "expiry parse",
	KindExpired:         "expired",
	KindCertificateLoad: "certificate load",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Fatal reports whether the failure happened while setting up the TLS engine,
// before any connection was attempted.
func (k Kind) Fatal() bool { return k == KindContextInit || k == KindSessionInit }

// Expiry reports whether a certificate was retrieved but its expiry could
// not be turned into a day count.
func (k Kind) Expiry() bool { return k == KindExpiryParse || k == KindExpired }

// Error is the failure of a single check.
type Error struct {
	Kind   Kind
	Domain string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("check %s: %s: %v", e.Domain, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// newError wraps err for domain, deriving its kind from the sentinel it wraps.
func newError(domain string, err error) *Error {
	return &Error{Kind: classify(err), Domain: domain, Err: err}
}

// KindOf returns the kind of err, or [KindUnknown] if err does not come from a check.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return classify(err)
}

func classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, tlsconn.ErrContextInit):
		return KindContextInit
	case errors.Is(err, tlsconn.ErrSessionInit):
		return KindSessionInit
	case errors.Is(err, tlsconn.ErrConnect):
		return KindConnect
	case errors.Is(err, tlsconn.ErrNoCertificate):
		return KindNoCertificate
	case errors.Is(err, x509expiry.ErrParse):
		return KindExpiryParse
	case errors.Is(err, x509expiry.ErrExpired):
		return KindExpired
	case errors.Is(err, x509certs.ErrReadFile),
		errors.Is(err, x509certs.ErrInvalidBlockType),
		errors.Is(err, x509certs.ErrParsePKCS7),
		errors.Is(err, x509certs.ErrNoCertificatesInPKCS):
		return KindCertificateLoad
	default:
		return KindUnknown
	}
}
