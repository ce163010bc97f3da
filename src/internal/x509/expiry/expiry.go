// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509expiry

import (
	"crypto/x509"
	"errors"
	"time"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrParse indicates that the certificate's notAfter could not be decoded.
	ErrParse = errors.New("x509expiry: cannot interpret certificate notAfter")

	// ErrExpired indicates that notAfter lies more than one full day in the past.
	ErrExpired = errors.New("x509expiry: certificate has expired")
)

const secondsPerDay = 24 * 60 * 60

// Calculator turns a certificate into a remaining day count relative to Now.
type Calculator struct {
	// Now returns the reference time. It defaults to [time.Now].
	Now func() time.Time
}

// New returns a Calculator using the wall clock.
func New() Calculator { return Calculator{Now: time.Now} }

// DaysUntil returns the whole days between now and the certificate's notAfter.
func (c Calculator) DaysUntil(cert *x509.Certificate) (int, error) {
	if cert == nil {
		return 0, ErrParse
	}

	notAfter, err := NotAfter(cert.RawTBSCertificate)
	if err != nil {
		return 0, err
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	days := Days(notAfter, now())
	if days < 0 {
		return days, ErrExpired
	}
	return days, nil
}

// Days returns the signed number of whole 24-hour periods from now until notAfter,
// truncated toward zero. Seconds are compared directly so that far-future dates
// (year 9999 is common) do not overflow a [time.Duration].
func Days(notAfter, now time.Time) int {
	return int((notAfter.Unix() - now.Unix()) / secondsPerDay)
}

// NotAfter decodes the validity notAfter field from a DER-encoded TBSCertificate.
//
//	TBSCertificate ::= SEQUENCE {
//	    version         [0]  EXPLICIT Version DEFAULT v1,
//	    serialNumber         CertificateSerialNumber,
//	    signature            AlgorithmIdentifier,
//	    issuer               Name,
//	    validity             Validity,
//	    ... }
//
//	Validity ::= SEQUENCE { notBefore Time, notAfter Time }
func NotAfter(rawTBS []byte) (time.Time, error) {
	input := cryptobyte.String(rawTBS)

	var tbs cryptobyte.String
	if !input.ReadASN1(&tbs, cbasn1.SEQUENCE) {
		return time.Time{}, ErrParse
	}

	if !tbs.SkipOptionalASN1(cbasn1.Tag(0).Constructed().ContextSpecific()) ||
		!tbs.SkipASN1(cbasn1.INTEGER) ||
		!tbs.SkipASN1(cbasn1.SEQUENCE) ||
		!tbs.SkipASN1(cbasn1.SEQUENCE) {
		return time.Time{}, ErrParse
	}

	var validity cryptobyte.String
	if !tbs.ReadASN1(&validity, cbasn1.SEQUENCE) {
		return time.Time{}, ErrParse
	}

	if _, err := readTime(&validity); err != nil {
		return time.Time{}, err
	}

	notAfter, err := readTime(&validity)
	if err != nil {
		return time.Time{}, err
	}

	if !validity.Empty() {
		return time.Time{}, ErrParse
	}
	return notAfter, nil
}

func readTime(s *cryptobyte.String) (time.Time, error) {
	var t time.Time

	switch {
	case s.PeekASN1Tag(cbasn1.UTCTime):
		if !s.ReadASN1UTCTime(&t) {
			return time.Time{}, ErrParse
		}
	case s.PeekASN1Tag(cbasn1.GeneralizedTime):
		if !s.ReadASN1GeneralizedTime(&t) {
			return time.Time{}, ErrParse
		}
	default:
		return time.Time{}, ErrParse
	}

	return t, nil
}
