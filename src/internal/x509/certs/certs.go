// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParsePKCS7 indicates that data is neither a DER certificate nor PKCS7.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrReadFile indicates that the certificate file could not be read.
	ErrReadFile = errors.New("x509certs: failed to read certificate file")
)

const certBlockType = "CERTIFICATE"

// Decoder extracts the leaf certificate from encoded certificate data.
type Decoder struct {
	blockType string
}

// New creates a Decoder expecting PEM blocks of type CERTIFICATE.
func New() *Decoder { return &Decoder{blockType: certBlockType} }

// IsPEM checks if the data starts with a PEM block.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode returns the first certificate in data. PEM input must start with a
// CERTIFICATE block; binary input is tried as DER first and PKCS7 second.
func (d *Decoder) Decode(data []byte) (*x509.Certificate, error) {
	if block, _ := pem.Decode(data); block != nil {
		if block.Type != d.blockType {
			return nil, ErrInvalidBlockType
		}
		data = block.Bytes
	}

	if cert, err := x509.ParseCertificate(data); err == nil {
		return cert, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// Load reads path and decodes its first certificate.
func (d *Decoder) Load(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	cert, err := d.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cert, nil
}
