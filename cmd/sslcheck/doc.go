// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// sslcheck prints how many days remain before a TLS server's certificate expires.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/sslcheck/cmd/sslcheck@latest
//
// # Usage
//
//	sslcheck [FLAGS] <domain>
//
// # Flags
//
//	-s, --short     Print only the number of days
//	-j, --json      Print {"domain": ..., "days": ...}; days is null on failure
//	-t, --table     Print the result as a markdown table
//	-p, --port      Connect to a custom port instead of 443
//	-f, --file      Read the certificate from a local PEM, DER or PKCS#7 file
//	    --verbose   Print connection diagnostics to stderr
//	-v, --version   Print version
//	-h, --help      Print help
//
// # Configuration
//
// Defaults may be read from a YAML or JSON file named by SSLCHECK_CONFIG_FILE:
//
//	defaults:
//	  port: "443"
//	  output: plain
//	tls:
//	  minVersion: "1.2"
//
// Flags given on the command line always win over the file.
//
// # Exit Status
//
// 0 when a result was printed, including the diagnostic for an expired
// certificate. 1 when setup, connecting or reading the certificate fails,
// or on a usage error. 130 when interrupted.
//
// # Examples
//
//	sslcheck example.com
//	sslcheck -s example.com
//	sslcheck -j -p 8443 internal.example.com
//	sslcheck -f cert.pem example.com
package main
