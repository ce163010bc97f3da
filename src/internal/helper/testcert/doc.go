// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testcert generates throwaway self-signed certificates and runs local TLS
// listeners that present them. It exists for tests that need a real handshake with
// a certificate whose validity window is under the test's control.
package testcert
