// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of sslcheck.
// It implements a Cobra root command that checks how many days remain before a
// TLS server's certificate (or a local certificate file) expires and prints the
// answer as plain text, a bare number, JSON or a markdown table.
package cli
