// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the diagnostics logging used by sslcheck.
// It defines the Logger interface and two implementations: CLILogger for
// human-readable lines and JSONLogger for structured lines that keep stderr
// machine-readable when results are printed as JSON. Both write to stderr by
// default so stdout carries nothing but the result.
package logger
