// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// FallbackName is used when the executable name cannot be determined.
const FallbackName = "sslcheck"

// GetExecutableName returns the name the program was invoked as, without
// directories or a ".exe" suffix.
func GetExecutableName() string { return ExecutableName(os.Args) }

// ExecutableName extracts the executable name from an argument vector.
//
//   - Linux/macOS: "sslcheck" from "/usr/local/bin/sslcheck"
//   - Windows: "sslcheck" from "C:\bin\sslcheck.exe"
//   - Fallback: [FallbackName] if args is empty or args[0] has no name
func ExecutableName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return FallbackName
	}

	// Split on both separators so a Windows path is handled on Unix and vice versa.
	parts := strings.FieldsFunc(args[0], func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return FallbackName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" {
		return FallbackName
	}
	return name
}
