// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Relative path", args: []string{"./sslcheck"}, expected: "sslcheck"},
		{name: "Just filename", args: []string{"sslcheck"}, expected: "sslcheck"},
		{name: "Empty args", args: []string{}, expected: FallbackName},
		{name: "Empty first arg", args: []string{""}, expected: FallbackName},
		{name: "Only separators", args: []string{"///"}, expected: FallbackName},
		{name: "Bare extension", args: []string{"/bin/.exe"}, expected: FallbackName},
		{name: "Unix absolute path", args: []string{"/usr/local/bin/sslcheck"}, expected: "sslcheck"},
		{name: "Trailing slash", args: []string{"/usr/local/bin/sslcheck/"}, expected: "sslcheck"},
		{name: "Windows path with .exe", args: []string{"C:\\Program Files\\sslcheck.exe"}, expected: "sslcheck"},
		{name: "Windows path without .exe", args: []string{"C:\\tools\\sslcheck"}, expected: "sslcheck"},
		{name: "Other extensions are kept", args: []string{"/opt/sslcheck.bin"}, expected: "sslcheck.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExecutableName(tt.args))
		})
	}
}

func TestGetExecutableName(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"/usr/bin/sslcheck", "example.com"}
	assert.Equal(t, "sslcheck", GetExecutableName())
}
