// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package version provides centralized version and build platform information for sslcheck.
package version

import (
	"fmt"
	"runtime"
)

// Version holds the current version of sslcheck.
// This value can be overridden at build time using ldflags.
var Version = "1.2.0"

// Author is printed below the version line.
const Author = "Alexia Michelle <alexia@goldendoglinux.org>"

// Platform returns the display name of the operating system the binary was built for.
func Platform() string { return platformName(runtime.GOOS) }

// Arch returns the display name of the CPU architecture the binary was built for.
func Arch() string { return archName(runtime.GOARCH) }

// String returns the version banner, e.g. "SSLCHECK 1.2.0 (Linux, x86_64)".
func String(v string) string {
	return fmt.Sprintf("SSLCHECK %s (%s, %s)", v, Platform(), Arch())
}

func platformName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "macOS"
	case "freebsd":
		return "FreeBSD"
	case "windows":
		return "Windows"
	default:
		return "Unknown"
	}
}

func archName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i386"
	case "arm64":
		return "arm64"
	case "arm":
		return "arm"
	case "ppc64", "ppc64le":
		return "ppc64"
	case "mips", "mipsle", "mips64", "mips64le":
		return "mips"
	default:
		return "unknown"
	}
}
