// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package locale translates the user-facing strings sslcheck prints.
// The language is taken from the usual POSIX locale variables and matched against
// the bundled catalog; anything unsupported falls back to English.
package locale
