// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX] helpers for presenting the program to the user,
// such as the executable name shown in usage text. Paths written with either
// separator are handled the same way on every platform.
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
