// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package output renders a check result in one of the display modes.
//
// Successful results go to stdout. Failures print one diagnostic to stderr and
// nothing to stdout, except in JSON mode, which always prints its line to stdout
// with a null day count and stays silent on stderr.
package output
