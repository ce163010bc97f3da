// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package check runs one certificate expiry check end to end: retrieve the leaf
// certificate (from a TLS endpoint or a local file), then compute its remaining days.
// Every outcome, successful or not, is reported as a single [Result]; failures carry
// an [*Error] whose [Kind] tells them apart even though the command line presents
// them all the same way.
package check
