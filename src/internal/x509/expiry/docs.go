// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509expiry computes how many whole days remain before an [X.509]
// certificate expires. The notAfter instant is read from the certificate's own
// DER encoding (UTCTime or GeneralizedTime) rather than trusted from a parsed copy,
// so a malformed validity field is reported as [ErrParse].
//
// A day is a fixed 24-hour period. Partial days are truncated, never rounded up,
// and a negative count is reported as [ErrExpired].
//
// [X.509]: https://grokipedia.com/page/X.509
package x509expiry
