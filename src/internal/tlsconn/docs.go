// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlsconn retrieves the leaf certificate a TLS server presents for a given
// host and port. A [Context] holds the TLS client configuration shared by every
// connection it opens; a [Session] performs exactly one dial and one handshake with
// [Server Name Indication] set to the literal target host.
//
// Certificates are not verified: chain validation and name matching are outside the
// scope of this package, which only needs the certificate the peer chose to present.
//
// [Server Name Indication]: https://grokipedia.com/page/Server_Name_Indication
package tlsconn
