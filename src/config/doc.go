// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads optional sslcheck defaults from a JSON or YAML file.
//
// The file is named by the SSLCHECK_CONFIG_FILE environment variable. Values found
// there replace the built-in defaults; flags given on the command line replace both.
//
//	defaults:
//	  port: "8443"
//	  output: json
//	tls:
//	  minVersion: "1.2"
package config
