// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/sslcheck/src/cli"
	"github.com/H0llyW00dzZ/sslcheck/src/logger"
	verpkg "github.com/H0llyW00dzZ/sslcheck/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130 // Standard exit code for SIGINT
)

func main() {
	log := logger.NewCLILogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)

	go func() {
		done <- cli.Execute(ctx, version)
	}()

	select {
	case err := <-done:
		code := exitCode(err)
		if code != exitOK {
			if !errors.Is(err, cli.ErrCheckFailed) {
				log.Printf("Error: %v", err)
			}
			os.Exit(code)
		}
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Give the handshake a moment to unwind
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		os.Exit(exitInterrupted)
	}
}

// exitCode maps the error returned by the CLI to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		return exitFailure
	}
}
