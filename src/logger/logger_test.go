// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/sslcheck/src/logger"
)

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("connecting to %s", "example.com:443")

				assert.Equal(t, "connecting to example.com:443\n", buf.String())
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("test", "message")

				assert.Contains(t, buf.String(), "test message")
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first")
				assert.Contains(t, buf2.String(), "second")
				assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Silent",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, true)

				log.Printf("test message: %s", "hello")
				log.Println("another message")

				assert.Equal(t, 0, buf.Len(), "expected no output in silent mode")
			},
		},
		{
			name: "Printf_JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("handshake complete: %s", "TLS 1.3")

				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))

				assert.Equal(t, "info", entry["level"])
				assert.Equal(t, "handshake complete: TLS 1.3", entry["message"])
			},
		},
		{
			name: "Println_JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("test message")

				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
				assert.Equal(t, "test message", entry["message"])
			},
		},
		{
			name: "SetOutput_Nil",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("before")
				log.SetOutput(nil)
				log.Println("after")

				assert.Contains(t, buf.String(), "before")
				assert.NotContains(t, buf.String(), "after", "should not contain 'after' after setting nil output")
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, false)

				assert.NotPanics(t, func() {
					log.Printf("test")
					log.Println("test")
				})
			},
		},
		{
			name: "JSONEscaping_SpecialChars",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				for _, input := range []string{`test"quote`, `test\backslash`, "test\nnewline", "test\x01control"} {
					buf.Reset()
					log.Printf("%s", input)

					var entry map[string]any
					require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry),
						"input %q: failed to parse JSON\nOutput: %s", input, buf.String())
					assert.Equal(t, input, entry["message"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestJSONLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, false)

	const numGoroutines = 50
	const messagesPerGoroutine = 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for j := range messagesPerGoroutine {
				log.Printf("goroutine %d message %d", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, numGoroutines*messagesPerGoroutine)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "invalid JSON line: %s", line)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		structured bool
		wantCLI    bool
	}{
		{name: "Quiet", verbose: false, structured: false},
		{name: "Quiet Structured", verbose: false, structured: true},
		{name: "Verbose", verbose: true, structured: false, wantCLI: true},
		{name: "Verbose Structured", verbose: true, structured: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(tt.verbose, tt.structured)
			log.SetOutput(&buf)
			log.Printf("hello")

			_, isCLI := log.(*logger.CLILogger)
			assert.Equal(t, tt.wantCLI, isCLI)

			if !tt.verbose {
				assert.Zero(t, buf.Len(), "quiet logger must not write")
				return
			}
			assert.Contains(t, buf.String(), "hello")
			if tt.structured {
				assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
			}
		})
	}
}
