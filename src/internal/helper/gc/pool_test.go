// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or use this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write byte slice",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "hello", buf.String())
				assert.Equal(t, 5, buf.Len())
			},
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
				buf.WriteString(" test")
				buf.WriteByte('!')
			},
			check: func(t *testing.T, buf Buffer) {
				expected := "hello test!"
				assert.Equal(t, expected, buf.String())
				assert.Equal(t, []byte(expected), buf.Bytes())
			},
		},
		{
			name: "Reset clears buffer",
			setup: func(buf Buffer) {
				buf.WriteString("data to clear")
				buf.Reset()
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, 0, buf.Len(), "Reset() failed, buffer still contains data: %q", buf.Bytes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

func TestPool_PutForeignBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		Default.Put(&mockBuffer{buf: &bytes.Buffer{}})
	})
}

func TestWriteLine(t *testing.T) {
	tests := []struct {
		name     string
		fill     func(buf Buffer)
		expected string
	}{
		{
			name:     "Appends Newline",
			fill:     func(buf Buffer) { buf.WriteString("42") },
			expected: "42\n",
		},
		{
			name:     "Keeps Existing Newline",
			fill:     func(buf Buffer) { buf.WriteString("42\n") },
			expected: "42\n",
		},
		{
			name:     "Empty Line",
			fill:     func(Buffer) {},
			expected: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.NoError(t, WriteLine(&out, tt.fill))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestWriteLine_WriterError(t *testing.T) {
	want := errors.New("disk full")
	err := WriteLine(&errorWriter{err: want}, func(buf Buffer) { buf.WriteString("x") })
	assert.ErrorIs(t, err, want)
}

func TestWriteLine_Concurrent(t *testing.T) {
	var (
		mu  sync.Mutex
		out bytes.Buffer
		wg  sync.WaitGroup
	)

	const goroutines = 50
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var line bytes.Buffer
			_ = WriteLine(&line, func(buf Buffer) { buf.WriteString("line") })
			mu.Lock()
			out.Write(line.Bytes())
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*len("line\n"), out.Len())
}
