// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	io.WriterTo
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool defines the interface for buffer pooling.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

type pool struct{ p *bytebufferpool.Pool }

func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns b to the pool. Buffers not obtained from a bytebufferpool are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the process-wide buffer pool.
//
//	buf := gc.Default.Get()
//	defer func() {
//		buf.Reset()
//		gc.Default.Put(buf)
//	}()
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// WriteLine assembles a line with fill in a pooled buffer and writes it to w with
// a single Write call.
func WriteLine(w io.Writer, fill func(buf Buffer)) error {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	fill(buf)
	if n := buf.Len(); n == 0 || buf.Bytes()[n-1] != '\n' {
		buf.WriteByte('\n')
	}

	_, err := buf.WriteTo(w)
	return err
}
