// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffers backed by [bytebufferpool].
// Output lines are assembled in a pooled buffer and written to their stream
// in one call, so a line is never split across writes.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
