// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package media

import "io"

// ProgressReader wraps a reader and reports cumulative bytes read through a
// callback. It lets upload handlers surface per-file progress without the
// pipeline knowing anything about transports. The callback runs on the
// reading goroutine; keep it cheap.
type ProgressReader struct {
	r      io.Reader
	read   int64
	total  int64
	onRead func(read, total int64)
}

// NewProgressReader wraps r. total may be -1 when the length is unknown
// (chunked uploads); the callback still receives the running byte count.
func NewProgressReader(r io.Reader, total int64, onRead func(read, total int64)) *ProgressReader {
	return &ProgressReader{r: r, total: total, onRead: onRead}
}

func (p *ProgressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.read += int64(n)
		if p.onRead != nil {
			p.onRead(p.read, p.total)
		}
	}
	return n, err
}

// BytesRead returns the cumulative count of bytes read so far.
func (p *ProgressReader) BytesRead() int64 {
	return p.read
}
