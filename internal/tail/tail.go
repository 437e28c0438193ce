// Package tail follows a growing log file by polling, with truncation
// detection for clients that rotate the file in place.
package tail

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"time"
)

type Options struct {
	StartAtEnd   bool
	PollInterval time.Duration
}

type Follower struct {
	path string
	opts Options

	mu      sync.Mutex
	file    *os.File
	offset  int64
	pending []byte
	stopped bool
}

func NewFollower(path string, opts Options) (*Follower, error) {
	if path == "" {
		return nil, errors.New("tail: empty path")
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 100 * time.Millisecond
	}
	return &Follower{path: path, opts: opts}, nil
}

func (f *Follower) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return nil
	}
	f.stopped = true
	if f.file != nil {
		err := f.file.Close()
		f.file = nil
		return err
	}
	return nil
}

// Run reads the file to its end and then keeps polling for appended
// data, invoking onLine for every complete line. Returns when the
// context is done or a read fails.
func (f *Follower) Run(ctx context.Context, onLine func(line string)) error {
	if onLine == nil {
		return errors.New("tail: onLine is nil")
	}

	file, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer file.Close()

	f.mu.Lock()
	f.file = file
	f.stopped = false
	f.mu.Unlock()

	whence := io.SeekStart
	if f.opts.StartAtEnd {
		whence = io.SeekEnd
	}
	off, err := file.Seek(0, whence)
	if err != nil {
		return err
	}
	f.offset = off

	readBuf := make([]byte, 32*1024)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		fi, err := file.Stat()
		if err != nil {
			return err
		}
		if fi.Size() < f.offset {
			// File was truncated or replaced; start over.
			if _, err := file.Seek(0, io.SeekStart); err != nil {
				return err
			}
			f.offset = 0
			f.pending = f.pending[:0]
		}

		n, rerr := file.Read(readBuf)
		if n > 0 {
			f.offset += int64(n)
			f.pending = append(f.pending, readBuf[:n]...)
			f.emitLines(onLine)
		}

		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return rerr
		}
		if n == 0 || errors.Is(rerr, io.EOF) {
			time.Sleep(f.opts.PollInterval)
		}
	}
}

func (f *Follower) emitLines(onLine func(line string)) {
	for {
		idx := -1
		for i, b := range f.pending {
			if b == '\n' {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		line := f.pending[:idx]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if len(line) > 0 {
			onLine(string(line))
		}
		f.pending = f.pending[idx+1:]
	}
	if len(f.pending) > 0 {
		// Drop references to the large read buffer.
		keep := make([]byte, len(f.pending))
		copy(keep, f.pending)
		f.pending = keep
	}
}
