package terminal

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// cancelableReader wraps an io.Reader with cancellation support so Stop can
// release the background reading goroutine without blocking on a stdin Read
// that may never return.
//
// Architecture: pipe-based relay. A relay goroutine copies data from the
// underlying reader into an os.Pipe's write end; readLoop reads from the
// pipe's read end and delivers results over a channel. Cancel closes the
// pipe writer, which makes the pipe reader's Read return io.EOF immediately
// regardless of whether the relay goroutine is still blocked in the
// underlying reader's Read.
type cancelableReader struct {
	r io.Reader

	canceled atomic.Bool
	done     chan struct{}
	doneOnce sync.Once

	readCh     chan readResult
	readerDone chan struct{}

	pipeReader     *os.File
	pipeWriter     *os.File
	pipeWriterOnce sync.Once
	relayDone      chan struct{}
}

type readResult struct {
	data []byte
	err  error
}

func newCancelableReader(r io.Reader) *cancelableReader {
	cr := &cancelableReader{
		r:          r,
		done:       make(chan struct{}),
		readCh:     make(chan readResult, 1),
		readerDone: make(chan struct{}),
		relayDone:  make(chan struct{}),
	}

	pipeReader, pipeWriter, err := os.Pipe()
	if err != nil {
		// Extremely rare; fall back to a reader that only unblocks on the
		// underlying reader's own EOF/error, via the same channel protocol.
		close(cr.relayDone)
		go cr.readLoopDirect()
		return cr
	}
	cr.pipeReader = pipeReader
	cr.pipeWriter = pipeWriter
	go cr.relayLoop()
	go cr.readLoopPipe()
	return cr
}

func (cr *cancelableReader) closePipeWriter() {
	cr.pipeWriterOnce.Do(func() {
		cr.pipeWriter.Close()
	})
}

func (cr *cancelableReader) relayLoop() {
	defer close(cr.relayDone)
	defer cr.closePipeWriter()

	buf := make([]byte, 4096)
	for {
		select {
		case <-cr.done:
			return
		default:
		}
		n, err := cr.r.Read(buf)
		if n > 0 {
			if _, werr := cr.pipeWriter.Write(buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (cr *cancelableReader) readLoopPipe() {
	defer close(cr.readerDone)

	buf := make([]byte, 256)
	for {
		select {
		case <-cr.done:
			return
		default:
		}
		n, err := cr.pipeReader.Read(buf)
		result := readResult{err: err}
		if n > 0 {
			result.data = append([]byte(nil), buf[:n]...)
		}
		select {
		case cr.readCh <- result:
		case <-cr.done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (cr *cancelableReader) readLoopDirect() {
	defer close(cr.readerDone)

	buf := make([]byte, 256)
	for {
		select {
		case <-cr.done:
			return
		default:
		}
		n, err := cr.r.Read(buf)
		result := readResult{err: err}
		if n > 0 {
			result.data = append([]byte(nil), buf[:n]...)
		}
		select {
		case cr.readCh <- result:
		case <-cr.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// ReadTimeout waits for the next chunk of input. If timeout is zero it
// blocks indefinitely; otherwise it reports timedOut=true if no data arrives
// within timeout, which the caller uses to expire the 10ms idle-disambiguation
// window for a sequence still pending in its own buffer.
func (cr *cancelableReader) ReadTimeout(timeout time.Duration) (data []byte, err error, timedOut bool) {
	if cr.canceled.Load() {
		return nil, io.EOF, false
	}
	var timeoutCh <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}
	select {
	case result := <-cr.readCh:
		return result.data, result.err, false
	case <-cr.done:
		return nil, io.EOF, false
	case <-timeoutCh:
		return nil, nil, true
	}
}

// Cancel stops the reader. Safe to call multiple times.
func (cr *cancelableReader) Cancel() {
	cr.doneOnce.Do(func() {
		cr.canceled.Store(true)
		close(cr.done)
		cr.closePipeWriter()
		if f, ok := cr.r.(*os.File); ok {
			_ = f.SetReadDeadline(time.Now())
		}
	})
}

// WaitForShutdown waits for the background goroutines to exit, with a short
// grace period for the relay goroutine which may remain briefly blocked in
// the underlying reader's Read on platforms without deadline support.
func (cr *cancelableReader) WaitForShutdown() {
	select {
	case <-cr.readerDone:
	case <-time.After(50 * time.Millisecond):
	}
	select {
	case <-cr.relayDone:
	case <-time.After(50 * time.Millisecond):
	}
	if cr.pipeReader != nil {
		_ = cr.pipeReader.Close()
	}
	if f, ok := cr.r.(*os.File); ok {
		_ = f.SetReadDeadline(time.Time{})
	}
}
