package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/goswap/pkg/config"
	"github.com/yaklabco/goswap/pkg/swap"
)

// Swap drives one stream through a scanner: it reads r in chunks of
// chunkSize bytes, feeds each chunk to sc, and writes the resulting output
// to w, finishing the scanner at EOF. The scanner suspends between chunks,
// so the whole stream is never held in memory.
//
// Cancellation is checked between chunks; on any failure the stream is
// abandoned with whatever output was already written, which is why callers
// writing files pair this with an atomic writer.
func Swap(ctx context.Context, r io.Reader, w io.Writer, sc *swap.Scanner, chunkSize int) (bytesIn, bytesOut int64, err error) {
	// A zero-length read buffer would never reach EOF.
	if chunkSize <= 0 {
		chunkSize = config.DefaultChunkSize
	}

	buf := make([]byte, chunkSize)

	for {
		select {
		case <-ctx.Done():
			return bytesIn, bytesOut, fmt.Errorf("swap cancelled: %w", ctx.Err())
		default:
		}

		n, readErr := r.Read(buf)
		if n > 0 {
			bytesIn += int64(n)

			out, scanErr := sc.Scan(string(buf[:n]))
			if scanErr != nil {
				return bytesIn, bytesOut, scanErr
			}

			wn, writeErr := io.WriteString(w, out)
			bytesOut += int64(wn)
			if writeErr != nil {
				return bytesIn, bytesOut, fmt.Errorf("write output: %w", writeErr)
			}
		}

		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				return bytesIn, bytesOut, fmt.Errorf("read input: %w", readErr)
			}
			break
		}
	}

	tail, err := sc.Finish()
	if err != nil {
		return bytesIn, bytesOut, err
	}
	if tail != "" {
		wn, writeErr := io.WriteString(w, tail)
		bytesOut += int64(wn)
		if writeErr != nil {
			return bytesIn, bytesOut, fmt.Errorf("write output: %w", writeErr)
		}
	}

	return bytesIn, bytesOut, nil
}
