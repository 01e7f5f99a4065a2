package syncver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCanceled is returned when the user interrupts the prompt.
var ErrCanceled = errors.New("canceled by user")

type readResult struct {
	line string
	err  error
}

// promptLine prints msg to out and reads one line from in.
// It returns ErrCanceled when ctx is done before a line arrives or when the
// input ends without any text. The trailing newline is stripped.
//
// On cancel, in is closed when it implements io.Closer so the pending read
// stops instead of swallowing a later line. Other readers must not be reused
// after ErrCanceled.
func promptLine(ctx context.Context, in io.Reader, out io.Writer, msg string) (string, error) {
	fmt.Fprint(out, msg)

	// The read blocks in the goroutine until input arrives or in is closed.
	ch := make(chan readResult, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		if c, ok := in.(io.Closer); ok {
			c.Close()
		}
		return "", ErrCanceled
	case res := <-ch:
		if res.err != nil {
			if !errors.Is(res.err, io.EOF) {
				return "", fmt.Errorf("reading input: %w", res.err)
			}
			if res.line == "" {
				return "", ErrCanceled
			}
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}
