// SPDX-License-Identifier: MIT
// Package: partition/instance
//
// read.go - text instance loader.
//
// Format: base-10 integers separated by any whitespace (spaces, tabs,
// newlines). One weight per line is the usual layout but not required.

package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Read parses weights from r.
//
// n > 0 reads exactly n weights and ignores anything after them; fewer
// tokens yield ErrShortInput. n ≤ 0 reads every token until EOF.
// A token that is not an int64 yields ErrBadToken, a weight ≤ 0 yields
// ErrNonPositive. Both carry the 1-based token position.
//
// Complexity: O(len(input)) time, O(n) space.
func Read(r io.Reader, n int) ([]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		out []int64
		tok string
		v   int64
		err error
	)
	if n > 0 {
		out = make([]int64, 0, n)
	}
	for (n <= 0 || len(out) < n) && sc.Scan() {
		tok = sc.Text()
		v, err = strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", len(out)+1, tok, ErrBadToken)
		}
		if v <= 0 {
			return nil, fmt.Errorf("token %d (%d): %w", len(out)+1, v, ErrNonPositive)
		}
		out = append(out, v)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: scan: %w", err)
	}
	if n > 0 && len(out) < n {
		return nil, fmt.Errorf("read %d of %d weights: %w", len(out), n, ErrShortInput)
	}
	if out == nil {
		out = []int64{}
	}

	return out, nil
}

// ReadFile opens path and calls Read on its contents.
func ReadFile(path string, n int) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	defer f.Close()

	out, err := Read(f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}
