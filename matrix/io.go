// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Read and write Dense values as flat whitespace-separated text, the format
//     used for pre-trained weight files.
//
// Format:
//   - Any whitespace separates tokens; line structure is irrelevant on read.
//   - Exactly rows*cols tokens are consumed in row-major order; trailing tokens are ignored.
//   - Encode writes one matrix row per line using the shortest float32 repr,
//     so Decode(Encode(m)) reproduces m bit for bit.
//
// Failure policy:
//   - Tokens are parsed into a staging buffer; the receiver is only written
//     after all rows*cols values were read successfully.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"
)

const (
	opLoad   = "Load"
	opDecode = "Decode"
	opSave   = "Save"
)

// Load fills m from the text file at path and reports the shape read.
//
// Errors (all match ErrLoad via errors.Is):
//   - the path cannot be opened (the *os.PathError is wrapped too),
//   - a token is not a float,
//   - fewer than rows*cols tokens are present.
//
// Complexity: O(r*c) time, O(r*c) staging space.
func (m *Dense) Load(path string) (size Size, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, fmt.Errorf("%s %q: %w: %w", opLoad, path, ErrLoad, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	size, err = m.Decode(f)
	if err != nil {
		return Size{}, fmt.Errorf("%s %q: %w", opLoad, path, err)
	}

	return size, nil
}

// Decode fills m from r (see Load for the token rules).
func (m *Dense) Decode(r io.Reader) (Size, error) {
	want := len(m.data)
	staging := make([]float32, want)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	n := 0
	for n < want && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 32)
		if err != nil {
			return Size{}, fmt.Errorf("%s: token %d: %w: %w", opDecode, n, ErrLoad, err)
		}
		staging[n] = float32(v)
		n++
	}
	if err := sc.Err(); err != nil {
		return Size{}, fmt.Errorf("%s: %w: %w", opDecode, ErrLoad, err)
	}
	if n < want {
		return Size{}, fmt.Errorf("%s: got %d of %d tokens: %w", opDecode, n, want, ErrLoad)
	}

	copy(m.data, staging)

	return m.Size(), nil
}

// Encode writes m to w, one row per line, values separated by single spaces.
func (m *Dense) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, float64(m.data[i*m.c+j]), 'g', -1, 32)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}

	return bw.Flush()
}

// Save writes m to path (created or truncated) in the Encode format.
func (m *Dense) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s %q: %w", opSave, path, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	if err = m.Encode(f); err != nil {
		return fmt.Errorf("%s %q: %w", opSave, path, err)
	}

	return nil
}
