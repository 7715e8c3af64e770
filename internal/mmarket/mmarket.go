// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmarket reads and writes dense complex matrices in the
// MatrixMarket exchange format, the on-disk representation CSSFinder
// uses for density matrices and solver checkpoints. It is adapted from
// gonum's coordinate-real mmarket reader, extended to the dense "array"
// layout and complex scalars that CSSFinder actually exchanges.
package mmarket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	errBadFormat   = errors.New("mmarket: bad file format")
	errUnsupported = errors.New("mmarket: matrix type not supported")
)

// Layout is the MatrixMarket object layout.
type Layout int

const (
	Array Layout = iota
	Coordinate
)

// Symmetry is the MatrixMarket symmetry qualifier.
type Symmetry int

const (
	General Symmetry = iota
	Symmetric
	Hermitian
)

// Matrix is a dense row-major complex matrix as read from or written to a
// MatrixMarket file.
type Matrix struct {
	Rows, Cols int
	Data       []complex128 // row-major, len == Rows*Cols
}

func (m *Matrix) At(i, j int) complex128 { return m.Data[i*m.Cols+j] }

func (m *Matrix) Set(i, j int, v complex128) { m.Data[i*m.Cols+j] = v }

// NewMatrix allocates a zeroed Rows x Cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// Reader parses MatrixMarket files produced for CSSFinder density
// matrices and checkpoints: dense array layout, complex scalars, and
// general/symmetric/hermitian triangle mirroring.
type Reader struct {
	s *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<24)
	return &Reader{s: s}
}

// Read parses a single matrix from the stream.
func (r *Reader) Read() (*Matrix, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return nil, err
		}
		return nil, errBadFormat
	}
	header := strings.Fields(r.s.Text())
	if len(header) != 5 || header[0] != "%%MatrixMarket" {
		return nil, errBadFormat
	}
	if header[1] != "matrix" {
		return nil, errBadFormat
	}

	var layout Layout
	switch header[2] {
	case "array":
		layout = Array
	case "coordinate":
		layout = Coordinate
	default:
		return nil, errBadFormat
	}

	if header[3] != "complex" && header[3] != "real" {
		return nil, errUnsupported
	}
	isReal := header[3] == "real"

	var sym Symmetry
	switch header[4] {
	case "general":
		sym = General
	case "symmetric":
		sym = Symmetric
	case "hermitian":
		sym = Hermitian
	default:
		return nil, errBadFormat
	}

	var nr, nc, nnz int
	found := false
	for r.s.Scan() {
		line := r.s.Text()
		if len(line) == 0 || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		switch layout {
		case Array:
			if len(fields) != 2 {
				return nil, errBadFormat
			}
			nr, nc = atoi(fields[0]), atoi(fields[1])
		case Coordinate:
			if len(fields) != 3 {
				return nil, errBadFormat
			}
			nr, nc, nnz = atoi(fields[0]), atoi(fields[1]), atoi(fields[2])
		}
		found = true
		break
	}
	if err := r.s.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, errBadFormat
	}

	if (sym == Symmetric || sym == Hermitian) && nr != nc {
		return nil, errBadFormat
	}
	m := NewMatrix(nr, nc)

	switch layout {
	case Array:
		// Column-major entry order per the MatrixMarket array spec.
		for j := 0; j < nc; j++ {
			lo := 0
			if sym == Symmetric || sym == Hermitian {
				lo = j
			}
			for i := lo; i < nr; i++ {
				if !r.s.Scan() {
					return nil, errBadFormat
				}
				v, err := parseScalar(r.s.Text(), isReal)
				if err != nil {
					return nil, err
				}
				m.Set(i, j, v)
				if i != j {
					switch sym {
					case Symmetric:
						m.Set(j, i, v)
					case Hermitian:
						m.Set(j, i, complexConj(v))
					}
				}
			}
		}
	case Coordinate:
		for k := 0; k < nnz; k++ {
			if !r.s.Scan() {
				return nil, errBadFormat
			}
			fields := strings.Fields(r.s.Text())
			if len(fields) < 3 {
				return nil, errBadFormat
			}
			i, j := atoi(fields[0]), atoi(fields[1])
			if i < 1 || nr < i || j < 1 || nc < j {
				return nil, errBadFormat
			}
			v, err := parseScalar(strings.Join(fields[2:], " "), isReal)
			if err != nil {
				return nil, err
			}
			m.Set(i-1, j-1, v)
			if i != j {
				switch sym {
				case Symmetric:
					m.Set(j-1, i-1, v)
				case Hermitian:
					m.Set(j-1, i-1, complexConj(v))
				}
			}
		}
	}
	return m, nil
}

// Writer emits dense complex array MatrixMarket files.
type Writer struct {
	w       io.Writer
	Comment string
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write emits m in dense array/complex/general layout.
func (wr *Writer) Write(m *Matrix) error {
	bw := bufio.NewWriter(wr.w)
	if _, err := fmt.Fprintln(bw, "%%MatrixMarket matrix array complex general"); err != nil {
		return err
	}
	if wr.Comment != "" {
		if _, err := fmt.Fprintf(bw, "%%%s\n", wr.Comment); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%d %d\n", m.Rows, m.Cols); err != nil {
		return err
	}
	for j := 0; j < m.Cols; j++ {
		for i := 0; i < m.Rows; i++ {
			v := m.At(i, j)
			if _, err := fmt.Fprintf(bw, "%.17g %.17g\n", real(v), imag(v)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseScalar(s string, isReal bool) (complex128, error) {
	fields := strings.Fields(s)
	re, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("mmarket: %w", err)
	}
	if isReal {
		return complex(re, 0), nil
	}
	if len(fields) < 2 {
		return 0, errBadFormat
	}
	im, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("mmarket: %w", err)
	}
	return complex(re, im), nil
}

func complexConj(v complex128) complex128 {
	return complex(real(v), -imag(v))
}
