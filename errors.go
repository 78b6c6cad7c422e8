// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package poa

import "github.com/pkg/errors"

// Sentinel error kinds. The original C core treats all of these as fatal
// assertions; every public entry point in this package instead returns one
// of these (wrapped with context via errors.Wrapf) so a caller can recover.
var (
	// ErrInvariant marks a broken structural invariant: a non-DAG graph,
	// an out-of-range alignment pair, a sort precondition violated, an
	// unknown CIGAR operation found during validation, or a backtrace
	// that could not find its predecessor.
	ErrInvariant = errors.New("poa: invariant violation")

	// ErrInputMisuse marks caller misuse that is not a structural
	// invariant break: mismatched sequence/weights lengths, a pattern or
	// segment containing a reserved sentinel byte.
	ErrInputMisuse = errors.New("poa: invalid input")

	// ErrOverflow marks an Aligner search that exceeded Options.MaxDistance
	// before finding an alignment. Offsets themselves are a native int here
	// (the reference's 16-bit ewf_offset_t width is not reproduced; nothing
	// enforces a ~32k pattern/segment length limit), so this is purely the
	// distance-cap cancellation hook from spec §5, not an arithmetic bound.
	ErrOverflow = errors.New("poa: max distance exceeded")

	// ErrPathIO marks a failure writing DOT/GFA output.
	ErrPathIO = errors.New("poa: output error")
)

func invariantf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariant, format, args...)
}

func inputMisusef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInputMisuse, format, args...)
}

func overflowf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOverflow, format, args...)
}

func pathIOf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPathIO, format, args...)
}
