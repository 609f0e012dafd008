package mock

import (
	"io"

	"github.com/fwojciec/lawtree"
)

var _ lawtree.Encoder = (*Encoder)(nil)

// Encoder is a mock implementation of lawtree.Encoder.
type Encoder struct {
	EncodeFn func(w io.Writer, r *lawtree.ParseResult) error
	NameFn   func() string
}

func (e *Encoder) Encode(w io.Writer, r *lawtree.ParseResult) error {
	return e.EncodeFn(w, r)
}

func (e *Encoder) Name() string {
	return e.NameFn()
}
