package mock

import "github.com/fwojciec/lawtree"

var _ lawtree.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of lawtree.Normalizer.
type Normalizer struct {
	NormalizeFn func(content string, v lawtree.Variant) ([]lawtree.Fragment, error)
}

func (n *Normalizer) Normalize(content string, v lawtree.Variant) ([]lawtree.Fragment, error) {
	return n.NormalizeFn(content, v)
}
