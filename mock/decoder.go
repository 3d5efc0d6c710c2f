package mock

import "github.com/fwojciec/orsextract"

var _ orsextract.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of orsextract.Decoder.
type Decoder struct {
	DecodeFn func(raw []byte) (string, error)
}

func (d *Decoder) Decode(raw []byte) (string, error) {
	return d.DecodeFn(raw)
}
