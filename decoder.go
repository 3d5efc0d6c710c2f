package orsextract

// Decoder turns the raw bytes of a page into text.
type Decoder interface {
	// Decode returns the decoded text. Faults carry the EDECODE code.
	Decode(raw []byte) (string, error)
}
