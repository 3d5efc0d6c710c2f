// Package charset decodes raw page bytes into text, either with one fixed
// encoding or with an encoding guessed from the bytes themselves.
package charset

import (
	"strings"

	"github.com/fwojciec/orsextract"
	"github.com/gogs/chardet"
	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the encoding assumed for statute pages.
const DefaultEncoding = "utf-8"

// Ensure decoders implement orsextract.Decoder at compile time.
var (
	_ orsextract.Decoder = (*FixedDecoder)(nil)
	_ orsextract.Decoder = (*DetectingDecoder)(nil)
)

// FixedDecoder decodes every page with one caller-chosen encoding.
// Byte sequences that are invalid in that encoding are a fault.
type FixedDecoder struct {
	label string
	enc   encoding.Encoding
	utf8  bool
}

// NewFixedDecoder creates a FixedDecoder for the given WHATWG encoding label.
func NewFixedDecoder(label string) (*FixedDecoder, error) {
	enc, name, err := lookup(label)
	if err != nil {
		return nil, err
	}
	return &FixedDecoder{label: label, enc: enc, utf8: name == DefaultEncoding}, nil
}

// Decode returns raw decoded as the fixed encoding.
func (d *FixedDecoder) Decode(raw []byte) (string, error) {
	var t transform.Transformer
	if d.utf8 {
		t = encoding.UTF8Validator
	} else {
		t = d.enc.NewDecoder()
	}

	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return "", orsextract.Errorf(orsextract.EDECODE, "%s: %v", d.label, err)
	}
	return string(out), nil
}

// DetectingDecoder guesses the encoding of each page statistically and
// substitutes U+FFFD for bytes that do not decode.
type DetectingDecoder struct {
	detector *chardet.Detector
}

// NewDetectingDecoder creates a new DetectingDecoder.
func NewDetectingDecoder() *DetectingDecoder {
	return &DetectingDecoder{detector: chardet.NewTextDetector()}
}

// Decode detects the most likely encoding of raw and decodes with it.
// It fails only when no encoding can be determined.
func (d *DetectingDecoder) Decode(raw []byte) (string, error) {
	result, err := d.detector.DetectBest(raw)
	if err != nil {
		return "", orsextract.Errorf(orsextract.EDECODE, "detect encoding: %v", err)
	}
	return decodeReplacing(raw, result.Charset)
}

// decodeReplacing decodes raw with the named encoding. Invalid input is
// replaced rather than reported.
func decodeReplacing(raw []byte, label string) (string, error) {
	enc, _, err := lookup(label)
	if err != nil {
		return "", err
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", orsextract.Errorf(orsextract.EDECODE, "%s: %v", label, err)
	}
	return string(out), nil
}

// lookup resolves an encoding label to its encoding and canonical WHATWG
// name. Detector names such as "GB-18030" are retried without hyphens.
func lookup(label string) (encoding.Encoding, string, error) {
	if enc, name := htmlcharset.Lookup(label); enc != nil {
		return enc, name, nil
	}
	if enc, name := htmlcharset.Lookup(strings.ReplaceAll(label, "-", "")); enc != nil {
		return enc, name, nil
	}
	return nil, "", orsextract.Errorf(orsextract.EDECODE, "unsupported encoding %q", label)
}
