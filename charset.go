package urlcodec

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedCharset is returned when a requested charset name is
// not recognised by the codec's [CharsetProvider].
var ErrUnsupportedCharset = errors.New("unsupported charset")

// CharsetProvider converts between strings and their byte
// representation in a named character set. Implementations report an
// unrecognised name with an error wrapping [ErrUnsupportedCharset].
type CharsetProvider interface {
	TextToBytes(s, charset string) ([]byte, error)
	BytesToText(p []byte, charset string) (string, error)
}

// ianaProvider resolves charset names against the IANA character set
// registry via x/text. It is the provider used by [New] unless
// overridden with [WithCharsetProvider].
type ianaProvider struct{}

func (ianaProvider) lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// ianaindex reports unknown names as errors and known but
		// unimplemented encodings as a nil Encoding.
		return nil, fmt.Errorf("urlcodec: charset %q: %w", name, ErrUnsupportedCharset)
	}
	return enc, nil
}

func (p ianaProvider) TextToBytes(s, charset string) ([]byte, error) {
	enc, err := p.lookup(charset)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return []byte(s), nil
	}

	b, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("urlcodec: convert text to %s: %w", charset, err)
	}
	return b, nil
}

func (p ianaProvider) BytesToText(b []byte, charset string) (string, error) {
	enc, err := p.lookup(charset)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		return string(b), nil
	}

	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("urlcodec: convert bytes from %s: %w", charset, err)
	}
	return string(s), nil
}
