package urlcodec_test

import (
	"fmt"

	"github.com/tomasbasham/urlcodec"
)

// rot13Provider is a CharsetProvider recognising the single charset
// name "rot13". It exercises the provider seam without depending on a
// real character set.
type rot13Provider struct{}

func (rot13Provider) TextToBytes(s, charset string) ([]byte, error) {
	if charset != "rot13" {
		return nil, fmt.Errorf("rot13: charset %q: %w", charset, urlcodec.ErrUnsupportedCharset)
	}
	return rot13([]byte(s)), nil
}

func (rot13Provider) BytesToText(p []byte, charset string) (string, error) {
	if charset != "rot13" {
		return "", fmt.Errorf("rot13: charset %q: %w", charset, urlcodec.ErrUnsupportedCharset)
	}
	return string(rot13(p)), nil
}

func rot13(p []byte) []byte {
	out := make([]byte, len(p))
	for i, b := range p {
		switch {
		case 'a' <= b && b <= 'z':
			out[i] = 'a' + (b-'a'+13)%26
		case 'A' <= b && b <= 'Z':
			out[i] = 'A' + (b-'A'+13)%26
		default:
			out[i] = b
		}
	}
	return out
}
