package urlcodec

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned by [Decode] when a '%' escape is
// truncated or contains a non-hexadecimal digit.
var ErrInvalidEncoding = errors.New("invalid URL encoding")

// Decode decodes URL safe characters in p back into their original
// bytes: '+' becomes a space, '%' introduces a two-digit hexadecimal
// escape (either letter case), and any other byte passes through
// unchanged. A nil input yields a nil output.
//
// Decode is strict: a trailing '%' with fewer than two digits, or an
// escape containing a non-hex digit, returns an error wrapping
// [ErrInvalidEncoding] and no output.
func Decode(p []byte) ([]byte, error) {
	if p == nil {
		return nil, nil
	}

	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		switch b := p[i]; b {
		case '+':
			out = append(out, ' ')
		case '%':
			if i+2 >= len(p) {
				return nil, fmt.Errorf("urlcodec: truncated escape at offset %d: %w", i, ErrInvalidEncoding)
			}
			hi := unhex(p[i+1])
			lo := unhex(p[i+2])
			if hi < 0 || lo < 0 {
				return nil, fmt.Errorf("urlcodec: bad escape %q at offset %d: %w", p[i:i+3], i, ErrInvalidEncoding)
			}
			out = append(out, byte(hi<<4|lo))
			i += 2
		default:
			out = append(out, b)
		}
	}
	return out, nil
}

func unhex(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
