package urlcodec

const upperhex = "0123456789ABCDEF"

// SafeSet is an immutable set of byte values that the encoder emits
// without escaping. A SafeSet is safe for concurrent use once
// constructed.
type SafeSet struct {
	bits [4]uint64
}

// NewSafeSet returns a [SafeSet] containing every byte of chars.
func NewSafeSet(chars string) *SafeSet {
	var s SafeSet
	for i := 0; i < len(chars); i++ {
		b := chars[i]
		s.bits[b>>6] |= 1 << (b & 63)
	}
	return &s
}

// Contains reports whether b is a member of the set.
func (s *SafeSet) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// FormSafeSet is the set of www-form-url safe characters: ASCII
// letters, digits, '-', '_', '.', '*' and space. Space is a member so
// that the encoder emits '+' for it rather than an escape sequence.
var FormSafeSet = NewSafeSet(
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"-_.* ",
)

// Encode encodes p into URL safe 7-bit characters using [FormSafeSet].
// Unsafe bytes are escaped as '%' followed by two uppercase hex
// digits, and space becomes '+'. A nil input yields a nil output.
func Encode(p []byte) []byte {
	return EncodeWithSet(nil, p)
}

// EncodeWithSet encodes p using the given safe-character set. A nil
// set selects [FormSafeSet].
//
// Only bytes below 0x80 are ever matched against the set; bytes with
// the high bit set are escaped unconditionally, so the output is 7-bit
// clean regardless of the set's contents.
func EncodeWithSet(set *SafeSet, p []byte) []byte {
	if p == nil {
		return nil
	}
	if set == nil {
		set = FormSafeSet
	}

	out := make([]byte, 0, len(p))
	for _, b := range p {
		if b < 0x80 && set.Contains(b) {
			if b == ' ' {
				b = '+'
			}
			out = append(out, b)
			continue
		}
		out = append(out, '%', upperhex[b>>4], upperhex[b&0xF])
	}
	return out
}
