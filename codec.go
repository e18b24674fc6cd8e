package urlcodec

import (
	"errors"
	"fmt"
)

// DefaultCharset is the charset name a [Codec] uses for its string
// operations unless configured otherwise with [WithCharset].
const DefaultCharset = "UTF-8"

// A Codec encodes and decodes www-form-urlencoded data. Its string
// operations convert text through a configured character set before
// and after the byte-level transform. The zero configuration uses
// [DefaultCharset], [FormSafeSet] and the IANA charset registry.
//
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	charset  string
	safe     *SafeSet
	provider CharsetProvider
}

// Option configures a [Codec].
type Option func(*Codec)

// WithCharset sets the charset name used by the Codec's string
// operations.
func WithCharset(name string) Option {
	return func(c *Codec) { c.charset = name }
}

// WithSafeSet sets the safe-character set used by the Codec's encode
// operations. A nil set selects [FormSafeSet].
func WithSafeSet(set *SafeSet) Option {
	return func(c *Codec) { c.safe = set }
}

// WithCharsetProvider sets the provider used to resolve charset names.
func WithCharsetProvider(p CharsetProvider) Option {
	return func(c *Codec) { c.provider = p }
}

// New creates a [Codec] with the given options applied.
func New(opts ...Option) *Codec {
	c := &Codec{
		charset:  DefaultCharset,
		safe:     FormSafeSet,
		provider: ianaProvider{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Charset returns the charset name used by the Codec's string
// operations.
func (c *Codec) Charset() string {
	return c.charset
}

// Encode encodes p into URL safe 7-bit characters using the Codec's
// safe-character set.
func (c *Codec) Encode(p []byte) []byte {
	return EncodeWithSet(c.safe, p)
}

// Decode decodes URL safe characters in p back into their original
// bytes.
func (c *Codec) Decode(p []byte) ([]byte, error) {
	return Decode(p)
}

// EncodeStringCharset encodes s into its URL safe form, converting it
// to bytes with the named charset first. The result consists solely of
// 7-bit ASCII characters.
func (c *Codec) EncodeStringCharset(s, charset string) (string, error) {
	b, err := c.provider.TextToBytes(s, charset)
	if err != nil {
		return "", err
	}
	return string(c.Encode(b)), nil
}

// EncodeString encodes s into its URL safe form using the Codec's
// configured charset. An unrecognised configured charset surfaces as
// an encode failure wrapping [ErrUnsupportedCharset].
func (c *Codec) EncodeString(s string) (string, error) {
	out, err := c.EncodeStringCharset(s, c.charset)
	if err != nil {
		return "", fmt.Errorf("urlcodec: encode string: %w", err)
	}
	return out, nil
}

// DecodeStringCharset decodes the URL safe string s, converting the
// resulting bytes to text with the named charset.
func (c *Codec) DecodeStringCharset(s, charset string) (string, error) {
	b, err := Decode([]byte(s))
	if err != nil {
		return "", err
	}
	return c.provider.BytesToText(b, charset)
}

// DecodeString decodes the URL safe string s using the Codec's
// configured charset. An unrecognised configured charset surfaces as
// a decode failure wrapping [ErrUnsupportedCharset].
func (c *Codec) DecodeString(s string) (string, error) {
	out, err := c.DecodeStringCharset(s, c.charset)
	if err != nil {
		if errors.Is(err, ErrUnsupportedCharset) {
			return "", fmt.Errorf("urlcodec: decode string: %w", err)
		}
		return "", err
	}
	return out, nil
}
