package urlcodec

import (
	"fmt"
	"io"
)

// Decoder reads www-form-urlencoded data from an [io.Reader] and
// decodes it into raw bytes.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a new [Decoder] that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the encoded data from the underlying [io.Reader] and
// returns its decoded bytes.
func (d *Decoder) Decode() ([]byte, error) {
	body, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("urlcodec: failed to read body: %w", err)
	}

	return Decode(body)
}

// Encoder writes www-form-urlencoded data to an [io.Writer].
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode encodes p and writes the result to the underlying
// [io.Writer].
func (e *Encoder) Encode(p []byte) error {
	_, err := e.w.Write(Encode(p))
	if err != nil {
		return fmt.Errorf("urlcodec: failed to write body: %w", err)
	}
	return nil
}
