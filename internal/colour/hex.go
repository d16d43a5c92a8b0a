package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned for invalid caller input: a negative
// colour count, a malformed hex string, or an out-of-range channel value.
// Wrap checks should use errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseHex parses a hex colour string into an RGB struct.
//
// The leading # is optional. The remaining payload must split into three
// equal-width channels, so its length has to be a positive multiple of
// three: "#ff0080" and "ff0080" parse as usual, and narrower or wider
// payloads such as "fff" (one digit per channel) or "00f0ff0ff" (three
// digits per channel) are accepted as long as every channel value fits
// in a byte.
func ParseHex(hex string) (RGB, error) {
	payload := strings.TrimPrefix(hex, "#")

	if len(payload) == 0 || len(payload)%3 != 0 {
		return RGB{}, fmt.Errorf("%w: hex payload length must be a positive multiple of 3, got %d", ErrInvalidArgument, len(payload))
	}

	width := len(payload) / 3
	var channels [3]uint8
	for i := range channels {
		part := payload[i*width : (i+1)*width]
		v, err := strconv.ParseUint(part, 16, 64)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: invalid hex channel %q", ErrInvalidArgument, part)
		}
		if v > 255 {
			return RGB{}, fmt.Errorf("%w: channel value %d exceeds 255", ErrInvalidArgument, v)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
