package assets

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText converts raw asset bytes to a string. Input is treated as UTF-8
// unless a byte-order mark says otherwise: UTF-8 BOMs are stripped, UTF-16
// BOMs (either endianness) switch the decoder. Undecodable bytes fail rather
// than being silently replaced, so corrupt assets surface at load time.
func decodeText(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decoding asset text: %w", err)
	}
	return string(decoded), nil
}
