package formatter

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/theoremus-urban-solutions/transnet-generator/config"
)

// ResolveEncoding looks an IANA encoding name up. UTF-8 (and the empty name)
// resolve to nil, meaning the text is written unchanged.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	n := strings.TrimSpace(name)
	if n == "" || strings.EqualFold(n, "utf-8") || strings.EqualFold(n, "utf8") {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return nil, config.Errorf("text encoding [%s] is not supported", name)
	}
	return enc, nil
}

func encode(enc encoding.Encoding, text string) ([]byte, error) {
	if enc == nil {
		return []byte(text), nil
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	return out, err
}
