package properties

import (
	"github.com/toon-format/toon-go"
)

// MarshalTOON renders the pairs in toon format, in iteration order.
func MarshalTOON(p *Properties) ([]byte, error) {
	return toon.Marshal(p.Entries())
}
