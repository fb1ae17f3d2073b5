package huffman

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTruncated reports a bit stream that ends in the middle of a code
// word: decode consumed every bit without reaching a leaf.
var ErrTruncated = errors.New("bit stream truncated inside a code word")

/*
UnknownSymbolError - encode was given a symbol absent from the code
table, i.e. the table was built from different text.
*/
type UnknownSymbolError struct {
	Symbol rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q has no code", e.Symbol)
}
