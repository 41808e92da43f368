package huffman

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsOf converts a byte-oriented message into its Symbol sequence, one
// Symbol per byte.
func SymbolsOf(message string) []Symbol {
	out := make([]Symbol, len(message))
	for index := 0; index < len(message); index++ {
		out[index] = Symbol(message[index])
	}
	return out
}

// StringOf converts a Symbol sequence back into a byte-oriented message.
// Every symbol must fit in a byte.
func StringOf(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, sym := range symbols {
		assert.Assertf(sym >= 0 && sym <= 0xff, "symbol %d does not fit in a byte", sym)
		sb.WriteByte(byte(sym))
	}
	return sb.String()
}

// formatSymbol renders a symbol for dumps: printable ASCII as a quoted rune,
// everything else as its decimal value.
func formatSymbol(sym Symbol) string {
	if sym >= 0x20 && sym <= 0x7e {
		return strconv.QuoteRune(rune(sym))
	}
	return strconv.FormatInt(int64(sym), 10)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
