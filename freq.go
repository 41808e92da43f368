package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FreqTable records how many times each Symbol occurs in a message.  Only
// symbols with a positive count participate in tree construction; the sum of
// all counts equals the length of the counted message.
//
// Counts are 32-bit: a single symbol must not occur more than 2^32-1 times
// in one message.  Tree weights are summed in 64 bits, so the table's total
// never overflows.
type FreqTable map[Symbol]uint32

// CountSymbols tallies the frequency of each Symbol in the message.  An
// empty message produces an empty table.
func CountSymbols(message []Symbol) FreqTable {
	ft := make(FreqTable)
	for _, sym := range message {
		ft[sym]++
	}
	return ft
}

// CountString tallies a byte-oriented message, one Symbol per byte.
func CountString(message string) FreqTable {
	ft := make(FreqTable)
	for index := 0; index < len(message); index++ {
		ft[Symbol(message[index])]++
	}
	return ft
}

// Total returns the sum of all counts, i.e. the length of the counted
// message.
func (ft FreqTable) Total() uint64 {
	var total uint64
	for _, freq := range ft {
		total += uint64(freq)
	}
	return total
}

// Symbols returns the symbols with a positive count, in ascending order.
func (ft FreqTable) Symbols() []Symbol {
	list := make(bySymbol, 0, len(ft))
	for sym, freq := range ft {
		if freq == 0 {
			continue
		}
		list = append(list, sym)
	}
	list.Sort()
	return []Symbol(list)
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, one "symbol: count" line per symbol in ascending order.
func (ft FreqTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FreqTable{\n")
	for _, sym := range ft.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %d\n", formatSymbol(sym), ft[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns Dump's output as a string.
func (ft FreqTable) DebugString() string {
	var buf bytes.Buffer
	_, _ = ft.Dump(&buf)
	return buf.String()
}
