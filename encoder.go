package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Encoder encodes messages into '0'/'1' bitstrings using a fixed code table.
type Encoder struct {
	table CodeTable
}

// NewEncoder returns an Encoder over the given code table.  The table is
// retained, not copied; it must not be modified afterward.
func NewEncoder(table CodeTable) Encoder {
	return Encoder{table: table}
}

// Encode concatenates the code of every symbol of the message, in message
// order.  The result is the logical bit sequence as a string of '0' and '1'
// characters; it is not packed into bytes.  The output is sized exactly
// before any bit is written, so encoding performs a single allocation.
//
// Encode reports ErrUnknownSymbol if the message contains a symbol absent
// from the table, which only happens when the table was built from a
// different message's frequencies.
func (e Encoder) Encode(message []Symbol) (string, error) {
	var size int
	for index, sym := range message {
		hc, found := e.table[sym]
		if !found {
			return "", errors.Wrapf(ErrUnknownSymbol, "symbol %s at offset %d", formatSymbol(sym), index)
		}
		size += int(hc.Size)
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, sym := range message {
		hc := e.table[sym]
		for index := byte(0); index < hc.Size; index++ {
			sb.WriteByte('0' + hc.Bit(index))
		}
	}
	return sb.String(), nil
}

// EncodeString encodes a byte-oriented message, one Symbol per byte.
func (e Encoder) EncodeString(message string) (string, error) {
	return e.Encode(SymbolsOf(message))
}

// Table returns the encoder's code table.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	for _, sym := range e.table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", formatSymbol(sym), e.table[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns Dump's output as a string.
func (e Encoder) DebugString() string {
	var buf bytes.Buffer
	_, _ = e.Dump(&buf)
	return buf.String()
}
