package huffman

import (
	"errors"
	"testing"
)

func TestDecoder_Reference(t *testing.T) {
	root, _ := buildReference(t)
	d := NewDecoder(root)

	actual, err := d.DecodeString(refEncoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if refMessage != actual {
		t.Errorf("wrong message:\n\texpect: %q\n\tactual: %q", refMessage, actual)
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	for _, message := range []string{
		refMessage,
		"aabc",
		"to be or not to be",
		"mississippi",
		"ab",
		"x",
	} {
		t.Run(message, func(t *testing.T) {
			root, err := BuildTree(CountString(message))
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}
			bits, err := NewEncoder(NewCodeTable(root)).EncodeString(message)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			actual, err := NewDecoder(root).DecodeString(bits)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if message != actual {
				t.Errorf("wrong message:\n\texpect: %q\n\tactual: %q", message, actual)
			}
		})
	}
}

func TestDecoder_Truncation(t *testing.T) {
	root, table := buildReference(t)
	d := NewDecoder(root)

	// Every prefix of the bitstring that falls on a code boundary must
	// decode to the corresponding prefix of the message; every other
	// prefix must be reported as truncated with no output.
	boundaries := make(map[int]string)
	var bits int
	for index := 0; index < len(refMessage); index++ {
		bits += int(table[Symbol(refMessage[index])].Size)
		boundaries[bits] = refMessage[:index+1]
	}

	for size := 1; size < len(refEncoded); size++ {
		prefix := refEncoded[:size]
		expect, aligned := boundaries[size]
		actual, err := d.DecodeString(prefix)
		if aligned {
			if err != nil {
				t.Errorf("Decode failed on an aligned prefix of %d bits: %v", size, err)
			} else if expect != actual {
				t.Errorf("wrong message for a prefix of %d bits:\n\texpect: %q\n\tactual: %q", size, expect, actual)
			}
			continue
		}
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("expected ErrTruncated for a prefix of %d bits, got %v", size, err)
		}
		if actual != "" {
			t.Errorf("expected no output for a prefix of %d bits, got %q", size, actual)
		}
	}
}

func TestDecoder_InvalidBit(t *testing.T) {
	root, _ := buildReference(t)
	d := NewDecoder(root)

	if _, err := d.Decode("01x"); !errors.Is(err, ErrInvalidBit) {
		t.Errorf("expected ErrInvalidBit, got %v", err)
	}
}

func TestDecoder_Empty(t *testing.T) {
	root, _ := buildReference(t)
	d := NewDecoder(root)

	symbols, err := d.Decode("")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(symbols) != 0 {
		t.Errorf("expected no symbols, got %v", symbols)
	}
}

func TestDecoder_SingleLeaf(t *testing.T) {
	root, err := BuildTree(CountString("aaaa"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	d := NewDecoder(root)

	actual, err := d.DecodeString("0000")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if expect := "aaaa"; expect != actual {
		t.Errorf("wrong message:\n\texpect: %q\n\tactual: %q", expect, actual)
	}

	if _, err := d.Decode("01"); !errors.Is(err, ErrInvalidBit) {
		t.Errorf("expected ErrInvalidBit, got %v", err)
	}

	symbols, err := d.Decode("")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(symbols) != 0 {
		t.Errorf("expected no symbols, got %v", symbols)
	}
}

func TestDecoder_DebugString(t *testing.T) {
	root, err := BuildTree(CountString("aabc"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	NewCodeTable(root)
	d := NewDecoder(root)

	expectDebug := ":4() {:2(0) {'b':1(00), 'c':1(01)}, 'a':2(1)}\n"
	actualDebug := d.DebugString()
	if expectDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDebug, actualDebug)
	}
}
