// Package huffman implements static Huffman coding over an explicit code
// tree: count symbol frequencies, build the optimal prefix-code tree, derive
// a bit code for each symbol, then encode messages into '0'/'1' bitstrings
// and decode them back by walking the tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
