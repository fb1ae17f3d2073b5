// Package huffman builds minimal-redundancy prefix codes for text and
// encodes and decodes with them. The pipeline is strictly forward:
// text, frequency table, tree, code table, packed bits; decoding walks
// the tree. Tree construction breaks weight ties by insertion order,
// so the same input always produces the same code.
package huffman
