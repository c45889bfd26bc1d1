// Package block holds the floorplanning block catalog: blocks, their rectangular
// shape variants, and the resolved default-variant lookup every downstream engine
// (bstar, seqpair) reads from.
//
// A Catalog is built once per run via Load and is immutable afterward — neither
// bstar nor seqpair mutate a Catalog; they only read variant dimensions from it.
package block
