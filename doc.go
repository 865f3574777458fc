// Package bitpage implements a compressed bitmap index: an adaptively
// encoded representation of large, possibly-sparse sets of non-negative
// integer identifiers, plus a lazy page-stream algebra for evaluating
// boolean combinations of bitmaps without materializing intermediate
// results.
//
// A Bitmap is a closed, four-variant tagged union (see NewEmptyBitmap,
// NewAllOnesBitmap) rather than a dynamically-dispatched interface: every
// operation switches on the variant explicitly, and adding a fifth
// variant is an intentional, load-bearing change to every combinator.
//
// Boolean composition of bitmaps (AND/OR/NOT) lives in the stream
// algebra (stream.go) and is driven by the planner in the query
// subpackage; this package owns only the leaf-level representation,
// its mutation contract, its wire encoding, and the page-stream
// transducers the planner composes.
package bitpage
