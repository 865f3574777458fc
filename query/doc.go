// Package query implements the boolean expression planner: an
// AND/OR/NOT expression DAG over bitpage.Bitmap leaves, with
// construction-time simplification, AND-selectivity ordering, and a
// driver that evaluates the tree into bitpage's lazy stream algebra,
// materializing a result only once, at the root.
//
// This package is a consumer of bitpage: it imports bitpage and builds
// a higher-level structure on top, without reaching into bitpage's
// unexported state.
package query
