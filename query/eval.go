package query

import (
	"log/slog"
	"sort"
	"time"

	"github.com/chronos-tachyon/bitpage"
)

// Result is the outcome of evaluating one Op node: a still-lazy
// Stream plus its Len, the explicit-page-count proxy for cardinality
// used to order AND operands.
type Result struct {
	Len    int
	Stream bitpage.Stream
}

// Options configures Evaluate. Logger and CollectStats default to
// silent when left zero; Policy has no usable zero value and must be
// set (see below).
type Options struct {
	// Logger, if non-nil, receives debug-level timing and ordering
	// messages. A nil Logger means "don't bother": nothing is logged
	// by default.
	Logger *slog.Logger

	// CollectStats, if true, causes Evaluate to return a non-nil Stats.
	CollectStats bool

	// Policy is the CompactionPolicy applied when materializing the
	// root result. The zero value is not valid; callers that don't
	// care should use bitpage.DefaultCompactionPolicy().
	Policy bitpage.CompactionPolicy
}

// Stats reports after-the-fact detail about one Evaluate call: timing
// and, per AND node, the operand lengths selectivity ordering is based on.
type Stats struct {
	// Elapsed is the wall-clock time spent in Evaluate, including
	// materialization.
	Elapsed time.Duration

	// ResultPageCount is the materialized root Bitmap's explicit page
	// count.
	ResultPageCount int

	// LeafLens records, per AND node encountered in tree order, the
	// Len of each child in construction order, captured before
	// selectivity ordering sorts them (and also for a node that
	// short-circuits).
	LeafLens [][]int
}

// Evaluate walks op bottom-up, evaluating every node into a Result and
// materializing the root into a fresh Bitmap via bitpage.Materialize.
// The universe bound is not a separate parameter: it falls out of the
// Min-fold of every leaf's own Bound as the tree is evaluated.
func Evaluate(op Op, opts Options) (*bitpage.Bitmap, *Stats, error) {
	var stats *Stats
	if opts.CollectStats {
		stats = &Stats{}
	}
	start := time.Now()

	result, err := evalNode(op, opts, stats)
	if err != nil {
		return nil, nil, err
	}

	bm := bitpage.Materialize(result.Stream, opts.Policy)

	if stats != nil {
		stats.Elapsed = time.Since(start)
		stats.ResultPageCount = len(bm.Pages())
	}
	if opts.Logger != nil {
		opts.Logger.Debug("bitpage/query: evaluate complete",
			"resultTag", bm.Tag().String(),
			"resultPages", len(bm.Pages()),
			"elapsed", time.Since(start))
	}

	return bm, stats, nil
}

func evalNode(op Op, opts Options, stats *Stats) (Result, error) {
	switch o := op.(type) {
	case *leafOp:
		return Result{Len: len(o.bm.Pages()), Stream: bitpage.NewLeafStream(o.bm)}, nil

	case *ownedLeafOp:
		return Result{Len: len(o.bm.Pages()), Stream: bitpage.NewLeafStream(o.bm)}, nil

	case *notOp:
		child, err := evalNode(o.child, opts, stats)
		if err != nil {
			return Result{}, err
		}
		return Result{Len: child.Len, Stream: bitpage.Not(child.Stream)}, nil

	case *andOp:
		return evalAnd(o, opts, stats)

	case *orOp:
		return evalOr(o, opts, stats)

	default:
		panic("query: unknown Op implementation")
	}
}

func evalAnd(o *andOp, opts Options, stats *Stats) (Result, error) {
	results := make([]Result, len(o.children))
	for i, c := range o.children {
		r, err := evalNode(c, opts, stats)
		if err != nil {
			return Result{}, err
		}
		results[i] = r
	}

	if stats != nil {
		lens := make([]int, len(results))
		for i, r := range results {
			lens[i] = r.Len
		}
		stats.LeafLens = append(stats.LeafLens, lens)
	}

	// Short-circuit: any zero-length child makes the AND a zero
	// stream outright. Len is an explicit-page-count proxy, so this
	// also fires for an AllOnes leaf (which also reports Len 0); see
	// DESIGN.md for why that quirk is kept rather than special-cased.
	bound := results[0].Stream.Bound()
	for _, r := range results[1:] {
		bound = bound.Min(r.Stream.Bound())
	}
	for _, r := range results {
		if r.Len == 0 {
			return Result{Len: 0, Stream: zeroStream{bound}}, nil
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Len < results[j].Len })

	if opts.Logger != nil {
		lens := make([]int, len(results))
		for i, r := range results {
			lens[i] = r.Len
		}
		opts.Logger.Debug("bitpage/query: and operand order", "lens", lens)
	}

	merged := results[0].Stream
	minLen := results[0].Len
	for _, r := range results[1:] {
		merged = bitpage.And(merged, r.Stream)
	}
	return Result{Len: minLen, Stream: merged}, nil
}

func evalOr(o *orOp, opts Options, stats *Stats) (Result, error) {
	results := make([]Result, len(o.children))
	for i, c := range o.children {
		r, err := evalNode(c, opts, stats)
		if err != nil {
			return Result{}, err
		}
		results[i] = r
	}

	merged := results[0].Stream
	maxLen := results[0].Len
	for _, r := range results[1:] {
		merged = bitpage.Or(merged, r.Stream)
		if r.Len > maxLen {
			maxLen = r.Len
		}
	}
	return Result{Len: maxLen, Stream: merged}, nil
}

// zeroStream is the short-circuited result of an AND with a
// zero-length operand: a Stream that never yields an explicit page,
// tagged StreamZeros.
type zeroStream struct {
	b bitpage.Bound
}

func (s zeroStream) Tag() bitpage.StreamTag            { return bitpage.StreamZeros }
func (s zeroStream) Bound() bitpage.Bound               { return s.b }
func (s zeroStream) Next() (bitpage.PagePosition, bool) { return bitpage.PagePosition{}, false }
