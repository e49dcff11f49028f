package parser

import (
	"fmt"

	parsectx "github.com/somranjan/beanio/internal/context"
	"github.com/somranjan/beanio/options"
)

// Group is a Selector container: an ordered sequence of child Selectors
// (Records and nested Groups), matched positionally with a cursor that
// advances as children exhaust their own occurrences and wraps back to
// the first child once a full pass completes (spec.md §4.1 "Group
// matching rule"). Children with equal declared order are tried in
// declaration order (spec.md's Tie-breaks rule) — callers build
// children already sorted that way (see build.go).
type Group struct {
	name      string
	minOccurs int
	maxOccurs int
	count     int
	order     int
	ordered   bool
	children  []Selector
	pos       int
}

func (g *Group) Name() string   { return g.name }
func (g *Group) Order() int     { return g.order }
func (g *Group) Count() int     { return g.count }
func (g *Group) MinOccurs() int { return g.minOccurs }

func (g *Group) SetCount(n int) { g.count = n }

func (g *Group) Reset() {
	g.count = 0
	g.pos = 0

	for _, c := range g.children {
		c.Reset()
	}
}

func (g *Group) IsMaxOccursReached() bool {
	return g.maxOccurs != options.Unbounded && g.count >= g.maxOccurs
}

func (g *Group) Close() error {
	if g.count < g.minOccurs {
		return fmt.Errorf("group %q: occurred %d time(s), requires at least %d", g.name, g.count, g.minOccurs)
	}

	for _, c := range g.children {
		if err := c.Close(); err != nil {
			return err
		}
	}

	return nil
}

// MatchAny reports whether any child not yet at its maxOccurs could
// claim ctx's current record, regardless of the cursor, without
// mutating any state.
func (g *Group) MatchAny(ctx *parsectx.UnmarshallingContext) bool {
	for _, c := range g.children {
		if !c.IsMaxOccursReached() && c.MatchAny(ctx) {
			return true
		}
	}

	return false
}

// MatchNext walks the child cursor forward by order bucket (ordered
// mode) or tries every child (unordered mode). In ordered mode, pos
// indexes the first not-yet-exhausted child; children sharing pos's
// `order` value form one bucket and are tried in declaration order
// (spec.md §4.1 "Group matching rule": "children with order == pos are
// tried in declaration order; the first that returns non-none wins").
// If nothing in the bucket matches, pos only advances past the bucket
// once every child in it has satisfied its own minOccurs — otherwise a
// strictly-greater-order child could be accepted before a lower-order
// one has (spec.md's Data Model invariant); if the bucket isn't
// satisfied, the whole MatchNext fails instead of skipping ahead.
// Reaching the end of the sequence counts one Group occurrence and
// wraps back to the first bucket, since a Group may recur up to its own
// maxOccurs.
func (g *Group) MatchNext(ctx *parsectx.UnmarshallingContext) (Selector, bool) {
	if g.IsMaxOccursReached() || len(g.children) == 0 {
		return nil, false
	}

	if !g.ordered {
		return g.matchNextUnordered(ctx)
	}

	// A second pass lets a freshly wrapped (reset) sequence match
	// again for the Group's next occurrence; a third pass could never
	// succeed where the second didn't, since nothing changed between
	// them.
	for pass := 0; pass < 2; pass++ {
		for g.pos < len(g.children) {
			bucketStart := g.pos
			bucketOrder := orderOf(g.children[bucketStart])

			bucketEnd := bucketStart
			for bucketEnd < len(g.children) && orderOf(g.children[bucketEnd]) == bucketOrder {
				bucketEnd++
			}

			for i := bucketStart; i < bucketEnd; i++ {
				child := g.children[i]
				if child.IsMaxOccursReached() {
					continue
				}

				if sel, ok := child.MatchNext(ctx); ok {
					return sel, true
				}
			}

			if !bucketSatisfiesMinOccurs(g.children[bucketStart:bucketEnd]) {
				return nil, false
			}

			g.pos = bucketEnd
		}

		g.pos = 0
		g.count++

		for _, c := range g.children {
			c.Reset()
		}

		if g.IsMaxOccursReached() {
			return nil, false
		}
	}

	return nil, false
}

// bucketSatisfiesMinOccurs reports whether every selector sharing one
// order bucket has reached its own minOccurs, the condition spec.md
// §4.1 requires before the ordered cursor may advance past the bucket.
func bucketSatisfiesMinOccurs(children []Selector) bool {
	for _, c := range children {
		if c.Count() < minOccursOf(c) {
			return false
		}
	}

	return true
}

// minOccursOf recovers a built child's declared MinOccurs; only Group
// and Record implement it.
func minOccursOf(s Selector) int {
	type minOccurser interface{ MinOccurs() int }

	if m, ok := s.(minOccurser); ok {
		return m.MinOccurs()
	}

	return 0
}

func (g *Group) matchNextUnordered(ctx *parsectx.UnmarshallingContext) (Selector, bool) {
	for _, c := range g.children {
		if c.IsMaxOccursReached() {
			continue
		}

		if sel, ok := c.MatchNext(ctx); ok {
			return sel, true
		}
	}

	return nil, false
}

// MatchNextForWrite dispatches ctx's bean to the first descendant
// Record whose bound type accepts it, preferring an exact type match
// over an assignable one across the whole subtree (spec.md §4.1
// Tie-breaks, "Property.defines(bean): the first child whose bound
// class accepts the bean (exact class, then assignable) wins").
func (g *Group) MatchNextForWrite(ctx *parsectx.MarshallingContext) (Selector, bool) {
	if g.IsMaxOccursReached() {
		return nil, false
	}

	var candidates []*Record
	for _, c := range g.children {
		collectWriteCandidates(c, &candidates)
	}

	bean := ctx.Bean()

	for _, r := range candidates {
		if r.definesExact(bean) {
			r.count++
			return r, true
		}
	}

	for _, r := range candidates {
		if r.definesAssignable(bean) {
			r.count++
			return r, true
		}
	}

	return nil, false
}

// collectWriteCandidates gathers every Record under sel that has not
// exceeded maxOccurs, in document order, for MatchNextForWrite's
// exact-then-assignable dispatch.
func collectWriteCandidates(sel Selector, out *[]*Record) {
	switch s := sel.(type) {
	case *Record:
		if !s.IsMaxOccursReached() {
			*out = append(*out, s)
		}
	case *Group:
		if s.IsMaxOccursReached() {
			return
		}

		for _, c := range s.children {
			collectWriteCandidates(c, out)
		}
	}
}

// Skip discards ctx's current record against whichever child would have
// claimed it, without binding any value.
func (g *Group) Skip(ctx *parsectx.UnmarshallingContext) {
	for _, c := range g.children {
		if !c.IsMaxOccursReached() && c.MatchAny(ctx) {
			c.Skip(ctx)
			return
		}
	}
}
