package parser

import parsectx "github.com/somranjan/beanio/internal/context"

// Selector is the state machine contract every node in the runtime tree
// implements: Group (a container of other selectors) and Record (a
// single physical record definition). It is the unchanged contract
// spec.md §4.1 describes (`matchNext`, `matchAny`, `skip`, `close`,
// `reset`, `isMaxOccursReached`), renamed to exported Go method names.
type Selector interface {
	// Name reports the selector's configured name, used in diagnostics
	// and checkpoint keys.
	Name() string

	// MatchNext reports whether this selector is willing to claim the
	// next record on read, advancing its own occurrence count if so. A
	// Group delegates to its current child; a Record checks its
	// identifying fields/literal criteria.
	MatchNext(ctx *parsectx.UnmarshallingContext) (Selector, bool)

	// MatchNextForWrite reports whether the bean installed on ctx
	// belongs to a child of this selector (spec.md §4.1,
	// "matchNext(marshal-ctx) -> Selector|none": "does the bean in the
	// context belong to a child of this Selector?"). A Group dispatches
	// by bean type across every descendant Record it contains, trying
	// an exact type match before an assignable one (spec.md's
	// Tie-breaks rule, "Property.defines(bean): the first child whose
	// bound class accepts the bean (exact class, then assignable)
	// wins"); a Record claims the bean directly if its own bound type
	// accepts it.
	MatchNextForWrite(ctx *parsectx.MarshallingContext) (Selector, bool)

	// MatchAny reports whether this selector *could* claim the given
	// input, without advancing any counter — used for lookahead when
	// choosing among ambiguous siblings (spec.md §4.1 "Tie-breaks").
	MatchAny(ctx *parsectx.UnmarshallingContext) bool

	// Skip advances past this selector without binding its content,
	// used when an upstream ancestor determined this occurrence should
	// be discarded (e.g. exceeding maxOccurs during lenient skip).
	Skip(ctx *parsectx.UnmarshallingContext)

	// Close finalizes the selector's state at stream-close time,
	// checking minOccurs was satisfied (spec.md §4.1 cardinality rule).
	Close() error

	// Reset clears this selector's occurrence counters for a fresh pass
	// over the stream (e.g. after a full group repetition completes).
	Reset()

	// IsMaxOccursReached reports whether this selector has already
	// matched its configured maxOccurs times.
	IsMaxOccursReached() bool

	// Count reports how many times this selector has matched since the
	// last Reset, the value persisted into checkpoint state.
	Count() int

	// SetCount forcibly sets the occurrence count, used to restore from
	// checkpoint state.
	SetCount(n int)
}
