package ledger

import "fmt"

// Kind identifies an expected failure class. Every failed ledger operation
// returns an *Error carrying one of these kinds; nothing is mutated when an
// operation fails.
type Kind string

const (
	KindCorruptStore        Kind = "corrupt_store"
	KindInvalidQuery        Kind = "invalid_query"
	KindUnknownSource       Kind = "unknown_source"
	KindUnknownCategory     Kind = "unknown_category"
	KindUnknownTag          Kind = "unknown_tag"
	KindNotFound            Kind = "not_found"
	KindNothingToSplit      Kind = "nothing_to_split"
	KindSplitExceedsTotal   Kind = "split_exceeds_total"
	KindSplitExceedsField   Kind = "split_exceeds_field"
	KindAlreadySplitPiece   Kind = "already_split_piece"
	KindInsufficientTargets Kind = "insufficient_targets"
	KindConflictingLinks    Kind = "conflicting_links"
	KindAmbiguousTarget     Kind = "ambiguous_target"
)

// Error is the result of a failed ledger operation: the failure class, a
// human-readable message and optional diagnostic detail.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}

	return e.Message
}

// Is matches errors of the same Kind, so callers can test against the
// exported sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrCorruptStore        = &Error{Kind: KindCorruptStore, Message: "ledger table is corrupted"}
	ErrInvalidQuery        = &Error{Kind: KindInvalidQuery, Message: "invalid query"}
	ErrUnknownSource       = &Error{Kind: KindUnknownSource, Message: "unknown source"}
	ErrUnknownCategory     = &Error{Kind: KindUnknownCategory, Message: "unknown category"}
	ErrUnknownTag          = &Error{Kind: KindUnknownTag, Message: "unknown tag"}
	ErrNotFound            = &Error{Kind: KindNotFound, Message: "record not found"}
	ErrNothingToSplit      = &Error{Kind: KindNothingToSplit, Message: "nothing to split"}
	ErrSplitExceedsTotal   = &Error{Kind: KindSplitExceedsTotal, Message: "split portion exceeds the record total"}
	ErrSplitExceedsField   = &Error{Kind: KindSplitExceedsField, Message: "split portion exceeds the corresponding field"}
	ErrAlreadySplitPiece   = &Error{Kind: KindAlreadySplitPiece, Message: "record is a piece of another split"}
	ErrInsufficientTargets = &Error{Kind: KindInsufficientTargets, Message: "link needs at least two records"}
	ErrConflictingLinks    = &Error{Kind: KindConflictingLinks, Message: "records belong to different link groups"}
	ErrAmbiguousTarget     = &Error{Kind: KindAmbiguousTarget, Message: "exactly one of record ids or a search view must be given"}
)

var sentinels = map[Kind]*Error{
	KindCorruptStore:        ErrCorruptStore,
	KindInvalidQuery:        ErrInvalidQuery,
	KindUnknownSource:       ErrUnknownSource,
	KindUnknownCategory:     ErrUnknownCategory,
	KindUnknownTag:          ErrUnknownTag,
	KindNotFound:            ErrNotFound,
	KindNothingToSplit:      ErrNothingToSplit,
	KindSplitExceedsTotal:   ErrSplitExceedsTotal,
	KindSplitExceedsField:   ErrSplitExceedsField,
	KindAlreadySplitPiece:   ErrAlreadySplitPiece,
	KindInsufficientTargets: ErrInsufficientTargets,
	KindConflictingLinks:    ErrConflictingLinks,
	KindAmbiguousTarget:     ErrAmbiguousTarget,
}

// errf builds an *Error of the given kind with a formatted detail string.
func errf(kind Kind, format string, args ...any) *Error {
	msg := string(kind)
	if s, ok := sentinels[kind]; ok {
		msg = s.Message
	}

	return &Error{Kind: kind, Message: msg, Detail: fmt.Sprintf(format, args...)}
}
