package fpr

// Collection is a bag of scored items eligible to become one row of the
// output page.
//
// Items and Scores are parallel slices: Items[i] has score Scores[i]. Item
// identifiers within a Collection must be unique, and the collection must
// be non-empty; these invariants are checked by validateCollections before
// a page build starts.
type Collection struct {
	// Index is a caller-chosen opaque identifier reported back in Row.CollectionIndex.
	Index int
	// Items holds item identifiers in [0, I) for some item universe size I.
	Items []int
	// Scores holds the score for each item, finite and non-negative.
	Scores []float64
	// IsSorted hints that Scores is already descending (Items permuted to match).
	// Purely an optimization; correctness never depends on it being true.
	IsSorted bool
}

// PositionMask is the per-position weight vector used to turn a top-K
// ordering into a scalar row value. Canonical production usage is a
// normalized geometric sequence (see NewGeometricMask in package config),
// but the core uses the weights verbatim and does not require
// normalization.
type PositionMask []float64

// Row is one emitted page row: the collection it came from and the
// ordered item identifiers selected for it.
type Row struct {
	// CollectionIndex is Collection.Index for Recommend, or the
	// collection's offset in the constructor's input slice for
	// EaseFPR.Recommend.
	CollectionIndex int
	Items           []int
}

// Page is the ordered sequence of rows returned by a recommend call.
type Page []Row
