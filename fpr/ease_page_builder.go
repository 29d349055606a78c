package fpr

import "gonum.org/v1/gonum/mat"

// EaseFPR builds pages from a precomputed EASE item-item affinity matrix
// and a user history, diversifying rows with a continuous, decaying
// penalty instead of the basic variant's hard seen-set exclusion.
//
// An EaseFPR is immutable after construction (NewEaseMatrix borrows the
// matrix by reference; itemsInCollections is packed into a flat backing
// array) and its Recommend method allocates all per-call state fresh, so
// one instance may be shared across concurrent callers.
type EaseFPR struct {
	matrix           *mat.Dense
	itemUniverseSize int

	// packedItems holds every collection's item ids concatenated;
	// collection c's items are packedItems[offsets[c]:offsets[c+1]].
	// This is the "packed index array plus offsets" layout spec.md §4.4
	// suggests for compact storage of items_in_collections.
	packedItems []int
	offsets     []int

	mask          PositionMask
	numRows       int
	tempPenalty   float64
	coolingFactor float64
}

// NewEaseFPR validates its arguments eagerly and constructs an EaseFPR
// that owns (borrows, in the case of the matrix) the given inputs for its
// lifetime.
func NewEaseFPR(matrix *mat.Dense, itemsInCollections [][]int, mask PositionMask, numRows int, tempPenalty, coolingFactor float64) (*EaseFPR, error) {
	rows, cols := matrix.Dims()
	if rows != cols {
		return nil, newShapeError("ease matrix must be square, got %d x %d", rows, cols)
	}
	if err := validateMaskAndRows(mask, numRows); err != nil {
		return nil, err
	}
	if tempPenalty < 0 {
		return nil, newDomainError("temp_penalty must be non-negative, got %v", tempPenalty)
	}
	if coolingFactor < 0 || coolingFactor > 1 {
		return nil, newDomainError("cooling_factor must be in [0,1], got %v", coolingFactor)
	}

	offsets := make([]int, len(itemsInCollections)+1)
	var packed []int
	for ci, items := range itemsInCollections {
		seen := make(map[int]struct{}, len(items))
		for _, item := range items {
			if item < 0 || item >= rows {
				return nil, newDomainError("collection %d: item id %d outside [0,%d)", ci, item, rows)
			}
			if _, dup := seen[item]; dup {
				return nil, newDomainError("collection %d: duplicate item id %d", ci, item)
			}
			seen[item] = struct{}{}
		}
		packed = append(packed, items...)
		offsets[ci+1] = len(packed)
	}

	return &EaseFPR{
		matrix:           matrix,
		itemUniverseSize: rows,
		packedItems:      packed,
		offsets:          offsets,
		mask:             mask,
		numRows:          numRows,
		tempPenalty:      tempPenalty,
		coolingFactor:    coolingFactor,
	}, nil
}

// collectionItems returns collection offset c's item ids, a view into the
// packed backing array.
func (e *EaseFPR) collectionItems(c int) []int {
	return e.packedItems[e.offsets[c]:e.offsets[c+1]]
}

// Recommend builds a page for the given history. History item ids must
// lie in [0, itemUniverseSize); duplicates are permitted and their
// contributions to the base score sum.
//
// Per row: every available collection's effective score vector is
// recomputed from the current penalty (eff(j) = base(j) * max(0, 1 -
// penalty(j))), the best collection by position-weighted value is
// emitted, its items' penalties are bumped by tempPenalty, and then the
// entire penalty vector is cooled by coolingFactor — once per row, after
// the bump, so an item shown k rows ago contributes roughly
// tempPenalty * coolingFactor^k to its current penalty.
func (e *EaseFPR) Recommend(history []int) (Page, error) {
	for i, h := range history {
		if h < 0 || h >= e.itemUniverseSize {
			return nil, newDomainError("history entry %d (id %d) outside [0,%d)", i, h, e.itemUniverseSize)
		}
	}

	base := baseScores(e.matrix, history)
	penalty := mat.NewVecDense(e.itemUniverseSize, nil)

	numCollections := len(e.offsets) - 1
	available := make([]int, 0, numCollections)
	for c := 0; c < numCollections; c++ {
		if len(e.collectionItems(c)) > 0 {
			available = append(available, c)
		}
	}

	page := make(Page, 0, e.numRows)
	for row := 0; row < e.numRows && len(available) > 0; row++ {
		bestPos := 0
		var bestIdx []int
		var bestEff []int
		var bestValue float64
		haveBest := false

		for pos, c := range available {
			items := e.collectionItems(c)
			eff := make([]float64, len(items))
			for k, item := range items {
				suppression := 1 - penalty.AtVec(item)
				if suppression < 0 {
					suppression = 0
				}
				eff[k] = base.AtVec(item) * suppression
			}
			idx := topKSelect(eff, len(e.mask), false)
			val := rowValue(eff, idx, e.mask)

			if !haveBest || val > bestValue {
				haveBest = true
				bestValue = val
				bestPos = pos
				bestIdx = idx
				bestEff = items
			}
		}

		c := available[bestPos]
		items := make([]int, len(bestIdx))
		for i, k := range bestIdx {
			items[i] = bestEff[k]
			penalty.SetVec(items[i], penalty.AtVec(items[i])+e.tempPenalty)
		}
		for i := 0; i < e.itemUniverseSize; i++ {
			penalty.SetVec(i, penalty.AtVec(i)*e.coolingFactor)
		}

		page = append(page, Row{CollectionIndex: c, Items: items})
		available = append(available[:bestPos], available[bestPos+1:]...)
	}

	return page, nil
}
