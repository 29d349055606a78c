package fpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// asymmetricMatrix is a small hand-checkable affinity matrix used across
// the EaseFPR tests below; row i, column j is "affinity of j given i".
func asymmetricMatrix(t *testing.T) [][]float64 {
	t.Helper()
	return [][]float64{
		{0, 1, 2, 3},
		{2, 0, 1, 4},
		{1, 3, 0, 2},
		{4, 1, 3, 0},
	}
}

func flatten(rows [][]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

func TestEaseFPR_Recommend_DeterministicTwoRows(t *testing.T) {
	matrix, err := NewEaseMatrix(flatten(asymmetricMatrix(t)), 4)
	require.NoError(t, err)

	items := [][]int{{0, 1}, {1, 2}, {1, 3}, {2, 3}}
	e, err := NewEaseFPR(matrix, items, PositionMask{0.8, 0.2}, 2, 1.0, 1.0)
	require.NoError(t, err)

	page, err := e.Recommend([]int{0})
	require.NoError(t, err)
	require.Len(t, page, 2)

	// Row 1: collection offset 3 ([2,3]) has the highest position-weighted
	// value (base scores (2,3) under mask (0.8,0.2) since base = row 0 =
	// (0,1,2,3)): 3*0.8 + 2*0.2 = 2.8, the best among all four collections.
	assert.Equal(t, Row{CollectionIndex: 3, Items: []int{3, 2}}, page[0])

	// Row 2: items 2 and 3 are now suppressed (penalty 1, cooling 1.0 so
	// it never decays); among the remaining collections {0,1,2} every
	// effective value ties at 0.8, so the smaller offset (0) wins.
	assert.Equal(t, Row{CollectionIndex: 0, Items: []int{1, 0}}, page[1])
}

func TestEaseFPR_Recommend_EmptyHistoryIsTieBreakOnly(t *testing.T) {
	matrix, err := NewEaseMatrix(flatten(asymmetricMatrix(t)), 4)
	require.NoError(t, err)

	items := [][]int{{0, 1}, {1, 2}}
	e, err := NewEaseFPR(matrix, items, PositionMask{0.8, 0.2}, 2, 1.0, 1.0)
	require.NoError(t, err)

	page, err := e.Recommend(nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// All base scores are zero, so every row ties; collections are picked
	// by ascending offset and items appear in their original order.
	assert.Equal(t, 0, page[0].CollectionIndex)
	assert.Equal(t, []int{0, 1}, page[0].Items)
	assert.Equal(t, 1, page[1].CollectionIndex)
	assert.Equal(t, []int{1, 2}, page[1].Items)
}

func TestEaseFPR_Recommend_CoolingFactorZeroErasesPenaltyEachRow(t *testing.T) {
	matrix, err := NewEaseMatrix(flatten(asymmetricMatrix(t)), 4)
	require.NoError(t, err)

	items := [][]int{{0, 1}, {1, 2}, {1, 3}, {2, 3}}
	e, err := NewEaseFPR(matrix, items, PositionMask{0.8, 0.2}, 2, 1.0, 0.0)
	require.NoError(t, err)

	page, err := e.Recommend([]int{0})
	require.NoError(t, err)
	require.Len(t, page, 2)
	// Row 1 is identical to the cooling=1.0 case.
	assert.Equal(t, Row{CollectionIndex: 3, Items: []int{3, 2}}, page[0])
	// With cooling_factor=0 the penalty is wiped before row 2 is scored,
	// so row 2 is scored exactly as if row 1 never happened (restricted
	// to the remaining collections {0,1,2}): collection 2 ([1,3]) now has
	// the highest value, base3*0.8+base1*0.2 = 3*0.8+1*0.2=2.6.
	assert.Equal(t, Row{CollectionIndex: 2, Items: []int{3, 1}}, page[1])
}

func TestEaseFPR_Recommend_TempPenaltyMonotoneDiversity(t *testing.T) {
	matrix, err := NewEaseMatrix(flatten(asymmetricMatrix(t)), 4)
	require.NoError(t, err)
	items := [][]int{{0, 1}, {1, 2}, {1, 3}, {2, 3}}

	countItems := func(tempPenalty float64) map[int]int {
		e, err := NewEaseFPR(matrix, items, PositionMask{1.0}, 4, tempPenalty, 1.0)
		require.NoError(t, err)
		page, err := e.Recommend([]int{0})
		require.NoError(t, err)
		counts := map[int]int{}
		for _, row := range page {
			for _, item := range row.Items {
				counts[item]++
			}
		}
		return counts
	}

	low := countItems(0.1)
	high := countItems(5.0)
	for item, lowCount := range low {
		assert.LessOrEqual(t, high[item], lowCount, "item %d: stronger penalty must not increase its count", item)
	}
}

func TestEaseFPR_Recommend_HistoryOutOfRange(t *testing.T) {
	matrix, err := NewEaseMatrix(flatten(asymmetricMatrix(t)), 4)
	require.NoError(t, err)
	e, err := NewEaseFPR(matrix, [][]int{{0, 1}}, PositionMask{1}, 1, 0, 1)
	require.NoError(t, err)

	_, err = e.Recommend([]int{9})
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestNewEaseFPR_ValidationErrors(t *testing.T) {
	matrix, err := NewEaseMatrix(flatten(asymmetricMatrix(t)), 4)
	require.NoError(t, err)

	t.Run("cooling factor out of range", func(t *testing.T) {
		_, err := NewEaseFPR(matrix, [][]int{{0, 1}}, PositionMask{1}, 1, 0, 1.5)
		var domainErr *DomainError
		assert.ErrorAs(t, err, &domainErr)
	})

	t.Run("negative temp penalty", func(t *testing.T) {
		_, err := NewEaseFPR(matrix, [][]int{{0, 1}}, PositionMask{1}, 1, -1, 1)
		var domainErr *DomainError
		assert.ErrorAs(t, err, &domainErr)
	})

	t.Run("item id out of range", func(t *testing.T) {
		_, err := NewEaseFPR(matrix, [][]int{{0, 99}}, PositionMask{1}, 1, 0, 1)
		var domainErr *DomainError
		assert.ErrorAs(t, err, &domainErr)
	})

	t.Run("non-square matrix", func(t *testing.T) {
		nonSquare := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
		_, err := NewEaseFPR(nonSquare, [][]int{{0, 1}}, PositionMask{1}, 1, 0, 1)
		var shapeErr *ShapeError
		assert.ErrorAs(t, err, &shapeErr)
	})
}

func TestEaseFPR_Recommend_EmptyCollectionSkippedPermanently(t *testing.T) {
	matrix, err := NewEaseMatrix(flatten(asymmetricMatrix(t)), 4)
	require.NoError(t, err)
	items := [][]int{{0, 1}, {}, {2, 3}}
	e, err := NewEaseFPR(matrix, items, PositionMask{0.8, 0.2}, 3, 1.0, 1.0)
	require.NoError(t, err)

	page, err := e.Recommend([]int{0})
	require.NoError(t, err)
	assert.Len(t, page, 2, "empty collection never contributes a row, even with rows to spare")
	for _, row := range page {
		assert.NotEqual(t, 1, row.CollectionIndex)
	}
}
