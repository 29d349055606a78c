package fpr

import "gonum.org/v1/gonum/mat"

// baseScores computes the EASE base-score vector for a history: item j's
// base score is the sum, over every item h in history, of
// EaseMatrix[h, j]. History items are not excluded from scoring — the
// page builder's penalty vector is what enforces novelty, not the scorer.
//
// Reduction order follows history in caller-supplied order, one
// RowView/AddVec per history entry, so floating point accumulation is
// deterministic regardless of how many history entries repeat an item.
// history is assumed already validated (every entry in [0, itemUniverseSize)).
func baseScores(matrix *mat.Dense, history []int) *mat.VecDense {
	_, cols := matrix.Dims()
	scores := mat.NewVecDense(cols, nil)
	for _, h := range history {
		scores.AddVec(scores, matrix.RowView(h))
	}
	return scores
}
