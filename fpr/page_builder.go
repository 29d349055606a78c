package fpr

// Recommend builds a ranked page greedily, row by row: every remaining
// collection is scored by its position-weighted top-of-mask value, the
// best one is emitted, and its items are added to a page-wide seen set.
// In every later row a seen item scores zero in its collection; it is not
// removed, so it can still be emitted again when a chosen collection has
// fewer unseen items than mask positions. A collection is never reused
// across rows.
//
// Degenerate-but-legal inputs are not errors: num_rows > len(collections)
// simply yields fewer rows, and a collection shorter than the mask yields
// a truncated row. Output length is min(num_rows, number of collections).
//
// Modeled on the greedy argmax-with-tie-break shape of
// sim/lb_prefix_aware.go's PrefixAwareLoadBalancer.GetReplica: score every
// candidate, track the best score seen so far, prefer the earliest
// candidate on a tie.
func Recommend(collections []Collection, mask PositionMask, numRows int) (Page, error) {
	if err := validateCollections(collections); err != nil {
		return nil, err
	}
	if err := validateMaskAndRows(mask, numRows); err != nil {
		return nil, err
	}

	n := len(collections)
	available := make([]int, n)
	for i := range available {
		available[i] = i
	}

	seen := make(map[int]struct{})
	working := make([][]float64, n)
	everZeroed := make([]bool, n)
	for i, c := range collections {
		working[i] = make([]float64, len(c.Scores))
		copy(working[i], c.Scores)
	}

	page := make(Page, 0, numRows)
	for row := 0; row < numRows && len(available) > 0; row++ {
		bestPos := 0
		var bestIdx []int
		var bestValue float64
		haveBest := false

		for pos, ci := range available {
			c := collections[ci]
			for k, item := range c.Items {
				if _, wasSeen := seen[item]; wasSeen {
					working[ci][k] = 0
					everZeroed[ci] = true
				}
			}
			isSorted := c.IsSorted && !everZeroed[ci]
			idx := topKSelect(working[ci], len(mask), isSorted)
			val := rowValue(working[ci], idx, mask)

			if !haveBest || val > bestValue {
				haveBest = true
				bestValue = val
				bestPos = pos
				bestIdx = idx
			}
		}

		ci := available[bestPos]
		c := collections[ci]
		items := make([]int, len(bestIdx))
		for i, k := range bestIdx {
			items[i] = c.Items[k]
			seen[items[i]] = struct{}{}
		}
		page = append(page, Row{CollectionIndex: c.Index, Items: items})
		available = append(available[:bestPos], available[bestPos+1:]...)
	}

	return page, nil
}
