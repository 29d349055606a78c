package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/inference-sim/full-page-recommender/fpr"
)

// collectionFixture is the JSON shape of one fpr.Collection in a
// recommend fixture file.
type collectionFixture struct {
	Index    int       `json:"index"`
	Items    []int     `json:"items"`
	Scores   []float64 `json:"scores"`
	IsSorted bool      `json:"is_sorted"`
}

// recommendFixture is the JSON shape loaded by the "recommend" subcommand.
type recommendFixture struct {
	Collections []collectionFixture `json:"collections"`
}

func loadRecommendFixture(path string) ([]fpr.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f recommendFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	collections := make([]fpr.Collection, len(f.Collections))
	for i, c := range f.Collections {
		collections[i] = fpr.Collection{
			Index:    c.Index,
			Items:    c.Items,
			Scores:   c.Scores,
			IsSorted: c.IsSorted,
		}
	}
	return collections, nil
}

// easeFixture is the JSON shape loaded by the "ease" subcommand: a dense
// row-major EASE matrix, the items belonging to each collection, and a
// user history.
type easeFixture struct {
	ItemUniverseSize   int       `json:"item_universe_size"`
	EaseMatrix         []float64 `json:"ease_matrix"`
	ItemsInCollections [][]int   `json:"items_in_collections"`
	History            []int     `json:"history"`
}

func loadEaseFixture(path string) (*easeFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f easeFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

// parseMask parses a comma-separated list of floats into a position mask,
// in the spirit of sim/routing_scorers.go's ParseScorerConfigs (which
// parses comma-separated "name:weight" pairs): empty input yields nil,
// and any malformed entry is a hard error rather than a silent skip.
func parseMask(s string) (fpr.PositionMask, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	mask := make(fpr.PositionMask, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		w, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mask entry %q: %w", trimmed, err)
		}
		mask = append(mask, w)
	}
	return mask, nil
}

func printPage(page fpr.Page) {
	for _, row := range page {
		fmt.Printf("%d\t%v\n", row.CollectionIndex, row.Items)
	}
}
