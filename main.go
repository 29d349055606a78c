package main

import "github.com/inference-sim/full-page-recommender/cmd"

func main() {
	cmd.Execute()
}
