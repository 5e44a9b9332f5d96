// Command arbvolume runs a default-sized batch of generated r-arborescence
// instances through every family, cross-checking CLE against both Frank
// Phase-II extractors on each, and prints a summary. It takes no flags and
// exits 0 iff every case either succeeded or was ruled out by a legitimate
// reachability failure.
package main

import (
	"fmt"
	"os"

	"github.com/branchroot/minarb/harness"
)

const (
	defaultTestsPerFamily = 500
	defaultMinVertices    = 6
	defaultMaxVertices    = 80
	defaultMinWeight      = 1
	defaultMaxWeight      = 50
	defaultSeed           = 20240601
)

func main() {
	families := []harness.FamilyTag{
		harness.FamilyRandom,
		harness.FamilySparse,
		harness.FamilyDense,
		harness.FamilyLayered,
	}

	totalSuccess, totalFailure := 0, 0
	seed := int64(defaultSeed)

	for _, family := range families {
		report, err := harness.VolumeTest(
			defaultTestsPerFamily,
			[2]int{defaultMinVertices, defaultMaxVertices},
			[2]int{defaultMinWeight, defaultMaxWeight},
			family,
			harness.WithSeed(seed),
		)
		seed++
		if err != nil {
			fmt.Fprintf(os.Stderr, "arbvolume: family %s: %v\n", family, err)
			os.Exit(1)
		}

		summary := report.Summarize()
		fmt.Printf(
			"%-8s cases=%-4d success=%-4d failure=%-4d cle_mean=%.6fs frank_phase1_mean=%.6fs\n",
			family, len(report.Cases), report.SuccessCount, report.FailureCount,
			summary.CLEMeanSeconds, summary.FrankPhaseIMeanSeconds,
		)
		totalSuccess += report.SuccessCount
		totalFailure += report.FailureCount
	}

	fmt.Printf("\ntotal: success=%d failure=%d\n", totalSuccess, totalFailure)
	if totalFailure > 0 {
		os.Exit(1)
	}
}
