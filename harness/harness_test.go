package harness_test

import (
	"testing"

	"github.com/branchroot/minarb/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeTest_RandomFamilySucceeds(t *testing.T) {
	report, err := harness.VolumeTest(10, [2]int{5, 15}, [2]int{1, 20}, harness.FamilyRandom, harness.WithSeed(42))
	require.NoError(t, err)
	assert.Len(t, report.Cases, 10)
	assert.Equal(t, 10, report.SuccessCount)
	assert.Zero(t, report.FailureCount)

	for _, c := range report.Cases {
		assert.True(t, c.Success || c.Infeasible)
		if c.Success {
			assert.Equal(t, c.CostCLE, c.CostFrankV1)
			assert.Equal(t, c.CostCLE, c.CostFrankV2)
			assert.True(t, c.CertPassV1)
			assert.True(t, c.CertPassV2)
		}
	}
}

func TestVolumeTest_AllFamiliesAgree(t *testing.T) {
	for _, family := range []harness.FamilyTag{harness.FamilyRandom, harness.FamilySparse, harness.FamilyDense, harness.FamilyLayered} {
		report, err := harness.VolumeTest(5, [2]int{6, 12}, [2]int{1, 15}, family, harness.WithSeed(99))
		require.NoError(t, err, "family %s", family)
		assert.Equal(t, 5, report.SuccessCount, "family %s", family)
	}
}

func TestVolumeTest_RejectsInvalidRange(t *testing.T) {
	_, err := harness.VolumeTest(1, [2]int{10, 5}, [2]int{1, 1}, harness.FamilyRandom)
	assert.ErrorIs(t, err, harness.ErrInvalidRange)
}

func TestVolumeTest_RejectsUnknownFamily(t *testing.T) {
	_, err := harness.VolumeTest(1, [2]int{4, 4}, [2]int{1, 1}, harness.FamilyTag("nonsense"))
	assert.ErrorIs(t, err, harness.ErrUnknownFamily)
}

func TestSummarize_ComputesMeanOverSuccessfulCases(t *testing.T) {
	report, err := harness.VolumeTest(8, [2]int{5, 10}, [2]int{1, 10}, harness.FamilySparse, harness.WithSeed(3))
	require.NoError(t, err)

	summary := report.Summarize()
	assert.Equal(t, 8, summary.TotalCases)
	assert.GreaterOrEqual(t, summary.SuccessfulCases, 0)

	var cleSum float64
	successful := 0
	for _, c := range report.Cases {
		if c.Success {
			cleSum += c.CLETime.Seconds()
			successful++
		}
	}
	assert.Equal(t, successful, summary.SuccessfulCases)
	if successful > 0 {
		assert.InDelta(t, cleSum/float64(successful), summary.CLEMeanSeconds, 1e-9)
	}
}
