package harness

import "gonum.org/v1/gonum/stat"

// Summary holds aggregate timing statistics across every successful case
// in a TestReport, computed with gonum's stat.MeanStdDev.
type Summary struct {
	CLEMeanSeconds, CLEStdDevSeconds             float64
	FrankPhaseIMeanSeconds, FrankPhaseIStdDevSeconds float64
	TotalCases, SuccessfulCases                   int
}

// Summarize computes a Summary over r's successful cases. Infeasible and
// failed cases are excluded since their timings do not reflect a complete
// solve.
func (r *TestReport) Summarize() Summary {
	var cleSeconds, frankSeconds []float64
	for _, c := range r.Cases {
		if !c.Success {
			continue
		}
		cleSeconds = append(cleSeconds, c.CLETime.Seconds())
		frankSeconds = append(frankSeconds, c.FrankPhaseITime.Seconds())
	}

	s := Summary{TotalCases: len(r.Cases), SuccessfulCases: len(cleSeconds)}
	if len(cleSeconds) == 0 {
		return s
	}
	s.CLEMeanSeconds, s.CLEStdDevSeconds = stat.MeanStdDev(cleSeconds, nil)
	s.FrankPhaseIMeanSeconds, s.FrankPhaseIStdDevSeconds = stat.MeanStdDev(frankSeconds, nil)
	return s
}
