package benchfmt

import (
	"math"
	"sort"
	"strings"
)

// DefaultThreshold is the percentage change above which a metric change is
// significant.
const DefaultThreshold = 5.0

type MetricComparison struct {
	Name          string  `json:"name"`
	BaseValue     float64 `json:"base_value"`
	CurrentValue  float64 `json:"current_value"`
	PercentChange float64 `json:"percent_change"`
	IsRegression  bool    `json:"is_regression"`
	IsImprovement bool    `json:"is_improvement"`
	IsSignificant bool    `json:"is_significant"`
}

type Assessment string

const (
	AssessmentRegression  Assessment = "REGRESSION"
	AssessmentImprovement Assessment = "IMPROVEMENT"
	AssessmentNeutral     Assessment = "NEUTRAL"
)

type Comparison struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Metrics    []MetricComparison `json:"metric_comparisons"`
	Assessment Assessment         `json:"overall_assessment"`
	Score      float64            `json:"score"`
}

// Report is the outcome of comparing two summaries.
type Report struct {
	BaseCommit    string       `json:"base_commit"`
	CurrentCommit string       `json:"current_commit"`
	Improved      int          `json:"improved_benchmarks"`
	Regressed     int          `json:"regression_benchmarks"`
	Comparisons   []Comparison `json:"benchmark_comparisons"`
}

// HigherIsBetter reports whether a larger value of metric is an improvement.
// Rates are; times, sizes and allocation counts are not.
func HigherIsBetter(metric string) bool {
	for _, pattern := range []string{
		"ops_per_sec", "operations", "insertion_rate", "lookup_rate",
		"deletion_rate", "retrieval_rate", "validation_rate",
		"verification_rate", "rate_", "throughput",
	} {
		if strings.Contains(metric, pattern) {
			return true
		}
	}
	return false
}

// Compare matches current results to base results by name. Benchmarks
// missing from either side are skipped. A benchmark regresses when any of its
// metrics moves the wrong way by at least threshold percent.
func Compare(base, current *Summary, threshold float64) Report {
	baseResults := make(map[string]Result, len(base.Results))
	for _, r := range base.Results {
		baseResults[r.Name] = r
	}

	report := Report{
		BaseCommit:    base.CommitID,
		CurrentCommit: current.CommitID,
	}

	for _, cur := range current.Results {
		old, ok := baseResults[cur.Name]
		if !ok {
			continue
		}

		c := Comparison{Name: cur.Name, Category: cur.Category}
		regressed := false
		score := 0.0

		names := make([]string, 0, len(cur.Metrics))
		for name := range cur.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			baseValue, ok := old.Metrics[name]
			if !ok {
				continue
			}
			currentValue := cur.Metrics[name]

			change := 0.0
			if baseValue != 0 {
				change = (currentValue - baseValue) / baseValue * 100
			}

			m := MetricComparison{
				Name:          name,
				BaseValue:     baseValue,
				CurrentValue:  currentValue,
				PercentChange: change,
				IsSignificant: math.Abs(change) >= threshold,
			}
			if HigherIsBetter(name) {
				m.IsRegression = change < 0
				m.IsImprovement = change > 0
			} else {
				m.IsRegression = change > 0
				m.IsImprovement = change < 0
			}

			if m.IsRegression && m.IsSignificant {
				regressed = true
			}
			if m.IsImprovement {
				score += math.Abs(change)
			} else if m.IsRegression {
				score -= math.Abs(change)
			}
			c.Metrics = append(c.Metrics, m)
		}

		if len(c.Metrics) > 0 {
			c.Score = score / float64(len(c.Metrics))
		}

		switch {
		case regressed:
			c.Assessment = AssessmentRegression
			report.Regressed++
		case c.Score > 0:
			c.Assessment = AssessmentImprovement
			report.Improved++
		default:
			c.Assessment = AssessmentNeutral
		}
		report.Comparisons = append(report.Comparisons, c)
	}

	// Worst first.
	sort.SliceStable(report.Comparisons, func(i, j int) bool {
		ri := report.Comparisons[i].Assessment == AssessmentRegression
		rj := report.Comparisons[j].Assessment == AssessmentRegression
		if ri != rj {
			return ri
		}
		return report.Comparisons[i].Score < report.Comparisons[j].Score
	})

	return report
}
