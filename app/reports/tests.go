package reports

import (
	"math"
	"strconv"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

// GradeBand maps a minimum percentage to a letter grade.
type GradeBand struct {
	Min   int
	Grade string
}

// GradeScale is an ordered set of bands, highest threshold first, with a
// fallback grade for anything below the last band. It is configuration:
// every screen must grade against the same table.
type GradeScale struct {
	Bands    []GradeBand
	Fallback string
}

// DefaultGradeScale is the scale the product ships with.
var DefaultGradeScale = GradeScale{
	Bands: []GradeBand{
		{Min: 90, Grade: "A+"},
		{Min: 80, Grade: "A"},
		{Min: 70, Grade: "B+"},
		{Min: 60, Grade: "B"},
	},
	Fallback: "C",
}

// Grade resolves a percentage to a letter grade.
func (s GradeScale) Grade(percentage int) string {
	for _, b := range s.Bands {
		if percentage >= b.Min {
			return b.Grade
		}
	}
	return s.Fallback
}

// ScoredResult is one test result with its derived figures attached.
type ScoredResult struct {
	TestID        string `json:"test_id"`
	StudentID     string `json:"student_id"`
	MarksObtained int    `json:"marks_obtained"`
	MaxMarks      int    `json:"max_marks"`
	Percentage    int    `json:"percentage"`
	Grade         string `json:"grade"`
}

// BestNoData is the Best label when there are no scorable results.
// "No data" must stay distinguishable from "scored zero".
const BestNoData = "N/A"

// TestPerformance aggregates scored results.
type TestPerformance struct {
	Count          int            `json:"count"`
	Average        int            `json:"average"`
	GradeHistogram map[string]int `json:"grade_histogram"`
	Best           int            `json:"best"`
	BestLabel      string         `json:"best_label"`
	Skipped        int            `json:"skipped"`
	Results        []ScoredResult `json:"results"`
}

// SummarizeTests joins results with their parent test's maximum marks and
// derives percentages, grades and the distribution. A result whose test
// declares zero max marks has an undefined percentage: that record fails
// with DivisionUndefinedError, is skipped, and the batch continues. The
// collected per-record errors are returned alongside the summary.
func SummarizeTests(results []models.TestResult, tests map[string]models.Test, scale GradeScale) (TestPerformance, []error) {
	perf := TestPerformance{
		GradeHistogram: map[string]int{},
		BestLabel:      BestNoData,
	}
	var errs []error

	var sum int
	for _, r := range results {
		t, ok := tests[r.TestID]
		if !ok || t.MaxMarks == 0 {
			errs = append(errs, &DivisionUndefinedError{TestID: r.TestID, StudentID: r.StudentID})
			perf.Skipped++
			continue
		}
		pct := int(math.Round(100 * float64(r.MarksObtained) / float64(t.MaxMarks)))
		grade := scale.Grade(pct)
		perf.Results = append(perf.Results, ScoredResult{
			TestID:        r.TestID,
			StudentID:     r.StudentID,
			MarksObtained: r.MarksObtained,
			MaxMarks:      t.MaxMarks,
			Percentage:    pct,
			Grade:         grade,
		})
		perf.GradeHistogram[grade]++
		sum += pct
		if pct > perf.Best {
			perf.Best = pct
		}
		perf.Count++
	}

	if perf.Count > 0 {
		perf.Average = int(math.Round(float64(sum) / float64(perf.Count)))
		perf.BestLabel = strconv.Itoa(perf.Best) + "%"
	}
	return perf, errs
}

// SkipMessages flattens the per-record errors from SummarizeTests into
// strings a JSON response can carry next to the skipped count.
func SkipMessages(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}
