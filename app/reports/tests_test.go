package reports

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

func TestGradeScale(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{80, "A"},
		{79, "B+"},
		{70, "B+"},
		{69, "B"},
		{60, "B"},
		{59, "C"},
		{0, "C"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultGradeScale.Grade(tt.pct), "pct=%d", tt.pct)
	}
}

func TestSummarizeTests(t *testing.T) {
	tests := map[string]models.Test{
		"t1": {ID: "t1", Title: "Algebra", MaxMarks: 50},
		"t2": {ID: "t2", Title: "Optics", MaxMarks: 100},
	}
	results := []models.TestResult{
		{TestID: "t1", StudentID: "s1", MarksObtained: 45}, // 90% -> A+
		{TestID: "t2", StudentID: "s1", MarksObtained: 72}, // 72% -> B+
	}

	perf, errs := SummarizeTests(results, tests, DefaultGradeScale)
	require.Empty(t, errs)
	assert.Equal(t, 2, perf.Count)
	assert.Equal(t, 81, perf.Average)
	assert.Equal(t, 90, perf.Best)
	assert.Equal(t, "90%", perf.BestLabel)
	assert.Equal(t, map[string]int{"A+": 1, "B+": 1}, perf.GradeHistogram)
	assert.Zero(t, perf.Skipped)

	require.Len(t, perf.Results, 2)
	assert.Equal(t, 90, perf.Results[0].Percentage)
	assert.Equal(t, "A+", perf.Results[0].Grade)
}

func TestSummarizeTests_Pure(t *testing.T) {
	tests := map[string]models.Test{"t1": {ID: "t1", MaxMarks: 50}}
	results := []models.TestResult{{TestID: "t1", StudentID: "s1", MarksObtained: 45}}

	first, _ := SummarizeTests(results, tests, DefaultGradeScale)
	second, _ := SummarizeTests(results, tests, DefaultGradeScale)
	assert.Equal(t, first, second)
}

func TestSummarizeTests_NoData(t *testing.T) {
	perf, errs := SummarizeTests(nil, nil, DefaultGradeScale)
	assert.Empty(t, errs)
	assert.Zero(t, perf.Count)
	assert.Zero(t, perf.Average)
	assert.Equal(t, BestNoData, perf.BestLabel)
}

func TestSummarizeTests_ZeroMaxMarksSkipped(t *testing.T) {
	tests := map[string]models.Test{
		"good": {ID: "good", MaxMarks: 100},
		"bad":  {ID: "bad", MaxMarks: 0},
	}
	results := []models.TestResult{
		{TestID: "good", StudentID: "s1", MarksObtained: 80},
		{TestID: "bad", StudentID: "s1", MarksObtained: 10},
		{TestID: "good", StudentID: "s2", MarksObtained: 60},
	}

	perf, errs := SummarizeTests(results, tests, DefaultGradeScale)

	// The undefined record is skipped and reported; the batch continues.
	assert.Equal(t, 2, perf.Count)
	assert.Equal(t, 1, perf.Skipped)
	require.Len(t, errs, 1)
	var divErr *DivisionUndefinedError
	require.True(t, errors.As(errs[0], &divErr))
	assert.Equal(t, "bad", divErr.TestID)
	assert.Equal(t, "s1", divErr.StudentID)

	// The flattened messages name the offending test and student so the
	// detail reaches API responses, not just the count.
	msgs := SkipMessages(errs)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "bad")
	assert.Contains(t, msgs[0], "s1")
}

func TestSkipMessages_Empty(t *testing.T) {
	assert.Nil(t, SkipMessages(nil))
}

func TestSummarizeTests_MissingParentTestSkipped(t *testing.T) {
	results := []models.TestResult{{TestID: "ghost", StudentID: "s1", MarksObtained: 10}}
	perf, errs := SummarizeTests(results, map[string]models.Test{}, DefaultGradeScale)
	assert.Zero(t, perf.Count)
	assert.Equal(t, 1, perf.Skipped)
	assert.Len(t, errs, 1)
}
