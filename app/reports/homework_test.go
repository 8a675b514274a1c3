package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

func TestSummarizeHomework(t *testing.T) {
	subs := []models.HomeworkSubmission{
		{HomeworkID: "h1", StudentID: "s1", Status: models.SubmissionCompleted, ParentAcknowledged: true},
		{HomeworkID: "h2", StudentID: "s1", Status: models.SubmissionPending},
		{HomeworkID: "h3", StudentID: "s1", Status: models.SubmissionLate, ParentAcknowledged: true},
		{HomeworkID: "h1", StudentID: "s2", Status: models.SubmissionCompleted},
	}

	got := SummarizeHomework(subs)
	assert.Equal(t, HomeworkProgress{Total: 4, Submitted: 2, Pending: 2, Acknowledged: 2}, got)
}

func TestSummarizeHomework_LateNotSubmitted(t *testing.T) {
	// Pins current product behavior: a late submission was turned in but
	// still does not count as submitted.
	subs := []models.HomeworkSubmission{
		{HomeworkID: "h1", StudentID: "s1", Status: models.SubmissionLate},
	}
	got := SummarizeHomework(subs)
	assert.Equal(t, 0, got.Submitted)
	assert.Equal(t, 1, got.Pending)
}

func TestSummarizeHomework_Empty(t *testing.T) {
	assert.Equal(t, HomeworkProgress{}, SummarizeHomework(nil))
}
