package reports

import "github.com/SaifulSk/tuition-plus-connect/app/models"

// HomeworkProgress counts a set of homework submissions.
type HomeworkProgress struct {
	Total        int `json:"total"`
	Submitted    int `json:"submitted"`
	Pending      int `json:"pending"`
	Acknowledged int `json:"acknowledged"`
}

// SummarizeHomework counts submissions by outcome. Only completed
// submissions count as submitted; a late submission stays in the
// pending bucket even though the work was turned in. Product has been
// asked to confirm that reading (see DESIGN.md), so the behavior is
// pinned here and in the tests until they do.
func SummarizeHomework(subs []models.HomeworkSubmission) HomeworkProgress {
	p := HomeworkProgress{Total: len(subs)}
	for _, s := range subs {
		if s.Status == models.SubmissionCompleted {
			p.Submitted++
		}
		if s.ParentAcknowledged {
			p.Acknowledged++
		}
	}
	p.Pending = p.Total - p.Submitted
	return p
}
