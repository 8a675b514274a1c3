package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/SaifulSk/tuition-plus-connect/app/config"
	"github.com/SaifulSk/tuition-plus-connect/app/database"
	"github.com/SaifulSk/tuition-plus-connect/app/reports"
	"github.com/SaifulSk/tuition-plus-connect/app/routes/auth"
)

// studentSnapshot is every aggregate one student's card shows, built
// from the same summarizers the per-feature endpoints use.
type studentSnapshot struct {
	StudentID   string                    `json:"student_id"`
	Name        string                    `json:"name"`
	Class       string                    `json:"class"`
	Attendance  reports.AttendanceSummary `json:"attendance"`
	Homework    reports.HomeworkProgress  `json:"homework"`
	Fees        reports.FeeLedgerSummary  `json:"fees"`
	Performance reports.TestPerformance   `json:"performance"`
	Warnings    []string                  `json:"warnings,omitempty"`
}

func buildStudentSnapshot(db *sql.DB, studentID, name, class string) (*studentSnapshot, error) {
	attendance, err := database.GetAttendance(db, database.AttendanceFilters{StudentID: studentID})
	if err != nil {
		return nil, err
	}
	subs, err := database.GetSubmissions(db, database.SubmissionFilters{StudentID: studentID})
	if err != nil {
		return nil, err
	}
	fees, err := database.GetFees(db, database.FeeFilters{StudentID: studentID})
	if err != nil {
		return nil, err
	}
	results, tests, err := database.GetResultsWithTests(db, database.ResultFilters{StudentID: studentID})
	if err != nil {
		return nil, err
	}

	perf, skipErrs := reports.SummarizeTests(results, tests, reports.DefaultGradeScale)
	return &studentSnapshot{
		StudentID:   studentID,
		Name:        name,
		Class:       class,
		Attendance:  reports.SummarizeAttendance(attendance),
		Homework:    reports.SummarizeHomework(subs),
		Fees:        reports.SummarizeFees(fees),
		Performance: perf,
		Warnings:    reports.SkipMessages(skipErrs),
	}, nil
}

// TeacherDashboardAPI returns the centre-wide counts plus the fee
// ledger rollup across all students.
func TeacherDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	counts, err := database.GetTeacherCounts(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard counts"})
	}

	fees, err := database.GetFees(db, database.FeeFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee records"})
	}

	return c.JSON(fiber.Map{
		"counts": counts,
		"fees":   reports.SummarizeFees(fees),
	})
}

func StudentDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	user := auth.CurrentUser(c)

	student, err := database.GetStudentByUser(db, user.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No student record linked to this account"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student record"})
	}

	snapshot, err := buildStudentSnapshot(db, student.ID, student.Name, student.ClassLabel)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build dashboard"})
	}

	return c.JSON(fiber.Map{"dashboard": snapshot})
}

// ParentDashboardAPI returns one snapshot per linked child.
func ParentDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	user := auth.CurrentUser(c)

	children, err := database.GetStudentsByParent(db, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch linked students"})
	}

	snapshots := make([]*studentSnapshot, 0, len(children))
	for _, child := range children {
		snapshot, err := buildStudentSnapshot(db, child.ID, child.Name, child.ClassLabel)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build dashboard"})
		}
		snapshots = append(snapshots, snapshot)
	}

	return c.JSON(fiber.Map{
		"children": snapshots,
		"count":    len(snapshots),
	})
}
