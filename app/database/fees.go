package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/SaifulSk/tuition-plus-connect/app/models"
)

const feeColumns = `id, student_id, month, amount_due, amount_paid, status, payment_date, payment_method, created_at, updated_at`

func scanFee(row interface {
	Scan(dest ...interface{}) error
}) (*models.FeeRecord, error) {
	f := &models.FeeRecord{}
	err := row.Scan(&f.ID, &f.StudentID, &f.Month, &f.AmountDue, &f.AmountPaid,
		&f.Status, &f.PaymentDate, &f.PaymentMethod, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// FeeFilters narrows a fee fetch. Zero values mean "no filter".
type FeeFilters struct {
	StudentID string
	Month     string
	Status    string
}

func GetFees(db *sql.DB, f FeeFilters) ([]models.FeeRecord, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE 1=1`
	var args []interface{}

	if f.StudentID != "" {
		args = append(args, f.StudentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if f.Month != "" {
		args = append(args, f.Month)
		query += fmt.Sprintf(" AND month = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fees: %v", err)
	}
	defer rows.Close()

	var fees []models.FeeRecord
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, *f)
	}
	return fees, rows.Err()
}

func GetFeeByID(db *sql.DB, id string) (*models.FeeRecord, error) {
	return scanFee(db.QueryRow(`SELECT `+feeColumns+` FROM fees WHERE id = $1`, id))
}

func CreateFee(db *sql.DB, f *models.FeeRecord) error {
	query := `INSERT INTO fees (student_id, month, amount_due, amount_paid, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, f.StudentID, f.Month, f.AmountDue, f.AmountPaid, f.Status).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fee: %v", err)
	}
	return nil
}

func UpdateFee(db *sql.DB, f *models.FeeRecord) error {
	query := `UPDATE fees
			  SET month = $1, amount_due = $2, amount_paid = $3, status = $4,
				  payment_date = $5, payment_method = $6, updated_at = now()
			  WHERE id = $7`
	res, err := db.Exec(query, f.Month, f.AmountDue, f.AmountPaid, f.Status,
		f.PaymentDate, f.PaymentMethod, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update fee: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkFeePaid applies the paid transition in one statement: the full
// amount settles, the payment date is stamped and the method recorded.
func MarkFeePaid(db *sql.DB, feeID, method string, at time.Time) (*models.FeeRecord, error) {
	query := `UPDATE fees
			  SET amount_paid = amount_due, status = 'paid',
				  payment_date = $1, payment_method = $2, updated_at = now()
			  WHERE id = $3 AND status <> 'paid'
			  RETURNING ` + feeColumns
	f, err := scanFee(db.QueryRow(query, at, method, feeID))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// MarkOverdueFees flips pending fees older than the cutoff to overdue.
// Runs from the nightly sweep.
func MarkOverdueFees(db *sql.DB, olderThan time.Time) (int64, error) {
	res, err := db.Exec(`UPDATE fees SET status = 'overdue', updated_at = now()
						 WHERE status = 'pending' AND created_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue fees: %v", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		log.Printf("Marked %d fees overdue", n)
	}
	return n, nil
}
