package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/kabaddi-academy/academy-pay/registration/models"
	"github.com/lib/pq"
)

var ErrNotFound = fmt.Errorf("not found")

var ErrConflict = fmt.Errorf("conflict")

// Repository stores the student roster in memory or in Postgres.
type Repository struct {
	Students []*models.Student

	mu       sync.RWMutex
	payments map[string]struct{}
	db       *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		Students: make([]*models.Student, 0),
		payments: make(map[string]struct{}),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateStudent assigns the next serial number and stores s.
func (r *Repository) CreateStudent(ctx context.Context, s *models.Student) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if s.PaymentID != "" {
			if _, ok := r.payments[s.PaymentID]; ok {
				return fmt.Errorf("payment id already registered: %w", ErrConflict)
			}
			r.payments[s.PaymentID] = struct{}{}
		}
		next := 1
		for _, existing := range r.Students {
			if existing.SNo >= next {
				next = existing.SNo + 1
			}
		}
		s.SNo = next
		r.Students = append(r.Students, s)
		return nil
	}
	row := r.db.QueryRowContext(ctx, `
        INSERT INTO academy.students(student_id, name, father_name, dob, class, academy_join, contact, payment_id, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,NULLIF($8,''),$9)
        RETURNING sno
    `, s.ID, s.Name, s.FatherName, s.DOB, s.Class, s.AcademyJoin, s.Contact, s.PaymentID, s.CreatedAt)
	if err := row.Scan(&s.SNo); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("payment id already registered: %w", ErrConflict)
		}
		return err
	}
	return nil
}

func (r *Repository) GetStudent(ctx context.Context, sno int) (*models.Student, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		for _, s := range r.Students {
			if s.SNo == sno {
				cp := *s
				return &cp, nil
			}
		}
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
        SELECT sno, student_id, name, father_name, dob, class, academy_join, contact, COALESCE(payment_id,''), created_at
          FROM academy.students WHERE sno=$1
    `, sno)
	s, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

// ListStudents returns the roster ordered by serial number.
func (r *Repository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		out := make([]*models.Student, 0, len(r.Students))
		for _, s := range r.Students {
			cp := *s
			out = append(out, &cp)
		}
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT sno, student_id, name, father_name, dob, class, academy_join, contact, COALESCE(payment_id,''), created_at
          FROM academy.students ORDER BY sno
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateStudent(ctx context.Context, sno int, u models.UpdateStudent) (*models.Student, error) {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		for _, s := range r.Students {
			if s.SNo == sno {
				u.Apply(s)
				cp := *s
				return &cp, nil
			}
		}
		return nil, ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
        UPDATE academy.students
           SET name=$2, father_name=$3, dob=$4, class=$5, academy_join=$6, contact=$7
         WHERE sno=$1
    `, sno, u.Name, u.FatherName, u.DOB, u.Class, u.AcademyJoin, u.Contact)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return r.GetStudent(ctx, sno)
}

func (r *Repository) DeleteStudent(ctx context.Context, sno int) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.Students {
			if s.SNo == sno {
				delete(r.payments, s.PaymentID)
				r.Students = append(r.Students[:i], r.Students[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM academy.students WHERE sno=$1`, sno)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping returns DB readiness
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(sc scanner) (*models.Student, error) {
	var s models.Student
	if err := sc.Scan(&s.SNo, &s.ID, &s.Name, &s.FatherName, &s.DOB, &s.Class, &s.AcademyJoin, &s.Contact, &s.PaymentID, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}
