package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kabaddi-academy/academy-pay/ledger"
	"github.com/kabaddi-academy/academy-pay/registration/models"
	"golang.org/x/exp/slog"
)

// Ledger receives a row for every paid registration.
type Ledger interface {
	Append(ctx context.Context, row ledger.Row) error
}

type Service struct {
	repo   *Repository
	ledger Ledger
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the roster service. l may be nil when no spreadsheet is
// configured.
func NewService(logger *slog.Logger, repo *Repository, l Ledger) *Service {
	return &Service{
		repo:   repo,
		ledger: l,
		logger: logger.With(slog.String("component", "registration")),
		now:    time.Now,
	}
}

// Register stores a new student. A ledger failure is logged but does not undo
// the registration: the roster is the record of truth.
func (s *Service) Register(ctx context.Context, req models.RegisterStudent) (*models.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:          uuid.New().String(),
		Name:        req.Name,
		FatherName:  req.FatherName,
		DOB:         req.DOB,
		Class:       req.Class,
		AcademyJoin: req.AcademyJoin,
		Contact:     req.Contact,
		PaymentID:   req.PaymentID,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.CreateStudent(ctx, student); err != nil {
		return nil, fmt.Errorf("creating student: %w", err)
	}

	if s.ledger != nil && req.PaymentID != "" {
		row := ledger.Row{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Contact,
			Amount:    req.Amount,
			PaymentID: req.PaymentID,
		}
		if err := s.ledger.Append(ctx, row); err != nil {
			s.logger.Error("ledger append failed", slog.Int("sno", student.SNo), slog.String("payment_id", req.PaymentID), "err", err)
		}
	}

	return student, nil
}

func (s *Service) GetStudent(ctx context.Context, sno int) (*models.Student, error) {
	student, err := s.repo.GetStudent(ctx, sno)
	if err != nil {
		return nil, fmt.Errorf("finding student %d: %w", sno, err)
	}
	return student, nil
}

func (s *Service) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	return students, nil
}

func (s *Service) UpdateStudent(ctx context.Context, sno int, u models.UpdateStudent) (*models.Student, error) {
	if err := (models.RegisterStudent{Name: u.Name, Contact: u.Contact}).Validate(); err != nil {
		return nil, err
	}
	student, err := s.repo.UpdateStudent(ctx, sno, u)
	if err != nil {
		return nil, fmt.Errorf("updating student %d: %w", sno, err)
	}
	return student, nil
}

func (s *Service) DeleteStudent(ctx context.Context, sno int) error {
	if err := s.repo.DeleteStudent(ctx, sno); err != nil {
		return fmt.Errorf("deleting student %d: %w", sno, err)
	}
	return nil
}
