package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidStudent = errors.New("invalid student")

type Student struct {
	SNo         int       `json:"sno"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FatherName  string    `json:"father_name"`
	DOB         string    `json:"dob"`
	Class       string    `json:"class"`
	AcademyJoin string    `json:"academy_join"`
	Contact     string    `json:"contact"`
	PaymentID   string    `json:"payment_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterStudent is the combined registration and payment form.
type RegisterStudent struct {
	Name        string `json:"name"`
	FatherName  string `json:"father_name"`
	DOB         string `json:"dob"`
	Class       string `json:"class"`
	AcademyJoin string `json:"academy_join"`
	Contact     string `json:"contact"`
	Email       string `json:"email,omitempty"`
	// Amount is the fee paid, in major units, forwarded to the ledger.
	Amount    string `json:"amount,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
}

func (r RegisterStudent) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidStudent)
	}
	if strings.TrimSpace(r.Contact) == "" {
		return fmt.Errorf("contact is required: %w", ErrInvalidStudent)
	}
	return nil
}

// UpdateStudent replaces the editable fields of a roster entry.
type UpdateStudent struct {
	Name        string `json:"name"`
	FatherName  string `json:"father_name"`
	DOB         string `json:"dob"`
	Class       string `json:"class"`
	AcademyJoin string `json:"academy_join"`
	Contact     string `json:"contact"`
}

func (u UpdateStudent) Apply(s *Student) {
	s.Name = u.Name
	s.FatherName = u.FatherName
	s.DOB = u.DOB
	s.Class = u.Class
	s.AcademyJoin = u.AcademyJoin
	s.Contact = u.Contact
}
