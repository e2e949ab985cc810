package registration_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/kabaddi-academy/academy-pay/registration"
	"github.com/kabaddi-academy/academy-pay/registration/models"
	_ "github.com/lib/pq"
	"golang.org/x/exp/slog"
)

// TestPGRepository_RoundTrip exercises the Postgres roster.
// Skips unless DB_DSN is provided and REPO_BACKEND=pg.
func TestPGRepository_RoundTrip(t *testing.T) {
	if os.Getenv("REPO_BACKEND") != "pg" {
		t.Skip("REPO_BACKEND != pg; skipping DB integration test")
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set; skipping DB integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Fatalf("ping db: %v", err)
	}
	schema, err := os.ReadFile("schema.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := registration.NewService(logger, registration.NewPGRepository(db), nil)

	paymentID := "pay_it_" + t.Name()
	db.Exec(`delete from academy.students where payment_id=$1`, paymentID)

	s, err := svc.Register(ctx, models.RegisterStudent{Name: "Asha", Contact: "9999999999", PaymentID: paymentID})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if s.SNo <= 0 {
		t.Fatalf("sno not assigned: %d", s.SNo)
	}

	_, err = svc.Register(ctx, models.RegisterStudent{Name: "Asha", Contact: "9999999999", PaymentID: paymentID})
	if !errors.Is(err, registration.ErrConflict) {
		t.Fatalf("duplicate payment id: got %v want ErrConflict", err)
	}

	got, err := svc.GetStudent(ctx, s.SNo)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != s.ID || got.PaymentID != paymentID {
		t.Fatalf("got %+v want id=%s payment=%s", got, s.ID, paymentID)
	}

	if err := svc.DeleteStudent(ctx, s.SNo); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetStudent(ctx, s.SNo); !errors.Is(err, registration.ErrNotFound) {
		t.Fatalf("after delete: got %v want ErrNotFound", err)
	}
}
