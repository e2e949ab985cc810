package registration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kabaddi-academy/academy-pay/ledger"
	"github.com/kabaddi-academy/academy-pay/registration"
	"github.com/kabaddi-academy/academy-pay/registration/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakeLedger struct {
	rows []ledger.Row
	err  error
}

func (f *fakeLedger) Append(ctx context.Context, row ledger.Row) error {
	f.rows = append(f.rows, row)
	return f.err
}

func newRouter(l registration.Ledger) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := registration.NewAPI(registration.NewService(logger, registration.NewRepository(), l))
	r := chi.NewRouter()
	api.AppendRoutes(r)
	return r
}

func register(t *testing.T, r http.Handler, body string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/registration", bytes.NewBufferString(body))
	r.ServeHTTP(w, req)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestAPI(t *testing.T) {
	l := &fakeLedger{}
	router := newRouter(l)

	t.Run("register with payment", func(t *testing.T) {
		code, resp := register(t, router, `{"name":"Asha","father_name":"Ram","class":"8","contact":"9999999999","email":"a@example.com","amount":"500","payment_id":"pay_1"}`)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "success", resp["status"])
		require.Equal(t, "Registered and payment saved.", resp["message"])

		require.Len(t, l.rows, 1)
		require.Equal(t, ledger.Row{Name: "Asha", Email: "a@example.com", Phone: "9999999999", Amount: "500", PaymentID: "pay_1"}, l.rows[0])
	})

	t.Run("duplicate payment id conflicts", func(t *testing.T) {
		code, resp := register(t, router, `{"name":"Asha","contact":"9999999999","payment_id":"pay_1"}`)
		require.Equal(t, http.StatusConflict, code)
		require.Equal(t, "error", resp["status"])
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		code, _ := register(t, router, `{"contact":"9999999999"}`)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("unpaid registration skips ledger", func(t *testing.T) {
		code, _ := register(t, router, `{"name":"Ravi","contact":"8888888888"}`)
		require.Equal(t, http.StatusCreated, code)
		require.Len(t, l.rows, 1)
	})

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var students []models.Student
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
		require.Len(t, students, 2)
		require.Equal(t, 1, students[0].SNo)
		require.Equal(t, 2, students[1].SNo)
		require.NotEmpty(t, students[0].ID)
	})
}

func TestAPI_EditAndDelete(t *testing.T) {
	router := newRouter(nil)

	code, resp := register(t, router, `{"name":"Asha","contact":"9999999999"}`)
	require.Equal(t, http.StatusCreated, code)
	sno := int(resp["student"].(map[string]any)["sno"].(float64))
	path := "/students/" + strconv.Itoa(sno)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(`{"name":"Asha K","contact":"7777777777","class":"9"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Asha K", updated.Name)
	require.Equal(t, "9", updated.Class)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students/abc", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_SerialContinuesAfterDelete(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := registration.NewService(logger, registration.NewRepository(), nil)
	ctx := context.Background()

	a, err := svc.Register(ctx, models.RegisterStudent{Name: "A", Contact: "1"})
	require.NoError(t, err)
	b, err := svc.Register(ctx, models.RegisterStudent{Name: "B", Contact: "2"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteStudent(ctx, a.SNo))

	c, err := svc.Register(ctx, models.RegisterStudent{Name: "C", Contact: "3"})
	require.NoError(t, err)
	require.Equal(t, b.SNo+1, c.SNo)
}

func TestRegister_LedgerFailureKeepsStudent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := &fakeLedger{err: &ledger.RejectedError{Message: "sheet locked"}}
	svc := registration.NewService(logger, registration.NewRepository(), l)

	s, err := svc.Register(context.Background(), models.RegisterStudent{Name: "A", Contact: "1", PaymentID: "pay_9"})
	require.NoError(t, err)
	require.Equal(t, "pay_9", s.PaymentID)

	list, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}
