package registration

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kabaddi-academy/academy-pay/registration/models"
)

// API is a HTTP API for the registration service
type API struct {
	registration *Service
}

func NewAPI(registration *Service) *API {
	return &API{
		registration: registration,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/registration", a.register)
	r.Route("/students", func(r chi.Router) {
		r.Get("/", a.listStudents)
		r.Route("/{sno}", func(r chi.Router) {
			r.Get("/", a.getStudent)
			r.Put("/", a.updateStudent)
			r.Delete("/", a.deleteStudent)
		})
	})
}

type statusResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Student *models.Student `json:"student,omitempty"`
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	req := models.RegisterStudent{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: err.Error()})
		return
	}

	student, err := a.registration.Register(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFor(err), statusResponse{Status: "error", Message: err.Error()})
		return
	}

	msg := "Registered."
	if student.PaymentID != "" {
		msg = "Registered and payment saved."
	}
	writeJSON(w, http.StatusCreated, statusResponse{Status: "success", Message: msg, Student: student})
}

func (a *API) listStudents(w http.ResponseWriter, r *http.Request) {
	students, err := a.registration.ListStudents(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (a *API) getStudent(w http.ResponseWriter, r *http.Request) {
	sno, ok := snoParam(w, r)
	if !ok {
		return
	}
	student, err := a.registration.GetStudent(r.Context(), sno)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (a *API) updateStudent(w http.ResponseWriter, r *http.Request) {
	sno, ok := snoParam(w, r)
	if !ok {
		return
	}
	var body models.UpdateStudent
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	student, err := a.registration.UpdateStudent(r.Context(), sno, body)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (a *API) deleteStudent(w http.ResponseWriter, r *http.Request) {
	sno, ok := snoParam(w, r)
	if !ok {
		return
	}
	if err := a.registration.DeleteStudent(r.Context(), sno); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func snoParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	sno, err := strconv.Atoi(chi.URLParam(r, "sno"))
	if err != nil {
		http.Error(w, "sno must be a number", http.StatusBadRequest)
		return 0, false
	}
	return sno, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidStudent):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
