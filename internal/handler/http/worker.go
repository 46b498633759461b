package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domainworker "github.com/stitchlabs/workshop-backend-go/internal/domain/worker"
	"github.com/stitchlabs/workshop-backend-go/internal/handler/http/response"
	"github.com/stitchlabs/workshop-backend-go/internal/service/worker"
)

type WorkerHandler struct {
	workerService *worker.WorkerService
}

func NewWorkerHandler(workerService *worker.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{"employees": workers})
}

func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := domainworker.CreateRequest{
		Name:          r.FormValue("name"),
		Position:      r.FormValue("position"),
		SalaryPerDay:  r.FormValue("salaryPerDay"),
		DateOfJoining: r.FormValue("dateOfJoining"),
		Photo:         r.FormValue("photo"),
	}

	created, err := h.workerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{"employee": created})
}

func (h *WorkerHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	req := domainworker.UpdateRateRequest{
		ID:           pathOrFormValue(r, "id"),
		SalaryPerDay: r.FormValue("salaryPerDay"),
	}

	if err := h.workerService.UpdateRate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathOrFormValue(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required")
		return
	}

	if err := h.workerService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// pathOrFormValue prefers a chi route parameter and falls back to the flat
// form/query field the legacy dispatcher sends.
func pathOrFormValue(r *http.Request, key string) string {
	if v := chi.URLParam(r, key); v != "" {
		return v
	}
	return r.FormValue(key)
}
