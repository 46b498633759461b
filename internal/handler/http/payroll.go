package http

import (
	"net/http"

	domainpayroll "github.com/stitchlabs/workshop-backend-go/internal/domain/payroll"
	"github.com/stitchlabs/workshop-backend-go/internal/handler/http/response"
	"github.com/stitchlabs/workshop-backend-go/internal/service/payroll"
)

type PayrollHandler struct {
	payrollService *payroll.PayrollService
}

func NewPayrollHandler(payrollService *payroll.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

func (h *PayrollHandler) Summary(w http.ResponseWriter, r *http.Request) {
	req := domainpayroll.SummaryRequest{
		WorkerID:  r.FormValue("employeeId"),
		StartDate: r.FormValue("startDate"),
		EndDate:   r.FormValue("endDate"),
	}

	summaries, err := h.payrollService.Summary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{"summaries": summaries})
}
