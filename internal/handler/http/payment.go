package http

import (
	"net/http"

	domainpayment "github.com/stitchlabs/workshop-backend-go/internal/domain/payment"
	"github.com/stitchlabs/workshop-backend-go/internal/handler/http/response"
	"github.com/stitchlabs/workshop-backend-go/internal/service/payment"
)

type PaymentHandler struct {
	paymentService *payment.PaymentService
}

func NewPaymentHandler(paymentService *payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	req := domainpayment.ListRequest{
		WorkerID:  r.FormValue("employeeId"),
		StartDate: r.FormValue("startDate"),
		EndDate:   r.FormValue("endDate"),
	}

	records, err := h.paymentService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{"payments": records})
}

func (h *PaymentHandler) Save(w http.ResponseWriter, r *http.Request) {
	req := domainpayment.SaveRequest{
		WorkerID:  r.FormValue("employeeId"),
		Amount:    r.FormValue("amount"),
		Note:      r.FormValue("note"),
		StartDate: r.FormValue("startDate"),
		EndDate:   r.FormValue("endDate"),
	}

	saved, err := h.paymentService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{
		"recorded":  saved.Recorded,
		"timestamp": saved.Timestamp,
	})
}
