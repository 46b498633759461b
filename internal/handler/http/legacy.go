package http

import (
	"net/http"

	"github.com/stitchlabs/workshop-backend-go/internal/handler/http/response"
)

// LegacyHandler serves the spreadsheet-era entry point: one URL, the operation
// named by an `action` form or query field, flat fields in. Existing callers
// keep working without knowing the backend moved.
type LegacyHandler struct {
	auth       *AuthHandler
	worker     *WorkerHandler
	attendance *AttendanceHandler
	payment    *PaymentHandler
	payroll    *PayrollHandler
	inventory  *InventoryHandler
}

func NewLegacyHandler(
	auth *AuthHandler,
	worker *WorkerHandler,
	attendance *AttendanceHandler,
	payment *PaymentHandler,
	payroll *PayrollHandler,
	inventory *InventoryHandler,
) *LegacyHandler {
	return &LegacyHandler{
		auth:       auth,
		worker:     worker,
		attendance: attendance,
		payment:    payment,
		payroll:    payroll,
		inventory:  inventory,
	}
}

func (h *LegacyHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	switch r.FormValue("action") {
	case "login":
		h.auth.Login(w, r)

	case "getEmployees":
		h.worker.List(w, r)
	case "addEmployee":
		h.worker.Create(w, r)
	case "updateEmployee":
		h.worker.UpdateRate(w, r)
	case "deleteEmployee":
		h.worker.Delete(w, r)

	case "getAttendance":
		h.attendance.List(w, r)
	case "markAttendance":
		h.attendance.Mark(w, r)

	case "getPayments":
		h.payment.List(w, r)
	case "savePayment":
		h.payment.Save(w, r)

	case "getPayrollSummary":
		h.payroll.Summary(w, r)

	case "getInventory":
		h.inventory.StockLevels(w, r)
	case "addStock":
		h.inventory.AddStock(w, r)
	case "useStock":
		h.inventory.UseStock(w, r)

	case "getColors":
		h.inventory.ListColors(w, r)
	case "addColor":
		h.inventory.AddColor(w, r)
	case "deleteColor":
		h.inventory.DeleteColor(w, r)

	default:
		response.BadRequest(w, "Unknown action")
	}
}
