package http

import (
	"net/http"

	domainattendance "github.com/stitchlabs/workshop-backend-go/internal/domain/attendance"
	"github.com/stitchlabs/workshop-backend-go/internal/handler/http/response"
	"github.com/stitchlabs/workshop-backend-go/internal/service/attendance"
)

type AttendanceHandler struct {
	attendanceService *attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService *attendance.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	req := domainattendance.ListRequest{
		StartDate: r.FormValue("startDate"),
		EndDate:   r.FormValue("endDate"),
	}

	days, err := h.attendanceService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Fields{"attendance": days})
}

func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	req := domainattendance.MarkRequest{
		Date:       r.FormValue("date"),
		Attendance: r.FormValue("attendance"),
	}

	if err := h.attendanceService.Mark(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
