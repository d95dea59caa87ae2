package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	Round(w http.ResponseWriter, r *http.Request)
	CalcDaily(w http.ResponseWriter, r *http.Request)
	CalcMonthly(w http.ResponseWriter, r *http.Request)
	CalcMonthlyForEmployee(w http.ResponseWriter, r *http.Request)
	FormatTime(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

func (h *overtimeHandlerImpl) Round(w http.ResponseWriter, r *http.Request) {
	var req overtime.RoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.overtimeService.RoundToQuarter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *overtimeHandlerImpl) CalcDaily(w http.ResponseWriter, r *http.Request) {
	var req overtime.DailySummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.overtimeService.CalcDaily(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *overtimeHandlerImpl) CalcMonthly(w http.ResponseWriter, r *http.Request) {
	var req overtime.MonthlyOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.overtimeService.CalcMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *overtimeHandlerImpl) CalcMonthlyForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if validator.IsEmpty(employeeID) {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := overtime.EmployeeMonthlyRequest{
		EmployeeID: employeeID,
		YearMonth:  query.Get("year_month"),
	}

	details := make(map[string]string)
	workingDays, err := strconv.Atoi(query.Get("working_days"))
	if err != nil {
		details["working_days"] = "working_days must be an integer"
	}
	actualDays, err := strconv.Atoi(query.Get("actual_working_days"))
	if err != nil {
		details["actual_working_days"] = "actual_working_days must be an integer"
	}
	if len(details) > 0 {
		response.BadRequest(w, "Invalid query parameters", details)
		return
	}
	req.WorkingDaysInMonth = workingDays
	req.ActualWorkingDays = actualDays

	if wage := query.Get("hourly_wage"); wage != "" {
		req.HourlyWage = &wage
	}

	result, err := h.overtimeService.CalcMonthlyForEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *overtimeHandlerImpl) FormatTime(w http.ResponseWriter, r *http.Request) {
	result, err := h.overtimeService.FormatTime(r.Context(), r.URL.Query().Get("minutes"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
