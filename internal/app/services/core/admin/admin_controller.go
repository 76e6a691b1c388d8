package admin

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	Log            *zap.Logger
	AdminUsecase   contracts.AdminUsecase
	Clock          contracts.Clock
	InternalConfig *config.InternalConfig
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase, clock contracts.Clock, internalConfig *config.InternalConfig) *AdminController {
	return &AdminController{
		Log:            logger,
		AdminUsecase:   adminUsecase,
		Clock:          clock,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AdminController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *AdminController) DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AdminUsecase.DashboardStats(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardStatsSuccess, result)
}

func (ctrl *AdminController) FindDoctors(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r, constvars.PaginationDefaultLimit)
	query := &requests.AdminDoctorListQuery{
		IsVerified:     utils.ParseBoolQuery(r, "isVerified"),
		IsActive:       utils.ParseBoolQuery(r, "isActive"),
		Specialization: r.URL.Query().Get("specialization"),
		Page:           page,
		Limit:          limit,
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, pagination, err := ctrl.AdminUsecase.FindDoctors(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.DoctorListSuccess, pagination, result)
}

func (ctrl *AdminController) FindDoctorByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AdminUsecase.FindDoctorByID(ctx, chi.URLParam(r, "doctorID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorGetSuccess, result)
}

func (ctrl *AdminController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request.UserData); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	if err := utils.ValidateStruct(&request.DoctorProfile); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AdminUsecase.CreateDoctor(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorCreatedSuccess, result)
}

func (ctrl *AdminController) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateDoctorProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AdminUsecase.UpdateDoctor(ctx, chi.URLParam(r, "doctorID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorUpdatedSuccess, result)
}

func (ctrl *AdminController) VerifyDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AdminUsecase.VerifyDoctor(ctx, chi.URLParam(r, "doctorID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorVerifiedSuccess, result)
}

func (ctrl *AdminController) FindPatients(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r, constvars.PaginationDefaultLimit)
	query := &requests.AdminPatientListQuery{
		IsActive: utils.ParseBoolQuery(r, "isActive"),
		Page:     page,
		Limit:    limit,
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, pagination, err := ctrl.AdminUsecase.FindPatients(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PatientListSuccess, pagination, result)
}

func (ctrl *AdminController) FindAppointments(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r, constvars.PaginationDefaultLimit)
	query := &requests.AdminAppointmentListQuery{
		Status:    r.URL.Query().Get("status"),
		DoctorID:  r.URL.Query().Get("doctorId"),
		PatientID: r.URL.Query().Get("patientId"),
		Page:      page,
		Limit:     limit,
	}

	var err error
	if query.From, err = utils.ParseDateQuery(r, "from", ctrl.Clock.Location()); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}
	if query.To, err = utils.ParseDateQuery(r, "to", ctrl.Clock.Location()); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, pagination, err := ctrl.AdminUsecase.FindAppointments(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.AppointmentListSuccess, pagination, result)
}
