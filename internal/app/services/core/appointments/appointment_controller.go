package appointments

import (
	"context"
	"errors"
	"io"
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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	Clock              contracts.Clock
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(
	logger *zap.Logger,
	appointmentUsecase contracts.AppointmentUsecase,
	clock contracts.Clock,
	internalConfig *config.InternalConfig,
) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		Clock:              clock,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateAppointment)
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

	result, err := ctrl.AppointmentUsecase.Create(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentRequestedSuccess, result)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := &requests.AppointmentListQuery{
		Status: r.URL.Query().Get("status"),
	}
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

	result, err := ctrl.AppointmentUsecase.FindAll(ctx, session, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, result)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindByID(ctx, session, chi.URLParam(r, "appointmentID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentGetSuccess, result)
}

func (ctrl *AppointmentController) Approve(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Approve(ctx, session, chi.URLParam(r, "appointmentID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentApprovedSuccess, result)
}

func (ctrl *AppointmentController) Reject(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.RejectAppointment)
	if err := decodeOptionalBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Reject(ctx, session, chi.URLParam(r, "appointmentID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentRejectedSuccess, result)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CancelAppointment)
	if err := decodeOptionalBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Cancel(ctx, session, chi.URLParam(r, "appointmentID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, result)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CompleteAppointment)
	if err := decodeOptionalBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Complete(ctx, session, chi.URLParam(r, "appointmentID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCompletedSuccess, result)
}

// decodeOptionalBody tolerates an empty request body for transitions whose
// payload is entirely optional.
func decodeOptionalBody(r *http.Request, target interface{}) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
