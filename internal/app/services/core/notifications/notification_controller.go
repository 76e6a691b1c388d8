package notifications

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
	InternalConfig      *config.InternalConfig
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase, internalConfig *config.InternalConfig) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *NotificationController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *NotificationController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	page, limit := utils.ParsePagination(r, constvars.NotificationPageLimit)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, pagination, err := ctrl.NotificationUsecase.FindAll(ctx, session, page, limit)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.NotificationListSuccess, pagination, result)
}

func (ctrl *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	notificationID := chi.URLParam(r, "notificationID")

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	if err := ctrl.NotificationUsecase.MarkRead(ctx, session, notificationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationReadSuccess, nil)
}

func (ctrl *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	if err := ctrl.NotificationUsecase.MarkAllRead(ctx, session); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationReadAllSuccess, nil)
}
