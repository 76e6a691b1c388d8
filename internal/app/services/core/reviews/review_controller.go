package reviews

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

type ReviewController struct {
	Log            *zap.Logger
	ReviewUsecase  contracts.ReviewUsecase
	InternalConfig *config.InternalConfig
}

func NewReviewController(logger *zap.Logger, reviewUsecase contracts.ReviewUsecase, internalConfig *config.InternalConfig) *ReviewController {
	return &ReviewController{
		Log:            logger,
		ReviewUsecase:  reviewUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ReviewController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateReview)
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

	result, err := ctrl.ReviewUsecase.Create(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReviewCreatedSuccess, result)
}

// FindForDoctor serves the public review listing for one doctor.
func (ctrl *ReviewController) FindForDoctor(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.ParsePagination(r, constvars.PaginationDefaultLimit)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, pagination, err := ctrl.ReviewUsecase.FindForDoctor(ctx, chi.URLParam(r, "doctorID"), page, limit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ReviewListSuccess, pagination, result)
}
