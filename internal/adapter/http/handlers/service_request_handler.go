package handlers

import (
	"errors"
	"net/http"
	request "plumbing_portal/internal/adapter/http/dto/request"
	response "plumbing_portal/internal/adapter/http/dto/response"
	"plumbing_portal/internal/usecase"
	"plumbing_portal/internal/usecase/interfaces"
	"plumbing_portal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const invalidSelectionMessage = "Please choose a service category, service, urgency and contact time from the lists provided."

var (
	errInvalidServiceRequestPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_REQUEST_INPUT", "Invalid service request payload", http.StatusBadRequest)
)

// ServiceRequestHandler handles the JSON intake API.

type ServiceRequestHandler struct {
	usecase usecase.IIntakeUseCase
	logger  *zap.Logger
}

func NewServiceRequestHandler(uc usecase.IIntakeUseCase, logger *zap.Logger) *ServiceRequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceRequestHandler{usecase: uc, logger: logger}
}

// CreateServiceRequest validates, prices and stores a service request.
//
// @Summary      Submit a service request
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ServiceRequestPayload  true  "Service request"
// @Success      201      {object}  response.ServiceRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /service-requests [post]
func (h *ServiceRequestHandler) CreateServiceRequest(c *gin.Context) {
	var payload request.ServiceRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceRequestPayload.HTTPStatus, errInvalidServiceRequestPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity(), payload.AgreeTerms)
	if err != nil {
		appErr := mapIntakeError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[intake][handler] submit failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(saved))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", usecase.MissingFieldsMessage, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCategory), errors.Is(err, usecase.ErrUnknownServiceType),
		errors.Is(err, usecase.ErrInvalidUrgency), errors.Is(err, usecase.ErrInvalidContactPreference):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_SELECTION", invalidSelectionMessage, http.StatusBadRequest)
	case errors.Is(err, request.ErrUnsupportedPhotoType), errors.Is(err, request.ErrPhotoTooLarge):
		return pkg.NewDomainErrorSimple("INVALID_PHOTO", "Please upload a png, jpg or jpeg photo within the size limit.", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrStoreCorrupt):
		return pkg.NewDomainError("STORE_CORRUPT", "Service requests are temporarily unavailable", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
