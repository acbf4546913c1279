package handlers

import (
	"net/http"
	request "plumbing_portal/internal/adapter/http/dto/request"
	response "plumbing_portal/internal/adapter/http/dto/response"
	"plumbing_portal/internal/usecase"
	"plumbing_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact message payload", http.StatusBadRequest)
)

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// CreateContactMessage acknowledges a contact message. Nothing is stored.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ContactMessageRequest  true  "Message"
// @Success      202      {object}  response.ContactConfirmationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /contact-messages [post]
func (h *ContactHandler) CreateContactMessage(c *gin.Context) {
	var payload request.ContactMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	conf, err := h.usecase.SendMessage(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.FromContactConfirmation(conf))
}
