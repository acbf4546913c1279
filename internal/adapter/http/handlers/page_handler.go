package handlers

import (
	"errors"
	"net/http"
	request "plumbing_portal/internal/adapter/http/dto/request"
	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const formReadErrorMessage = "The submitted form could not be read. Please try again."

// multipartOverhead is added to the photo limit to leave room for the text fields.
const multipartOverhead = 1 << 20

// formValues echoes the customer's input back into the form after a rejected submission.
type formValues struct {
	FullName          string
	Email             string
	Phone             string
	Address           string
	Category          string
	Type              string
	Urgency           string
	Description       string
	ContactPreference string
}

// PageHandler renders the customer-facing HTML pages.
type PageHandler struct {
	intake        usecase.IIntakeUseCase
	contact       usecase.IContactUseCase
	maxPhotoBytes int64
	logger        *zap.Logger
}

func NewPageHandler(intake usecase.IIntakeUseCase, contact usecase.IContactUseCase, maxPhotoBytes int64, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{intake: intake, contact: contact, maxPhotoBytes: maxPhotoBytes, logger: logger}
}

func (h *PageHandler) view(extra gin.H) gin.H {
	cat := h.intake.Catalog()
	v := gin.H{
		"Profile":            cat.Profile(),
		"Categories":         cat.Categories(),
		"Urgencies":          cat.Urgencies(),
		"ContactPreferences": cat.ContactPreferences(),
	}
	for k, val := range extra {
		v[k] = val
	}
	return v
}

// formView adds the form values and the services of the selected category.
// An unknown category falls back to the first one, and the type defaults to the
// category's first service.
func (h *PageHandler) formView(values formValues, extra gin.H) gin.H {
	cat := h.intake.Catalog()
	categories := cat.Categories()

	category := entities.Category(values.Category)
	if !cat.HasCategory(category) && len(categories) > 0 {
		category = categories[0].Category
		values.Category = string(category)
	}
	services := cat.Services(category)
	if !cat.Contains(category, values.Type) && len(services) > 0 {
		values.Type = services[0]
	}

	byCategory := make(map[string][]string, len(categories))
	for _, ci := range categories {
		byCategory[string(ci.Category)] = ci.Services
	}

	v := h.view(extra)
	v["Values"] = values
	v["Services"] = services
	v["ServicesByCategory"] = byCategory
	return v
}

// ShowRequestForm renders the empty request form. ?category= preselects a category.
func (h *PageHandler) ShowRequestForm(c *gin.Context) {
	values := formValues{
		Category:          c.Query("category"),
		Urgency:           string(entities.DefaultUrgency),
		ContactPreference: string(entities.ContactAnytime),
	}
	c.HTML(http.StatusOK, "form.tmpl", h.formView(values, nil))
}

// SubmitRequestForm handles the form post: on success it shows the request id and
// price range, otherwise it re-renders the form with an inline message.
func (h *PageHandler) SubmitRequestForm(c *gin.Context) {
	if h.maxPhotoBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPhotoBytes+multipartOverhead)
	}

	var form request.ServiceRequestForm
	if err := c.ShouldBind(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderFormError(c, form, request.ErrPhotoTooLarge)
			return
		}
		h.logger.Info("[intake][page] form bind failed", zap.Error(err))
		c.HTML(http.StatusBadRequest, "form.tmpl", h.formView(valuesFromForm(form), gin.H{"Error": formReadErrorMessage}))
		return
	}

	photoUploaded, err := form.PhotoUploaded(h.maxPhotoBytes)
	if err != nil {
		h.renderFormError(c, form, err)
		return
	}

	saved, err := h.intake.Submit(c.Request.Context(), form.ToEntity(photoUploaded), form.TermsAccepted())
	if err != nil {
		h.renderFormError(c, form, err)
		return
	}

	c.HTML(http.StatusOK, "success.tmpl", h.view(gin.H{"Request": saved}))
}

func (h *PageHandler) renderFormError(c *gin.Context, form request.ServiceRequestForm, err error) {
	appErr := mapIntakeError(err)
	message := appErr.Message
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[intake][page] submit failed", zap.Error(err))
		message = "Sorry, we could not save your request. Please call us at " + h.intake.Catalog().Profile().EmergencyPhone + "."
	}
	c.HTML(appErr.HTTPStatus, "form.tmpl", h.formView(valuesFromForm(form), gin.H{"Error": message}))
}

// ShowServices renders the service info page.
func (h *PageHandler) ShowServices(c *gin.Context) {
	c.HTML(http.StatusOK, "services.tmpl", h.view(nil))
}

// ShowContact renders the contact page.
func (h *PageHandler) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", h.view(nil))
}

// SubmitContact confirms a contact message. Nothing is stored.
func (h *PageHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactMessageRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.HTML(http.StatusBadRequest, "contact.tmpl", h.view(nil))
		return
	}

	conf, err := h.contact.SendMessage(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.logger.Error("[contact][page] send failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "contact.tmpl", h.view(nil))
		return
	}
	c.HTML(http.StatusOK, "contact.tmpl", h.view(gin.H{"Confirmation": conf.Text}))
}

func valuesFromForm(f request.ServiceRequestForm) formValues {
	return formValues{
		FullName:          f.FullName,
		Email:             f.Email,
		Phone:             f.Phone,
		Address:           f.Address,
		Category:          f.Category,
		Type:              f.Type,
		Urgency:           f.Urgency,
		Description:       f.Description,
		ContactPreference: f.ContactPreference,
	}
}
