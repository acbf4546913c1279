package handlers

import (
	"net/http"
	request "plumbing_portal/internal/adapter/http/dto/request"
	response "plumbing_portal/internal/adapter/http/dto/response"
	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/usecase"
	"plumbing_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimateQuery = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate query", http.StatusBadRequest)
)

// EstimateHandler serves price quotes and the catalog they are based on.

type EstimateHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewEstimateHandler(uc usecase.IIntakeUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GetEstimate returns the preliminary price range for a service and urgency.
//
// @Summary      Preliminary price range
// @Tags         estimates
// @Produce      json
// @Param        service_type  query  string  false  "Service name from the catalog"
// @Param        urgency       query  string  false  "Urgency label (default: Need Soon)"
// @Success      200  {object}  response.EstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /estimates [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	var q request.EstimateRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidEstimateQuery.HTTPStatus, errInvalidEstimateQuery.ToHTTPError())
		return
	}

	serviceType := q.ResolveServiceType()
	urgency := q.ResolveUrgency()

	c.JSON(http.StatusOK, response.EstimateResponse{
		ServiceType:           serviceType,
		Urgency:               string(urgency),
		PreliminaryPriceRange: h.usecase.Estimate(serviceType, urgency),
	})
}

// GetCatalog returns categories, services, urgency scale and contact windows.
//
// @Summary      Service catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *EstimateHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Catalog(), string(entities.DefaultUrgency)))
}
