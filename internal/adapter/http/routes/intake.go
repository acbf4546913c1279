package routes

import (
	"plumbing_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog         = "/catalog"
	PathEstimates       = "/estimates"
	PathServiceRequests = "/service-requests"
	PathContactMessages = "/contact-messages"
)

func addIntakeRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, requestHandler *handlers.ServiceRequestHandler, contactHandler *handlers.ContactHandler) {
	rg.GET(PathCatalog, estimateHandler.GetCatalog)
	rg.GET(PathEstimates, estimateHandler.GetEstimate)

	rg.POST(PathServiceRequests, requestHandler.CreateServiceRequest)

	rg.POST(PathContactMessages, contactHandler.CreateContactMessage)
}
