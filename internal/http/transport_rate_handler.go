package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/bizops-dashboard/internal/validation"
)

func (h *Handler) listTransportRates(c *gin.Context) {
	rates, err := h.svc.TransportRates.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

// upsertTransportRate answers 201 for a new destination and 200 for an update.
func (h *Handler) upsertTransportRate(c *gin.Context) {
	var req validation.TransportRateInput
	if !h.bindJSON(c, &req) {
		return
	}
	rate, created, err := h.svc.TransportRates.Upsert(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, rate)
}
