package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/dto"
	"staybook/internal/app/services/bookings"
)

type BookingHandler struct {
	Service *bookings.Service

	// Now is overridable so tests can cancel at a fixed date.
	Now func() time.Time
}

func (h BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewBookingResponse(b))
}

func (h BookingHandler) Get(c *gin.Context) {
	b, err := h.Service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBookingResponse(b))
}

func (h BookingHandler) Cancel(c *gin.Context) {
	now := time.Now().UTC()
	if h.Now != nil {
		now = h.Now()
	}
	b, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBookingResponse(b))
}

var _ BookingHTTP = BookingHandler{}
