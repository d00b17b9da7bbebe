package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/dto"
	"staybook/internal/app/services/properties"
)

type PropertyHandler struct {
	Service *properties.Service
}

func (h PropertyHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prop, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPropertyResponse(prop))
}

func (h PropertyHandler) Get(c *gin.Context) {
	prop, err := h.Service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPropertyResponse(prop))
}

var _ PropertyHTTP = PropertyHandler{}
