package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/dto"
	"staybook/internal/app/services/users"
)

type UserHandler struct {
	Service *users.Service
}

func (h UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guest, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(guest))
}

func (h UserHandler) Get(c *gin.Context) {
	guest, err := h.Service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(guest))
}

var _ UserHTTP = UserHandler{}
