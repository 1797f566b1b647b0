package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stagemed/stagemed/internal/app/models/dto"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// the 400 response and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Identifiant invalide"))
		return 0, false
	}
	return id, true
}

// parseQueryInt64 reads an optional integer query parameter, zero when absent
func parseQueryInt64(ctx *gin.Context, name string) int64 {
	value, _ := strconv.ParseInt(ctx.Query(name), 10, 64)
	return value
}
