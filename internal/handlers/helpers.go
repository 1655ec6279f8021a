package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/middleware"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func parseUintQuery(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func parseIntQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// actor extrai userID e requestID já colocados no contexto pelos middlewares.
func actor(c *gin.Context) (uint, string) {
	userID, _ := c.MustGet(middleware.ContextUserID).(uint)
	requestID := c.GetString(middleware.ContextRequestID)
	return userID, requestID
}
