package controllers

import (
	"strconv"
	"time"

	"backend/apperrors"

	"github.com/gin-gonic/gin"
)

// fail writes the error envelope the mobile client parses: a non-2xx
// status plus {"message": ...}.
func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"message": err.Error()})
}

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
