package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ledger/models"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFailure maps a typed engine error to its HTTP status and writes the
// standard error envelope.
func JSONFailure(c *gin.Context, err error) {
	JSONError(c, StatusForError(err), err.Error())
}

// StatusForError translates the engine error taxonomy into HTTP statuses.
// Anything untyped is a server-side failure.
func StatusForError(err error) int {
	kind, ok := models.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindNoAvailability, models.KindDuplicateKey:
		return http.StatusConflict
	case models.KindInvalidDateRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
