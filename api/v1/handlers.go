package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jewelfoundation/admin-api/services"
	"gorm.io/gorm"
)

// queryID reads an optional numeric id from the query string. The second
// return value reports whether the parameter was present at all; a present
// but unparsable id responds 400 and returns ok=false with responded=true.
func queryID(c *gin.Context, name string) (id uint, present bool, responded bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, false
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, true, true
	}
	return uint(parsed), true, false
}

// respondServiceError maps service failures onto the error contract:
// validation problems are client errors, everything else is a 500 with no
// internal detail leaked.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

// respondUpdateOutcome maps a tagged update outcome for one entity name.
func respondUpdateOutcome(c *gin.Context, outcome services.UpdateOutcome, entity string) {
	switch outcome {
	case services.UpdateNoFields:
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
	case services.UpdateNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":      entity + " updated",
			"affectedRows": outcome.AffectedRows(),
		})
	}
}

// respondDeleteOutcome maps a tagged delete outcome for one entity name.
// blockedMsg is only used for DeleteBlocked.
func respondDeleteOutcome(c *gin.Context, outcome services.DeleteOutcome, entity, blockedMsg string) {
	switch outcome {
	case services.DeleteBlocked:
		c.JSON(http.StatusBadRequest, gin.H{"error": blockedMsg})
	case services.DeleteNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":      entity + " deleted",
			"affectedRows": int64(1),
		})
	}
}

// isNotFound reports whether err is the record-not-found signal from gorm.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
