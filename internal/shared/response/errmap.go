package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/validation"
)

// MapCommonError translates the cross-cutting error kinds (permission
// predicates, validators, ozzo field errors) to their HTTP responses. It
// returns false when the error is domain-specific and the handler must map it
// itself.
func MapCommonError(c *gin.Context, err error) bool {
	var fieldErrs ozzo.Errors
	if errors.As(err, &fieldErrs) {
		ErrorWithDetails(c, 400, "VALIDATION_ERROR", "invalid input", fieldErrs)
		return true
	}

	switch {
	case errors.Is(err, permission.ErrUnauthenticated):
		Unauthorized(c, err.Error())
	case errors.Is(err, permission.ErrForbidden):
		Forbidden(c, err.Error())
	case errors.Is(err, validation.ErrFileTooLarge):
		PayloadTooLarge(c, err.Error())
	case errors.Is(err, validation.ErrInvalidFile),
		errors.Is(err, validation.ErrOutOfBounds),
		errors.Is(err, validation.ErrInvalidFormat):
		UnprocessableEntity(c, err.Error())
	default:
		return false
	}
	return true
}
