package presenters

import (
	"errors"

	"Hom-Nay-An-Gi/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// ErrorHandler renders errors that escape handlers, such as unknown routes,
// in the same envelope as ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return ErrorResponse(c, fe.Code, domain.MessageRouteNotFound, domain.ErrRouteNotFound)
		}
		return ErrorResponse(c, fe.Code, fe.Message, err)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
}
