package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/auth"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/inventory"
	"github.com/stitchlabs/workshop-backend-go/internal/domain/worker"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/locker"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, inventory.ErrColorNotFound):
		NotFound(w, "Color not found")

	// Lock contention is retryable; the frontend resubmits.
	case errors.Is(err, locker.ErrTimeout):
		ServiceUnavailable(w, "Another write is in progress, please retry")
	case errors.Is(err, context.Canceled):
		ServiceUnavailable(w, "Request cancelled")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
