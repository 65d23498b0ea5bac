package http

import (
	"errors"
	"net/http"

	"mindcare-api/internal/analysis"
	pkgErrors "mindcare-api/pkg/errors"
)

var (
	errEmptyText        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Text cannot be empty")
	errInferenceFailed  = pkgErrors.NewHTTPError(http.StatusBadGateway, "Model inference failed")
	errModelUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Model not available")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrEmptyText):
		return errEmptyText
	case errors.Is(err, analysis.ErrTextTooLong), errors.Is(err, analysis.ErrBatchTooLarge):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, analysis.ErrModelUnavailable):
		return errModelUnavailable
	case errors.Is(err, analysis.ErrInferenceFailed):
		return errInferenceFailed
	default:
		return pkgErrors.ErrInternalServerError
	}
}
