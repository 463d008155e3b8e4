package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskhive/taskhive/domain/model"
)

// parseID extracts a path parameter and coerces it to an int64 identifier.
// Coercion happens once here, at the controller boundary; malformed input
// fails fast instead of reaching the persistence layer.
func parseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", model.ErrMalformedID, raw)
	}
	return id, nil
}
