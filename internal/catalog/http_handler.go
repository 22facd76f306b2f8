package catalog

import (
	"net/http"

	"kitapkesif/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
// @Summary List the unified catalog
// @Description Returns all browsable books, optionally filtered by free-text query and category
// @Tags books
// @Produce json
// @Param q query string false "Case-insensitive match on title, author, or category"
// @Param category query string false "Exact category match"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FetchCatalog(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	filtered := ApplyFilters(books, r.URL.Query().Get("q"), r.URL.Query().Get("category"))
	if filtered == nil {
		filtered = []Book{}
	}

	httpx.JSONSuccess(w, r, filtered, map[string]interface{}{
		"total": len(filtered),
	})
}

// Categories handles GET /categories
// @Summary List distinct categories
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /categories [get]
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FetchCatalog(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	categories := Categories(books)
	if categories == nil {
		categories = []string{}
	}

	httpx.JSONSuccess(w, r, categories, nil)
}
