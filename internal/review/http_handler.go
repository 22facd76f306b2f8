package review

import (
	"encoding/json"
	"net/http"

	"kitapkesif/internal/apperr"
	"kitapkesif/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type addReviewReq struct {
	UserName   string `json:"user_name" validate:"required,max=100"`
	UserAvatar string `json:"user_avatar" validate:"omitempty,url"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,max=2000"`
}

// ListByBook handles GET /books/{id}/reviews
// @Summary List reviews for a book
// @Description Returns all reviews, newest first; empty list when the store is unconfigured
// @Tags reviews
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books/{id}/reviews [get]
func (h *HTTPHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book ID", nil)
		return
	}

	reviews, err := h.service.FetchReviews(r.Context(), bookID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, reviews, map[string]interface{}{
		"total": len(reviews),
	})
}

// Create handles POST /books/{id}/reviews
// @Summary Add a review
// @Description Inserts the review and recomputes the book's aggregate rating before returning
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param request body addReviewReq true "Review"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /books/{id}/reviews [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book ID", nil)
		return
	}

	var req addReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	inserted, err := h.service.AddReview(r.Context(), NewReview{
		BookID:     bookID,
		UserName:   req.UserName,
		UserAvatar: req.UserAvatar,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindConnectivity:
			httpx.JSONError(w, r, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Reviews require a configured data store", nil)
		case apperr.KindNotFound:
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case apperr.KindAggregation:
			// The review row persisted; only the aggregate refresh failed.
			httpx.JSONError(w, r, http.StatusInternalServerError, "AGGREGATION_FAILED", "Review saved but rating update failed", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(w, r, inserted)
}
