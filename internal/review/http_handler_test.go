package review

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kitapkesif/internal/config"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newReviewRequest(method, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, "/books/b1/reviews", nil)
	} else {
		r = httptest.NewRequest(method, "/books/b1/reviews", strings.NewReader(body))
	}
	r.SetPathValue("id", "b1")
	return r
}

func TestHTTPHandler_ListByBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)

	mockRepo.EXPECT().ListByBook(gomock.Any(), "b1").Return([]Review{
		{ID: "r1", BookID: "b1", UserName: "Mehmet", Rating: 4, Comment: "Güzel"},
	}, nil)

	handler := NewHTTPHandler(NewService(mockRepo, config.StoreConfigured))

	w := httptest.NewRecorder()
	handler.ListByBook(w, newReviewRequest(http.MethodGet, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"user_name":"Mehmet"`)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestHTTPHandler_ListByBook_Unconfigured(t *testing.T) {
	handler := NewHTTPHandler(NewService(nil, config.StoreUnconfigured))

	w := httptest.NewRecorder()
	handler.ListByBook(w, newReviewRequest(http.MethodGet, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestHTTPHandler_Create(t *testing.T) {
	body := `{"user_name":"Ayşe","rating":5,"comment":"Harika bir kitap"}`

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(Review{
			ID: "r1", BookID: "b1", UserName: "Ayşe", Rating: 5, Comment: "Harika bir kitap",
		}, nil)
		mockRepo.EXPECT().RatingsFor(gomock.Any(), "b1").Return([]int{5}, nil)
		mockRepo.EXPECT().UpdateBookAggregates(gomock.Any(), "b1", 5.0, 1).Return(nil)

		handler := NewHTTPHandler(NewService(mockRepo, config.StoreConfigured))

		w := httptest.NewRecorder()
		handler.Create(w, newReviewRequest(http.MethodPost, body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"r1"`)
	})

	t.Run("validation failure", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(nil, config.StoreConfigured))

		w := httptest.NewRecorder()
		handler.Create(w, newReviewRequest(http.MethodPost, `{"user_name":"Ayşe","rating":9,"comment":"x"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(nil, config.StoreConfigured))

		w := httptest.NewRecorder()
		handler.Create(w, newReviewRequest(http.MethodPost, `{not json`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "BAD_REQUEST")
	})

	t.Run("unknown book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(Review{}, ErrBookNotFound)

		handler := NewHTTPHandler(NewService(mockRepo, config.StoreConfigured))

		w := httptest.NewRecorder()
		handler.Create(w, newReviewRequest(http.MethodPost, body))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("unconfigured store", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(nil, config.StoreUnconfigured))

		w := httptest.NewRecorder()
		handler.Create(w, newReviewRequest(http.MethodPost, body))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "STORE_UNAVAILABLE")
	})
}
