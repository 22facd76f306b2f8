package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "the lord of the rings", r.URL.Query().Get("q"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "kitapkesif-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"numFound": 1,
			"docs": [{
				"key": "/works/OL27448W",
				"title": "The Lord of the Rings",
				"author_name": ["J.R.R. Tolkien"],
				"first_publish_year": 1954,
				"isbn": ["9780618640157"],
				"subject": ["Fantasy fiction"],
				"cover_i": 9255566
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "kitapkesif-test", 100, 0)

	docs, err := c.Search(context.Background(), "the lord of the rings", 20)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "The Lord of the Rings", docs[0].Title)
	assert.Equal(t, []string{"J.R.R. Tolkien"}, docs[0].AuthorNames)
	assert.Equal(t, 1954, docs[0].FirstPublishYear)
	assert.Equal(t, 9255566, docs[0].CoverID)
}

func TestSearch_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"numFound":0,"docs":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "kitapkesif-test", 100, 1)

	docs, err := c.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestSearch_NoRetryOnClientError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "kitapkesif-test", 100, 2)

	_, err := c.Search(context.Background(), "anything", 5)
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "4xx is not retryable")
}

func TestCoverURLs(t *testing.T) {
	assert.Equal(t,
		"https://covers.openlibrary.org/b/isbn/9780441172719-L.jpg",
		CoverURLByISBN("9780441172719", CoverLarge))
	assert.Equal(t,
		"https://covers.openlibrary.org/b/id/42-M.jpg",
		CoverURLByID(42, CoverMedium))
}
