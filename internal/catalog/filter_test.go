package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBooks() []Book {
	return []Book{
		{ID: "1", Title: "Dune", Author: "Herbert", Category: "Science Fiction"},
		{ID: "2", Title: "1984", Author: "Orwell", Category: "Fiction"},
		{ID: "3", Title: "Foundation", Author: "Asimov", Category: "Science Fiction"},
	}
}

func TestFilterBooks(t *testing.T) {
	books := testBooks()

	t.Run("matches author case-insensitively", func(t *testing.T) {
		got := FilterBooks(books, "orwell")
		assert.Len(t, got, 1)
		assert.Equal(t, "1984", got[0].Title)
	})

	t.Run("matches title substring", func(t *testing.T) {
		got := FilterBooks(books, "found")
		assert.Len(t, got, 1)
		assert.Equal(t, "Foundation", got[0].Title)
	})

	t.Run("matches category", func(t *testing.T) {
		got := FilterBooks(books, "science")
		assert.Len(t, got, 2)
	})

	t.Run("empty query passes everything through", func(t *testing.T) {
		assert.Equal(t, books, FilterBooks(books, ""))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, FilterBooks(books, "tolstoy"))
	})
}

func TestFilterByCategory(t *testing.T) {
	books := testBooks()

	got := FilterByCategory(books, "Science Fiction")
	assert.Len(t, got, 2)

	// Exact equality, not substring.
	assert.Empty(t, FilterByCategory(books, "Science"))

	assert.Equal(t, books, FilterByCategory(books, ""))
}

func TestApplyFilters_Compose(t *testing.T) {
	books := testBooks()

	// Both filters supplied intersect, never union.
	got := ApplyFilters(books, "herbert", "Science Fiction")
	assert.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Title)

	got = ApplyFilters(books, "orwell", "Science Fiction")
	assert.Empty(t, got)

	// The combined result is a subset of each single-filter result.
	both := ApplyFilters(books, "science", "Science Fiction")
	queryOnly := ApplyFilters(books, "science", "")
	categoryOnly := ApplyFilters(books, "", "Science Fiction")
	for _, b := range both {
		assert.Contains(t, queryOnly, b)
		assert.Contains(t, categoryOnly, b)
	}
}

func TestCategories(t *testing.T) {
	got := Categories(testBooks())
	assert.Equal(t, []string{"Science Fiction", "Fiction"}, got)

	assert.Empty(t, Categories(nil))
}
