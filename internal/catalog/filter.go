package catalog

import "strings"

// FilterBooks keeps books whose title, author, or category contains the
// query, case-insensitively. An empty query passes everything through.
func FilterBooks(books []Book, query string) []Book {
	if query == "" {
		return books
	}

	q := strings.ToLower(query)
	var out []Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			out = append(out, b)
		}
	}
	return out
}

// FilterByCategory keeps books whose category matches exactly. An empty
// category passes everything through.
func FilterByCategory(books []Book, category string) []Book {
	if category == "" {
		return books
	}

	var out []Book
	for _, b := range books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// ApplyFilters composes the query and category filters; both supplied means
// logical AND.
func ApplyFilters(books []Book, query, category string) []Book {
	filtered := books
	if query != "" {
		filtered = FilterBooks(filtered, query)
	}
	if category != "" {
		filtered = FilterByCategory(filtered, category)
	}
	return filtered
}

// Categories returns the distinct category values in first-seen order,
// used to populate filter controls.
func Categories(books []Book) []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range books {
		if !seen[b.Category] {
			seen[b.Category] = true
			out = append(out, b.Category)
		}
	}
	return out
}
