package catalog

import (
	"fmt"
	"strings"

	"kitapkesif/internal/platform/openlibrary"
)

const (
	placeholderCover = "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?auto=format&fit=crop&q=80&w=800"
	defaultCategory  = "General"
	unknownAuthor    = "Unknown Author"
)

type categoryRule struct {
	name     string
	keywords []string
}

// Order matters: the first rule whose keyword appears in any subject wins.
var categoryRules = []categoryRule{
	{"Fiction", []string{"fiction", "novel", "literature", "fantasy", "science fiction"}},
	{"Non-Fiction", []string{"nonfiction", "biography", "history", "philosophy"}},
	{"Mystery", []string{"mystery", "detective", "crime", "thriller"}},
	{"Romance", []string{"romance", "love story"}},
	{"Science Fiction", []string{"science fiction", "sci-fi", "space"}},
	{"Fantasy", []string{"fantasy", "magic", "adventure"}},
	{"History", []string{"history", "historical"}},
	{"Biography", []string{"biography", "autobiography", "memoir"}},
	{"Science", []string{"science", "physics", "chemistry", "biology"}},
	{"Technology", []string{"technology", "computer", "programming"}},
	{"Business", []string{"business", "economics", "finance"}},
	{"Self-Help", []string{"self-help", "psychology", "motivation"}},
	{"Children", []string{"children", "juvenile", "kids"}},
	{"Poetry", []string{"poetry", "poems"}},
	{"Drama", []string{"drama", "play", "theater"}},
}

// FromDoc transforms a remote search result into the Book shape. It returns
// false for malformed records (missing title), which are dropped silently
// because upstream data quality is not ours to enforce.
func FromDoc(doc openlibrary.Doc, seq int) (Book, bool) {
	if doc.Title == "" {
		return Book{}, false
	}

	var isbn string
	if len(doc.ISBN) > 0 {
		isbn = doc.ISBN[0]
	}

	coverImage := placeholderCover
	if isbn != "" {
		coverImage = openlibrary.CoverURLByISBN(isbn, openlibrary.CoverLarge)
	} else if doc.CoverID != 0 {
		coverImage = openlibrary.CoverURLByID(doc.CoverID, openlibrary.CoverLarge)
	}

	var backCover *string
	if isbn != "" {
		u := openlibrary.CoverURLByISBN(isbn, openlibrary.CoverMedium)
		backCover = &u
	}

	author := unknownAuthor
	if len(doc.AuthorNames) > 0 {
		author = doc.AuthorNames[0]
	}

	return Book{
		ID:             fmt.Sprintf("demo-%d", seq),
		Title:          doc.Title,
		Author:         author,
		Description:    describeDoc(doc),
		CoverImage:     coverImage,
		BackCoverImage: backCover,
		Category:       categoryFor(doc),
		AverageRating:  0,
		TotalReviews:   0,
	}, true
}

func categoryFor(doc openlibrary.Doc) string {
	if len(doc.Subjects) == 0 {
		return defaultCategory
	}

	subjects := make([]string, len(doc.Subjects))
	for i, s := range doc.Subjects {
		subjects[i] = strings.ToLower(s)
	}

	for _, rule := range categoryRules {
		for _, subject := range subjects {
			for _, keyword := range rule.keywords {
				if strings.Contains(subject, keyword) {
					return rule.name
				}
			}
		}
	}

	if doc.Subjects[0] != "" {
		return doc.Subjects[0]
	}
	return defaultCategory
}

func describeDoc(doc openlibrary.Doc) string {
	var parts []string

	if doc.FirstPublishYear != 0 {
		parts = append(parts, fmt.Sprintf("First published in %d.", doc.FirstPublishYear))
	}
	if len(doc.Publishers) > 0 {
		parts = append(parts, fmt.Sprintf("Published by %s.", doc.Publishers[0]))
	}
	if doc.PagesMedian != 0 {
		parts = append(parts, fmt.Sprintf("Approximately %d pages.", doc.PagesMedian))
	}
	if len(doc.Subjects) > 0 {
		top := doc.Subjects
		if len(top) > 3 {
			top = top[:3]
		}
		parts = append(parts, fmt.Sprintf("Topics include: %s.", strings.Join(top, ", ")))
	}

	if len(parts) == 0 {
		return "A fascinating book waiting to be discovered."
	}
	return strings.Join(parts, " ")
}
