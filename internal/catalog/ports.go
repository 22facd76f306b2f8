package catalog

import (
	"context"

	"kitapkesif/internal/platform/openlibrary"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository defines the contract for Primary Store catalog reads.
type Repository interface {
	ListByRating(ctx context.Context) ([]Book, error)
}

// RemoteSource is the fallback catalog search collaborator.
type RemoteSource interface {
	Search(ctx context.Context, query string, limit int) ([]openlibrary.Doc, error)
}
