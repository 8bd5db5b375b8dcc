package repository

import (
	"errors"

	"github.com/singhbetu188/medium-blog-api/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a query resolves to zero rows.
var ErrNotFound = errors.New("not found")

// PostRepository defines the interface for post-related database operations.
//
// UpdateByAuthor applies the compound ownership filter (id AND author_id) in
// a single statement so there is no window between the authorship check and
// the write. A zero-row match is reported as not found regardless of whether
// the post is missing or owned by someone else.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	UpdateByAuthor(id, authorID, title, content string) (*entity.Post, error)
}
