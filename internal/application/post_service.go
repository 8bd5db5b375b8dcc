package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/singhbetu188/medium-blog-api/internal/domain/entity"
	repo "github.com/singhbetu188/medium-blog-api/internal/domain/repository"
	"github.com/singhbetu188/medium-blog-api/pkg/helpers"
)

var (
	ErrPostNotFound = errors.New("post not found")
	// ErrNotFoundOrUnauthorized is returned when an update's compound filter
	// (id AND author) matched nothing. Missing and foreign-owned posts are
	// indistinguishable so existence is never confirmed to non-owners.
	ErrNotFoundOrUnauthorized = errors.New("post not found or unauthorized")
)

func postKey(id string) string { return "post:" + id }

const postListKey = "posts:all"

// PostService owns post reads and writes. A nil Redis client disables the
// read cache; nothing else changes.
type PostService struct {
	Repo     repo.PostRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	CacheTTL time.Duration
}

func NewPostService(repo repo.PostRepository, rdb *redis.Client, logger *logrus.Logger, cacheTTL time.Duration) *PostService {
	return &PostService{Repo: repo, Redis: rdb, Logger: logger, CacheTTL: cacheTTL}
}

// Create stores a new post. The author id always comes from the
// authenticated identity, never from client input.
func (s *PostService) Create(ctx context.Context, authorID, title, content string) (*entity.Post, error) {
	p := &entity.Post{Title: title, Content: content, AuthorID: authorID}
	if err := s.Repo.Create(p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("author_id", authorID).Error("create post failed")
		}
		return nil, err
	}
	s.invalidate(ctx, postListKey)
	return p, nil
}

// Update applies the ownership filter in a single store call. Zero matched
// rows map to ErrNotFoundOrUnauthorized.
func (s *PostService) Update(ctx context.Context, actorID, id, title, content string) (*entity.Post, error) {
	p, err := s.Repo.UpdateByAuthor(id, actorID, title, content)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Error("update post failed")
		}
		return nil, err
	}
	s.invalidate(ctx, postKey(id), postListKey)
	return p, nil
}

// Get serves a single post, read-through cached when Redis is configured.
func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	if s.Redis != nil {
		var cached entity.Post
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, postKey(id), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, postKey(id), p, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("post cache write failed")
		}
	}
	return p, nil
}

// List serves all posts, newest first, read-through cached.
func (s *PostService) List(ctx context.Context) ([]*entity.Post, error) {
	if s.Redis != nil {
		var cached []*entity.Post
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, postListKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	posts, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, postListKey, posts, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("post list cache write failed")
		}
	}
	return posts, nil
}

// invalidate is best-effort: a failed DEL only means a stale read until the
// TTL elapses.
func (s *PostService) invalidate(ctx context.Context, keys ...string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("cache invalidation failed")
	}
}
