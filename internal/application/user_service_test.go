package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/singhbetu188/medium-blog-api/internal/domain/entity"
	repo "github.com/singhbetu188/medium-blog-api/internal/domain/repository"
	"github.com/singhbetu188/medium-blog-api/pkg/helpers"
)

// memUserRepo is an in-memory UserRepository used by service tests.
type memUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    map[string]*entity.User{},
		byEmail: map[string]*entity.User{},
	}
}

func (r *memUserRepo) Create(u *entity.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	if u, ok := r.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

var _ repo.UserRepository = (*memUserRepo)(nil)

func newUserService() (*UserService, *memUserRepo) {
	r := newMemUserRepo()
	jwtm := helpers.NewJWTManager("service-test-secret", time.Hour)
	return NewUserService(r, jwtm, nil), r
}

func TestSignupIssuesTokenForNewUser(t *testing.T) {
	svc, _ := newUserService()

	u, token, _, err := svc.Signup(context.Background(), "a@x.com", "secret1", "Ann")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEmpty(t, u.ID)

	claims, err := svc.JWT.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID, "token identity must equal the new user's id")

	// The stored password must be a hash, not the plain text.
	stored, err := svc.Repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "secret1"))
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()

	_, _, _, err := svc.Signup(context.Background(), "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	_, _, _, err = svc.Signup(context.Background(), "a@x.com", "different", "Bob")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginMatchesSignupIdentity(t *testing.T) {
	svc, _ := newUserService()

	u, t1, _, err := svc.Signup(context.Background(), "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	lu, t2, _, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, lu.ID)

	c1, err := svc.JWT.ParseToken(t1)
	require.NoError(t, err)
	c2, err := svc.JWT.ParseToken(t2)
	require.NoError(t, err)
	assert.Equal(t, c1.UserID, c2.UserID)
}

func TestLoginCollapsesMismatches(t *testing.T) {
	svc, _ := newUserService()

	_, _, _, err := svc.Signup(context.Background(), "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(context.Background(), "nobody@x.com", "secret1")
	_, _, _, wrongPwdErr := svc.Login(context.Background(), "a@x.com", "wrong-password")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwdErr, ErrInvalidCredentials)
	// Same sentinel for both: no account enumeration.
	assert.Equal(t, unknownErr, wrongPwdErr)
}
