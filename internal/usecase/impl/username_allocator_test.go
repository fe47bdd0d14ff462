package impl

import (
	"context"
	"testing"

	mockRepo "linkauth/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAllocator(t *testing.T, attempts int, suffixes ...int) (*usernameAllocator, *mockRepo.MockAccountRepository) {
	repo := mockRepo.NewMockAccountRepository(t)
	cfg := newTestConfig()
	cfg.Auth.UsernameAttempts = attempts

	alloc, ok := NewUsernameAllocator(UsernameAllocatorParams{AccountRepo: repo, Config: cfg}).(*usernameAllocator)
	require.True(t, ok)

	next := 0
	alloc.suffix = func() int {
		s := suffixes[next%len(suffixes)]
		next++

		return s
	}

	return alloc, repo
}

func TestUsernameAllocator_FreeLocalPart(t *testing.T) {
	alloc, repo := createTestAllocator(t, 1, 4242)

	repo.EXPECT().FindByUsername(mock.Anything, "jeanluc").Return(nil, nil)

	username, err := alloc.Allocate(context.Background(), "JeanLuc@gmail.com")

	require.NoError(t, err)
	assert.Equal(t, "jeanluc", username)
}

func TestUsernameAllocator_TakenGetsUncheckedSuffix(t *testing.T) {
	alloc, repo := createTestAllocator(t, 1, 4242)

	repo.EXPECT().FindByUsername(mock.Anything, "jeanluc").Return(newTestAccount("jeanluc", "jeanluc@other.com"), nil)

	username, err := alloc.Allocate(context.Background(), "jeanluc@gmail.com")

	require.NoError(t, err)
	assert.Equal(t, "jeanluc4242", username)
	repo.AssertNumberOfCalls(t, "FindByUsername", 1)
}

func TestUsernameAllocator_RetriesWithFreshSuffix(t *testing.T) {
	alloc, repo := createTestAllocator(t, 3, 1111, 2222, 3333)

	repo.EXPECT().FindByUsername(mock.Anything, "jeanluc").Return(newTestAccount("jeanluc", "a@b.c"), nil)
	repo.EXPECT().FindByUsername(mock.Anything, "jeanluc1111").Return(newTestAccount("jeanluc1111", "b@b.c"), nil)
	repo.EXPECT().FindByUsername(mock.Anything, "jeanluc2222").Return(nil, nil)

	username, err := alloc.Allocate(context.Background(), "jeanluc@gmail.com")

	require.NoError(t, err)
	assert.Equal(t, "jeanluc2222", username)
}

func TestUsernameAllocator_LastAttemptUnchecked(t *testing.T) {
	alloc, repo := createTestAllocator(t, 2, 1111, 2222)

	repo.EXPECT().FindByUsername(mock.Anything, "jeanluc").Return(newTestAccount("jeanluc", "a@b.c"), nil)
	repo.EXPECT().FindByUsername(mock.Anything, "jeanluc1111").Return(newTestAccount("jeanluc1111", "b@b.c"), nil)

	username, err := alloc.Allocate(context.Background(), "jeanluc@gmail.com")

	require.NoError(t, err)
	assert.Equal(t, "jeanluc2222", username)
}

func TestUsernameAllocator_StoreError(t *testing.T) {
	alloc, repo := createTestAllocator(t, 1, 4242)

	repo.EXPECT().FindByUsername(mock.Anything, "jeanluc").Return(nil, errors.New("connection reset"))

	_, err := alloc.Allocate(context.Background(), "jeanluc@gmail.com")

	assert.ErrorContains(t, err, "connection reset")
}

func TestBaseUsername(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "jeanluc@gmail.com", want: "jeanluc"},
		{email: "Jean.Luc+news@gmail.com", want: "jean.lucnews"},
		{email: "jl@gmail.com", want: "jl0"},
		{email: "+++@gmail.com", want: "user"},
		{email: "a.very.long.local.part.indeed@gmail.com", want: "a.very.long.local.pa"},
		{email: "first_last-1@example.org", want: "first_last-1"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, baseUsername(tt.email))
		})
	}
}

func TestWithSuffix_FitsMaxLength(t *testing.T) {
	assert.Equal(t, "jeanluc1000", withSuffix("jeanluc", 1000))
	assert.Equal(t, "a.very.long.loca9998", withSuffix("a.very.long.local.pa", 9998))
	assert.Len(t, withSuffix("a.very.long.local.pa", 9998), 20)
}
