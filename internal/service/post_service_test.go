package service

import (
	"testing"

	"devconnector-be/internal/entities"

	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (PostService, *fakePostRepo, *entities.User, *entities.User) {
	t.Helper()
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()

	owner, err := userRepo.Create("Owner", "owner@x.com", "hash", "avatar-o")
	require.NoError(t, err)
	other, err := userRepo.Create("Other", "other@x.com", "hash", "avatar-x")
	require.NoError(t, err)

	return NewPostService(postRepo, userRepo), postRepo, owner, other
}

func TestPostCreate(t *testing.T) {
	svc, _, owner, _ := newPostFixture(t)

	post, err := svc.Create(owner.ID, "hello world")
	require.NoError(t, err)
	require.Equal(t, owner.ID, post.UserID)
	require.Equal(t, "hello world", post.Text)

	// Author snapshot is stamped onto the post.
	require.Equal(t, "Owner", post.Name)
	require.Equal(t, "avatar-o", post.Avatar)

	_, err = svc.Create("missing-user", "text")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostDelete_OwnershipGuard(t *testing.T) {
	svc, postRepo, owner, other := newPostFixture(t)

	post, err := svc.Create(owner.ID, "mine")
	require.NoError(t, err)

	t.Run("non-owner is rejected and the post survives", func(t *testing.T) {
		err := svc.Delete(post.ID, other.ID)
		require.ErrorIs(t, err, ErrNotAuthorized)

		_, err = postRepo.FindByID(post.ID)
		require.NoError(t, err)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(post.ID, owner.ID))

		_, err := svc.GetByID(post.ID)
		require.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("unknown post", func(t *testing.T) {
		err := svc.Delete("missing-post", owner.ID)
		require.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostLikes(t *testing.T) {
	svc, _, owner, other := newPostFixture(t)

	post, err := svc.Create(owner.ID, "likeable")
	require.NoError(t, err)

	likes, err := svc.Like(post.ID, other.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	require.Equal(t, other.ID, likes[0].UserID)

	t.Run("double like is rejected", func(t *testing.T) {
		_, err := svc.Like(post.ID, other.ID)
		require.ErrorIs(t, err, ErrAlreadyLiked)
	})

	t.Run("unlike removes the like", func(t *testing.T) {
		likes, err := svc.Unlike(post.ID, other.ID)
		require.NoError(t, err)
		require.Empty(t, likes)
	})

	t.Run("unlike without a like is rejected", func(t *testing.T) {
		_, err := svc.Unlike(post.ID, other.ID)
		require.ErrorIs(t, err, ErrNotYetLiked)
	})
}

func TestPostComments(t *testing.T) {
	svc, _, owner, other := newPostFixture(t)

	post, err := svc.Create(owner.ID, "discuss")
	require.NoError(t, err)

	comments, err := svc.AddComment(post.ID, other.ID, "nice post")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, other.ID, comments[0].UserID)
	require.Equal(t, "Other", comments[0].Name)

	commentID := comments[0].ID

	t.Run("only the comment owner may delete it", func(t *testing.T) {
		_, err := svc.DeleteComment(post.ID, commentID, owner.ID)
		require.ErrorIs(t, err, ErrNotAuthorized)

		remaining, err := svc.GetByID(post.ID)
		require.NoError(t, err)
		require.Len(t, remaining.Comments, 1)
	})

	t.Run("owner deletes the comment", func(t *testing.T) {
		comments, err := svc.DeleteComment(post.ID, commentID, other.ID)
		require.NoError(t, err)
		require.Empty(t, comments)
	})

	t.Run("missing comment", func(t *testing.T) {
		_, err := svc.DeleteComment(post.ID, "missing-comment", other.ID)
		require.ErrorIs(t, err, ErrCommentNotFound)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := svc.AddComment("missing-post", other.ID, "text")
		require.ErrorIs(t, err, ErrPostNotFound)
	})
}
