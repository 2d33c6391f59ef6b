package store

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"boardlink/internal/db"
	"boardlink/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the shared in-memory database alive and
	// serializes writes the way Postgres row locks would.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return New(gdb)
}

func seedUser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()
	user, err := s.CreateUser(name, name+"@example.com", "hash-"+name)
	require.NoError(t, err)
	return user
}

func TestCreatePostThenGet(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")

	created, err := s.CreatePost(alice.ID, "First post", "hello board")
	require.NoError(t, err)

	got, err := s.GetPost(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "First post", got.Title)
	assert.Equal(t, "hello board", got.Content)
	assert.Equal(t, alice.ID, got.AuthorID)
	assert.Equal(t, "alice", got.Author.Username)
	assert.Equal(t, 0, got.Views)
}

func TestGetPostMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetPost(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordViewSequential(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	post, err := s.CreatePost(alice.ID, "views", "body")
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		got, err := s.RecordView(post.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.Views)
	}

	// GetPost must not count as a view.
	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Views)
}

func TestRecordViewConcurrent(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	post, err := s.CreatePost(alice.ID, "views", "body")
	require.NoError(t, err)

	const k = 20
	var wg sync.WaitGroup
	errs := make(chan error, k)
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.RecordView(post.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent RecordView failed: %v", err)
	}

	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, k, got.Views)
}

func TestRecordViewMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.RecordView(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPostsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")

	var ids []uint
	for _, title := range []string{"A", "B", "C"} {
		post, err := s.CreatePost(alice.ID, title, "body")
		require.NoError(t, err)
		ids = append(ids, post.ID)
		time.Sleep(2 * time.Millisecond)
	}

	posts, err := s.ListPosts(0, 20)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []uint{ids[2], ids[1], ids[0]}, []uint{posts[0].ID, posts[1].ID, posts[2].ID})

	window, err := s.ListPosts(1, 1)
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, ids[1], window[0].ID)
}

func TestUpdatePostPartial(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	post, err := s.CreatePost(alice.ID, "original title", "original content")
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	content := "updated content"
	updated, err := s.UpdatePost(post.ID, PostPatch{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, "original title", updated.Title)
	assert.Equal(t, "updated content", updated.Content)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))

	title := "updated title"
	updated, err = s.UpdatePost(post.ID, PostPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "updated title", updated.Title)
	assert.Equal(t, "updated content", updated.Content)
}

func TestUpdatePostEmptyPatch(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	post, err := s.CreatePost(alice.ID, "title", "content")
	require.NoError(t, err)

	updated, err := s.UpdatePost(post.ID, PostPatch{})
	require.NoError(t, err)
	assert.Equal(t, "title", updated.Title)
	assert.Equal(t, "content", updated.Content)
}

func TestUpdatePostMissing(t *testing.T) {
	s := newTestStore(t)
	title := "x"
	_, err := s.UpdatePost(99, PostPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePostCascadesComments(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	post, err := s.CreatePost(alice.ID, "title", "content")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := s.CreateComment(post.ID, bob.ID, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
	}

	require.NoError(t, s.DeletePost(post.ID))

	_, err = s.GetPost(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The post is gone, so listing its comments is NotFound, not empty.
	_, err = s.ListComments(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var orphans int64
	require.NoError(t, s.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestDeletePostMissing(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.DeletePost(99), ErrNotFound)
}

func TestCreateCommentMissingPost(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	_, err := s.CreateComment(99, alice.ID, "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCommentsOldestFirst(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	post, err := s.CreatePost(alice.ID, "title", "content")
	require.NoError(t, err)

	x, err := s.CreateComment(post.ID, alice.ID, "x")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	y, err := s.CreateComment(post.ID, alice.ID, "y")
	require.NoError(t, err)

	comments, err := s.ListComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, x.ID, comments[0].ID)
	assert.Equal(t, y.ID, comments[1].ID)
}

func TestCommentScopedLookup(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	postA, err := s.CreatePost(alice.ID, "post A", "content")
	require.NoError(t, err)
	postB, err := s.CreatePost(alice.ID, "post B", "content")
	require.NoError(t, err)
	comment, err := s.CreateComment(postA.ID, alice.ID, "on post A")
	require.NoError(t, err)

	// The comment paired with the wrong post is indistinguishable from a
	// missing one.
	_, err = s.GetComment(comment.ID, postB.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	edited := "edited"
	_, err = s.UpdateComment(comment.ID, postB.ID, CommentPatch{Content: &edited})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteComment(comment.ID, postB.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.GetComment(comment.ID, postA.ID)
	require.NoError(t, err)
	assert.Equal(t, "on post A", got.Content)
}

func TestUpdateAndDeleteComment(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	post, err := s.CreatePost(alice.ID, "title", "content")
	require.NoError(t, err)
	comment, err := s.CreateComment(post.ID, alice.ID, "before")
	require.NoError(t, err)

	after := "after"
	updated, err := s.UpdateComment(comment.ID, post.ID, CommentPatch{Content: &after})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Content)

	require.NoError(t, s.DeleteComment(comment.ID, post.ID))
	_, err = s.GetComment(comment.ID, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserConflict(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateUser("alice", "alice@example.com", "hash")
	require.NoError(t, err)

	_, err = s.CreateUser("alice", "other@example.com", "hash")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateUser("other", "alice@example.com", "hash")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	post, err := s.CreatePost(alice.ID, "alice post", "content")
	require.NoError(t, err)
	_, err = s.CreateComment(post.ID, bob.ID, "bob on alice post")
	require.NoError(t, err)

	otherPost, err := s.CreatePost(bob.ID, "bob post", "content")
	require.NoError(t, err)
	_, err = s.CreateComment(otherPost.ID, alice.ID, "alice on bob post")
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(alice.ID))

	_, err = s.UserByID(alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetPost(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Bob and his post survive; alice's comment on it is gone, and no
	// comment on alice's post is left behind.
	_, err = s.UserByID(bob.ID)
	require.NoError(t, err)
	comments, err := s.ListComments(otherPost.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	var orphans int64
	require.NoError(t, s.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
}
