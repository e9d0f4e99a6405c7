package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statFixture struct {
	svc   *StatService
	stats *fakeStats
	posts *fakePosts
	users *fakeUsers
}

func newStatFixture() *statFixture {
	f := &statFixture{stats: newFakeStats(), posts: newFakePosts(), users: newFakeUsers()}
	f.svc = &StatService{Stats: f.stats, Posts: f.posts, Users: f.users}
	return f
}

var ctx = context.Background()

func TestGetOrCreate_CreatesOnce(t *testing.T) {
	f := newStatFixture()
	postID := uuid.New()

	first, err := f.svc.GetOrCreate(ctx, postID)
	require.NoError(t, err)
	second, err := f.svc.GetOrCreate(ctx, postID)
	require.NoError(t, err)

	assert.Equal(t, 1, f.stats.creates)
	assert.Equal(t, first.ID, second.ID)
	assert.Zero(t, second.Views)
	assert.Zero(t, second.Likes)
}

func TestGetOrCreate_StorageError(t *testing.T) {
	f := newStatFixture()
	f.stats.failGet = true

	_, err := f.svc.GetOrCreate(ctx, uuid.New())
	assert.ErrorIs(t, err, errStorage)
}

func TestIncrementViews_Monotonic(t *testing.T) {
	f := newStatFixture()
	postID := f.posts.add(uuid.New())
	f.stats.put(postID, 7, 0)

	const n = 5
	var views int64
	for i := 0; i < n; i++ {
		stat, err := f.svc.IncrementViews(ctx, postID)
		require.NoError(t, err)
		views = stat.Views
	}
	assert.Equal(t, int64(7+n), views)
}

func TestDecrementLikes_FloorAtZero(t *testing.T) {
	f := newStatFixture()
	postID := f.posts.add(uuid.New())
	f.stats.put(postID, 3, 0)

	for i := 0; i < 4; i++ {
		stat, err := f.svc.DecrementLikes(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stat.Likes)
		assert.Equal(t, int64(3), stat.Views)
	}
	assert.Zero(t, f.stats.writes, "no write at zero likes")
	assert.Zero(t, f.stats.decrCalls, "store not touched at zero likes")
}

func TestPostLifecycle(t *testing.T) {
	f := newStatFixture()
	postID := f.posts.add(uuid.New())

	got, err := f.svc.PostStats(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, postID, got.PostID)
	assert.Zero(t, got.Views)
	assert.Zero(t, got.Likes)

	stat, err := f.svc.IncrementViews(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stat.Views)
	assert.Equal(t, int64(0), stat.Likes)

	_, err = f.svc.IncrementLikes(ctx, postID)
	require.NoError(t, err)
	stat, err = f.svc.IncrementLikes(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stat.Views)
	assert.Equal(t, int64(2), stat.Likes)

	stat, err = f.svc.DecrementLikes(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stat.Views)
	assert.Equal(t, int64(1), stat.Likes)
	assert.Equal(t, 1, f.stats.creates)
	assert.Equal(t, 1, f.stats.decrCalls)
}

func TestPerPostOps_PostNotFound(t *testing.T) {
	f := newStatFixture()
	missing := uuid.New()

	_, err := f.svc.PostStats(ctx, missing)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = f.svc.IncrementViews(ctx, missing)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = f.svc.IncrementLikes(ctx, missing)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = f.svc.DecrementLikes(ctx, missing)
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.Zero(t, f.stats.creates)
}

func TestPerPostOps_PostStoreError(t *testing.T) {
	f := newStatFixture()
	f.posts.err = errStorage

	_, err := f.svc.IncrementViews(ctx, uuid.New())
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrPostNotFound)
}

func TestUserStats_Aggregates(t *testing.T) {
	f := newStatFixture()
	author := f.users.add()
	p1 := f.posts.add(author)
	p2 := f.posts.add(author)
	other := f.posts.add(f.users.add())
	f.stats.put(p1, 10, 5)
	f.stats.put(p2, 20, 15)
	f.stats.put(other, 100, 100)

	got, err := f.svc.UserStats(ctx, author)
	require.NoError(t, err)
	assert.Equal(t, author, got.UserID)
	assert.Equal(t, int64(2), got.TotalPosts)
	assert.Equal(t, int64(30), got.TotalViews)
	assert.Equal(t, int64(20), got.TotalLikes)
}

func TestUserStats_NoPosts(t *testing.T) {
	f := newStatFixture()
	user := f.users.add()

	got, err := f.svc.UserStats(ctx, user)
	require.NoError(t, err)
	assert.Zero(t, got.TotalPosts)
	assert.Zero(t, got.TotalViews)
	assert.Zero(t, got.TotalLikes)
}

func TestUserStats_PostWithoutStatRow(t *testing.T) {
	f := newStatFixture()
	author := f.users.add()
	p1 := f.posts.add(author)
	f.posts.add(author)
	f.stats.put(p1, 4, 2)

	got, err := f.svc.UserStats(ctx, author)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalPosts)
	assert.Equal(t, int64(4), got.TotalViews)
	assert.Equal(t, int64(2), got.TotalLikes)
}

func TestUserStats_UnknownUser(t *testing.T) {
	f := newStatFixture()

	_, err := f.svc.UserStats(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSiteStats(t *testing.T) {
	f := newStatFixture()

	got, err := f.svc.SiteStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, *got)

	u1, u2 := f.users.add(), f.users.add()
	p1 := f.posts.add(u1)
	p2 := f.posts.add(u2)
	f.posts.add(u2)
	f.stats.put(p1, 10, 1)
	f.stats.put(p2, 5, 4)

	got, err = f.svc.SiteStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalPosts)
	assert.Equal(t, int64(2), got.TotalUsers)
	assert.Equal(t, int64(15), got.TotalViews)
	assert.Equal(t, int64(5), got.TotalLikes)
}

func TestSiteStats_StorageError(t *testing.T) {
	f := newStatFixture()
	f.posts.err = errStorage

	_, err := f.svc.SiteStats(ctx)
	assert.ErrorIs(t, err, errStorage)
}

func TestDeletePostStats(t *testing.T) {
	f := newStatFixture()
	postID := uuid.New()
	f.stats.put(postID, 1, 1)

	require.NoError(t, f.svc.DeletePostStats(ctx, postID))
	assert.ErrorIs(t, f.svc.DeletePostStats(ctx, postID), ErrStatNotFound)
}
