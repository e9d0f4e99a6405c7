package service

import (
	"Quill/models"
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var errStorage = errors.New("storage unavailable")

// fakeStats 内存版 StatStore，记录每类写调用次数
type fakeStats struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*models.Stat
	creates   int
	writes    int
	decrCalls int // 含未实际修改的调用
	failGet   bool
}

func newFakeStats() *fakeStats {
	return &fakeStats{rows: make(map[uuid.UUID]*models.Stat)}
}

func (f *fakeStats) put(postID uuid.UUID, views, likes int64) {
	f.rows[postID] = &models.Stat{ID: uuid.New(), PostID: postID, Views: views, Likes: likes}
}

func (f *fakeStats) GetByPostID(_ context.Context, postID uuid.UUID) (*models.Stat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return nil, errStorage
	}
	row, ok := f.rows[postID]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeStats) CreateIfAbsent(_ context.Context, postID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[postID]; ok {
		return nil
	}
	f.creates++
	f.rows[postID] = &models.Stat{ID: uuid.New(), PostID: postID}
	return nil
}

func (f *fakeStats) IncrViews(_ context.Context, postID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	f.rows[postID].Views++
	return nil
}

func (f *fakeStats) IncrLikes(_ context.Context, postID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	f.rows[postID].Likes++
	return nil
}

func (f *fakeStats) DecrLikes(_ context.Context, postID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decrCalls++
	row := f.rows[postID]
	if row.Likes <= 0 {
		return false, nil
	}
	f.writes++
	row.Likes--
	return true, nil
}

func (f *fakeStats) SumByPostIDs(_ context.Context, postIDs []uuid.UUID) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var views, likes int64
	for _, id := range postIDs {
		if row, ok := f.rows[id]; ok {
			views += row.Views
			likes += row.Likes
		}
	}
	return views, likes, nil
}

func (f *fakeStats) SumAll(_ context.Context) (int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var views, likes int64
	for _, row := range f.rows {
		views += row.Views
		likes += row.Likes
	}
	return views, likes, nil
}

func (f *fakeStats) DeleteByPostID(_ context.Context, postID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[postID]; !ok {
		return false, nil
	}
	f.writes++
	delete(f.rows, postID)
	return true, nil
}

type fakePosts struct {
	authors map[uuid.UUID]uuid.UUID // post -> author
	err     error
}

func newFakePosts() *fakePosts {
	return &fakePosts{authors: make(map[uuid.UUID]uuid.UUID)}
}

func (f *fakePosts) add(author uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.authors[id] = author
	return id
}

func (f *fakePosts) Exists(_ context.Context, postID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.authors[postID]
	return ok, nil
}

func (f *fakePosts) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.authors)), nil
}

func (f *fakePosts) IDsByAuthor(_ context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]uuid.UUID, 0)
	for id, a := range f.authors {
		if a == authorID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeUsers struct {
	roles map[uuid.UUID][]models.Role
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{roles: make(map[uuid.UUID][]models.Role)}
}

func (f *fakeUsers) add(roles ...string) uuid.UUID {
	id := uuid.New()
	list := make([]models.Role, 0, len(roles))
	for _, name := range roles {
		list = append(list, models.Role{ID: uuid.New(), Name: name})
	}
	f.roles[id] = list
	return id
}

func (f *fakeUsers) Exists(_ context.Context, userID uuid.UUID) (bool, error) {
	_, ok := f.roles[userID]
	return ok, nil
}

func (f *fakeUsers) Count(_ context.Context) (int64, error) {
	return int64(len(f.roles)), nil
}

func (f *fakeUsers) Roles(_ context.Context, userID uuid.UUID) ([]models.Role, error) {
	return f.roles[userID], nil
}
