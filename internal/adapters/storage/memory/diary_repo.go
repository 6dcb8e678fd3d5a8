package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"redpanda-site/internal/domain/diary"
)

type diaryRepo struct {
	mu     sync.RWMutex
	posts  []diary.Post
	nextID int64
}

// NewDiaryRepo arma el repo in-memory para dev y tests (mismo rol que
// el repo Postgres, sin DSN).
func NewDiaryRepo() diary.Repository {
	return &diaryRepo{nextID: 1}
}

func (r *diaryRepo) Save(ctx context.Context, p diary.Post) (diary.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, p)
	return p, nil
}

func (r *diaryRepo) FindAll(ctx context.Context, page, size int) (diary.Page, error) {
	return r.pageOf(func(diary.Post) bool { return true }, page, size), nil
}

func (r *diaryRepo) FindByPandaName(ctx context.Context, name string, page, size int) (diary.Page, error) {
	return r.pageOf(func(p diary.Post) bool { return p.PandaName == name }, page, size), nil
}

func (r *diaryRepo) FindByPandaNameContaining(ctx context.Context, q string, page, size int) (diary.Page, error) {
	qq := strings.ToLower(q)
	return r.pageOf(func(p diary.Post) bool {
		return strings.Contains(strings.ToLower(p.PandaName), qq)
	}, page, size), nil
}

func (r *diaryRepo) pageOf(match func(diary.Post) bool, page, size int) diary.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if size <= 0 {
		size = diary.DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	matched := make([]diary.Post, 0)
	for _, p := range r.posts {
		if match(p) {
			matched = append(matched, p)
		}
	}

	// created_at descendente, id como desempate (mismo orden que el repo
	// Postgres)
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	from := page * size
	if from > len(matched) {
		from = len(matched)
	}
	to := from + size
	if to > len(matched) {
		to = len(matched)
	}

	return diary.Page{
		Items:      matched[from:to],
		Page:       page,
		Size:       size,
		TotalItems: len(matched),
		TotalPages: (len(matched) + size - 1) / size,
	}
}
