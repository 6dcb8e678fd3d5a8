package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"redpanda-site/internal/domain/diary"
)

type DiaryRepo struct {
	db *sql.DB
}

func NewDiaryRepo(db *sql.DB) *DiaryRepo {
	return &DiaryRepo{db: db}
}

// Esquema esperado:
//
//	CREATE TABLE diary_posts (
//	    id             BIGSERIAL PRIMARY KEY,
//	    panda_name     TEXT NOT NULL,
//	    comment        VARCHAR(1000) NOT NULL,
//	    image_filename TEXT NOT NULL DEFAULT '',
//	    created_at     TIMESTAMPTZ NOT NULL
//	);
func (r *DiaryRepo) Save(ctx context.Context, p diary.Post) (diary.Post, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO diary_posts (panda_name, comment, image_filename, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		p.PandaName,
		p.Comment,
		p.ImageFilename,
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return diary.Post{}, fmt.Errorf("save diary post: %w", err)
	}
	return p, nil
}

func (r *DiaryRepo) FindAll(ctx context.Context, page, size int) (diary.Page, error) {
	return r.pageOf(ctx, "", nil, page, size)
}

func (r *DiaryRepo) FindByPandaName(ctx context.Context, name string, page, size int) (diary.Page, error) {
	return r.pageOf(ctx, "WHERE panda_name = $1", []any{name}, page, size)
}

func (r *DiaryRepo) FindByPandaNameContaining(ctx context.Context, q string, page, size int) (diary.Page, error) {
	// ILIKE = substring case-insensitive, igual que la búsqueda del
	// listado in-memory
	return r.pageOf(ctx, "WHERE panda_name ILIKE $1", []any{"%" + q + "%"}, page, size)
}

func (r *DiaryRepo) pageOf(ctx context.Context, where string, args []any, page, size int) (diary.Page, error) {
	if size <= 0 {
		size = diary.DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM diary_posts "+where, args...,
	).Scan(&total); err != nil {
		return diary.Page{}, fmt.Errorf("count diary posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, panda_name, comment, image_filename, created_at
		FROM diary_posts
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT %d OFFSET %d
	`, where, size, page*size)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return diary.Page{}, fmt.Errorf("list diary posts: %w", err)
	}
	defer rows.Close()

	items := make([]diary.Post, 0, size)
	for rows.Next() {
		var p diary.Post
		if err := rows.Scan(&p.ID, &p.PandaName, &p.Comment, &p.ImageFilename, &p.CreatedAt); err != nil {
			return diary.Page{}, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return diary.Page{}, err
	}

	return diary.Page{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: (total + size - 1) / size,
	}, nil
}
