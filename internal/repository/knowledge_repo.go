package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tjbuilding/internal/models"
)

type KnowledgeSQL struct {
	db  *sql.DB
	now func() time.Time
}

func NewKnowledgeSQL(db *sql.DB) *KnowledgeSQL {
	return &KnowledgeSQL{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ Knowledge = (*KnowledgeSQL)(nil)

const knowledgeColumns = `id, question, answer, keywords, category, is_suggested, sort_order, is_active, created_at, updated_at`

const (
	selectActiveKnowledgeSQL = `SELECT ` + knowledgeColumns + ` FROM knowledge_base WHERE is_active = 1 ORDER BY id`
	selectAllKnowledgeSQL    = `SELECT ` + knowledgeColumns + ` FROM knowledge_base ORDER BY category, sort_order, id`
	selectSuggestedSQL       = `SELECT question FROM knowledge_base WHERE is_active = 1 AND is_suggested = 1 ORDER BY sort_order ASC, id ASC LIMIT ?`
	insertKnowledgeSQL       = `INSERT INTO knowledge_base (question, answer, keywords, category, is_suggested, sort_order, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	updateKnowledgeSQL       = `UPDATE knowledge_base SET question = ?, answer = ?, keywords = ?, category = ?, is_suggested = ?, sort_order = ?, is_active = ?, updated_at = ? WHERE id = ?`
	deleteKnowledgeSQL       = `DELETE FROM knowledge_base WHERE id = ?`
)

// ListActive returns active entries in id order, the order ties are broken by.
func (r *KnowledgeSQL) ListActive(ctx context.Context) ([]models.Knowledge, error) {
	out, err := r.query(ctx, selectActiveKnowledgeSQL)
	if err != nil {
		return nil, fmt.Errorf("list active knowledge: %w", err)
	}
	return out, nil
}

// List returns every entry, grouped by category.
func (r *KnowledgeSQL) List(ctx context.Context) ([]models.Knowledge, error) {
	out, err := r.query(ctx, selectAllKnowledgeSQL)
	if err != nil {
		return nil, fmt.Errorf("list knowledge: %w", err)
	}
	return out, nil
}

// Suggested returns up to limit suggested questions.
func (r *KnowledgeSQL) Suggested(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectSuggestedSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select suggestions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suggestions: %w", err)
	}
	return out, nil
}

// Create inserts k and returns its id. Timestamps are set here.
func (r *KnowledgeSQL) Create(ctx context.Context, k models.Knowledge) (int64, error) {
	now := r.now()
	res, err := r.db.ExecContext(ctx, insertKnowledgeSQL,
		k.Question, k.Answer, k.Keywords, k.Category, k.IsSuggested, k.SortOrder, k.IsActive, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert knowledge: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for knowledge: %w", err)
	}
	return id, nil
}

// Update overwrites the entry with k.ID.
func (r *KnowledgeSQL) Update(ctx context.Context, k models.Knowledge) error {
	res, err := r.db.ExecContext(ctx, updateKnowledgeSQL,
		k.Question, k.Answer, k.Keywords, k.Category, k.IsSuggested, k.SortOrder, k.IsActive, r.now(), k.ID)
	if err != nil {
		return fmt.Errorf("update knowledge %d: %w", k.ID, err)
	}
	return expectOneRow(res, "knowledge", k.ID)
}

func (r *KnowledgeSQL) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteKnowledgeSQL, id)
	if err != nil {
		return fmt.Errorf("delete knowledge %d: %w", id, err)
	}
	return expectOneRow(res, "knowledge", id)
}

func (r *KnowledgeSQL) query(ctx context.Context, q string, args ...any) ([]models.Knowledge, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Knowledge, 0, 32)
	for rows.Next() {
		var k models.Knowledge
		if err := rows.Scan(&k.ID, &k.Question, &k.Answer, &k.Keywords, &k.Category,
			&k.IsSuggested, &k.SortOrder, &k.IsActive, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func expectOneRow(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s %d: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
