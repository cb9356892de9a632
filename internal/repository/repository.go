package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Jamolkhon5/museum/internal/models"
)

var ErrNotFound = errors.New("not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	now := time.Now().UTC()
	item.ID = uuid.New()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `
        INSERT INTO items (id, title, category, description, created_at, updated_at)
        VALUES (:id, :title, :category, :description, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return models.Item{}, fmt.Errorf("error inserting item: %w", err)
	}
	return item, nil
}

func (r *Repository) GetItem(ctx context.Context, id uuid.UUID) (models.Item, error) {
	query := `
        SELECT id, title, category, description, created_at, updated_at
        FROM items
        WHERE id = $1`

	var item models.Item
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("error getting item %s: %w", id, err)
	}
	return item, nil
}

func (r *Repository) UpdateItemDescription(ctx context.Context, id uuid.UUID, description string) error {
	query := `
        UPDATE items
        SET description = $2, updated_at = CURRENT_TIMESTAMP
        WHERE id = $1`

	return r.execOne(ctx, query, id, description)
}

// CreateList создает список и привязывает к нему элементы в заданном порядке.
func (r *Repository) CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.List{}, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	list := models.List{
		ID:          uuid.New(),
		Title:       req.Title,
		Kind:        req.Kind,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = tx.NamedExecContext(ctx, `
        INSERT INTO lists (id, title, kind, description, created_at, updated_at)
        VALUES (:id, :title, :kind, :description, :created_at, :updated_at)`, list)
	if err != nil {
		return models.List{}, fmt.Errorf("error inserting list: %w", err)
	}

	for position, itemID := range req.ItemIDs {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO list_items (list_id, item_id, position)
            VALUES ($1, $2, $3)`, list.ID, itemID, position)
		if err != nil {
			return models.List{}, fmt.Errorf("error adding item %s to list: %w", itemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.List{}, fmt.Errorf("error committing list: %w", err)
	}

	return r.GetList(ctx, list.ID)
}

func (r *Repository) GetList(ctx context.Context, id uuid.UUID) (models.List, error) {
	var list models.List
	err := r.db.GetContext(ctx, &list, `
        SELECT id, title, kind, description, created_at, updated_at
        FROM lists
        WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.List{}, ErrNotFound
		}
		return models.List{}, fmt.Errorf("error getting list %s: %w", id, err)
	}

	list.Items = make([]models.Item, 0)
	err = r.db.SelectContext(ctx, &list.Items, `
        SELECT i.id, i.title, i.category, i.description, i.created_at, i.updated_at
        FROM list_items li
        JOIN items i ON i.id = li.item_id
        WHERE li.list_id = $1
        ORDER BY li.position`, id)
	if err != nil {
		return models.List{}, fmt.Errorf("error getting items of list %s: %w", id, err)
	}
	return list, nil
}

func (r *Repository) UpdateListDescription(ctx context.Context, id uuid.UUID, description string) error {
	query := `
        UPDATE lists
        SET description = $2, updated_at = CURRENT_TIMESTAMP
        WHERE id = $1`

	return r.execOne(ctx, query, id, description)
}

func (r *Repository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
