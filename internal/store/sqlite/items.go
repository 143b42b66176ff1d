package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

const itemColumns = `id, name, description, category, image, additional_images, specifications,
	suitable_tasks, suitability, max_hire_duration, max_hire_quantity, care_instructions,
	training_required, expert_support_required, safety_instructions, price_per_day,
	price_per_week, owner_id, rating, available, created_at`

func scanItem(row scanner) (*model.Item, error) {
	var i model.Item
	var additionalImages, specifications, suitableTasks, suitability sql.NullString
	var care, training, expert, safety sql.NullString
	var pricePerWeek, rating sql.NullInt64
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Category, &i.Image,
		&additionalImages, &specifications, &suitableTasks, &suitability,
		&i.MaxHireDuration, &i.MaxHireQuantity, &care, &training, &expert, &safety,
		&i.PricePerDay, &pricePerWeek, &i.OwnerID, &rating, &i.Available, &i.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, col := range []struct {
		src    sql.NullString
		target any
	}{
		{additionalImages, &i.AdditionalImages},
		{specifications, &i.Specifications},
		{suitableTasks, &i.SuitableTasks},
		{suitability, &i.Suitability},
	} {
		if err := decodeJSON(col.src, col.target); err != nil {
			return nil, err
		}
	}

	i.CareInstructions = stringPtr(care)
	i.TrainingRequired = stringPtr(training)
	i.ExpertSupportRequired = stringPtr(expert)
	i.SafetyInstructions = stringPtr(safety)
	i.PricePerWeek = intPtr(pricePerWeek)
	i.Rating = intPtr(rating)
	return &i, nil
}

// itemArgs returns the column values of item in itemColumns order, without id.
func itemArgs(item *model.Item) ([]any, error) {
	additionalImages, err := encodeList(item.AdditionalImages)
	if err != nil {
		return nil, err
	}
	specifications, err := encodeMap(item.Specifications)
	if err != nil {
		return nil, err
	}
	suitableTasks, err := encodeList(item.SuitableTasks)
	if err != nil {
		return nil, err
	}
	suitability, err := encodeList(item.Suitability)
	if err != nil {
		return nil, err
	}
	return []any{
		item.Name, item.Description, item.Category, item.Image,
		additionalImages, specifications, suitableTasks, suitability,
		item.MaxHireDuration, item.MaxHireQuantity,
		nullString(item.CareInstructions), nullString(item.TrainingRequired),
		nullString(item.ExpertSupportRequired), nullString(item.SafetyInstructions),
		item.PricePerDay, nullInt(item.PricePerWeek), item.OwnerID, nullInt(item.Rating),
		item.Available, item.CreatedAt,
	}, nil
}

func getItem(ctx context.Context, q queryRower, id int64) (*model.Item, error) {
	item, err := scanItem(q.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// itemLookup returns a function fetching items by ID, each at most once.
func (s *Store) itemLookup(ctx context.Context) func(id int64) (*model.Item, error) {
	seen := make(map[int64]*model.Item)
	return func(id int64) (*model.Item, error) {
		if item, ok := seen[id]; ok {
			if item == nil {
				return nil, nil
			}
			c := item.Clone()
			return &c, nil
		}
		item, err := s.GetItem(ctx, id)
		if err != nil {
			return nil, err
		}
		seen[id] = item
		if item == nil {
			return nil, nil
		}
		c := item.Clone()
		return &c, nil
	}
}

// GetItem returns an item by ID.
func (s *Store) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	return getItem(ctx, s.db, id)
}

func (s *Store) listItems(ctx context.Context, where string, args ...any) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// ListItems returns all items.
func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.listItems(ctx, "")
}

// ListItemsByCategory returns the items in the given category.
func (s *Store) ListItemsByCategory(ctx context.Context, category string) ([]model.Item, error) {
	return s.listItems(ctx, "WHERE category = ?", category)
}

// CreateItem creates a new item.
func (s *Store) CreateItem(ctx context.Context, n model.NewItem) (*model.Item, error) {
	item := n.Item(0, s.timestamp())
	args, err := itemArgs(&item)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO items (name, description, category, image, additional_images, specifications,
		     suitable_tasks, suitability, max_hire_duration, max_hire_quantity, care_instructions,
		     training_required, expert_support_required, safety_instructions, price_per_day,
		     price_per_week, owner_id, rating, available, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return s.GetItem(ctx, id)
}

// UpdateItem merges patch over the item inside a transaction. Returns nil if
// the item is unknown.
func (s *Store) UpdateItem(ctx context.Context, id int64, patch model.ItemPatch) (*model.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := getItem(ctx, tx, id)
	if err != nil || item == nil {
		return nil, err
	}

	patch.Apply(item)
	args, err := itemArgs(item)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET name = ?, description = ?, category = ?, image = ?, additional_images = ?,
		     specifications = ?, suitable_tasks = ?, suitability = ?, max_hire_duration = ?,
		     max_hire_quantity = ?, care_instructions = ?, training_required = ?,
		     expert_support_required = ?, safety_instructions = ?, price_per_day = ?,
		     price_per_week = ?, owner_id = ?, rating = ?, available = ?, created_at = ?
		 WHERE id = ?`,
		append(args, id)...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item update: %w", err)
	}
	return item, nil
}
