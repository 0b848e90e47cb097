// Package vocabset stores assembled vocabulary datasets in PostgreSQL.
package vocabset

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anukauchika/hskvocab/internal/adapter/postgres"
	"github.com/anukauchika/hskvocab/internal/domain"
)

const (
	tableDatasets = "vocab_datasets"
	tableGroups   = "vocab_groups"
	tableItems    = "vocab_items"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo persists datasets keyed by slug.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new vocabulary dataset repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// Item is a stored dataset item together with the group it belongs to.
type Item struct {
	Group int
	domain.GroupItem
}

// ReplaceDataset atomically swaps the dataset stored under slug for ds and
// returns the number of items written.
func (r *Repo) ReplaceDataset(ctx context.Context, slug string, ds domain.Dataset) (int, error) {
	if slug == "" {
		return 0, domain.NewValidationError("slug", "required")
	}

	var written int
	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		del, args, err := psql.Delete(tableDatasets).Where(squirrel.Eq{"slug": slug}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		if _, err := q.Exec(ctx, del, args...); err != nil {
			return postgres.MapError(err, "vocab_dataset", slug)
		}

		datasetID := uuid.New()
		ins, args, err := psql.Insert(tableDatasets).
			Columns("id", "slug", "kind", "source_lang", "target_lang", "group_count", "item_count").
			Values(datasetID, slug, ds.Kind, ds.From, ds.To, len(ds.Groups), ds.ItemCount()).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := q.Exec(ctx, ins, args...); err != nil {
			return postgres.MapError(err, "vocab_dataset", slug)
		}

		if _, err := r.insertGroups(ctx, datasetID, ds.Groups); err != nil {
			return postgres.MapError(err, "vocab_group", slug)
		}

		written, err = r.insertItems(ctx, datasetID, ds.Groups)
		if err != nil {
			return postgres.MapError(err, "vocab_item", slug)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

// CountItems returns how many items are stored for slug. A slug with no
// dataset row yields domain.ErrNotFound.
func (r *Repo) CountItems(ctx context.Context, slug string) (int, error) {
	query, args, err := psql.Select("count(i.id)").
		From(tableDatasets+" d").
		LeftJoin(tableItems+" i ON i.dataset_id = d.id").
		Where(squirrel.Eq{"d.slug": slug}).
		GroupBy("d.id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "vocab_dataset", slug)
	}
	return n, nil
}

// ListItems returns the items stored for slug in group then position order.
// group 0 lists every group.
func (r *Repo) ListItems(ctx context.Context, slug string, group int) ([]Item, error) {
	sel := psql.Select("i.group_no", "i.position", "i.word", "i.pinyin", "i.english", "i.tags").
		From(tableItems+" i").
		Join(tableDatasets+" d ON d.id = i.dataset_id").
		Where(squirrel.Eq{"d.slug": slug}).
		OrderBy("i.group_no ASC", "i.position ASC")
	if group > 0 {
		sel = sel.Where(squirrel.Eq{"i.group_no": group})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "vocab_item", slug)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Item, error) {
		var it Item
		err := row.Scan(&it.Group, &it.ID, &it.Word, &it.Pinyin, &it.English, &it.Tags)
		return it, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "vocab_item", slug)
	}
	return items, nil
}

// LoadDataset rebuilds the stored dataset for slug.
func (r *Repo) LoadDataset(ctx context.Context, slug string) (domain.Dataset, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	head, args, err := psql.Select("id", "kind", "source_lang", "target_lang").
		From(tableDatasets).
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("build load: %w", err)
	}

	var (
		datasetID uuid.UUID
		ds        domain.Dataset
	)
	if err := q.QueryRow(ctx, head, args...).Scan(&datasetID, &ds.Kind, &ds.From, &ds.To); err != nil {
		return domain.Dataset{}, postgres.MapError(err, "vocab_dataset", slug)
	}
	ds.Search = domain.DatasetSearchFields()

	groupsSQL, args, err := psql.Select("group_no", "tags").
		From(tableGroups).
		Where(squirrel.Eq{"dataset_id": datasetID}).
		OrderBy("group_no ASC").
		ToSql()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("build groups: %w", err)
	}

	rows, err := q.Query(ctx, groupsSQL, args...)
	if err != nil {
		return domain.Dataset{}, postgres.MapError(err, "vocab_group", slug)
	}
	ds.Groups, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Group, error) {
		g := domain.Group{Items: []domain.GroupItem{}}
		err := row.Scan(&g.Group, &g.Tags)
		return g, err
	})
	if err != nil {
		return domain.Dataset{}, postgres.MapError(err, "vocab_group", slug)
	}

	items, err := r.ListItems(ctx, slug, 0)
	if err != nil {
		return domain.Dataset{}, err
	}

	index := make(map[int]int, len(ds.Groups))
	for i, g := range ds.Groups {
		index[g.Group] = i
	}
	for _, it := range items {
		gi, ok := index[it.Group]
		if !ok {
			continue
		}
		ds.Groups[gi].Items = append(ds.Groups[gi].Items, it.GroupItem)
	}

	return ds, nil
}

func (r *Repo) insertGroups(ctx context.Context, datasetID uuid.UUID, groups []domain.Group) (int, error) {
	if len(groups) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, g := range groups {
		batch.Queue(
			`INSERT INTO vocab_groups (dataset_id, group_no, tags) VALUES ($1, $2, $3)`,
			datasetID, g.Group, nonNil(g.Tags),
		)
	}

	return r.sendBatchExec(ctx, batch)
}

func (r *Repo) insertItems(ctx context.Context, datasetID uuid.UUID, groups []domain.Group) (int, error) {
	batch := &pgx.Batch{}
	for _, g := range groups {
		for _, it := range g.Items {
			batch.Queue(
				`INSERT INTO vocab_items (id, dataset_id, group_no, position, word, pinyin, english, tags)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				uuid.New(), datasetID, g.Group, it.ID, it.Word, it.Pinyin, it.English, nonNil(it.Tags),
			)
		}
	}
	if batch.Len() == 0 {
		return 0, nil
	}

	return r.sendBatchExec(ctx, batch)
}

// sendBatchExec sends a pgx.Batch and counts affected rows from Exec results.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch exec: %w", err)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
