package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"quill/pkg/pagination"
	"quill/pkg/query"
	"quill/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a generation history repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "history"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Save(ctx context.Context, cmd CreateCommand) (*Record, error) {
	q := `
		INSERT INTO generations(persona_id, persona_name, user_task, prompt, model, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, persona_id, persona_name, user_task, prompt, model, duration_ms, created_at`

	args := []any{
		cmd.PersonaID,
		cmd.PersonaName,
		cmd.UserTask,
		cmd.Prompt,
		cmd.Model,
		cmd.DurationMS,
	}

	rec, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Record, error) {
		return repository.QueryOne(ctx, tx, q, args, scanRecord)
	})

	if err != nil {
		return nil, fmt.Errorf("insert generation: %w", err)
	}

	r.logger.Info("generation recorded",
		"id", rec.ID,
		"persona", rec.PersonaName,
		"model", rec.Model,
		"duration_ms", rec.DurationMS,
	)
	return &rec, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Record], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "PersonaName", "UserTask")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count generations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, err)
	}
	return &rec, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM generations WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, err)
	}

	r.logger.Info("generation record deleted", "id", id)
	return nil
}
