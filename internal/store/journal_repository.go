package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/models"
	"github.com/jackc/pgerrcode"
)

const executionsTable = "executions"

var executionColumns = []string{
	"id",
	"run_id",
	"item_index",
	"sandbox",
	"document_id",
	"signature_request_id",
	"status",
	"error",
	"created_at",
}

// journalRepository is the SQL implementation of [JournalRepository]. It
// works on both the SQLite and the PostgreSQL schema.
type journalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] backed by db.
func NewJournalRepository(db *DB, log *logger.Logger) JournalRepository {
	log.Debug().Str("dialect", db.dialect).Msg("creating journal repository")
	return &journalRepository{
		db:     db,
		logger: log,
	}
}

// Record implements [JournalRepository]. A retryable PostgreSQL failure is
// attempted once more.
//
// Error handling:
//   - unique_violation (23505) → [ErrDuplicateExecution].
//   - query building failure → [ErrBuildingSQLQuery].
//   - any other driver error → [ErrExecutingQuery].
func (r *journalRepository) Record(ctx context.Context, record models.ExecutionRecord) error {
	log := logger.FromContext(ctx)

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.buildInsertQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*journalRepository.Record").Msg("retrying journal insert")
		_, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.Record").Msg("error inserting execution")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrDuplicateExecution
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListByRun implements [JournalRepository].
func (r *journalRepository) ListByRun(ctx context.Context, runID string) ([]models.ExecutionRecord, error) {
	return r.list(ctx, sq.Eq{"run_id": runID}, "item_index")
}

// ListOrphanedDocuments implements [JournalRepository].
func (r *journalRepository) ListOrphanedDocuments(ctx context.Context) ([]models.ExecutionRecord, error) {
	return r.list(ctx, sq.Eq{"status": string(models.ExecutionDocumentOrphaned)}, "created_at", "id")
}

func (r *journalRepository) buildInsertQuery(record models.ExecutionRecord) (string, []any, error) {
	return r.db.builder().
		Insert(executionsTable).
		Columns(executionColumns[1:]...).
		Values(
			record.RunID,
			record.ItemIndex,
			record.Sandbox,
			record.DocumentID,
			record.SignatureRequestID,
			string(record.Status),
			record.Error,
			record.CreatedAt,
		).
		ToSql()
}

func (r *journalRepository) buildSelectQuery(where sq.Eq, orderBy ...string) (string, []any, error) {
	return r.db.builder().
		Select(executionColumns...).
		From(executionsTable).
		Where(where).
		OrderBy(orderBy...).
		ToSql()
}

func (r *journalRepository) list(ctx context.Context, where sq.Eq, orderBy ...string) ([]models.ExecutionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectQuery(where, orderBy...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.list").Msg("error querying executions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ExecutionRecord, 0)
	for rows.Next() {
		var (
			rec    models.ExecutionRecord
			status string
		)
		if err = rows.Scan(
			&rec.ID,
			&rec.RunID,
			&rec.ItemIndex,
			&rec.Sandbox,
			&rec.DocumentID,
			&rec.SignatureRequestID,
			&status,
			&rec.Error,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rec.Status = models.ExecutionStatus(status)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
