package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bytewerk/leadboard/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Insert persists the lead and fills ID, Status and CreatedAt from the
// RETURNING clause. The serial sequence guarantees unique, never-reused ids.
func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (full_name, email, phone, address, job_importance, customer_experience, contact_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at
	`

	var rawStatus string
	err := r.DB.QueryRowContext(ctx, query,
		lead.FullName,
		lead.Email,
		lead.Phone,
		lead.Address,
		lead.JobImportance,
		lead.CustomerExperience,
		lead.ContactTime,
		string(lead.Status),
	).Scan(&lead.ID, &rawStatus, &lead.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23502" {
			return fmt.Errorf("leads insert rejected: %s", pgErr.ColumnName)
		}

		slog.Error("leads insert failed", "error", err)
		return err
	}

	lead.Status = entity.NormalizeStatus(rawStatus)
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	query := `
		SELECT id, full_name, email, phone, address, job_importance, customer_experience, contact_time, status, created_at
		FROM leads
		WHERE id = $1
	`

	var lead entity.Lead
	var rawStatus string

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.FullName,
		&lead.Email,
		&lead.Phone,
		&lead.Address,
		&lead.JobImportance,
		&lead.CustomerExperience,
		&lead.ContactTime,
		&rawStatus,
		&lead.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	lead.Status = entity.NormalizeStatus(rawStatus)
	return &lead, nil
}

// FindAll returns every lead in insertion order. Callers re-sort when they
// want newest first.
func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT id, full_name, email, phone, address, job_importance, customer_experience, contact_time, status, created_at
		FROM leads
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		var rawStatus string

		if err := rows.Scan(
			&lead.ID,
			&lead.FullName,
			&lead.Email,
			&lead.Phone,
			&lead.Address,
			&lead.JobImportance,
			&lead.CustomerExperience,
			&lead.ContactTime,
			&rawStatus,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}

		lead.Status = entity.NormalizeStatus(rawStatus)
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// Update merges only the patched columns. Returns the affected-row count so
// the caller can distinguish a missing id from a successful write.
func (r *LeadRepository) Update(ctx context.Context, id int, patch entity.LeadPatch) (int64, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FullName != nil {
		add("full_name", *patch.FullName)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.JobImportance != nil {
		add("job_importance", *patch.JobImportance)
	}
	if patch.CustomerExperience != nil {
		add("customer_experience", *patch.CustomerExperience)
	}
	if patch.ContactTime != nil {
		add("contact_time", *patch.ContactTime)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}

	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE leads SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *LeadRepository) Delete(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
