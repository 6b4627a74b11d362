package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/dbmetrics"
	"github.com/m04kA/SMC-HairdresserBot/pkg/psqlbuilder"
)

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreate находит пользователя по номеру телефона или создает нового
// Каждое входящее сообщение обновляет last_contact; имя не затирается пустым значением
func (r *Repository) GetOrCreate(ctx context.Context, phoneNumber string, name *string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("phone_number", "name", "last_contact").
		Values(phoneNumber, name, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (phone_number) DO UPDATE
			SET last_contact = NOW(),
			    name = COALESCE(EXCLUDED.name, users.name)
			RETURNING id, phone_number, name, created_at, last_contact`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - build upsert query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	var createdAt, lastContact sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.PhoneNumber,
		&u.Name,
		&createdAt,
		&lastContact,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - scan user: %v", ErrScanRow, err)
	}

	u.CreatedAt = createdAt.Time
	u.LastContact = lastContact.Time

	return &u, nil
}

// GetByPhone находит пользователя по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "phone_number", "name", "created_at", "last_contact").
		From("users").
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	var createdAt, lastContact sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.PhoneNumber,
		&u.Name,
		&createdAt,
		&lastContact,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: GetByPhone - scan user: %v", ErrScanRow, err)
	}

	u.CreatedAt = createdAt.Time
	u.LastContact = lastContact.Time

	return &u, nil
}
