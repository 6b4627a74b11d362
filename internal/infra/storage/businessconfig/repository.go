package businessconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HairdresserBot/pkg/dbmetrics"
	"github.com/m04kA/SMC-HairdresserBot/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками салона (ключ-значение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey получает значение настройки по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("business_config").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrConfigNotFound
		}
		return "", fmt.Errorf("%w: GetByKey - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// Upsert создает или обновляет настройку
func (r *Repository) Upsert(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_config").
		Columns("key", "value").
		Values(key, value).
		Suffix(`ON CONFLICT (key) DO UPDATE
			SET value = EXCLUDED.value,
			    updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
