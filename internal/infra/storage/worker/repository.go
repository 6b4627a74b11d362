package worker

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

// Repository репозиторий для работы с работниками, их расписанием и услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория работников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает всех активных работников, отсортированных по имени
func (r *Repository) GetActive(ctx context.Context) ([]*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialty", "is_active", "created_at").
		From("workers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	workers := make([]*domain.Worker, 0)
	for rows.Next() {
		var w domain.Worker
		var createdAt sql.NullTime

		if err := rows.Scan(&w.ID, &w.Name, &w.Specialty, &w.IsActive, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetActive - scan row: %v", ErrScanRow, err)
		}

		w.CreatedAt = createdAt.Time
		workers = append(workers, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActive - rows error: %v", ErrScanRow, err)
	}

	return workers, nil
}

// GetByID получает работника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialty", "is_active", "created_at").
		From("workers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.Worker
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID,
		&w.Name,
		&w.Specialty,
		&w.IsActive,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan worker: %v", ErrScanRow, err)
	}

	w.CreatedAt = createdAt.Time

	return &w, nil
}

// GetScheduleForDay получает расписание работника на день недели (0 = воскресенье)
// Возвращает ErrScheduleNotFound при отсутствии строки расписания
func (r *Repository) GetScheduleForDay(ctx context.Context, workerID int64, dayOfWeek int) (*domain.WorkerSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "worker_id", "day_of_week", "start_time", "end_time", "is_working").
		From("worker_schedules").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForDay - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.WorkerSchedule

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.WorkerID,
		&s.DayOfWeek,
		&s.StartTime,
		&s.EndTime,
		&s.IsWorking,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("%w: GetScheduleForDay - scan schedule: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetServices получает услуги работника, отсортированные по названию
func (r *Repository) GetServices(ctx context.Context, workerID int64) ([]*domain.WorkerService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.id", "s.name", "s.duration_minutes", "s.price").
		From("worker_services s").
		Join("worker_service_map m ON m.service_id = s.id").
		Where(squirrel.Eq{"m.worker_id": workerID}).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.WorkerService, 0)
	for rows.Next() {
		var svc domain.WorkerService

		if err := rows.Scan(&svc.ID, &svc.Name, &svc.DurationMinutes, &svc.Price); err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan row: %v", ErrScanRow, err)
		}

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
