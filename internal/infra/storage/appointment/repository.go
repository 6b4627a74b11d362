package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/dbmetrics"
	"github.com/m04kA/SMC-HairdresserBot/pkg/psqlbuilder"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// Имя частичного уникального индекса, защищающего слот от двойного бронирования:
// UNIQUE (worker_id, appointment_date, start_time) WHERE status <> 'cancelled'
const slotUniqueIndex = "ux_appointments_worker_slot"

var appointmentColumns = []string{
	"id",
	"user_id",
	"worker_id",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"status",
	"service_id",
	"service_name",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на прием
// Гонка двух одновременных бронирований одного слота разрешается на уровне БД:
// проигравший INSERT нарушает частичный уникальный индекс и получает ErrSlotTaken
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"user_id",
			"worker_id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"status",
			"service_id",
			"service_name",
			"notes",
		).
		Values(
			appt.UserID,
			appt.WorkerID,
			appt.Date,
			appt.StartTime,
			appt.DurationMinutes,
			appt.Status,
			appt.ServiceID,
			appt.ServiceName,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isSlotUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetActiveByWorkerAndDate получает активные (не отмененные) записи работника на дату
// Внутри транзакции строки блокируются (FOR UPDATE) - используется при создании записи
func (r *Repository) GetActiveByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByWorkerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByWorkerAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// FindActiveSlot ищет активную запись на конкретный слот работника
// Возвращает ErrAppointmentNotFound, если слот свободен
func (r *Repository) FindActiveSlot(ctx context.Context, workerID int64, date time.Time, startTime types.TimeString) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveSlot - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: FindActiveSlot - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// HasActiveSlot проверяет наличие активной записи на слот
// excludeID позволяет исключить одну запись - используется при переносе записи на другой слот
func (r *Repository) HasActiveSlot(ctx context.Context, workerID int64, date time.Time, startTime types.TimeString, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveSlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasActiveSlot - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// GetActiveByUser получает активные записи пользователя с именем работника
// Используется ботом для списка отмены и для истории записей
func (r *Repository) GetActiveByUser(ctx context.Context, userID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, 0, len(appointmentColumns)+1)
	for _, c := range appointmentColumns {
		columns = append(columns, "a."+c)
	}
	columns = append(columns, "w.name AS worker_name")

	query, args, err := psqlbuilder.Select(columns...).
		From("appointments a").
		LeftJoin("workers w ON w.id = a.worker_id").
		Where(squirrel.Eq{"a.user_id": userID}).
		Where(squirrel.NotEq{"a.status": domain.StatusCancelled}).
		OrderBy("a.appointment_date ASC, a.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.UserID,
			&appt.WorkerID,
			&appt.Date,
			&appt.StartTime,
			&appt.DurationMinutes,
			&appt.Status,
			&appt.ServiceID,
			&appt.ServiceName,
			&appt.Notes,
			&createdAt,
			&updatedAt,
			&appt.WorkerName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveByUser - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUser - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// CancelOwned отменяет запись, если она принадлежит пользователю и еще может быть отменена
// Повторная отмена и чужая запись одинаково возвращают ErrAppointmentNotFound:
// UPDATE затрагивает только строки пользователя в отменяемых статусах
func (r *Repository) CancelOwned(ctx context.Context, id, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"status": []string{
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
		}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelOwned - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelOwned - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CancelOwned - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// UpdateSlot переносит запись на другую дату и время
// Конфликт с другой активной записью транслируется в ErrSlotTaken
func (r *Repository) UpdateSlot(ctx context.Context, id int64, date time.Time, startTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("appointment_date", date).
		Set("start_time", startTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSlot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isSlotUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateSlot - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.WorkerID,
		&appt.Date,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.ServiceID,
		&appt.ServiceName,
		&appt.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// isSlotUniqueViolation проверяет нарушение уникального индекса слота (SQLSTATE 23505)
func isSlotUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == slotUniqueIndex
}
