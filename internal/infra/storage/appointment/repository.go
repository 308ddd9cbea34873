package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/sqlbuilder"
	"github.com/m04kA/BRB-BookingService/pkg/txmanager"
)

// Сортировка списка записей в админке
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	defaultSortField = "start_at"
)

// sortColumns явный whitelist полей сортировки
// Все, что не входит в этот набор, откатывается к start_at ASC
var sortColumns = map[string]string{
	"id":          "id",
	"client_name": "client_name",
	"phone":       "phone",
	"service":     "service",
	"start_at":    "start_at",
	"end_at":      "end_at",
	"created_at":  "created_at",
}

// sortFieldOrder порядок колонок для админской таблицы
var sortFieldOrder = []string{"id", "client_name", "phone", "service", "start_at", "end_at", "created_at"}

// SortFields возвращает упорядоченный список допустимых полей сортировки
func SortFields() []string {
	fields := make([]string, len(sortFieldOrder))
	copy(fields, sortFieldOrder)
	return fields
}

// IsSortField возвращает true, если поле входит в whitelist сортировки
func IsSortField(field string) bool {
	_, ok := sortColumns[field]
	return ok
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте есть активная транзакция (txmanager), использует её -
// это обязательно для сценария бронирования, где проверка пересечений
// и вставка должны выполняться атомарно
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("appointments").
		Columns(
			"client_name",
			"phone",
			"service",
			"start_at",
			"end_at",
		).
		Values(
			appt.ClientName,
			appt.Phone,
			appt.Service,
			appt.StartAt,
			appt.EndAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// CountOverlapping подсчитывает записи, пересекающиеся с интервалом [start, end)
// Стандартная проверка пересечения полуоткрытых интервалов:
// start_at < end AND end_at > start
// Календарь общий - услуга и мастер не учитываются
func (r *Repository) CountOverlapping(ctx context.Context, start, end time.Time) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByDay получает все записи на указанный календарный день
// Отсортированы по времени начала (ASC)
func (r *Repository) GetByDay(ctx context.Context, day time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := selectAppointments().
		Where(squirrel.GtOrEq{"start_at": dayStart}).
		Where(squirrel.Lt{"start_at": dayEnd}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetUpcoming получает записи, которые еще не начались
// Отсортированы по времени начала (ASC)
func (r *Repository) GetUpcoming(ctx context.Context, now time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.GtOrEq{"start_at": now}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// List получает все записи с сортировкой для админки
// sortField вне whitelist и некорректный order откатываются
// к start_at ASC (см. sortColumns)
func (r *Repository) List(ctx context.Context, sortField, order string) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	column, ok := sortColumns[sortField]
	if !ok {
		column = sortColumns[defaultSortField]
		order = OrderAsc
	}

	direction := "ASC"
	if order == OrderDesc {
		direction = "DESC"
	}

	query, args, err := selectAppointments().
		OrderBy(column + " " + direction).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Delete удаляет запись (физическое удаление - так работает админка)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func selectAppointments() squirrel.SelectBuilder {
	return sqlbuilder.Select(
		"id",
		"client_name",
		"phone",
		"service",
		"start_at",
		"end_at",
		"created_at",
	).From("appointments")
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ClientName,
			&appt.Phone,
			&appt.Service,
			&appt.StartAt,
			&appt.EndAt,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
