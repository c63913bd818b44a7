package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/domain"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/dbmetrics"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/psqlbuilder"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/types"
)

// DBExecutor интерфейс исполнителя запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с недельными расписаниями провайдеров.
// Расписание хранится как строка-заголовок (timezone) и по строке на день недели.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProvider получает недельное расписание провайдера
func (r *Repository) GetByProvider(ctx context.Context, providerID int64) (*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("timezone", "updated_at").
		From("work_schedules").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - build header query: %v", ErrBuildQuery, err)
	}

	sched := &domain.WorkSchedule{ProviderID: providerID}
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&sched.Timezone, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - scan header: %v", ErrScanRow, err)
	}
	sched.UpdatedAt = updatedAt.Time

	query, args, err = psqlbuilder.Select("weekday", "enabled", "start_local", "end_local").
		From("work_schedule_days").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - build days query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - execute days query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var day domain.DayHours
		var start, end sql.NullString

		if err := rows.Scan(&weekday, &day.Enabled, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetByProvider - scan day: %v", ErrScanRow, err)
		}

		if start.Valid {
			parsed := types.TimeString("")
			if err := parsed.Scan(start.String); err != nil {
				return nil, fmt.Errorf("%w: GetByProvider - parse start_local: %v", ErrScanRow, err)
			}
			day.Start = parsed
		}
		if end.Valid {
			parsed := types.TimeString("")
			if err := parsed.Scan(end.String); err != nil {
				return nil, fmt.Errorf("%w: GetByProvider - parse end_local: %v", ErrScanRow, err)
			}
			day.End = parsed
		}

		setWeekday(&sched.Hours, time.Weekday(weekday), day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - rows error: %v", ErrScanRow, err)
	}

	return sched, nil
}

// Upsert сохраняет недельное расписание провайдера целиком.
// Вызывается внутри транзакции (см. service/schedule): заголовок обновляется
// через ON CONFLICT, дневные строки перезаписываются.
func (r *Repository) Upsert(ctx context.Context, sched *domain.WorkSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("work_schedules").
		Columns("provider_id", "timezone").
		Values(sched.ProviderID, sched.Timezone).
		Suffix("ON CONFLICT (provider_id) DO UPDATE SET timezone = EXCLUDED.timezone, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build header query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute header upsert: %v", ErrExecQuery, err)
	}

	query, args, err = psqlbuilder.Delete("work_schedule_days").
		Where(squirrel.Eq{"provider_id": sched.ProviderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build days delete: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute days delete: %v", ErrExecQuery, err)
	}

	insert := psqlbuilder.Insert("work_schedule_days").
		Columns("provider_id", "weekday", "enabled", "start_local", "end_local")

	for d := time.Sunday; d <= time.Saturday; d++ {
		day := sched.Hours.ForWeekday(d)
		var start, end interface{}
		if day.Enabled {
			start, end = day.Start, day.End
		}
		insert = insert.Values(sched.ProviderID, int(d), day.Enabled, start, end)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build days insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute days insert: %v", ErrExecQuery, err)
	}

	return nil
}

func setWeekday(hours *domain.WeeklyHours, day time.Weekday, value domain.DayHours) {
	switch day {
	case time.Monday:
		hours.Monday = value
	case time.Tuesday:
		hours.Tuesday = value
	case time.Wednesday:
		hours.Wednesday = value
	case time.Thursday:
		hours.Thursday = value
	case time.Friday:
		hours.Friday = value
	case time.Saturday:
		hours.Saturday = value
	case time.Sunday:
		hours.Sunday = value
	}
}
