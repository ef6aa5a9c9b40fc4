package oplog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hourlystay/HS-OpsService/internal/domain"
	"github.com/hourlystay/HS-OpsService/pkg/psqlbuilder"
)

// Repository репозиторий журнала операций
//
// Журнал append-only: записи создаются и читаются, обновлений и удалений нет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал операций
func (r *Repository) Append(ctx context.Context, event domain.OpEvent) (*domain.OpEvent, error) {
	var mode *string
	if event.Mode != nil {
		m := string(*event.Mode)
		mode = &m
	}

	query, args, err := psqlbuilder.Insert("hourly_oplog").
		Columns(
			"hotel_id",
			"kind",
			"actor_user_id",
			"mode",
			"window_start",
			"window_end",
			"booking_id",
			"details",
		).
		Values(
			event.HotelID,
			string(event.Kind),
			event.ActorUserID,
			mode,
			event.WindowStart,
			event.WindowEnd,
			event.BookingID,
			event.Details,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	return &event, nil
}

// ListByHotel возвращает последние записи журнала по отелю, новые первыми
func (r *Repository) ListByHotel(ctx context.Context, hotelID int64, limit uint64) ([]domain.OpEvent, error) {
	if limit == 0 {
		limit = 50
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"hotel_id",
		"kind",
		"actor_user_id",
		"mode",
		"window_start",
		"window_end",
		"booking_id",
		"details",
		"created_at",
	).
		From("hourly_oplog").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotel - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotel - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]domain.OpEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByHotel - rows iteration: %v", ErrScanRow, err)
	}

	return events, nil
}

func scanEvent(rows *sql.Rows) (domain.OpEvent, error) {
	var (
		event       domain.OpEvent
		kind        string
		mode        sql.NullString
		windowStart sql.NullTime
		windowEnd   sql.NullTime
		bookingID   sql.NullInt64
		createdAt   sql.NullTime
	)

	err := rows.Scan(
		&event.ID,
		&event.HotelID,
		&kind,
		&event.ActorUserID,
		&mode,
		&windowStart,
		&windowEnd,
		&bookingID,
		&event.Details,
		&createdAt,
	)
	if err != nil {
		return domain.OpEvent{}, fmt.Errorf("%w: scanEvent: %v", ErrScanRow, err)
	}

	event.Kind = domain.OpEventKind(kind)
	if mode.Valid {
		m := domain.HourlyMode(mode.String)
		event.Mode = &m
	}
	if windowStart.Valid {
		event.WindowStart = &windowStart.Time
	}
	if windowEnd.Valid {
		event.WindowEnd = &windowEnd.Time
	}
	if bookingID.Valid {
		event.BookingID = &bookingID.Int64
	}
	event.CreatedAt = createdAt.Time

	return event, nil
}
