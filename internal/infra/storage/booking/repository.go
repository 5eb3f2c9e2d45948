package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
)

const tableBookings = "tbl_booking"

var bookingColumns = []string{
	"id",
	colConsultantID,
	colSecondaryConsultantID,
	colThirdConsultantID,
	colAddedBy,
	colTeamID,
	colSaleType,
	colConvertedStatus,
	colBookingDate,
	"fld_booking_slot",
	"fld_consultation_sts",
	"fld_call_request_sts",
	"fld_timezone",
	colAddedOn,
}

// Repository репозиторий для чтения броней
type Repository struct {
	db      DBExecutor
	builder sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor, builder sqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// CountByFilter считает брони, подходящие под фильтр статистики.
// Все значения передаются параметрами, текст запроса собирается только из констант.
func (r *Repository) CountByFilter(ctx context.Context, filter domain.StatsFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.countQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("%w: CountByFilter - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountByFilter - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

func (r *Repository) countQuery(filter domain.StatsFilter) (string, []interface{}, error) {
	return applyConditions(
		r.builder.Select("COUNT(*)").From(tableBookings),
		statsConditions(r.builder, filter),
	).ToSql()
}

// GetParticularStatusCalls брони на дату, у которых и статус запроса звонка,
// и статус консультации равны filter.Status, а звонок не отключён
func (r *Repository) GetParticularStatusCalls(ctx context.Context, filter domain.StatusCallsFilter) ([]*domain.Booking, error) {
	sb := r.builder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"fld_call_request_sts": filter.Status}).
		Where(squirrel.Eq{"fld_consultation_sts": filter.Status}).
		Where(squirrel.Eq{colBookingDate: filter.Date}).
		Where(squirrel.Eq{"callDisabled": nil})

	if filter.CRMID != nil {
		sb = sb.Where(squirrel.Eq{colAddedBy: *filter.CRMID})
	}

	query, args, err := sb.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetParticularStatusCalls - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetParticularStatusCalls", query, args)
}

// GetForSchedule брони в интервале дат для списка слотов
func (r *Repository) GetForSchedule(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Booking, error) {
	query, args, err := applyConditions(
		r.builder.Select(bookingColumns...).From(tableBookings),
		scheduleConditions(r.builder, filter),
	).OrderBy(colBookingDate+" ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForSchedule - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetForSchedule", query, args)
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrExecQuery, op, err)
	}

	return bookings, nil
}

func scanBooking(rows *sql.Rows) (*domain.Booking, error) {
	var booking domain.Booking
	var bookingDate sql.NullString

	err := rows.Scan(
		&booking.ID,
		&booking.ConsultantID,
		&booking.SecondaryConsultantID,
		&booking.ThirdConsultantID,
		&booking.AddedBy,
		&booking.TeamID,
		&booking.SaleType,
		&booking.ConvertedStatus,
		&bookingDate,
		&booking.BookingSlot,
		&booking.ConsultationStatus,
		&booking.CallRequestStatus,
		&booking.Timezone,
		&booking.AddedOn,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = normalizeDate(bookingDate)
	return &booking, nil
}

// normalizeDate приводит DATE из любого драйвера к "YYYY-MM-DD":
// pq отдаёт time.Time (в строке RFC3339), mysql и sqlite - строку
func normalizeDate(value sql.NullString) string {
	if !value.Valid {
		return ""
	}
	if len(value.String) >= len(domain.DateFormat) {
		return value.String[:len(domain.DateFormat)]
	}
	return value.String
}
