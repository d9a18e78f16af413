package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sifat-99/driverly/internal/domain"
	"github.com/sifat-99/driverly/pkg/psqlbuilder"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"user_id",
	"car_name",
	"car_class",
	"pickup_address",
	"dropoff_address",
	"pickup_lng",
	"pickup_lat",
	"dropoff_lng",
	"dropoff_lat",
	"pickup_date",
	"dropoff_date",
	"total_days",
	"total_fare",
	"status",
	"payment_status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Координаты хранятся как пары lng/lat; GeoJSON-форма восстанавливается при чтении
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"car_name",
			"car_class",
			"pickup_address",
			"dropoff_address",
			"pickup_lng",
			"pickup_lat",
			"dropoff_lng",
			"dropoff_lat",
			"pickup_date",
			"dropoff_date",
			"total_days",
			"total_fare",
			"status",
			"payment_status",
		).
		Values(
			booking.UserID,
			booking.CarName,
			booking.CarClass,
			booking.PickupAddress,
			booking.DropoffAddress,
			booking.PickupPoint.Longitude(),
			booking.PickupPoint.Latitude(),
			booking.DropoffPoint.Longitude(),
			booking.DropoffPoint.Latitude(),
			booking.PickupDate,
			booking.DropoffDate,
			booking.TotalDays,
			booking.TotalFare,
			booking.Status,
			booking.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetAll получает все бронирования, новые первыми
// Используется административной панелью
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatuses обновляет статус и/или статус оплаты одним UPDATE
// Одиночная запись исключает частичное применение при ошибке
func (r *Repository) UpdateStatuses(ctx context.Context, id int64, status *domain.BookingStatus, paymentStatus *domain.PaymentStatus) error {
	builder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status != nil {
		builder = builder.Set("status", *status)
	}
	if paymentStatus != nil {
		builder = builder.Set("payment_status", *paymentStatus)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatuses - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "UpdateStatuses", query, args)
}

// Delete удаляет бронирование (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "Delete", query, args)
}

// execExpectingRow выполняет запрос и возвращает ErrBookingNotFound, если
// ни одна строка не была затронута
func (r *Repository) execExpectingRow(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var pickupLng, pickupLat, dropoffLng, dropoffLat float64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CarName,
		&booking.CarClass,
		&booking.PickupAddress,
		&booking.DropoffAddress,
		&pickupLng,
		&pickupLat,
		&dropoffLng,
		&dropoffLat,
		&booking.PickupDate,
		&booking.DropoffDate,
		&booking.TotalDays,
		&booking.TotalFare,
		&booking.Status,
		&booking.PaymentStatus,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.PickupPoint = domain.NewGeoPoint(pickupLng, pickupLat)
	booking.DropoffPoint = domain.NewGeoPoint(dropoffLng, dropoffLat)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
