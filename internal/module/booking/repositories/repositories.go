package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"phoenix-booking-service/config"
	"phoenix-booking-service/internal/module/booking/models/entity"
	"phoenix-booking-service/internal/module/booking/models/request"
	"phoenix-booking-service/internal/module/booking/models/response"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/stripe/stripe-go/v82"
	"github.com/tidwall/gjson"
)

const (
	bookingColumns = `id, hotel_id, user_id, email, first_name, last_name, adult_count, child_count,
		check_in, check_out, total_cost, status, payment_status, payment_intent, created_at, updated_at`

	defaultListLimit = 100
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	httpClient  *circuit.HTTPClient
	asynqClient scheduler.Enqueuer
	stripe      *stripe.Client
	cfgServices *config.ServicesConfig
	hotels      *expirable.LRU[string, response.Hotel]
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	CountRoomType(ctx context.Context, hotelID, roomTypeID string) (int, error)
	FindRoomTypePrice(ctx context.Context, hotelID, roomTypeID string) (float64, error)
	FindHotel(ctx context.Context, hotelID string) (response.Hotel, error)
	AwardLoyaltyPoints(ctx context.Context, award request.LoyaltyAward) error
	// stripe
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (response.PaymentIntent, error)
	// asynq
	EnqueueLoyaltyAward(ctx context.Context, award request.LoyaltyAward) error
	// db
	CommittedRooms(ctx context.Context, hotelID, roomTypeID string, checkIn, checkOut time.Time, excludeBookingID uuid.NullUUID) (int, error)
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	UpdateBooking(ctx context.Context, booking *entity.Booking, replaceRooms bool) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error)
	FindBookingsByHotelID(ctx context.Context, hotelID string) ([]entity.Booking, error)
	FindBookings(ctx context.Context, filter request.BookingFilter) ([]entity.Booking, error)
}

func New(db *sqlx.DB, log log.Logger, httpClient *circuit.HTTPClient, asynqClient scheduler.Enqueuer, stripeClient *stripe.Client, cfgServices *config.ServicesConfig, cfgCache *config.CacheConfig) Repositories {
	size, ttl := 250, time.Minute
	if cfgCache != nil {
		size, ttl = cfgCache.Size, cfgCache.TTL
	}

	return &repositories{
		db:          db,
		log:         log,
		httpClient:  httpClient,
		asynqClient: asynqClient,
		stripe:      stripeClient,
		cfgServices: cfgServices,
		hotels:      expirable.NewLRU[string, response.Hotel](size, nil, ttl),
	}
}

func (r *repositories) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	endpoint := fmt.Sprintf("%s/api/private/token/validate?token=%s", r.cfgServices.IdentityServiceURL, url.QueryEscape(token))
	body, status, err := r.get(ctx, endpoint)
	if err != nil {
		r.log.Error(ctx, "error call identity service", err)
		return response.UserServiceValidate{}, errors.UpstreamUnavailable("identity service unavailable")
	}

	if status != http.StatusOK {
		r.log.Warn(ctx, "Invalid token", status)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	if err := json.Unmarshal(body, &respData); err != nil {
		return response.UserServiceValidate{}, errors.UpstreamUnavailable("error decode identity response")
	}

	if !respData.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// CountRoomType implements Repositories. Never cached.
func (r *repositories) CountRoomType(ctx context.Context, hotelID, roomTypeID string) (int, error) {
	endpoint := fmt.Sprintf("%s/api/hotels/%s/room-types/%s/count", r.cfgServices.HotelServiceURL, url.PathEscape(hotelID), url.PathEscape(roomTypeID))
	body, status, err := r.get(ctx, endpoint)
	if err != nil {
		r.log.Error(ctx, "error call hotel service", err)
		return 0, errors.UpstreamUnavailable("hotel catalog unavailable")
	}
	if status < 200 || status >= 300 {
		r.log.Error(ctx, "unexpected hotel service status", status)
		return 0, errors.UpstreamUnavailable(fmt.Sprintf("hotel catalog responded %d", status))
	}

	count := gjson.GetBytes(body, "count")
	if count.Type != gjson.Number || count.Int() < 0 {
		return 0, errors.UpstreamUnavailable("hotel catalog returned an invalid room count")
	}

	return int(count.Int()), nil
}

// FindRoomTypePrice implements Repositories.
func (r *repositories) FindRoomTypePrice(ctx context.Context, hotelID, roomTypeID string) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/hotels/%s/room-types/%s", r.cfgServices.HotelServiceURL, url.PathEscape(hotelID), url.PathEscape(roomTypeID))
	body, status, err := r.get(ctx, endpoint)
	if err != nil {
		r.log.Error(ctx, "error call hotel service", err)
		return 0, errors.UpstreamUnavailable("hotel catalog unavailable")
	}
	if status == http.StatusNotFound {
		return 0, errors.NotFound("room type not found")
	}
	if status < 200 || status >= 300 {
		return 0, errors.UpstreamUnavailable(fmt.Sprintf("hotel catalog responded %d", status))
	}

	price := gjson.GetBytes(body, "pricePerNight")
	if price.Type != gjson.Number {
		return 0, errors.UpstreamUnavailable("hotel catalog returned an invalid price")
	}

	return price.Float(), nil
}

// FindHotel implements Repositories. Summaries are served from a bounded LRU
// whose entries expire after the configured TTL.
func (r *repositories) FindHotel(ctx context.Context, hotelID string) (response.Hotel, error) {
	if hotel, ok := r.hotels.Get(hotelID); ok {
		return hotel, nil
	}

	endpoint := fmt.Sprintf("%s/api/hotels/%s", r.cfgServices.HotelServiceURL, url.PathEscape(hotelID))
	body, status, err := r.get(ctx, endpoint)
	if err != nil {
		return response.Hotel{}, errors.UpstreamUnavailable("hotel catalog unavailable")
	}
	if status == http.StatusNotFound {
		return response.Hotel{}, errors.NotFound("hotel not found")
	}
	if status < 200 || status >= 300 {
		return response.Hotel{}, errors.UpstreamUnavailable(fmt.Sprintf("hotel catalog responded %d", status))
	}

	hotel := response.Hotel{
		ID:      hotelID,
		Name:    gjson.GetBytes(body, "name").String(),
		City:    gjson.GetBytes(body, "city").String(),
		Country: gjson.GetBytes(body, "country").String(),
	}
	r.hotels.Add(hotelID, hotel)

	return hotel, nil
}

// AwardLoyaltyPoints implements Repositories.
func (r *repositories) AwardLoyaltyPoints(ctx context.Context, award request.LoyaltyAward) error {
	payload, err := json.Marshal(map[string]interface{}{
		"points": award.Points,
		"reason": award.Reason,
		"metadata": map[string]interface{}{
			"bookingId": award.BookingID,
			"totalCost": award.TotalCost,
		},
	})
	if err != nil {
		return errors.InternalServerError("error marshal loyalty award")
	}

	endpoint := fmt.Sprintf("%s/internal/users/%s/loyalty", r.cfgServices.IdentityServiceURL, url.PathEscape(award.UserID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLoyaltyAwardFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-service-key", r.cfgServices.InternalServiceKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLoyaltyAwardFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: identity service responded %d", errors.ErrLoyaltyAwardFailed, resp.StatusCode)
	}

	return nil
}

// CreatePaymentIntent implements Repositories. amount is in minor units.
func (r *repositories) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (response.PaymentIntent, error) {
	if r.stripe == nil {
		return response.PaymentIntent{}, errors.InternalServerError("payments are not configured")
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := r.stripe.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		r.log.Error(ctx, "error create payment intent", err)
		return response.PaymentIntent{}, errors.UpstreamUnavailable("payment provider unavailable")
	}

	return response.PaymentIntent{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	}, nil
}

// EnqueueLoyaltyAward implements Repositories.
func (r *repositories) EnqueueLoyaltyAward(ctx context.Context, award request.LoyaltyAward) error {
	payload, err := json.Marshal(award)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLoyaltyAwardFailed, err)
	}

	task := asynq.NewTask(scheduler.TypeAwardLoyaltyPoints, payload, asynq.MaxRetry(5), asynq.Timeout(30*time.Second))
	if _, err := r.asynqClient.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLoyaltyAwardFailed, err)
	}

	return nil
}

// CommittedRooms implements Repositories.
func (r *repositories) CommittedRooms(ctx context.Context, hotelID, roomTypeID string, checkIn, checkOut time.Time, excludeBookingID uuid.NullUUID) (int, error) {
	query := `SELECT COALESCE(SUM(br.number_of_rooms), 0)
		FROM booking_rooms br
		JOIN bookings b ON b.id = br.booking_id
		WHERE b.hotel_id = $1
			AND br.room_type_id = $2
			AND b.status IN ('pending', 'confirmed')
			AND b.check_in < $3
			AND b.check_out > $4
			AND ($5::uuid IS NULL OR b.id <> $5::uuid)`

	var committed int
	err := r.db.GetContext(ctx, &committed, query, hotelID, roomTypeID, checkOut, checkIn, excludeBookingID)
	if err != nil {
		r.log.Error(ctx, "error sum committed rooms", err)
		return 0, errors.InternalServerError("error sum committed rooms")
	}

	return committed, nil
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, hotel_id, user_id, email, first_name, last_name, adult_count, child_count,
			check_in, check_out, total_cost, status, payment_status, payment_intent, created_at)
		VALUES (:id, :hotel_id, :user_id, :email, :first_name, :last_name, :adult_count, :child_count,
			:check_in, :check_out, :total_cost, :status, :payment_status, :payment_intent, :created_at)
	`, booking)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error insert booking", err)
		return errors.InternalServerError("error insert booking")
	}

	if err := insertRooms(ctx, tx, booking); err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error insert booking rooms", err)
		return errors.InternalServerError("error insert booking rooms")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// UpdateBooking implements Repositories. Room lines are rewritten only when
// replaceRooms is set.
func (r *repositories) UpdateBooking(ctx context.Context, booking *entity.Booking, replaceRooms bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	res, err := tx.NamedExecContext(ctx, `
		UPDATE bookings
		SET check_in = :check_in, check_out = :check_out, total_cost = :total_cost,
			status = :status, payment_status = :payment_status, updated_at = :updated_at
		WHERE id = :id
	`, booking)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error update booking", err)
		return errors.InternalServerError("error update booking")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		tx.Rollback()
		return errors.NotFound("booking not found")
	}

	if replaceRooms {
		if _, err := tx.ExecContext(ctx, `DELETE FROM booking_rooms WHERE booking_id = $1`, booking.ID); err != nil {
			tx.Rollback()
			return errors.InternalServerError("error delete booking rooms")
		}
		if err := insertRooms(ctx, tx, booking); err != nil {
			tx.Rollback()
			r.log.Error(ctx, "error insert booking rooms", err)
			return errors.InternalServerError("error insert booking rooms")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

func insertRooms(ctx context.Context, tx *sqlx.Tx, booking *entity.Booking) error {
	for i := range booking.Rooms {
		room := booking.Rooms[i]
		room.BookingID = booking.ID
		room.LineNo = i
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO booking_rooms (booking_id, line_no, room_type_id, number_of_rooms, price_per_night)
			VALUES (:booking_id, :line_no, :room_type_id, :number_of_rooms, :price_per_night)
		`, room)
		if err != nil {
			return err
		}
		booking.Rooms[i] = room
	}
	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return entity.Booking{}, errors.NotFound("booking not found")
	}

	var booking entity.Booking
	err = r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}

	bookings := []entity.Booking{booking}
	if err := r.loadRooms(ctx, bookings); err != nil {
		return entity.Booking{}, err
	}

	return bookings[0], nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	return r.selectBookings(ctx, "error find bookings by user id", query, userID)
}

// FindBookingsByHotelID implements Repositories.
func (r *repositories) FindBookingsByHotelID(ctx context.Context, hotelID string) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE hotel_id = $1 ORDER BY created_at DESC`
	return r.selectBookings(ctx, "error find bookings by hotel id", query, hotelID)
}

// FindBookings implements Repositories. Date bounds apply to check-in, both
// inclusive.
func (r *repositories) FindBookings(ctx context.Context, filter request.BookingFilter) ([]entity.Booking, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.HotelID != "" {
		add("hotel_id = $%d", filter.HotelID)
	}
	if filter.StartDate != "" {
		add("check_in >= $%d", filter.StartDate)
	}
	if filter.EndDate != "" {
		add("check_in <= $%d", filter.EndDate)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY check_in DESC LIMIT $%d`, len(args))

	return r.selectBookings(ctx, "error find bookings", query, args...)
}

func (r *repositories) selectBookings(ctx context.Context, errMsg, query string, args ...interface{}) ([]entity.Booking, error) {
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		r.log.Error(ctx, errMsg, err)
		return nil, errors.InternalServerError(errMsg)
	}

	if err := r.loadRooms(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repositories) loadRooms(ctx context.Context, bookings []entity.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]string, 0, len(bookings))
	index := make(map[uuid.UUID]int, len(bookings))
	for i, b := range bookings {
		ids = append(ids, b.ID.String())
		index[b.ID] = i
	}

	var rooms []entity.BookingRoom
	err := r.db.SelectContext(ctx, &rooms, `
		SELECT booking_id, line_no, room_type_id, number_of_rooms, price_per_night
		FROM booking_rooms
		WHERE booking_id = ANY($1::uuid[])
		ORDER BY booking_id, line_no
	`, pq.Array(ids))
	if err != nil {
		r.log.Error(ctx, "error find booking rooms", err)
		return errors.InternalServerError("error find booking rooms")
	}

	for _, room := range rooms {
		if i, ok := index[room.BookingID]; ok {
			bookings[i].Rooms = append(bookings[i].Rooms, room)
		}
	}

	return nil
}
