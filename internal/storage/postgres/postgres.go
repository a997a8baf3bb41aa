package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"tattooBooker/internal/config"
	"tattooBooker/internal/models"
	"tattooBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) migrate() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(s.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// BookingTimes returns the datetimes of all bookings for the artist inside
// the half-open range [from, to), in ascending order.
func (s *Storage) BookingTimes(artistID int, from, to time.Time) ([]time.Time, error) {
	query := `
		SELECT datetime
		FROM bookings
		WHERE artist_id = $1 AND datetime >= $2 AND datetime < $3
		ORDER BY datetime ASC`

	rows, err := s.DB.Query(query, artistID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking times: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err = rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan booking time: %w", err)
		}
		times = append(times, t.UTC())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking times: %w", err)
	}

	return times, nil
}

// BookingExistsAt reports whether any booking other than excludeID occupies
// the exact (artist, datetime) pair. Pass excludeID = 0 to exclude nothing.
func (s *Storage) BookingExistsAt(artistID int, at time.Time, excludeID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE artist_id = $1 AND datetime = $2 AND id <> $3
		)`

	var exists bool
	err := s.DB.QueryRow(query, artistID, at, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check booking existence: %w", err)
	}

	return exists, nil
}

// CreateBooking inserts a new booking and fills in its generated fields
// (ID, Reference, CreatedAt). The unique constraint on (artist_id, datetime)
// is the authoritative guard against double-booking; a violation surfaces
// as storage.ErrSlotTaken.
func (s *Storage) CreateBooking(b *models.Booking) error {
	b.Reference = uuid.NewString()

	query := `
		INSERT INTO bookings (reference, artist_id, name, email, phone, datetime,
			tattoo, skin_tone, palette, body_image, ref_images, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	err := s.DB.QueryRow(query,
		b.Reference,
		b.ArtistID,
		b.Name,
		b.Email,
		b.Phone,
		b.Datetime,
		b.Tattoo,
		b.SkinTone,
		b.Palette,
		b.BodyImage,
		pq.Array(b.RefImages),
		b.Status,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Code == "23505" && pqErr.Constraint == "bookings_artist_slot_key":
				return storage.ErrSlotTaken
			case pqErr.Code == "23503":
				return storage.ErrArtistNotFound
			}
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (s *Storage) GetBooking(id int) (*models.Booking, error) {
	query := `
		SELECT b.id, b.reference, b.artist_id, b.name, b.email, b.phone, b.datetime,
			b.tattoo, b.skin_tone, b.palette, b.body_image, b.ref_images, b.status,
			b.created_at, a.id, a.name, a.avatar_url
		FROM bookings b
		JOIN artists a ON a.id = b.artist_id
		WHERE b.id = $1`

	b, err := scanBooking(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

func (s *Storage) GetAllBookings() ([]models.Booking, error) {
	query := `
		SELECT b.id, b.reference, b.artist_id, b.name, b.email, b.phone, b.datetime,
			b.tattoo, b.skin_tone, b.palette, b.body_image, b.ref_images, b.status,
			b.created_at, a.id, a.name, a.avatar_url
		FROM bookings b
		JOIN artists a ON a.id = b.artist_id
		ORDER BY b.datetime ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// UpdateBooking applies the non-nil fields of upd to the booking and returns
// the updated row. Moving the booking onto an occupied slot surfaces as
// storage.ErrSlotTaken.
func (s *Storage) UpdateBooking(id int, upd *models.BookingUpdate) (*models.Booking, error) {
	var (
		set  []string
		args []any
	)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.ArtistID != nil {
		add("artist_id", *upd.ArtistID)
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Datetime != nil {
		add("datetime", *upd.Datetime)
	}
	if upd.Tattoo != nil {
		add("tattoo", *upd.Tattoo)
	}
	if upd.SkinTone != nil {
		add("skin_tone", *upd.SkinTone)
	}
	if upd.Palette != nil {
		add("palette", *upd.Palette)
	}
	if upd.BodyImage != nil {
		add("body_image", *upd.BodyImage)
	}
	if upd.RefImages != nil {
		add("ref_images", pq.Array(upd.RefImages))
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}

	if len(set) == 0 {
		return s.GetBooking(id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE bookings SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))

	result, err := s.DB.Exec(query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Code == "23505" && pqErr.Constraint == "bookings_artist_slot_key":
				return nil, storage.ErrSlotTaken
			case pqErr.Code == "23503":
				return nil, storage.ErrArtistNotFound
			}
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, storage.ErrBookingNotFound
	}

	return s.GetBooking(id)
}

func (s *Storage) DeleteBooking(id int) error {
	result, err := s.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

func (s *Storage) GetAllArtists() ([]models.Artist, error) {
	query := `
		SELECT id, name, bio, avatar_url, instagram_url
		FROM artists
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		err = rows.Scan(&a.ID, &a.Name, &a.Bio, &a.AvatarURL, &a.InstagramURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artists: %w", err)
	}

	return artists, nil
}

// GetWorks returns portfolio entries, newest first. A zero artistID means
// works of all artists.
func (s *Storage) GetWorks(artistID, limit int) ([]models.Work, error) {
	query := `
		SELECT id, artist_id, title, media_url
		FROM works
		WHERE $1 = 0 OR artist_id = $1
		ORDER BY id DESC
		LIMIT $2`

	rows, err := s.DB.Query(query, artistID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get works: %w", err)
	}
	defer rows.Close()

	var works []models.Work
	for rows.Next() {
		var w models.Work
		if err = rows.Scan(&w.ID, &w.ArtistID, &w.Title, &w.MediaURL); err != nil {
			return nil, fmt.Errorf("failed to scan work: %w", err)
		}
		works = append(works, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating works: %w", err)
	}

	return works, nil
}

func (s *Storage) CreateUser(name, email string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, created_at`

	user := models.User{Name: name, Email: email}

	err := s.DB.QueryRow(query, name, email).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, storage.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) GetAllUsers() ([]models.User, error) {
	query := `
		SELECT id, name, email, created_at
		FROM users
		ORDER BY id DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var (
		b      models.Booking
		artist models.ArtistSummary
	)

	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.ArtistID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.Datetime,
		&b.Tattoo,
		&b.SkinTone,
		&b.Palette,
		&b.BodyImage,
		pq.Array(&b.RefImages),
		&b.Status,
		&b.CreatedAt,
		&artist.ID,
		&artist.Name,
		&artist.AvatarURL,
	)
	if err != nil {
		return nil, err
	}

	b.Datetime = b.Datetime.UTC()
	b.Artist = &artist

	return &b, nil
}
