package cities

import (
	"context"
	"database/sql"
)

// CityRepository defines persistence operations for city records.
type CityRepository interface {
	Create(ctx context.Context, city *City) error
	FindByID(ctx context.Context, id string) (*City, error)
	Update(ctx context.Context, city *City) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]City, error)

	// DeleteAll clears the table. Used by the import tool only.
	DeleteAll(ctx context.Context) error
}

// cityRepo is the MariaDB implementation of CityRepository.
type cityRepo struct {
	db *sql.DB
}

// NewCityRepository creates a new MariaDB-backed city repository.
func NewCityRepository(db *sql.DB) CityRepository {
	return &cityRepo{db: db}
}

// cityCols is the column list for city queries.
const cityCols = `id, city_name, country, emoji, date, notes,
       lat, lng, client_id, created_at, updated_at`

// scanCity reads a row into a City struct. Returns (nil, nil) on no rows.
func scanCity(scanner interface{ Scan(...any) error }) (*City, error) {
	c := &City{}
	err := scanner.Scan(&c.ID, &c.CityName, &c.Country, &c.Emoji, &c.Date, &c.Notes,
		&c.Position.Lat, &c.Position.Lng, &c.ClientID, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// Create inserts a new city record.
func (r *cityRepo) Create(ctx context.Context, city *City) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cities (id, city_name, country, emoji, date, notes,
		        lat, lng, client_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		city.ID, city.CityName, city.Country, city.Emoji, city.Date, city.Notes,
		city.Position.Lat, city.Position.Lng, city.ClientID,
		city.CreatedAt, city.UpdatedAt,
	)
	return err
}

// FindByID returns a single city by ID, or nil if none exists.
func (r *cityRepo) FindByID(ctx context.Context, id string) (*City, error) {
	return scanCity(r.db.QueryRowContext(ctx,
		`SELECT `+cityCols+` FROM cities WHERE id = ?`, id))
}

// Update writes the full merged record back. Last write wins on concurrent
// updates; there is no version column.
func (r *cityRepo) Update(ctx context.Context, city *City) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE cities SET city_name = ?, country = ?, emoji = ?, date = ?,
		        notes = ?, lat = ?, lng = ?, client_id = ?, updated_at = ?
		 WHERE id = ?`,
		city.CityName, city.Country, city.Emoji, city.Date,
		city.Notes, city.Position.Lat, city.Position.Lng, city.ClientID,
		city.UpdatedAt, city.ID,
	)
	return err
}

// Delete removes a city record.
func (r *cityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = ?`, id)
	return err
}

// List returns all cities ordered by visit date descending, ties broken by
// creation time descending (most recent activity first).
func (r *cityRepo) List(ctx context.Context) ([]City, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cityCols+` FROM cities ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []City
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

// DeleteAll truncates the cities table.
func (r *cityRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cities`)
	return err
}
