// Package main implements the city import tool. It reads a cities.json
// export ({"cities": [...]}), clears the cities table, and bulk-inserts the
// records. Used to seed a fresh deployment from the legacy dataset.
//
// Usage:
//
//	importer [-file ./data/cities.json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"geoguide/internal/cities"
	"geoguide/internal/config"
	"geoguide/internal/database"
)

// seedCity is one entry in the export file. The legacy "id" field becomes
// the record's clientId; the server assigns fresh UUIDs.
type seedCity struct {
	CityName string          `json:"cityName"`
	Country  string          `json:"country"`
	Emoji    string          `json:"emoji"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes"`
	Position cities.Position `json:"position"`
	ID       json.Number     `json:"id"`
}

// seedFile is the top-level shape of the export.
type seedFile struct {
	Cities []seedCity `json:"cities"`
}

func main() {
	file := flag.String("file", "./data/cities.json", "path to the cities.json export")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := run(*file); err != nil {
		slog.Error("import failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.NewMariaDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to MariaDB: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if seed.Cities == nil {
		return fmt.Errorf("%s must have a 'cities' array", path)
	}

	repo := cities.NewCityRepository(db)
	ctx := context.Background()

	// Clear old data before inserting the export.
	if err := repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing cities table: %w", err)
	}

	now := time.Now().UTC()
	for i, entry := range seed.Cities {
		date, err := parseDate(entry.Date)
		if err != nil {
			return fmt.Errorf("cities[%d] (%s): %w", i, entry.CityName, err)
		}

		city := &cities.City{
			ID:        uuid.NewString(),
			CityName:  entry.CityName,
			Country:   entry.Country,
			Emoji:     entry.Emoji,
			Date:      date,
			Notes:     entry.Notes,
			Position:  entry.Position,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if clientID := entry.ID.String(); clientID != "" {
			city.ClientID = &clientID
		}

		if err := repo.Create(ctx, city); err != nil {
			return fmt.Errorf("inserting cities[%d] (%s): %w", i, entry.CityName, err)
		}
	}

	slog.Info("cities imported", slog.Int("count", len(seed.Cities)))
	return nil
}

// parseDate accepts the export's date encodings.
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
