// Package cities implements the visited-city records at the heart of
// GeoGuide: a name, country, flag emoji, visit date, free-form notes, and a
// map position. Records are listed most-recent-visit first and mutated via
// partial updates.
package cities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Position is a map coordinate pair.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// City is a single visited-place entry.
type City struct {
	ID        string    `json:"id"`
	CityName  string    `json:"cityName"`
	Country   string    `json:"country"`
	Emoji     string    `json:"emoji"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	Position  Position  `json:"position"`
	ClientID  *string   `json:"clientId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Coord is a coordinate value that unmarshals from a JSON number or a
// numeric string. Map pickers and seed exports send both forms, so the
// server coerces rather than rejecting.
type Coord float64

// UnmarshalJSON implements json.Unmarshaler.
func (co *Coord) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q", s)
	}
	*co = Coord(f)
	return nil
}

// PositionInput is the position sub-object as submitted by clients. Both
// fields are pointers so validation can tell "absent" from "zero" -- a
// lone lat or lng is rejected instead of producing a half-updated pair.
type PositionInput struct {
	Lat *Coord `json:"lat"`
	Lng *Coord `json:"lng"`
}

// --- Request DTOs (bound from HTTP requests) ---

// CreateCityRequest holds the data submitted to POST /api/cities.
// ClientID is an optional caller-supplied correlation id (the original API
// accepted it under the legacy body field "id"); the server stores and
// echoes it but never uses it for identity or deduplication.
type CreateCityRequest struct {
	CityName string         `json:"cityName"`
	Country  string         `json:"country"`
	Emoji    string         `json:"emoji"`
	Date     string         `json:"date"`
	Notes    string         `json:"notes"`
	Position *PositionInput `json:"position"`
	ClientID string         `json:"clientId"`
	LegacyID string         `json:"id"`
}

// UpdateCityRequest holds the data submitted to PUT /api/cities/:id.
// All fields are optional; only supplied fields are applied. A supplied
// position replaces the stored pair wholesale.
type UpdateCityRequest struct {
	CityName *string        `json:"cityName"`
	Country  *string        `json:"country"`
	Emoji    *string        `json:"emoji"`
	Date     *string        `json:"date"`
	Notes    *string        `json:"notes"`
	Position *PositionInput `json:"position"`
	ClientID *string        `json:"clientId"`
}
