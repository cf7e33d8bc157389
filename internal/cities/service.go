package cities

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"geoguide/internal/apperror"
)

// CityService defines business logic for city records.
type CityService interface {
	List(ctx context.Context) ([]City, error)
	Get(ctx context.Context, id string) (*City, error)
	Create(ctx context.Context, req CreateCityRequest) (*City, error)
	Update(ctx context.Context, id string, req UpdateCityRequest) (*City, error)
	Delete(ctx context.Context, id string) error
}

// cityService is the default CityService implementation.
type cityService struct {
	repo CityRepository
}

// NewCityService creates a CityService backed by the given repository.
func NewCityService(repo CityRepository) CityService {
	return &cityService{repo: repo}
}

// List returns all cities, most recent visit first. An empty store yields an
// empty slice, never nil, so the JSON response is [] rather than null.
func (s *cityService) List(ctx context.Context) ([]City, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing cities: %w", err))
	}
	if result == nil {
		result = []City{}
	}
	return result, nil
}

// Get returns a city by ID, or a not-found error. Malformed ids fail fast
// before any store query.
func (s *cityService) Get(ctx context.Context, id string) (*City, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	city, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("getting city: %w", err))
	}
	if city == nil {
		return nil, apperror.NewNotFound("City not found")
	}
	return city, nil
}

// Create validates and persists a new city record. Every field except notes
// and clientId is required; notes defaults to the empty string.
func (s *cityService) Create(ctx context.Context, req CreateCityRequest) (*City, error) {
	if req.CityName == "" || req.Country == "" || req.Emoji == "" || req.Date == "" ||
		req.Position == nil || req.Position.Lat == nil || req.Position.Lng == nil {
		return nil, apperror.NewValidation("cityName, country, emoji, date, and position.lat/lng are required")
	}

	date, err := parseVisitDate(req.Date)
	if err != nil {
		return nil, err
	}

	clientID := req.ClientID
	if clientID == "" {
		// The original API carried the correlation id in the body's "id".
		clientID = req.LegacyID
	}

	now := time.Now().UTC()
	city := &City{
		ID:       uuid.NewString(),
		CityName: req.CityName,
		Country:  req.Country,
		Emoji:    req.Emoji,
		Date:     date,
		Notes:    req.Notes,
		Position: Position{
			Lat: float64(*req.Position.Lat),
			Lng: float64(*req.Position.Lng),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if clientID != "" {
		city.ClientID = &clientID
	}

	if err := s.repo.Create(ctx, city); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("creating city: %w", err))
	}
	return city, nil
}

// Update applies a partial update: only supplied top-level fields change,
// and a supplied position must carry both coordinates and replaces the
// stored pair wholesale. Validation re-runs on the merged record.
func (s *cityService) Update(ctx context.Context, id string, req UpdateCityRequest) (*City, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	city, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("getting city for update: %w", err))
	}
	if city == nil {
		return nil, apperror.NewNotFound("City not found")
	}

	if req.CityName != nil {
		city.CityName = *req.CityName
	}
	if req.Country != nil {
		city.Country = *req.Country
	}
	if req.Emoji != nil {
		city.Emoji = *req.Emoji
	}
	if req.Date != nil {
		date, err := parseVisitDate(*req.Date)
		if err != nil {
			return nil, err
		}
		city.Date = date
	}
	if req.Notes != nil {
		city.Notes = *req.Notes
	}
	if req.Position != nil {
		if req.Position.Lat == nil || req.Position.Lng == nil {
			return nil, apperror.NewValidation("position requires both lat and lng")
		}
		city.Position = Position{
			Lat: float64(*req.Position.Lat),
			Lng: float64(*req.Position.Lng),
		}
	}
	if req.ClientID != nil {
		if *req.ClientID == "" {
			city.ClientID = nil
		} else {
			city.ClientID = req.ClientID
		}
	}

	if city.CityName == "" || city.Country == "" || city.Emoji == "" {
		return nil, apperror.NewValidation("cityName, country, and emoji cannot be empty")
	}

	city.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, city); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("updating city: %w", err))
	}
	return city, nil
}

// Delete removes a city record. Deleting an id that never existed, or one
// already deleted, is a not-found error rather than a silent success.
func (s *cityService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	city, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("getting city for delete: %w", err))
	}
	if city == nil {
		return apperror.NewNotFound("City not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.NewInternal(fmt.Errorf("deleting city: %w", err))
	}
	return nil
}

// validateID rejects ids that are not well-formed UUIDs before any store
// query is attempted.
func validateID(id string) error {
	if uuid.Validate(id) != nil {
		return apperror.NewBadRequest("Invalid id")
	}
	return nil
}

// visitDateFormats are the accepted date encodings: full RFC 3339 timestamps
// (what the map frontend sends) and bare calendar dates.
var visitDateFormats = []string{time.RFC3339, "2006-01-02"}

// parseVisitDate parses a visit date or returns a validation error.
func parseVisitDate(value string) (time.Time, error) {
	for _, layout := range visitDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperror.NewValidation("date must be an ISO 8601 date")
}
