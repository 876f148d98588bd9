package links

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maxroyer/qrlink/pkg/qrlink/models"
	"github.com/maxroyer/qrlink/pkg/qrlink/shortcode"
	"gorm.io/gorm"
)

// maxCreateAttempts bounds the collision retry loop in Create.
const maxCreateAttempts = 5

// Service owns the link lifecycle: code allocation, TTL resolution,
// create/resolve/list/delete and the expiry sweep.
type Service struct {
	store   *Store
	baseURL string
}

func NewService(db *gorm.DB, baseURL string) *Service {
	return &Service{
		store:   NewStore(db),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ValidateTargetURL checks that raw is a well-formed absolute http/https URL.
func ValidateTargetURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &ValidationError{"invalid url: " + err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{"url scheme must be http or https"}
	}
	if u.Host == "" {
		return &ValidationError{"url must be absolute"}
	}
	return nil
}

// Create validates the target URL, resolves the TTL preset into an absolute
// expiry and inserts a new link. On a short code collision it resamples a
// fresh candidate, up to maxCreateAttempts times; the store's unique
// constraint is the sole arbiter of collisions.
func (s *Service) Create(targetURL string, ttl TTL) (*models.Link, error) {
	if err := ValidateTargetURL(targetURL); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expiresAt := ttl.ExpiresAt(now)

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		code, err := shortcode.Generate()
		if err != nil {
			return nil, err
		}

		link := &models.Link{
			ID:        uuid.NewString(),
			ShortCode: code,
			TargetURL: targetURL,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		}

		err = s.store.Insert(link)
		if err == nil {
			return link, nil
		}
		if errors.Is(err, ErrCodeTaken) {
			continue
		}
		return nil, err
	}

	return nil, ErrCodeExhausted
}

// Resolve returns the link behind a short code. An expired link is reported
// as ErrNotFound even if the sweeper has not removed the row yet.
func (s *Service) Resolve(code string) (*models.Link, error) {
	link, err := s.store.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if link.IsExpired(time.Now().UTC()) {
		return nil, ErrNotFound
	}
	return link, nil
}

// List returns all live links, newest first. Logically expired rows are
// filtered out so the view is consistent with Resolve.
func (s *Service) List() ([]models.Link, error) {
	return s.store.List(time.Now().UTC())
}

// Delete removes a link by ID. Deleting an unknown ID yields ErrNotFound.
func (s *Service) Delete(id string) error {
	deleted, err := s.store.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Sweep deletes every link whose expiry is at or before now and returns the
// number of rows removed. Re-running immediately removes zero rows.
func (s *Service) Sweep(now time.Time) (int64, error) {
	return s.store.DeleteExpired(now)
}

// ShortURL composes the public short URL for a code.
func (s *Service) ShortURL(code string) string {
	return s.baseURL + "/" + code
}
