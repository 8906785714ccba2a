// Package store persists the client's local-only state as JSON files: the
// bearer token, a short-lived movie catalog cache and the created-at
// timestamps used for pending-booking countdowns. Nothing here is
// authoritative; every value can be rebuilt from the backend or discarded.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"moviebook-cli/model"
)

const (
	appDirName       = "moviebook-cli"
	movieCacheTTL    = 5 * time.Minute
	bookingTimerKeep = 24 * time.Hour
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

type tokenFile struct {
	Authorization string `json:"authorization"`
}

type bookingTimers struct {
	CreatedAt map[string]time.Time `json:"created_at"`
}

// LoadMovieCache returns the cached movie catalog and whether it is still
// fresh. A missing cache is (nil, false, nil).
func LoadMovieCache() ([]model.Movie, bool, error) {
	path, err := cachePath("movies.json")
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Movie](path)
	if err != nil {
		return nil, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= movieCacheTTL, nil
}

func SaveMovieCache(movies []model.Movie) error {
	path, err := cachePath("movies.json")
	if err != nil {
		return err
	}
	return saveCache(path, movies)
}

// LoadToken returns the stored bearer token, or "" when signed out.
func LoadToken() (string, error) {
	path, err := configPath("token.json")
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var file tokenFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", errors.New("invalid token file format")
	}
	return strings.TrimSpace(file.Authorization), nil
}

// TokenOrEmpty is LoadToken with errors flattened to "", for use as a token
// provider where a broken file means signed out.
func TokenOrEmpty() string {
	token, err := LoadToken()
	if err != nil {
		return ""
	}
	return token
}

func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is required")
	}
	path, err := configPath("token.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(tokenFile{Authorization: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func ClearToken() error {
	path, err := configPath("token.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoadBookingTimers returns the created-at map for pending bookings. The
// backend does not expose a booking's creation time, so the client records
// when it first saw each pending booking and counts the lock TTL down from
// there.
func LoadBookingTimers() (map[string]time.Time, error) {
	path, err := configPath("booking_timers.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]time.Time{}, nil
		}
		return nil, err
	}
	var timers bookingTimers
	if err := json.Unmarshal(data, &timers); err != nil {
		return nil, errors.New("invalid booking timers format")
	}
	if timers.CreatedAt == nil {
		timers.CreatedAt = map[string]time.Time{}
	}
	return timers.CreatedAt, nil
}

// RememberPendingBookings records first-seen timestamps for any pending
// booking that has none yet, and drops entries older than a day so the file
// does not grow with stale ids. Returns the updated map.
func RememberPendingBookings(bookings []model.Booking) (map[string]time.Time, error) {
	timers, err := LoadBookingTimers()
	if err != nil {
		timers = map[string]time.Time{}
	}

	now := time.Now()
	changed := false
	for _, b := range bookings {
		if !b.IsPending() || b.ID == "" {
			continue
		}
		if _, ok := timers[b.ID]; !ok {
			timers[b.ID] = now
			changed = true
		}
	}
	for id, created := range timers {
		if now.Sub(created) > bookingTimerKeep {
			delete(timers, id)
			changed = true
		}
	}

	if changed {
		if err := saveBookingTimers(timers); err != nil {
			return timers, err
		}
	}
	return timers, nil
}

func saveBookingTimers(timers map[string]time.Time) error {
	path, err := configPath("booking_timers.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(bookingTimers{CreatedAt: timers}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cache := cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	payload, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}
