// Package profile persists operator progress between sessions as a
// JSON file.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	backoff "github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
)

const (
	// historyLimit bounds the retained raid records.
	historyLimit = 20
	// saveAttempts bounds the retries on a failed write.
	saveAttempts = 4
)

// RaidRecord summarizes one finished raid.
type RaidRecord struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Extracted bool      `json:"extracted"`
	Kills     int       `json:"kills"`
	LootTaken int       `json:"loot_taken"`
	XP        int       `json:"xp"`
	Ticks     uint64    `json:"ticks"`
}

// Profile is the operator's persistent progress.
type Profile struct {
	OperatorID  string       `json:"operator_id"`
	Level       int          `json:"level"`
	XP          int          `json:"xp"`
	Raids       int          `json:"raids"`
	Extractions int          `json:"extractions"`
	Kills       int          `json:"kills"`
	History     []RaidRecord `json:"history"`

	path string
}

// DefaultPath returns the profile location: BLACKZONE_PROFILE if set,
// otherwise the user config directory.
func DefaultPath() string {
	if p := os.Getenv("BLACKZONE_PROFILE"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "blackzone-profile.json"
	}
	return filepath.Join(dir, "blackzone", "profile.json")
}

// Load reads the profile at path. A missing file yields a fresh
// profile rather than an error.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Profile{OperatorID: uuid.NewString(), Level: 1, path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if p.OperatorID == "" {
		p.OperatorID = uuid.NewString()
	}
	if p.Level < 1 {
		p.Level = 1
	}
	p.path = path
	return &p, nil
}

// Path returns where the profile is saved.
func (p *Profile) Path() string {
	return p.path
}

// RecordRaid folds a finished raid into the lifetime totals and the
// bounded history.
func (p *Profile) RecordRaid(rec RaidRecord) {
	p.Raids++
	if rec.Extracted {
		p.Extractions++
	}
	p.Kills += rec.Kills
	p.History = append(p.History, rec)
	if len(p.History) > historyLimit {
		p.History = p.History[len(p.History)-historyLimit:]
	}
}

// Save writes the profile atomically, retrying transient filesystem
// errors with exponential backoff.
func (p *Profile) Save(ctx context.Context) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, p.write(data)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(saveAttempts))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// write lands the bytes via a temp file and rename so a crash mid-write
// never truncates the previous profile.
func (p *Profile) write(data []byte) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, p.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
