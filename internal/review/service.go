// Package review holds the serializable review-session state: one row per
// parsed transaction with its proposed match and the operator's decision.
// Sessions are plain CSV files under <root>/sessions/, passed by value
// into and out of the engine — no ambient mutable state.
package review

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/id"
	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/model"
)

// Service provides business logic for review sessions.
type Service struct {
	root string
}

// NewService creates a review Service over a workspace root.
func NewService(root string) *Service {
	return &Service{root: root}
}

// Create validates items, assigns the next session ID for year/month, and
// writes the session file. Returns the session ID.
func (s *Service) Create(year, month int, items []model.ReviewItem) (string, error) {
	if verrs := ValidateItems(items); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	seq, err := s.NextSessionSeq(year, month)
	if err != nil {
		return "", err
	}
	sessionID := id.FormatSessionID(year, month, seq)

	if err := s.save(sessionID, items); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Load reads a session's items.
func (s *Service) Load(sessionID string) ([]model.ReviewItem, error) {
	path := s.sessionPath(sessionID)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening session %s: %w", sessionID, err)
	}
	defer f.Close()

	items, err := ReadItems(f)
	if err != nil {
		return nil, fmt.Errorf("reading session %s: %w", sessionID, err)
	}
	return items, nil
}

// Decision is an operator action applied to one session row.
type Decision struct {
	Row      int
	Status   model.DecisionStatus
	Operator string
	ChosenID int // required for overrides
	Notes    string
}

// Decide applies an operator decision to one row and rewrites the session.
// The parsed transaction values on the item are never touched; only the
// decision envelope changes.
func (s *Service) Decide(sessionID string, d Decision) error {
	items, err := s.Load(sessionID)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].Row != d.Row {
			continue
		}
		items[i].Decision = d.Status
		items[i].DecidedBy = d.Operator
		items[i].ChosenID = d.ChosenID
		if d.Notes != "" {
			items[i].Notes = d.Notes
		}
		found = true
		break
	}
	if !found {
		return fmt.Errorf("session %s has no row %d", sessionID, d.Row)
	}

	if verrs := ValidateItems(items); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	return s.save(sessionID, items)
}

// NextSessionSeq returns the next available sequence number for a month.
func (s *Service) NextSessionSeq(year, month int) (int, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, "sessions"))
	if errors.Is(err, fs.ErrNotExist) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading sessions dir: %w", err)
	}

	maxSeq := 0
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".csv")
		y, m, seq, err := id.ParseSessionID(name)
		if err != nil || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) save(sessionID string, items []model.ReviewItem) error {
	dir := filepath.Join(s.root, "sessions")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating sessions dir: %w", err)
	}

	f, err := os.Create(s.sessionPath(sessionID))
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	defer f.Close()

	if err := WriteItems(f, items); err != nil {
		return fmt.Errorf("writing session %s: %w", sessionID, err)
	}
	return nil
}

func (s *Service) sessionPath(sessionID string) string {
	return filepath.Join(s.root, "sessions", sessionID+".csv")
}
