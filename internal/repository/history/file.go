package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Record is one finished arm cycle.
type Record struct {
	// ArmID identifies the arm cycle.
	ArmID string `yaml:"arm_id"`
	// Outcome is fired or cancelled.
	Outcome string `yaml:"outcome"`
	// Target is the armed minute in HH:MM form.
	Target string `yaml:"target"`
	// Pause describes the configured pause window.
	Pause string `yaml:"pause,omitempty"`
	// Deferred is true when dispatch waited for a pause window to close.
	Deferred bool `yaml:"deferred,omitempty"`
	// Timestamp is when the cycle ended.
	Timestamp time.Time `yaml:"timestamp"`
	// Hostname of the machine that armed the alarm.
	Hostname string `yaml:"hostname,omitempty"`
	// Username of the user that armed the alarm.
	Username string `yaml:"username,omitempty"`
}

// Repository defines persistence operations for the outcome log.
type Repository interface {
	Load(ctx context.Context) ([]Record, error)
	Append(ctx context.Context, record Record) error
}

// FileRepository persists the outcome log to a YAML file on disk.
type FileRepository struct {
	// path is the filesystem location of the YAML file.
	path string
	// limit is how many records are kept; older ones are dropped.
	limit int
	// mu protects concurrent access to the file.
	mu sync.Mutex
}

// ErrNotFound is returned when the history file does not exist yet.
var ErrNotFound = errors.New("history not found")

// NewFileRepository creates a repository that keeps up to limit records at path.
// A non-positive limit falls back to config.DefaultHistoryLimit.
func NewFileRepository(path string, limit int) *FileRepository {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	return &FileRepository{
		path:  filepath.Clean(path),
		limit: limit,
	}
}

// NewRecord builds a record from a session that has just left an arm cycle.
func NewRecord(ended domain.Session, armed domain.Session, deferred bool, at time.Time) Record {
	record := Record{
		ArmID:     ended.LastArmID,
		Outcome:   ended.LastOutcome.String(),
		Target:    armed.Target.String(),
		Deferred:  deferred,
		Timestamp: at.UTC(),
	}

	if armed.Pause.Kind != domain.PauseNone {
		record.Pause = armed.Pause.String()
	}

	if armed.Actor != nil {
		record.Hostname = armed.Actor.Hostname
		record.Username = armed.Actor.Username
	}

	return record
}

// Load reads all records from disk, oldest first.
func (r *FileRepository) Load(_ context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadLocked()
}

// Append adds a record and trims the file to the configured limit.
func (r *FileRepository) Append(_ context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.loadLocked()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	records = append(records, record)
	if len(records) > r.limit {
		records = records[len(records)-r.limit:]
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}

	return nil
}

func (r *FileRepository) loadLocked() ([]Record, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read history file: %w", err)
	}

	var records []Record
	if err = yaml.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("decode history file: %w", err)
	}

	return records, nil
}
