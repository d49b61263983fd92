// Package signaldb holds the static catalogue of behavioural signals the
// matcher scores descriptions against. A Database is built once, validated,
// and never mutated afterwards, so it can be shared freely between
// goroutines.
package signaldb

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"fortio.org/safecast"
	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/petsignal/internal/model"
)

const (
	MinIntensity = 1
	MaxIntensity = 5
)

//go:embed signals.yaml
var defaultYAML []byte

// ErrEmpty is returned when a source decodes to zero records.
var ErrEmpty = errors.New("signaldb: no signals")

// Database is an immutable, ordered collection of signal records.
type Database struct {
	records    []model.SignalRecord
	categories []string
}

// file is the on-disk YAML schema.
type file struct {
	Signals []entry `yaml:"signals"`
}

type entry struct {
	ID             int    `yaml:"id"`
	Label          string `yaml:"label"`
	Description    string `yaml:"description"`
	Emotion        string `yaml:"emotion"`
	Intensity      int64  `yaml:"intensity"`
	Interpretation string `yaml:"interpretation"`
}

// Empty returns a database with no records. Every interpretation against
// it degrades to the no-signal result.
func Empty() *Database {
	return &Database{}
}

// New validates records and builds a Database. On any validation failure
// it returns an empty database together with the error, so callers can log
// and keep running.
func New(records []model.SignalRecord) (*Database, error) {
	seen := make(map[int]bool, len(records))
	for i, r := range records {
		if err := validate(r); err != nil {
			return Empty(), fmt.Errorf("signaldb: record %d: %w", i, err)
		}
		if seen[r.ID] {
			return Empty(), fmt.Errorf("signaldb: record %d: duplicate id %d", i, r.ID)
		}
		seen[r.ID] = true
	}
	db := &Database{records: slices.Clone(records)}
	db.categories = collectCategories(db.records)
	return db, nil
}

// Parse decodes a YAML signal catalogue.
func Parse(data []byte) (*Database, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Empty(), fmt.Errorf("signaldb: decode: %w", err)
	}
	if len(f.Signals) == 0 {
		return Empty(), ErrEmpty
	}

	records := make([]model.SignalRecord, 0, len(f.Signals))
	for i, e := range f.Signals {
		intensity, err := safecast.Conv[uint8](e.Intensity)
		if err != nil {
			return Empty(), fmt.Errorf("signaldb: record %d (id %d): intensity %d: %w", i, e.ID, e.Intensity, err)
		}
		records = append(records, model.SignalRecord{
			ID:              e.ID,
			Label:           strings.TrimSpace(e.Label),
			Description:     strings.TrimSpace(e.Description),
			ProbableEmotion: strings.TrimSpace(e.Emotion),
			Intensity:       int(intensity),
			Interpretation:  strings.TrimSpace(e.Interpretation),
		})
	}
	return New(records)
}

// Load reads and parses a YAML catalogue from path.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("signaldb: %w", err)
	}
	return Parse(data)
}

// Default parses the catalogue compiled into the binary.
func Default() (*Database, error) {
	return Parse(defaultYAML)
}

// All returns the records in catalogue order. The slice is shared and must
// not be modified.
func (d *Database) All() []model.SignalRecord {
	return d.records
}

// Len returns the number of records.
func (d *Database) Len() int {
	return len(d.records)
}

// Categories returns every distinct emotion tag in first-appearance order.
func (d *Database) Categories() []string {
	return slices.Clone(d.categories)
}

func validate(r model.SignalRecord) error {
	if r.Intensity < MinIntensity || r.Intensity > MaxIntensity {
		return fmt.Errorf("intensity %d outside [%d,%d]", r.Intensity, MinIntensity, MaxIntensity)
	}
	if len(r.Emotions()) == 0 {
		return errors.New("empty probable emotion")
	}
	if r.Label == "" && r.Description == "" {
		return errors.New("label and description both empty")
	}
	return nil
}

func collectCategories(records []model.SignalRecord) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, r := range records {
		for _, tag := range r.Emotions() {
			if !seen[tag] {
				seen[tag] = true
				cats = append(cats, tag)
			}
		}
	}
	return cats
}
