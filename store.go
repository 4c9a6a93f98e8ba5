package restock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

// Strategy selects how a store treats the on-disk document.
type Strategy int

const (
	// StrategyStrict validates the document against the embedded schema
	// before trusting any of it, and persists the tuple-root shape. A
	// document that fails validation is fatal.
	StrategyStrict Strategy = iota
	// StrategyLenient accepts every historical document shape, salvaging
	// what it can with warnings, and persists the object-root shape.
	StrategyLenient
)

func (s Strategy) String() string {
	switch s {
	case StrategyStrict:
		return "strict"
	case StrategyLenient:
		return "lenient"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses a store strategy name, "strict" or "lenient".
func ParseStrategy(str string) (Strategy, error) {
	switch str {
	case "strict":
		return StrategyStrict, nil
	case "lenient":
		return StrategyLenient, nil
	}
	return StrategyStrict, fmt.Errorf("invalid store strategy %q, want strict or lenient", str)
}

// shape returns the document shape this strategy persists.
func (s Strategy) shape() SchemaVersion {
	if s == StrategyLenient {
		return SchemaObject
	}
	return SchemaTuple
}

// Store owns the canonical configuration and its load/save lifecycle against
// a single backing file. There is exactly one process and one logical actor,
// so saves simply rewrite the whole file, last writer wins.
type Store struct {
	path     string
	strategy Strategy
	config   *Configuration
	messages *MessageLog
}

// NewStore returns a store for the given backing path. Nothing is read until
// Load. A nil message log gets replaced with a fresh one.
func NewStore(path string, strategy Strategy, messages *MessageLog) *Store {
	if messages == nil {
		messages = NewMessageLog()
	}
	return &Store{path: path, strategy: strategy, messages: messages}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Strategy returns the active store strategy.
func (s *Store) Strategy() Strategy { return s.strategy }

// Config returns the loaded configuration, nil before Load.
func (s *Store) Config() *Configuration { return s.config }

// Messages returns the user-facing message log of this store.
func (s *Store) Messages() *MessageLog { return s.messages }

// Load populates the store from the backing file. A missing file triggers
// the first-run bootstrap: a default configuration is created and persisted
// immediately. A document the active strategy cannot trust fails with a
// *FormatError and the store stays empty.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("path", s.path).Warn("configuration file does not exist, creating defaults")
		s.config = NewConfiguration()
		return s.write()
	}
	if err != nil {
		return fmt.Errorf("could not read configuration file %q: %w", s.path, err)
	}

	if s.strategy == StrategyStrict {
		if err := ValidateDocument(data); err != nil {
			return &FormatError{Path: s.path, Err: err}
		}
	}

	config, version, err := DecodeConfiguration(data, s.messages)
	if err != nil {
		return &FormatError{Path: s.path, Err: err}
	}
	s.config = config
	logrus.WithFields(logrus.Fields{
		"path":     s.path,
		"version":  version,
		"strategy": s.strategy,
	}).Debug("loaded supplies configuration")
	return nil
}

// Save serializes the full configuration to the backing path in the active
// strategy's shape and clears the dirty flag. Safe to call repeatedly, each
// call fully rewrites the file.
func (s *Store) Save() error {
	if err := s.write(); err != nil {
		return err
	}
	s.messages.Post("Supplies configuration saved successfully")
	return nil
}

// write performs the actual rewrite: encode in full, write to a temporary
// file next to the target, then rename over it so a crash mid-write cannot
// leave a truncated document.
func (s *Store) write() error {
	if s.config == nil {
		return fmt.Errorf("no configuration loaded for %q", s.path)
	}
	data, err := EncodeConfiguration(s.config, s.strategy.shape())
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("could not write configuration file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("could not replace configuration file %q: %w", s.path, err)
	}
	s.config.dirty = false
	logrus.WithFields(logrus.Fields{
		"path":  s.path,
		"shape": s.strategy.shape(),
	}).Debug("saved supplies configuration")
	return nil
}

// AddItem inserts or replaces an item with inventory reset to zero, posting
// the outcome on the message log. An empty name is a silent no-op, per the
// shell contract the caller rejects empty names first.
func (s *Store) AddItem(name string, coefficient Quantity, unit, supplier string) {
	if name == "" {
		return
	}
	s.config.AddItem(name, coefficient, unit, supplier)
	s.messages.Postf("Item %q added (unsaved changes)", name)
}

// Migrate switches the store to another strategy and rewrites the backing
// file in that strategy's shape. Loading leniently and migrating to strict
// is the supported upgrade path for historical documents.
func (s *Store) Migrate(to Strategy) error {
	s.strategy = to
	return s.Save()
}
