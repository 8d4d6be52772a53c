package roster

import (
	"fmt"

	"gorm.io/gorm"

	"sierra-payroll/models"
)

// Store keeps the roster in postgres for deployments that manage employees
// there instead of in the csv pair. It is an import/load surface only; the
// conversion pipeline itself never writes.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.RosterEntry{})
}

// Import upserts roster entries by canonical name, preserving the sort ranks
// carried on the entries.
func (s *Store) Import(entries []models.RosterEntry) error {
	for _, entry := range entries {
		var saved models.RosterEntry
		tx := s.db.Where(models.RosterEntry{CanonicalName: entry.CanonicalName}).Find(&saved)
		if tx.Error != nil {
			return fmt.Errorf("failed to look up roster entry %q: %w", entry.CanonicalName, tx.Error)
		}

		if tx.RowsAffected == 0 {
			if err := s.db.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create roster entry %q: %w", entry.CanonicalName, err)
			}
			continue
		}

		if err := s.db.Model(&saved).Updates(entry).Error; err != nil {
			return fmt.Errorf("failed to update roster entry %q: %w", entry.CanonicalName, err)
		}
	}

	return nil
}

// LoadIndex reads the stored roster back into a read-only Index, ordered by
// the persisted sort ranks.
func (s *Store) LoadIndex() (*Index, error) {
	var entries []models.RosterEntry
	if err := s.db.Order("sort_rank").Find(&entries).Error; err != nil {
		return nil, &LoadError{Path: "postgres", Err: err}
	}

	if len(entries) == 0 {
		return nil, &LoadError{Path: "postgres", Err: fmt.Errorf("roster table is empty")}
	}

	order := make([]string, 0, len(entries))
	for _, entry := range entries {
		order = append(order, entry.CanonicalName)
	}

	return NewIndex(order, entries), nil
}
