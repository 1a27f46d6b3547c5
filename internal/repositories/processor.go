package repositories

import (
	"context"

	"payrouter/internal/models"

	"gorm.io/gorm"
)

// ProcessorRepository serves the processor catalog from Postgres. Catalog
// order matters (it breaks score ties), so rows are always read back ordered
// by their seeded position.
type ProcessorRepository struct {
	db *gorm.DB
}

func NewProcessorRepository(db *gorm.DB) *ProcessorRepository {
	return &ProcessorRepository{db: db}
}

// Catalog returns the full catalog in its original order.
func (r *ProcessorRepository) Catalog(ctx context.Context) ([]models.Processor, error) {
	var processors []models.Processor
	err := r.db.WithContext(ctx).Order("position asc").Find(&processors).Error
	if err != nil {
		return nil, err
	}
	return processors, nil
}

// Replace swaps the stored catalog for the given one, assigning positions
// from slice order. Used by the seed command.
func (r *ProcessorRepository) Replace(ctx context.Context, processors []models.Processor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Processor{}).Error; err != nil {
			return err
		}
		for i := range processors {
			processors[i].ID = 0
			processors[i].Position = i
			if err := tx.Create(&processors[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
