package persistence

import (
	"fmt"

	"github.com/dealdeskhq/dealdesk/internal/database"
)

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(
		&GPModel{},
		&LPModel{},
		&FundModel{},
		&PortfolioCompanyModel{},
		&ServiceProviderModel{},
		&ContactModel{},
		&NewsModel{},
		&LinkModel{},
		&ResearchTaskModel{},
		&OutputModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
