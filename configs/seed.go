package configs

import (
	"log"

	"backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedDemo loads a couple of menus with service options so the
// storefront has something to show on a fresh database. Skipped when
// menus already exist.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Menu{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("skip demo seed: menus already present")
		return nil
	}

	str := func(s string) *string { return &s }
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	menus := []entity.Menu{
		{
			Name:        "Mediterranean Feast",
			Description: str("Mezze, grilled lamb and seasonal vegetables."),
			ServiceOptions: []entity.ServiceOption{
				{ServiceType: entity.ServiceTypePlated, PricePerPerson: price("85.00"), Description: str("Four plated courses with service staff.")},
				{ServiceType: entity.ServiceTypeBuffet, PricePerPerson: price("55.00")},
			},
		},
		{
			Name:        "Tuscan Harvest",
			Description: str("Handmade pasta, porchetta and antipasti boards."),
			ServiceOptions: []entity.ServiceOption{
				{ServiceType: entity.ServiceTypeBuffet, PricePerPerson: price("48.00")},
				{ServiceType: entity.ServiceTypeCookAlong, PricePerPerson: price("95.00"), Description: str("Guests roll the pasta with the chef.")},
			},
		},
	}

	for i := range menus {
		if err := db.Create(&menus[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d demo menus", len(menus))
	return nil
}
