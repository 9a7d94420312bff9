package services

import (
	"path/filepath"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Menu{},
		&entity.ServiceOption{},
		&entity.EventRequest{},
		&entity.Review{},
	))
	return db
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(
		repository.NewMenuRepository(db),
		repository.NewServiceOptionRepository(db),
		repository.NewReviewRepository(db),
	)
}

func newServiceOptionService(db *gorm.DB) *ServiceOptionService {
	return NewServiceOptionService(
		repository.NewServiceOptionRepository(db),
		repository.NewMenuRepository(db),
	)
}

func newEventRequestService(db *gorm.DB) *EventRequestService {
	return NewEventRequestService(
		repository.NewEventRequestRepository(db),
		repository.NewMenuRepository(db),
		repository.NewServiceOptionRepository(db),
	)
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewMenuRepository(db),
	)
}

func str(s string) *string { return &s }

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedMenu(t *testing.T, db *gorm.DB, name string) *entity.Menu {
	t.Helper()
	menu := &entity.Menu{Name: name}
	require.NoError(t, db.Create(menu).Error)
	return menu
}

func seedOption(t *testing.T, db *gorm.DB, menuID uint, serviceType entity.ServiceType, pricePerPerson string) *entity.ServiceOption {
	t.Helper()
	option := &entity.ServiceOption{
		MenuID:         menuID,
		ServiceType:    serviceType,
		PricePerPerson: price(t, pricePerPerson),
	}
	require.NoError(t, db.Create(option).Error)
	return option
}
