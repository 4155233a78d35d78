package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/adapters/httpserver"
	"github.com/Jetixia-Updates/Butcher-sub004/internal/adapters/notify"
	"github.com/Jetixia-Updates/Butcher-sub004/internal/adapters/repo/postgres"
	"github.com/Jetixia-Updates/Butcher-sub004/internal/config"
	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
	"github.com/Jetixia-Updates/Butcher-sub004/internal/usecase"
)

type App struct {
	DB  *gorm.DB
	Cfg *config.Config

	CatalogUC   *usecase.CatalogUC
	CategoryUC  *usecase.CategoryUC
	OrderUC     *usecase.OrderUC
	FinanceUC   *usecase.FinanceUC
	AnalyticsUC *usecase.AnalyticsUC

	Zones   domain.ZoneRepo
	Reviews domain.ReviewRepo

	cron *cron.Cron
}

func NewApp(db *gorm.DB, cfg *config.Config) *App {
	prodRepo := postgres.NewProductRepo(db)
	catRepo := postgres.NewCategoryRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	zoneRepo := postgres.NewZoneRepo(db)
	finRepo := postgres.NewFinanceRepo(db)
	revRepo := postgres.NewReviewRepo(db)

	notifier := &notify.Service{
		SMTPHost:        cfg.SMTPHost,
		SMTPPort:        cfg.SMTPPort,
		SMTPUser:        cfg.SMTPUser,
		SMTPPass:        cfg.SMTPPass,
		NotifyEmail:     cfg.NotifyEmail,
		TelegramToken:   cfg.TelegramToken,
		TelegramChatIDs: cfg.TelegramChatIDs,
	}

	a := &App{DB: db, Cfg: cfg, Zones: zoneRepo, Reviews: revRepo}
	a.CatalogUC = &usecase.CatalogUC{Products: prodRepo, Reviews: revRepo}
	a.CategoryUC = &usecase.CategoryUC{Categories: catRepo}
	a.OrderUC = &usecase.OrderUC{Orders: orderRepo, Products: prodRepo, Zones: zoneRepo, Finance: finRepo, Notify: notifier}
	a.FinanceUC = &usecase.FinanceUC{Finance: finRepo}
	a.AnalyticsUC = &usecase.AnalyticsUC{Orders: orderRepo, Products: prodRepo, Finance: finRepo, Categories: catRepo}
	return a
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Cfg, a.CatalogUC, a.CategoryUC, a.OrderUC, a.FinanceUC, a.AnalyticsUC, a.Zones, a.Reviews)
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.Product{}, &domain.Category{}, &domain.DeliveryZone{},
		&domain.Order{}, &domain.OrderItem{}, &domain.FinanceRecord{}, &domain.Review{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("ALTER TABLE orders ADD COLUMN IF NOT EXISTS status_notes TEXT").Error
	_ = a.DB.Exec("ALTER TABLE orders ADD COLUMN IF NOT EXISTS updated_by VARCHAR(80)").Error
	_ = a.DB.Exec("ALTER TABLE orders ADD COLUMN IF NOT EXISTS notified BOOLEAN DEFAULT false").Error

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)").Error

	_ = a.DB.Exec("ALTER TABLE products ADD COLUMN IF NOT EXISTS is_premium BOOLEAN DEFAULT false").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_available ON products(available)").Error

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_finance_records_occurred_at ON finance_records(occurred_at)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_reviews_product_id ON reviews(product_id)").Error

	return a.seedZones()
}

func (a *App) seedZones() error {
	var n int64
	if err := a.DB.Model(&domain.DeliveryZone{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	zones := []domain.DeliveryZone{
		{ID: uuid.New(), NameEN: "City Center", NameAR: "وسط المدينة", Fee: 10, SortOrder: 1, Active: true},
		{ID: uuid.New(), NameEN: "North District", NameAR: "الحي الشمالي", Fee: 15, SortOrder: 2, Active: true},
		{ID: uuid.New(), NameEN: "South District", NameAR: "الحي الجنوبي", Fee: 15, SortOrder: 3, Active: true},
		{ID: uuid.New(), NameEN: "Outskirts", NameAR: "الضواحي", Fee: 25, SortOrder: 4, Active: true},
	}
	return a.DB.Create(&zones).Error
}

// StartJobs schedules the periodic dashboard refresh so admin reads stay
// cheap between recomputes.
func (a *App) StartJobs() error {
	a.cron = cron.New()
	spec := fmt.Sprintf("@every %s", a.Cfg.AnalyticsRefresh)
	_, err := a.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := a.AnalyticsUC.Refresh(ctx); err != nil {
			log.Error().Err(err).Msg("analytics refresh")
		}
	})
	if err != nil {
		return err
	}
	a.cron.Start()
	return nil
}

func (a *App) StopJobs() {
	if a.cron != nil {
		a.cron.Stop()
	}
}
