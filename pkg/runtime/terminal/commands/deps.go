package commands

import (
	"fmt"
	"time"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
	"github.com/alertiq/sales-atlas/pkg/services/allegro"
	"github.com/alertiq/sales-atlas/pkg/services/config"
	"github.com/alertiq/sales-atlas/pkg/services/report"
	"github.com/alertiq/sales-atlas/pkg/store/sqlite"
	"github.com/alertiq/sales-atlas/pkg/store/sqlite/orders"
)

// deps holds everything a command may need, built lazily from the config
// file so `--help` works without one.
type deps struct {
	cfg       *config.Config
	analytics domain.AnalyticsConfig
}

func loadDeps(cfgPath string) (*deps, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	analytics, err := cfg.Analytics.AnalyticsConfig()
	if err != nil {
		return nil, err
	}
	return &deps{cfg: cfg, analytics: analytics}, nil
}

func (d *deps) authenticator() *allegro.Authenticator {
	return allegro.NewAuthenticator(allegro.AuthConfig{
		ClientID:     d.cfg.Allegro.ClientID,
		ClientSecret: d.cfg.Allegro.ClientSecret,
		AuthURL:      d.cfg.Allegro.AuthURL,
		TokenFile:    d.cfg.Allegro.TokenFile,
	})
}

func (d *deps) marketClient() *allegro.Client {
	return allegro.NewClient(allegro.ClientConfig{APIURL: d.cfg.Allegro.APIURL}, d.authenticator())
}

func (d *deps) orderStore() (orders.Store, error) {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: d.cfg.Store.DbPath})
	if err != nil {
		return nil, fmt.Errorf("open order cache: %w", err)
	}
	return orders.NewStore(db)
}

func (d *deps) reportService() (report.Service, error) {
	store, err := d.orderStore()
	if err != nil {
		return nil, err
	}
	return report.NewService(store, d.analytics), nil
}

func parseDateFlag(raw string) (time.Time, error) {
	if raw == "" {
		return domain.Day(time.Now()), nil
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return date, nil
}
