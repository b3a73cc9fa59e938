// Package app assembles the service graph shared by the API server and the operator CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"crmapi/internal/config"
	"crmapi/internal/database"
	handlers "crmapi/internal/http/handler"
	"crmapi/internal/recordstore"
	"crmapi/internal/repository"
	"crmapi/internal/repository/postgres"
	"crmapi/internal/service"
	"crmapi/internal/storage"
)

// App owns the process-wide resources. Close releases them.
type App struct {
	Config   *config.AppConfig
	DB       *sql.DB
	Registry *prometheus.Registry
	Services handlers.Services
}

// New connects to the report archive, the object store and the record store, then builds the services.
func New(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rs, err := recordstore.NewHTTPClient(cfg.RecordStore)
	if err != nil {
		return nil, fmt.Errorf("record store: %w", err)
	}
	client, err := recordstore.Instrument(rs, reg)
	if err != nil {
		return nil, fmt.Errorf("record store metrics: %w", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("report archive: %w", err)
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("object storage: %w", err)
	}

	return &App{
		Config:   cfg,
		DB:       db,
		Registry: reg,
		Services: Wire(Deps{
			Client:    client,
			Storage:   objStore,
			Reports:   postgres.NewReportPostgres(db),
			Calendar:  service.NewCalendar(cfg.Location()),
			URLExpiry: cfg.MinIO.URLExpiry,
		}),
	}, nil
}

// Deps are the collaborators the services are built from.
type Deps struct {
	Client    recordstore.Client
	Storage   storage.Storage
	Reports   repository.ReportRepository
	Calendar  service.Calendar
	URLExpiry time.Duration
}

// Wire builds every service over d.
func Wire(d Deps) handlers.Services {
	activity := service.NewWebsiteActivityService(d.Client, d.Calendar)
	svc := handlers.Services{
		Leads:     service.NewLeadService(d.Client, activity, d.Calendar),
		Deals:     service.NewDealService(d.Client),
		Contacts:  service.NewContactService(d.Client),
		SalesReps: service.NewSalesRepService(d.Client),
		Team:      service.NewTeamMemberService(d.Client),
		Activity:  activity,
		Analytics: service.NewAnalyticsService(d.Client, d.Calendar),
	}
	svc.Reports = service.NewReportService(d.Storage, d.Reports, service.ReportSources{
		Leads:     svc.Leads,
		Deals:     svc.Deals,
		SalesReps: svc.SalesReps,
		Analytics: svc.Analytics,
	}, d.Calendar, d.URLExpiry)
	return svc
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
