package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

// Services are the handlers' dependencies.
type Services struct {
	Leads     service.LeadService
	Deals     service.DealService
	Contacts  service.ContactService
	SalesReps service.SalesRepService
	Team      service.TeamMemberService
	Activity  service.WebsiteActivityService
	Analytics service.AnalyticsService
	Reports   service.ReportService
}

// RegisterRoutes attaches the health probes and the /api/v1 resources to app.
// Fixed paths such as /leads/daily are registered before /leads/:id so they are not read as IDs.
func RegisterRoutes(app *fiber.App, db Pinger, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/v1")

	leads := api.Group("/leads")
	leads.Get("/", ListLeads(svc.Leads))
	leads.Post("/", CreateLead(svc.Leads))
	leads.Get("/daily", DailyLeads(svc.Leads))
	leads.Get("/fresh", FreshLeads(svc.Leads))
	leads.Get("/:id", GetLead(svc.Leads))
	leads.Patch("/:id", UpdateLead(svc.Leads))
	leads.Delete("/:id", DeleteLead(svc.Leads))

	deals := api.Group("/deals")
	deals.Get("/", ListDeals(svc.Deals))
	deals.Post("/", CreateDeal(svc.Deals))
	deals.Get("/pipeline", DealPipeline(svc.Deals))
	deals.Get("/:id", GetDeal(svc.Deals))
	deals.Patch("/:id", UpdateDeal(svc.Deals))
	deals.Patch("/:id/stage", UpdateDealStage(svc.Deals))
	deals.Delete("/:id", DeleteDeal(svc.Deals))

	contacts := api.Group("/contacts")
	contacts.Get("/", ListContacts(svc.Contacts))
	contacts.Post("/", CreateContact(svc.Contacts))
	contacts.Get("/:id", GetContact(svc.Contacts))
	contacts.Patch("/:id", UpdateContact(svc.Contacts))
	contacts.Delete("/:id", DeleteContact(svc.Contacts))

	reps := api.Group("/sales-reps")
	reps.Get("/", ListSalesReps(svc.SalesReps))
	reps.Post("/", CreateSalesRep(svc.SalesReps))
	reps.Get("/leaderboard", Leaderboard(svc.SalesReps))
	reps.Get("/:id", GetSalesRep(svc.SalesReps))
	reps.Patch("/:id", UpdateSalesRep(svc.SalesReps))
	reps.Delete("/:id", DeleteSalesRep(svc.SalesReps))

	team := api.Group("/team")
	team.Get("/", ListTeamMembers(svc.Team))
	team.Post("/", InviteTeamMember(svc.Team))
	team.Get("/stats", TeamStats(svc.Team))
	team.Get("/:id", GetTeamMember(svc.Team))
	team.Patch("/:id", UpdateTeamMember(svc.Team))
	team.Post("/:id/activate", SetTeamMemberStatus(svc.Team, model.MemberActive))
	team.Post("/:id/deactivate", SetTeamMemberStatus(svc.Team, model.MemberInactive))
	team.Delete("/:id", DeleteTeamMember(svc.Team))

	activity := api.Group("/website-activity")
	activity.Get("/", WebsiteHistory(svc.Activity))
	activity.Post("/", RecordWebsiteActivity(svc.Activity))
	activity.Get("/check", CheckWebsiteFreshness(svc.Activity))
	activity.Get("/fresh", FreshWebsites(svc.Activity))

	analytics := api.Group("/analytics")
	analytics.Get("/overview", Overview(svc.Analytics))
	analytics.Get("/leads/status", LeadsByStatus(svc.Analytics))
	analytics.Get("/leads/category", LeadsByCategory(svc.Analytics))
	analytics.Get("/leads/trend", LeadTrend(svc.Analytics))

	reports := api.Group("/reports")
	reports.Get("/", ListReports(svc.Reports))
	reports.Post("/", GenerateReport(svc.Reports))
	reports.Get("/:id", GetReport(svc.Reports))
	reports.Get("/:id/download", DownloadReport(svc.Reports))
	reports.Get("/:id/url", ReportURL(svc.Reports))
	reports.Delete("/:id", DeleteReport(svc.Reports))
}

// RegisterMetrics exposes the Prometheus registry at /metrics.
func RegisterMetrics(app *fiber.App, g prometheus.Gatherer) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}
