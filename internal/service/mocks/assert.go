package mocks

import (
	"crmapi/internal/service"
)

var (
	_ service.LeadService            = (*MockLeadService)(nil)
	_ service.DealService            = (*MockDealService)(nil)
	_ service.ContactService         = (*MockContactService)(nil)
	_ service.SalesRepService        = (*MockSalesRepService)(nil)
	_ service.TeamMemberService      = (*MockTeamMemberService)(nil)
	_ service.WebsiteActivityService = (*MockWebsiteActivityService)(nil)
	_ service.AnalyticsService       = (*MockAnalyticsService)(nil)
	_ service.ReportService          = (*MockReportService)(nil)
)
