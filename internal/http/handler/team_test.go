package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
	serviceMocks "crmapi/internal/service/mocks"
)

func TestSetTeamMemberStatus(t *testing.T) {
	mockSvc := new(serviceMocks.MockTeamMemberService)
	app := fiber.New()
	app.Post("/team/:id/activate", SetTeamMemberStatus(mockSvc, model.MemberActive))
	app.Post("/team/:id/deactivate", SetTeamMemberStatus(mockSvc, model.MemberInactive))

	tests := []struct {
		target string
		status string
	}{
		{"/team/3/activate", model.MemberActive},
		{"/team/3/deactivate", model.MemberInactive},
	}
	for _, tt := range tests {
		mockSvc.On("SetStatus", mock.Anything, "3", tt.status).
			Return(&model.TeamMember{ID: "3", Status: tt.status}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, tt.target, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode, tt.target)
		var got model.TeamMember
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, tt.status, got.Status)
	}
	mockSvc.AssertExpectations(t)
}

func TestInviteTeamMember(t *testing.T) {
	mockSvc := new(serviceMocks.MockTeamMemberService)
	app := fiber.New()
	app.Post("/team", InviteTeamMember(mockSvc))

	mockSvc.On("Invite", mock.Anything, model.TeamMember{Email: "Ana@Example.com", Role: model.RoleManager}).
		Return(&model.TeamMember{ID: "9", Email: "ana@example.com", Role: model.RoleManager, Status: model.MemberPending}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/team", `{"email":"Ana@Example.com","role":"manager"}`))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var got model.TeamMember
	json.NewDecoder(resp.Body).Decode(&got)
	assert.Equal(t, model.MemberPending, got.Status)
	mockSvc.AssertExpectations(t)
}

func TestTeamStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockTeamMemberService)
	app := fiber.New()
	app.Get("/team/stats", TeamStats(mockSvc))

	mockSvc.On("Stats", mock.Anything).Return(&model.TeamStats{
		Total:    2,
		ByRole:   map[string]int{model.RoleAdmin: 1, model.RoleMember: 1},
		ByStatus: map[string]int{model.MemberActive: 2},
	}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/team/stats", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.TeamStats
	json.NewDecoder(resp.Body).Decode(&got)
	assert.Equal(t, 2, got.ByStatus[model.MemberActive])
}
