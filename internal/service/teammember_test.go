package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crmapi/internal/model"
	"crmapi/internal/recordstore"
	storeMocks "crmapi/internal/recordstore/mocks"
	"crmapi/internal/service"
)

func TestTeamMemberService_Invite(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults role status and permissions", func(t *testing.T) {
		client := new(storeMocks.MockClient)
		client.On("FetchRecords", ctx, "team_member", mock.Anything).Return(fetched(), nil).Once()
		client.On("CreateRecords", ctx, "team_member", []recordstore.Record{{
			"Name":          "sam",
			"email_c":       "sam@crm.io",
			"role_c":        model.RoleMember,
			"status_c":      model.MemberPending,
			"permissions_c": "leads,deals,contacts",
		}}).Return(mutated(recordstore.Record{
			"Id":            float64(2),
			"Name":          "sam",
			"email_c":       "sam@crm.io",
			"role_c":        "member",
			"status_c":      "pending",
			"permissions_c": "leads,deals,contacts",
		}), nil).Once()

		got, err := service.NewTeamMemberService(client).Invite(ctx, model.TeamMember{Email: " Sam@CRM.io "})

		require.NoError(t, err)
		assert.Equal(t, []string{"leads", "deals", "contacts"}, got.Permissions)
		client.AssertExpectations(t)
	})

	t.Run("email already invited", func(t *testing.T) {
		client := new(storeMocks.MockClient)
		client.On("FetchRecords", ctx, "team_member", mock.Anything).
			Return(fetched(recordstore.Record{"Id": float64(1)}), nil).Once()

		_, err := service.NewTeamMemberService(client).Invite(ctx, model.TeamMember{Email: "sam@crm.io"})

		assert.ErrorIs(t, err, service.ErrDuplicate)
	})

	for _, in := range []model.TeamMember{{}, {Email: "sam@crm.io", Role: "owner"}, {Email: "sam@crm.io", Status: "gone"}} {
		_, err := service.NewTeamMemberService(new(storeMocks.MockClient)).Invite(ctx, in)
		assert.True(t, service.IsValidation(err), "member %+v: got %v", in, err)
	}
}

func TestTeamMemberService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		changes map[string]any
		want    recordstore.Record
	}{
		{
			name:    "role change derives permissions",
			changes: map[string]any{"role": model.RoleViewer},
			want:    recordstore.Record{"Id": 3, "role_c": "viewer", "permissions_c": "analytics"},
		},
		{
			name:    "explicit permissions win",
			changes: map[string]any{"role": model.RoleViewer, "permissions": []any{"analytics", "reports"}},
			want:    recordstore.Record{"Id": 3, "role_c": "viewer", "permissions_c": "analytics,reports"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(storeMocks.MockClient)
			client.On("UpdateRecords", ctx, "team_member", []recordstore.Record{tt.want}).
				Return(mutated(recordstore.Record{"Id": float64(3), "role_c": "viewer"}), nil).Once()

			got, err := service.NewTeamMemberService(client).Update(ctx, "3", tt.changes)

			require.NoError(t, err)
			assert.Equal(t, model.RoleViewer, got.Role)
			client.AssertExpectations(t)
		})
	}

	svc := service.NewTeamMemberService(new(storeMocks.MockClient))
	for _, changes := range []map[string]any{{"role": "owner"}, {"status": "asleep"}, {"lastLogin": "2026-10-16"}} {
		_, err := svc.Update(ctx, "3", changes)
		assert.True(t, service.IsValidation(err), "changes %v: got %v", changes, err)
	}
}

func TestTeamMemberService_SetStatus(t *testing.T) {
	ctx := context.Background()
	client := new(storeMocks.MockClient)
	client.On("UpdateRecords", ctx, "team_member", []recordstore.Record{{"Id": 3, "status_c": "inactive"}}).
		Return(mutated(recordstore.Record{"Id": float64(3), "status_c": "inactive"}), nil).Once()

	got, err := service.NewTeamMemberService(client).SetStatus(ctx, "3", model.MemberInactive)

	require.NoError(t, err)
	assert.Equal(t, model.MemberInactive, got.Status)
}

func TestTeamMemberService_Stats(t *testing.T) {
	ctx := context.Background()
	client := new(storeMocks.MockClient)
	client.On("FetchRecords", ctx, "team_member", mock.Anything).Return(fetched(
		recordstore.Record{"Id": float64(1), "role_c": "admin", "status_c": "active"},
		recordstore.Record{"Id": float64(2), "role_c": "member", "status_c": "active"},
		recordstore.Record{"Id": float64(3)},
	), nil)

	st, err := service.NewTeamMemberService(client).Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, map[string]int{"admin": 1, "manager": 0, "member": 2, "viewer": 0}, st.ByRole)
	assert.Equal(t, map[string]int{"active": 2, "inactive": 0, "pending": 1}, st.ByStatus)
}
