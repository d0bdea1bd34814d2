package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/storage"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	args := m.Called(ctx, key, contentType, reader)
	res, _ := args.Get(0).(*storage.UploadResult)
	return res, args.Error(1)
}

func (m *mockUploader) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockUploader) GetPublicURL(key string) string {
	return m.Called(key).String(0)
}

func TestSponsorService_CreateSponsor(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)

	_, err := h.sponsors.CreateSponsor(ctx, guest("u1"), hk.ID, NewSponsor{Name: "CloudCo"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = h.sponsors.CreateSponsor(ctx, organiser, hk.ID, NewSponsor{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = h.sponsors.CreateSponsor(ctx, organiser, 999, NewSponsor{Name: "CloudCo"})
	assert.ErrorIs(t, err, ErrNotFound)

	sp, err := h.sponsors.CreateSponsor(ctx, organiser, hk.ID, NewSponsor{Name: "CloudCo", Website: "https://cloud.example.com"})
	require.NoError(t, err)
	assert.Equal(t, hk.ID, sp.HackathonID)

	list, err := h.sponsors.ListSponsors(ctx, hk.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSponsorService_Adoption(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	cloud := h.mustSponsor(t, hk.ID, "CloudCo")
	data := h.mustSponsor(t, hk.ID, "DataCo")

	alpha := h.mustTeam(t, hk.ID, "Alpha")
	beta := h.mustTeam(t, hk.ID, "Beta")
	h.mustTeam(t, hk.ID, "Gamma")
	h.mustTeam(t, hk.ID, "Delta")

	_, err := h.submissions.CreateSubmission(ctx, alpha.ID, newSubmission(cloud.ID))
	require.NoError(t, err)
	_, err = h.submissions.CreateSubmission(ctx, beta.ID, newSubmission(data.ID))
	require.NoError(t, err)

	_, err = h.prizes.CreatePrize(ctx, organiser, hk.ID, NewPrize{Title: "Best cloud", Value: "$2,500", SponsorID: &cloud.ID})
	require.NoError(t, err)
	_, err = h.prizes.CreatePrize(ctx, organiser, hk.ID, NewPrize{Title: "Credits", Value: "1000 credits", SponsorID: &cloud.ID})
	require.NoError(t, err)
	_, err = h.prizes.CreatePrize(ctx, organiser, hk.ID, NewPrize{Title: "Grand prize", Value: "$10,000"})
	require.NoError(t, err)

	adoption, err := h.sponsors.Adoption(ctx, cloud.ID)
	require.NoError(t, err)

	assert.Len(t, adoption.SubmissionsUsingSponsor, 1)
	assert.InDelta(t, 50.0, adoption.UsagePercentage, 1e-9)
	assert.Len(t, adoption.TeamsUsingSponsor, 1)
	assert.InDelta(t, 25.0, adoption.TeamUsagePercentage, 1e-9)
	assert.Len(t, adoption.PrizesOffered, 2)
	assert.InDelta(t, 3500.0, adoption.TotalPrizeValue, 1e-9)
	assert.Equal(t, "$3,500.00", adoption.TotalPrizeValueDisplay)

	all, err := h.sponsors.HackathonAdoption(ctx, hk.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, cloud.ID, all[0].SponsorID)
	assert.Equal(t, data.ID, all[1].SponsorID)
	assert.Zero(t, all[1].TotalPrizeValue)

	_, err = h.sponsors.Adoption(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSponsorService_Adoption_NoSubmissions(t *testing.T) {
	h := newHarness()
	hk := h.mustHackathon(t)
	sp := h.mustSponsor(t, hk.ID, "CloudCo")

	adoption, err := h.sponsors.Adoption(context.Background(), sp.ID)

	require.NoError(t, err)
	assert.Zero(t, adoption.UsagePercentage)
	assert.Zero(t, adoption.TeamUsagePercentage)
}

func TestSponsorService_InviteEmployee(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	sp := h.mustSponsor(t, hk.ID, "CloudCo")

	_, err := h.sponsors.InviteEmployee(ctx, guest("u1"), sp.ID, "dev@cloud.example.com")
	assert.ErrorIs(t, err, ErrForbidden)

	invite, err := h.sponsors.InviteEmployee(ctx, organiser, sp.ID, "Dev@Cloud.example.com")
	require.NoError(t, err)
	assert.Equal(t, "dev@cloud.example.com", invite.Email)

	_, err = h.sponsors.InviteEmployee(ctx, organiser, sp.ID, "dev@cloud.example.com")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = h.sponsors.InviteEmployee(ctx, organiser, 999, "x@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	user, err := h.users.Sync(ctx, domain.Identity{UserID: "idp|dev", Email: "dev@cloud.example.com", Role: domain.RoleGuest})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSponsor, user.Role)
	require.NotNil(t, user.CompanyID)
	assert.Equal(t, sp.ID, *user.CompanyID)

	withEmployees, err := h.sponsors.GetSponsor(ctx, sp.ID)
	require.NoError(t, err)
	require.Len(t, withEmployees.Employees, 1)
	assert.Equal(t, "idp|dev", withEmployees.Employees[0].ID)

	_, err = memSponsorRepo{h.store}.FindInviteByEmail(ctx, "dev@cloud.example.com")
	assert.ErrorIs(t, err, ErrNotFound, "invite is consumed")
}

func TestSponsorService_UploadLogo(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	sp := h.mustSponsor(t, hk.ID, "CloudCo")

	_, err := h.sponsors.UploadLogo(ctx, organiser, sp.ID, "logo.png", "image/png", strings.NewReader("png"))
	assert.ErrorIs(t, err, ErrStorageDisabled)

	uploader := &mockUploader{}
	h.sponsors.uploader = uploader
	body := strings.NewReader("png")
	uploader.On("Upload", mock.Anything, fmt.Sprintf("sponsors/%d/logo.png", sp.ID), "image/png", body).
		Return(&storage.UploadResult{Location: "https://cdn.example.com/logo.png"}, nil).Once()

	_, err = h.sponsors.UploadLogo(ctx, guest("u1"), sp.ID, "logo.PNG", "image/png", body)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := h.sponsors.UploadLogo(ctx, organiser, sp.ID, "logo.PNG", "image/png", body)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/logo.png", updated.LogoURL)
	uploader.AssertExpectations(t)
}
