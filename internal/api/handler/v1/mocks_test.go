package v1

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/service"
)

type mockHackathonService struct {
	mock.Mock
}

func (m *mockHackathonService) CreateHackathon(ctx context.Context, identity domain.Identity, nh service.NewHackathon) (domain.Hackathon, error) {
	args := m.Called(ctx, identity, nh)
	return args.Get(0).(domain.Hackathon), args.Error(1)
}

func (m *mockHackathonService) UpdateHackathon(ctx context.Context, identity domain.Identity, id uint, patch service.HackathonPatch) (domain.Hackathon, error) {
	args := m.Called(ctx, identity, id, patch)
	return args.Get(0).(domain.Hackathon), args.Error(1)
}

func (m *mockHackathonService) StartHackathon(ctx context.Context, identity domain.Identity, id uint) (domain.Hackathon, error) {
	args := m.Called(ctx, identity, id)
	return args.Get(0).(domain.Hackathon), args.Error(1)
}

func (m *mockHackathonService) GetHackathon(ctx context.Context, id uint) (domain.Hackathon, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Hackathon), args.Error(1)
}

func (m *mockHackathonService) ListHackathons(ctx context.Context) ([]domain.Hackathon, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hackathon), args.Error(1)
}

type mockTeamService struct {
	mock.Mock
}

func (m *mockTeamService) CreateTeam(ctx context.Context, hackathonID uint, creator domain.Identity, nt service.NewTeam) (domain.Team, error) {
	args := m.Called(ctx, hackathonID, creator, nt)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *mockTeamService) JoinTeam(ctx context.Context, teamID uint, identity domain.Identity, joinCode string) (domain.Team, error) {
	args := m.Called(ctx, teamID, identity, joinCode)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *mockTeamService) LeaveTeam(ctx context.Context, teamID uint, userID string) (domain.Team, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *mockTeamService) UpdateTeam(ctx context.Context, teamID uint, identity domain.Identity, patch service.TeamPatch) (domain.Team, error) {
	args := m.Called(ctx, teamID, identity, patch)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *mockTeamService) FindUserTeam(ctx context.Context, hackathonID uint, userID, email string) (domain.Team, error) {
	args := m.Called(ctx, hackathonID, userID, email)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *mockTeamService) GetTeam(ctx context.Context, id uint) (domain.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *mockTeamService) ListTeams(ctx context.Context, hackathonID uint) ([]domain.Team, error) {
	args := m.Called(ctx, hackathonID)
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *mockTeamService) RecommendTeams(ctx context.Context, hackathonID uint, userID string) ([]domain.TeamMatch, error) {
	args := m.Called(ctx, hackathonID, userID)
	return args.Get(0).([]domain.TeamMatch), args.Error(1)
}

type mockSubmissionService struct {
	mock.Mock
}

func (m *mockSubmissionService) CreateSubmission(ctx context.Context, teamID uint, ns service.NewSubmission) (domain.Submission, error) {
	args := m.Called(ctx, teamID, ns)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *mockSubmissionService) UpdateSubmission(ctx context.Context, id uint, patch service.SubmissionPatch) (domain.Submission, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *mockSubmissionService) DeleteSubmission(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSubmissionService) AdvanceSubmission(ctx context.Context, id uint) (domain.Submission, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *mockSubmissionService) GetSubmission(ctx context.Context, id uint) (domain.Submission, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *mockSubmissionService) GetTeamSubmission(ctx context.Context, teamID uint) (domain.Submission, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(domain.Submission), args.Error(1)
}

func (m *mockSubmissionService) ListSubmissions(ctx context.Context, hackathonID uint) ([]domain.Submission, error) {
	args := m.Called(ctx, hackathonID)
	return args.Get(0).([]domain.Submission), args.Error(1)
}

type mockSponsorService struct {
	mock.Mock
}

func (m *mockSponsorService) CreateSponsor(ctx context.Context, identity domain.Identity, hackathonID uint, ns service.NewSponsor) (domain.Sponsor, error) {
	args := m.Called(ctx, identity, hackathonID, ns)
	return args.Get(0).(domain.Sponsor), args.Error(1)
}

func (m *mockSponsorService) GetSponsor(ctx context.Context, id uint) (domain.Sponsor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Sponsor), args.Error(1)
}

func (m *mockSponsorService) ListSponsors(ctx context.Context, hackathonID uint) ([]domain.Sponsor, error) {
	args := m.Called(ctx, hackathonID)
	return args.Get(0).([]domain.Sponsor), args.Error(1)
}

func (m *mockSponsorService) InviteEmployee(ctx context.Context, identity domain.Identity, sponsorID uint, email string) (domain.SponsorInvite, error) {
	args := m.Called(ctx, identity, sponsorID, email)
	return args.Get(0).(domain.SponsorInvite), args.Error(1)
}

func (m *mockSponsorService) UploadLogo(ctx context.Context, identity domain.Identity, sponsorID uint, filename, contentType string, body io.Reader) (domain.Sponsor, error) {
	args := m.Called(ctx, identity, sponsorID, filename, contentType, body)
	return args.Get(0).(domain.Sponsor), args.Error(1)
}

func (m *mockSponsorService) Adoption(ctx context.Context, sponsorID uint) (domain.SponsorAdoption, error) {
	args := m.Called(ctx, sponsorID)
	return args.Get(0).(domain.SponsorAdoption), args.Error(1)
}

func (m *mockSponsorService) HackathonAdoption(ctx context.Context, hackathonID uint) ([]domain.SponsorAdoption, error) {
	args := m.Called(ctx, hackathonID)
	return args.Get(0).([]domain.SponsorAdoption), args.Error(1)
}

type mockIssueService struct {
	mock.Mock
}

func (m *mockIssueService) CreateIssue(ctx context.Context, hackathonID uint, reporter domain.Identity, ni service.NewIssue) (domain.Issue, error) {
	args := m.Called(ctx, hackathonID, reporter, ni)
	return args.Get(0).(domain.Issue), args.Error(1)
}

func (m *mockIssueService) SetIssueStatus(ctx context.Context, id uint, status domain.IssueStatus) (domain.Issue, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Issue), args.Error(1)
}

func (m *mockIssueService) AdvanceIssue(ctx context.Context, id uint) (domain.Issue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Issue), args.Error(1)
}

func (m *mockIssueService) ReopenIssue(ctx context.Context, id uint) (domain.Issue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Issue), args.Error(1)
}

func (m *mockIssueService) GetIssue(ctx context.Context, id uint) (domain.Issue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Issue), args.Error(1)
}

func (m *mockIssueService) ListIssues(ctx context.Context, hackathonID uint) ([]domain.Issue, error) {
	args := m.Called(ctx, hackathonID)
	return args.Get(0).([]domain.Issue), args.Error(1)
}

type mockLeaderboardService struct {
	mock.Mock
}

func (m *mockLeaderboardService) Leaderboard(ctx context.Context, hackathonID uint) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, hackathonID)
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}
