package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackforge/hackathon-api/internal/domain"
)

func (h *harness) mustHackathon(t *testing.T) domain.Hackathon {
	t.Helper()

	hk, err := h.hackathons.CreateHackathon(context.Background(), organiser, NewHackathon{
		Title:    "Spring Hack",
		StartsAt: time.Now(),
		EndsAt:   time.Now().Add(48 * time.Hour),
		PinCode:  "1234",
	})
	require.NoError(t, err)
	return hk
}

func (h *harness) mustTeam(t *testing.T, hackathonID uint, name string) domain.Team {
	t.Helper()

	team, err := h.teams.CreateTeam(context.Background(), hackathonID, guest("creator-"+name), NewTeam{
		Name:        name,
		Description: name + " builds things",
	})
	require.NoError(t, err)
	return team
}

func TestTeamService_CreateTeam(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)

	team, err := h.teams.CreateTeam(ctx, hk.ID, guest("u1"), NewTeam{Name: "Alpha", Description: "first"})

	require.NoError(t, err)
	assert.Equal(t, "Alpha", team.Name)
	assert.Equal(t, "u1", team.LeaderID)
	assert.Empty(t, team.Members)
	assert.False(t, team.HasJoinCode())
}

func TestTeamService_CreateTeam_Validation(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)

	_, err := h.teams.CreateTeam(ctx, hk.ID, guest("u1"), NewTeam{Name: " ", Description: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = h.teams.CreateTeam(ctx, hk.ID, guest("u1"), NewTeam{Name: "Alpha"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = h.teams.CreateTeam(ctx, 999, guest("u1"), NewTeam{Name: "Alpha", Description: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_JoinTeam(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	team := h.mustTeam(t, hk.ID, "Alpha")

	joined, err := h.teams.JoinTeam(ctx, team.ID, guest("u1"), "")
	require.NoError(t, err)
	joined, err = h.teams.JoinTeam(ctx, team.ID, guest("u2"), "")
	require.NoError(t, err)

	require.Len(t, joined.Members, 2)
	assert.Equal(t, "u1", joined.Members[0].ID)
	assert.Equal(t, "u2", joined.Members[1].ID)

	user, err := memUserRepo{h.store}.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", user.Email)
	assert.Equal(t, domain.RoleGuest, user.Role)
}

func TestTeamService_JoinTeam_NotFound(t *testing.T) {
	h := newHarness()

	_, err := h.teams.JoinTeam(context.Background(), 42, guest("u1"), "")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_JoinTeam_Capacity(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	team := h.mustTeam(t, hk.ID, "Alpha")

	for i := 0; i < domain.MaxTeamSize; i++ {
		_, err := h.teams.JoinTeam(ctx, team.ID, guest(fmt.Sprintf("u%d", i)), "")
		require.NoError(t, err)
	}

	_, err := h.teams.JoinTeam(ctx, team.ID, guest("late"), "")
	assert.ErrorIs(t, err, ErrTeamFull)
	assert.ErrorIs(t, err, ErrCapacity)

	after, err := h.teams.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, after.Members, domain.MaxTeamSize)
	assert.False(t, after.HasMember("late", ""))
}

func TestTeamService_JoinTeam_FullCheckedBeforeMembership(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	team := h.mustTeam(t, hk.ID, "Alpha")

	for i := 0; i < domain.MaxTeamSize; i++ {
		_, err := h.teams.JoinTeam(ctx, team.ID, guest(fmt.Sprintf("u%d", i)), "")
		require.NoError(t, err)
	}

	_, err := h.teams.JoinTeam(ctx, team.ID, guest("u0"), "")
	assert.ErrorIs(t, err, ErrTeamFull)
}

func TestTeamService_JoinTeam_OneTeamPerHackathon(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	alpha := h.mustTeam(t, hk.ID, "Alpha")
	beta := h.mustTeam(t, hk.ID, "Beta")

	_, err := h.teams.JoinTeam(ctx, alpha.ID, guest("u1"), "")
	require.NoError(t, err)

	_, err = h.teams.JoinTeam(ctx, beta.ID, guest("u1"), "")
	assert.ErrorIs(t, err, ErrAlreadyInTeam)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = h.teams.JoinTeam(ctx, alpha.ID, guest("u1"), "")
	assert.ErrorIs(t, err, ErrAlreadyInTeam)

	other := h.mustHackathon(t)
	gamma := h.mustTeam(t, other.ID, "Gamma")
	_, err = h.teams.JoinTeam(ctx, gamma.ID, guest("u1"), "")
	assert.NoError(t, err, "membership is scoped per hackathon")
}

func TestTeamService_JoinTeam_JoinCode(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)

	team, err := h.teams.CreateTeam(ctx, hk.ID, guest("lead"), NewTeam{
		Name:        "Locked",
		Description: "code required",
		JoinCode:    "s3cret",
	})
	require.NoError(t, err)
	assert.True(t, team.HasJoinCode())

	_, err = h.teams.JoinTeam(ctx, team.ID, guest("u1"), "wrong")
	assert.ErrorIs(t, err, ErrInvalidJoinCode)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = h.teams.JoinTeam(ctx, team.ID, guest("u1"), "")
	assert.ErrorIs(t, err, ErrInvalidJoinCode)

	joined, err := h.teams.JoinTeam(ctx, team.ID, guest("u1"), "s3cret")
	require.NoError(t, err)
	assert.Len(t, joined.Members, 1)
}

func TestTeamService_JoinTeam_RejectedJoinLeavesNoUser(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)

	team, err := h.teams.CreateTeam(ctx, hk.ID, guest("lead"), NewTeam{Name: "Locked", Description: "x", JoinCode: "abc"})
	require.NoError(t, err)

	_, err = h.teams.JoinTeam(ctx, team.ID, guest("newcomer"), "nope")
	require.Error(t, err)

	_, err = memUserRepo{h.store}.FindByID(ctx, "newcomer")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTeamService_JoinTeam_Concurrent(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	team := h.mustTeam(t, hk.ID, "Alpha")

	const joiners = 12
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, full int
	)
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := h.teams.JoinTeam(ctx, team.ID, guest(fmt.Sprintf("u%d", i)), "")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, ErrTeamFull) {
				full++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, domain.MaxTeamSize, ok)
	assert.Equal(t, joiners-domain.MaxTeamSize, full)

	after, err := h.teams.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, after.Members, domain.MaxTeamSize)
}

func TestTeamService_LeaveTeam(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	alpha := h.mustTeam(t, hk.ID, "Alpha")
	beta := h.mustTeam(t, hk.ID, "Beta")

	_, err := h.teams.JoinTeam(ctx, alpha.ID, guest("u1"), "")
	require.NoError(t, err)

	_, err = h.teams.LeaveTeam(ctx, alpha.ID, "u2")
	assert.ErrorIs(t, err, ErrNotMember)

	left, err := h.teams.LeaveTeam(ctx, alpha.ID, "u1")
	require.NoError(t, err)
	assert.Empty(t, left.Members)

	kept, err := h.teams.GetTeam(ctx, alpha.ID)
	require.NoError(t, err, "empty teams persist")
	assert.Equal(t, "Alpha", kept.Name)

	_, err = h.teams.JoinTeam(ctx, beta.ID, guest("u1"), "")
	assert.NoError(t, err)

	_, err = h.teams.LeaveTeam(ctx, 999, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_UpdateTeam(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)

	team, err := h.teams.CreateTeam(ctx, hk.ID, guest("lead"), NewTeam{Name: "Alpha", Description: "x"})
	require.NoError(t, err)

	name := "Alpha Prime"
	updated, err := h.teams.UpdateTeam(ctx, team.ID, guest("lead"), TeamPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alpha Prime", updated.Name)
	assert.Equal(t, "x", updated.Description)

	_, err = h.teams.UpdateTeam(ctx, team.ID, guest("stranger"), TeamPatch{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = h.teams.JoinTeam(ctx, team.ID, guest("member"), "")
	require.NoError(t, err)
	desc := "now with members"
	updated, err = h.teams.UpdateTeam(ctx, team.ID, guest("member"), TeamPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)

	empty := ""
	_, err = h.teams.UpdateTeam(ctx, team.ID, guest("lead"), TeamPatch{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTeamService_FindUserTeam(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	team := h.mustTeam(t, hk.ID, "Alpha")

	_, err := h.teams.JoinTeam(ctx, team.ID, guest("u1"), "")
	require.NoError(t, err)

	found, err := h.teams.FindUserTeam(ctx, hk.ID, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, team.ID, found.ID)

	found, err = h.teams.FindUserTeam(ctx, hk.ID, "other-id", "u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, team.ID, found.ID)

	_, err = h.teams.FindUserTeam(ctx, hk.ID, "nobody", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_ListTeams(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)

	teams, err := h.teams.ListTeams(ctx, hk.ID)
	require.NoError(t, err)
	assert.Empty(t, teams)

	h.mustTeam(t, hk.ID, "Alpha")
	h.mustTeam(t, hk.ID, "Beta")
	teams, err = h.teams.ListTeams(ctx, hk.ID)
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	_, err = h.teams.ListTeams(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_MembershipInvariant(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	teams := []domain.Team{
		h.mustTeam(t, hk.ID, "A"),
		h.mustTeam(t, hk.ID, "B"),
		h.mustTeam(t, hk.ID, "C"),
	}
	users := []string{"u1", "u2", "u3", "u4", "u5"}

	for step := 0; step < 60; step++ {
		user := users[step%len(users)]
		team := teams[(step*7)%len(teams)]
		if step%3 == 0 {
			_, _ = h.teams.LeaveTeam(ctx, team.ID, user)
		} else {
			_, _ = h.teams.JoinTeam(ctx, team.ID, guest(user), "")
		}

		all, err := h.teams.ListTeams(ctx, hk.ID)
		require.NoError(t, err)
		for _, u := range users {
			count := 0
			for _, tm := range all {
				require.LessOrEqual(t, len(tm.Members), domain.MaxTeamSize)
				if tm.HasMember(u, "") {
					count++
				}
			}
			require.LessOrEqual(t, count, 1, "user %s in %d teams", u, count)
		}
	}
}

func TestTeamService_RecommendTeams(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	h.teams.fuzz = func() float64 { return 0 }

	crowded := h.mustTeam(t, hk.ID, "Crowded")
	roomy := h.mustTeam(t, hk.ID, "Roomy")
	full := h.mustTeam(t, hk.ID, "Full")
	mine := h.mustTeam(t, hk.ID, "Mine")

	for i := 0; i < 3; i++ {
		_, err := h.teams.JoinTeam(ctx, crowded.ID, guest(fmt.Sprintf("c%d", i)), "")
		require.NoError(t, err)
	}
	for i := 0; i < domain.MaxTeamSize; i++ {
		_, err := h.teams.JoinTeam(ctx, full.ID, guest(fmt.Sprintf("f%d", i)), "")
		require.NoError(t, err)
	}
	_, err := h.teams.JoinTeam(ctx, mine.ID, guest("me"), "")
	require.NoError(t, err)

	matches, err := h.teams.RecommendTeams(ctx, hk.ID, "me")
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, roomy.ID, matches[0].Team.ID)
	assert.Equal(t, crowded.ID, matches[1].Team.ID)
	assert.Greater(t, matches[0].MatchScore, matches[1].MatchScore)
}

func TestTeamService_PublishesLeaderboardChanges(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	hk := h.mustHackathon(t)
	team := h.mustTeam(t, hk.ID, "Alpha")
	before := h.notifier.count()

	_, err := h.teams.JoinTeam(ctx, team.ID, guest("u1"), "")
	require.NoError(t, err)
	_, err = h.teams.JoinTeam(ctx, team.ID, guest("u1"), "")
	require.Error(t, err)

	assert.Equal(t, before+1, h.notifier.count(), "failed joins publish nothing")
}
