package response

import (
	"time"

	"github.com/hackforge/hackathon-api/internal/domain"
)

type Leaderboard struct {
	HackathonID uint                      `json:"hackathon_id"`
	Entries     []domain.LeaderboardEntry `json:"entries"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

func NewLeaderboard(hackathonID uint, entries []domain.LeaderboardEntry) Leaderboard {
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}

	return Leaderboard{
		HackathonID: hackathonID,
		Entries:     entries,
		GeneratedAt: time.Now().UTC(),
	}
}
