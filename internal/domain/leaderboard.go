package domain

import "sort"

const (
	scoreSubmissionBase    = 10
	scorePerSponsor        = 5
	scorePresentationLink  = 10
	scorePerMember         = 2
	matchCapacityWeight    = 3.0
	matchSubmissionPenalty = 5.0
)

var stateBonus = map[SubmissionState]int{
	SubmissionDraft:       5,
	SubmissionReadyToDemo: 15,
	SubmissionPresented:   25,
}

// CalculateScore is the competitive leaderboard score. It is pure: identical
// inputs always give the same result.
func CalculateScore(team Team, submission *Submission) int {
	score := scorePerMember * len(team.Members)
	if submission == nil {
		return score
	}

	score += scoreSubmissionBase
	score += stateBonus[submission.State]
	score += scorePerSponsor * submission.DistinctSponsorCount()
	if submission.PresentationLink != "" {
		score += scorePresentationLink
	}

	return score
}

type TeamScore struct {
	Team       Team
	Submission *Submission
	Score      int
}

type LeaderboardEntry struct {
	Rank            int             `json:"rank"`
	TeamID          uint            `json:"team_id"`
	TeamName        string          `json:"team_name"`
	MemberCount     int             `json:"member_count"`
	Score           int             `json:"score"`
	SubmissionID    *uint           `json:"submission_id,omitempty"`
	SubmissionState SubmissionState `json:"submission_state,omitempty"`
}

// RankTeams orders by score descending. Ties keep their input order and every
// entry gets its own consecutive rank.
func RankTeams(scores []TeamScore) []LeaderboardEntry {
	sorted := make([]TeamScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	entries := make([]LeaderboardEntry, 0, len(sorted))
	for i, ts := range sorted {
		entry := LeaderboardEntry{
			Rank:        i + 1,
			TeamID:      ts.Team.ID,
			TeamName:    ts.Team.Name,
			MemberCount: len(ts.Team.Members),
			Score:       ts.Score,
		}
		if ts.Submission != nil {
			id := ts.Submission.ID
			entry.SubmissionID = &id
			entry.SubmissionState = ts.Submission.State
		}
		entries = append(entries, entry)
	}

	return entries
}

// BuildLeaderboard pairs every team with its submission, scores and ranks them.
func BuildLeaderboard(teams []Team, submissions []Submission) []LeaderboardEntry {
	byTeam := make(map[uint]*Submission, len(submissions))
	for i := range submissions {
		byTeam[submissions[i].TeamID] = &submissions[i]
	}

	scores := make([]TeamScore, 0, len(teams))
	for _, t := range teams {
		sub := byTeam[t.ID]
		scores = append(scores, TeamScore{
			Team:       t,
			Submission: sub,
			Score:      CalculateScore(t, sub),
		})
	}

	return RankTeams(scores)
}

// MatchScore rates how well a team suits a newcomer. Teams with free seats and
// no settled submission rank higher. fuzz is added as is, so callers decide
// how random the ordering gets. Not a leaderboard score.
func MatchScore(team Team, submission *Submission, fuzz float64) float64 {
	free := MaxTeamSize - len(team.Members)
	if free <= 0 {
		return 0
	}

	score := matchCapacityWeight * float64(free)
	if submission != nil {
		score -= matchSubmissionPenalty
		if submission.State == SubmissionDraft {
			score += float64(scorePerSponsor * submission.DistinctSponsorCount())
		}
	}

	return score + fuzz
}

type TeamMatch struct {
	Team       Team    `json:"team"`
	MatchScore float64 `json:"match_score"`
}
