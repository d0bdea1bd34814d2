package domain

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// amountPattern captures a leading currency amount such as "$5,000.50 in credits".
var amountPattern = regexp2.MustCompile(`^\s*\$?\s*(?<amount>\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)`, regexp2.None)

type SponsorAdoption struct {
	SponsorID               uint         `json:"sponsor_id"`
	SponsorName             string       `json:"sponsor_name"`
	SubmissionsUsingSponsor []Submission `json:"submissions_using_sponsor"`
	UsagePercentage         float64      `json:"usage_percentage"`
	TeamsUsingSponsor       []Team       `json:"teams_using_sponsor"`
	TeamUsagePercentage     float64      `json:"team_usage_percentage"`
	PrizesOffered           []Prize      `json:"prizes_offered"`
	TotalPrizeValue         float64      `json:"total_prize_value"`
	TotalPrizeValueDisplay  string       `json:"total_prize_value_display"`
}

// ComputeAdoption aggregates how widely a sponsor's technology was used across
// a hackathon. Percentages are 0 when the denominator is empty.
func ComputeAdoption(sponsor Sponsor, submissions []Submission, teams []Team, prizes []Prize) SponsorAdoption {
	adoption := SponsorAdoption{
		SponsorID:               sponsor.ID,
		SponsorName:             sponsor.Name,
		SubmissionsUsingSponsor: []Submission{},
		TeamsUsingSponsor:       []Team{},
		PrizesOffered:           []Prize{},
	}

	teamIDs := make(map[uint]struct{})
	for _, s := range submissions {
		if !s.UsesSponsor(sponsor.ID) {
			continue
		}
		adoption.SubmissionsUsingSponsor = append(adoption.SubmissionsUsingSponsor, s)
		teamIDs[s.TeamID] = struct{}{}
	}

	for _, t := range teams {
		if _, ok := teamIDs[t.ID]; ok {
			adoption.TeamsUsingSponsor = append(adoption.TeamsUsingSponsor, t)
		}
	}

	adoption.UsagePercentage = percentage(len(adoption.SubmissionsUsingSponsor), len(submissions))
	adoption.TeamUsagePercentage = percentage(len(adoption.TeamsUsingSponsor), len(teams))

	for _, p := range prizes {
		if p.IsGeneral() || *p.SponsorID != sponsor.ID {
			continue
		}
		adoption.PrizesOffered = append(adoption.PrizesOffered, p)
		adoption.TotalPrizeValue += ParsePrizeAmount(p.Value)
	}
	adoption.TotalPrizeValueDisplay = FormatCurrency(adoption.TotalPrizeValue)

	return adoption
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(part) / float64(total) * 100
	if p > 100 {
		return 100
	}
	return p
}

// ParsePrizeAmount reads the leading amount of a free-text prize value.
// Anything unparseable counts as 0.
func ParsePrizeAmount(value string) float64 {
	m, err := amountPattern.FindStringMatch(value)
	if err != nil || m == nil {
		return 0
	}

	g := m.GroupByName("amount")
	if g == nil || g.Length == 0 {
		return 0
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(g.String(), ",", ""), 64)
	if err != nil {
		return 0
	}

	return amount
}

// FormatCurrency renders an amount as "$5,000.00".
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
