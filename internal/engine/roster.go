package engine

import "github.com/tacticlab/momentum-engine/internal/models"

// DefaultRoster returns the match-day squad: 22 players, 11 per side,
// in fixed roster order (leaderboard ties break on this order).
func DefaultRoster() []models.Player {
	return []models.Player{
		// Team A
		{ID: "A1", Name: "M. Salah", Team: "A", Position: models.Forward, Resilience: models.TierVeteran, Skill: 9.2, Speed: 9.1},
		{ID: "A2", Name: "K. De Bruyne", Team: "A", Position: models.Midfielder, Resilience: models.TierVeteran, Skill: 9.0, Speed: 8.4},
		{ID: "A3", Name: "V. van Dijk", Team: "A", Position: models.Defender, Resilience: models.TierVeteran, Skill: 8.8, Speed: 7.6},
		{ID: "A4", Name: "T. Alexander-Arnold", Team: "A", Position: models.Defender, Resilience: models.TierExperienced, Skill: 8.5, Speed: 8.7},
		{ID: "A5", Name: "H. Kane", Team: "A", Position: models.Forward, Resilience: models.TierVeteran, Skill: 8.9, Speed: 7.8},
		{ID: "A6", Name: "B. Saka", Team: "A", Position: models.Forward, Resilience: models.TierYoung, Skill: 8.4, Speed: 8.8},
		{ID: "A7", Name: "R. James", Team: "A", Position: models.Defender, Resilience: models.TierExperienced, Skill: 8.2, Speed: 8.5},
		{ID: "A8", Name: "D. Rice", Team: "A", Position: models.Midfielder, Resilience: models.TierExperienced, Skill: 8.3, Speed: 8.1},
		{ID: "A9", Name: "P. Foden", Team: "A", Position: models.Midfielder, Resilience: models.TierExperienced, Skill: 8.7, Speed: 8.6},
		{ID: "A10", Name: "L. Dunk", Team: "A", Position: models.Defender, Resilience: models.TierVeteran, Skill: 7.9, Speed: 7.2},
		{ID: "A11", Name: "A. Ramsdale", Team: "A", Position: models.Goalkeeper, Resilience: models.TierExperienced, Skill: 8.0, Speed: 6.5},
		// Team B
		{ID: "B1", Name: "E. Haaland", Team: "B", Position: models.Forward, Resilience: models.TierYoung, Skill: 9.3, Speed: 9.5},
		{ID: "B2", Name: "B. Fernandes", Team: "B", Position: models.Midfielder, Resilience: models.TierVeteran, Skill: 8.6, Speed: 8.2},
		{ID: "B3", Name: "R. Dias", Team: "B", Position: models.Defender, Resilience: models.TierVeteran, Skill: 8.7, Speed: 7.9},
		{ID: "B4", Name: "T. Koulibaly", Team: "B", Position: models.Defender, Resilience: models.TierVeteran, Skill: 8.5, Speed: 7.8},
		{ID: "B5", Name: "J. Bellingham", Team: "B", Position: models.Midfielder, Resilience: models.TierExperienced, Skill: 8.9, Speed: 8.7},
		{ID: "B6", Name: "V. Osimhen", Team: "B", Position: models.Forward, Resilience: models.TierExperienced, Skill: 8.6, Speed: 9.2},
		{ID: "B7", Name: "F. de Jong", Team: "B", Position: models.Midfielder, Resilience: models.TierExperienced, Skill: 8.5, Speed: 8.3},
		{ID: "B8", Name: "T. Hernandez", Team: "B", Position: models.Defender, Resilience: models.TierExperienced, Skill: 8.1, Speed: 9.0},
		{ID: "B9", Name: "K. Havertz", Team: "B", Position: models.Forward, Resilience: models.TierExperienced, Skill: 8.2, Speed: 8.4},
		{ID: "B10", Name: "E. Camavinga", Team: "B", Position: models.Midfielder, Resilience: models.TierYoung, Skill: 8.3, Speed: 8.6},
		{ID: "B11", Name: "E. Mendy", Team: "B", Position: models.Goalkeeper, Resilience: models.TierVeteran, Skill: 8.4, Speed: 6.8},
	}
}

// splitRoster partitions a roster into team A and team B slices,
// preserving roster order within each team.
func splitRoster(roster []models.Player) (teamA, teamB []models.Player) {
	for _, p := range roster {
		if p.Team == "A" {
			teamA = append(teamA, p)
		} else {
			teamB = append(teamB, p)
		}
	}
	return teamA, teamB
}
