package scoreboard

// ToggleChallenge validates or un-validates a challenge for a team.
//
// Rules, in order: a disabled challenge never toggles; an exclusive
// challenge already won by another team never toggles; a current winner
// toggling off loses the winner slot, the completed entry, and the points
// (floored at zero); anyone else toggling on gains all three. Calling twice
// with the same pair round-trips, except where the zero floor already
// swallowed part of the debit.
func (s *Store) ToggleChallenge(teamID, challengeID string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := s.findTeam(teamID)
	challenge := s.findChallenge(challengeID)
	if team == nil || challenge == nil {
		return Ignored
	}
	if challenge.Disabled {
		return Ignored
	}

	isWinner := containsID(challenge.Winners, teamID)
	if challenge.Type.Exclusive() && !isWinner && len(challenge.Winners) > 0 {
		// Another team already holds the exclusive win.
		return Ignored
	}

	if isWinner {
		challenge.Winners = removeID(challenge.Winners, teamID)
		team.CompletedChallenges = removeID(team.CompletedChallenges, challengeID)
		team.Points -= challenge.Points
		if team.Points < 0 {
			team.Points = 0
		}
	} else {
		challenge.Winners = append(challenge.Winners, teamID)
		team.CompletedChallenges = append(team.CompletedChallenges, challengeID)
		team.Points += challenge.Points
	}
	return Applied
}

// AddPersonalPoints credits (or, with a negative amount, debits) a player's
// personal points and the owning team's total in one step. The player is
// looked up within the given team only. Unlike the challenge paths there is
// no zero floor here: a team total can legitimately go negative when a
// deduction exceeds its accrued challenge points.
func (s *Store) AddPersonalPoints(teamID, playerID string, amount int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := s.findTeam(teamID)
	if team == nil {
		return Ignored
	}

	for i := range team.Players {
		if team.Players[i].ID == playerID {
			team.Players[i].PersonalPoints += amount
			team.Points += amount
			return Applied
		}
	}
	return Ignored
}

// ToggleDisabled flips a challenge's disabled flag and replays the credit
// bookkeeping for every team currently in its winners set. Disabling strips
// the completed entry and the points (floored at zero) from each winner;
// re-enabling restores both to winners still missing the credit. The
// winners set itself is left alone, which is what lets re-enabling restore
// exactly the teams that held the challenge before.
func (s *Store) ToggleDisabled(challengeID string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge := s.findChallenge(challengeID)
	if challenge == nil {
		return Ignored
	}

	wasDisabled := challenge.Disabled
	challenge.Disabled = !wasDisabled

	for _, teamID := range challenge.Winners {
		team := s.findTeam(teamID)
		if team == nil {
			continue
		}
		hasCompleted := containsID(team.CompletedChallenges, challengeID)

		if wasDisabled {
			if !hasCompleted {
				team.CompletedChallenges = append(team.CompletedChallenges, challengeID)
				team.Points += challenge.Points
			}
		} else {
			if hasCompleted {
				team.CompletedChallenges = removeID(team.CompletedChallenges, challengeID)
				team.Points -= challenge.Points
				if team.Points < 0 {
					team.Points = 0
				}
			}
		}
	}
	return Applied
}

// SwapPlayers exchanges two players' roster slots across teams. The first
// player is located by scanning every roster for the first id match; the
// target player must sit on the target team. Personal points travel with
// the player, so each team total shifts by exactly the personal-points
// delta — no floor applied. Challenge wins stay with the team: a swapped
// player does not carry completed challenges anywhere.
func (s *Store) SwapPlayers(playerID, targetTeamID, targetPlayerID string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	var teamA *Team
	idxA := -1
	for _, t := range s.teams {
		for i := range t.Players {
			if t.Players[i].ID == playerID {
				teamA = t
				idxA = i
				break
			}
		}
		if teamA != nil {
			break
		}
	}

	teamB := s.findTeam(targetTeamID)
	if teamA == nil || teamB == nil {
		return Ignored
	}

	idxB := -1
	for i := range teamB.Players {
		if teamB.Players[i].ID == targetPlayerID {
			idxB = i
			break
		}
	}
	if idxB < 0 {
		return Ignored
	}

	playerA := teamA.Players[idxA]
	playerB := teamB.Players[idxB]
	teamA.Players[idxA] = playerB
	teamB.Players[idxB] = playerA

	teamA.Points = teamA.Points - playerA.PersonalPoints + playerB.PersonalPoints
	teamB.Points = teamB.Points - playerB.PersonalPoints + playerA.PersonalPoints
	return Applied
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
