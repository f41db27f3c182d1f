package matching

// FilterCandidates narrows the full user pool down to eligible candidates
// for the requester. It excludes the requester itself, non-active profiles,
// role-incompatible profiles, users already sharing an active match of the
// applicable type, and users with a pending or accepted request in either
// direction. It applies no score-based exclusion and mutates nothing.
func FilterCandidates(requester Profile, relType RelationshipType, pool []Profile, state RelationshipState) []Profile {
	desired := DesiredRole(requester.Role)
	excluded := excludedPartners(requester.ID, relType.AppliesTo(), state)

	candidates := make([]Profile, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == requester.ID {
			continue
		}
		if candidate.Status != StatusActive {
			continue
		}
		if candidate.Role != desired {
			continue
		}
		if _, ok := excluded[candidate.ID]; ok {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

// excludedPartners collects ids that must never be offered again: active
// match partners of the applicable type, and both sides of any pending or
// accepted request involving the requester.
func excludedPartners(requesterID string, matchType MatchType, state RelationshipState) map[string]struct{} {
	excluded := make(map[string]struct{})

	for _, match := range state.Matches {
		if !match.Active || match.Type != matchType {
			continue
		}
		if partner := match.PartnerOf(requesterID); partner != "" {
			excluded[partner] = struct{}{}
		}
	}

	for _, request := range state.Requests {
		if request.Status == RequestDeclined {
			continue
		}
		switch requesterID {
		case request.RequesterID:
			excluded[request.ReceiverID] = struct{}{}
		case request.ReceiverID:
			excluded[request.RequesterID] = struct{}{}
		}
	}

	return excluded
}
