package board

import "github.com/JGSSSILVA/Personal-Kanban/internal/models"

// Selection tracks which profiles are active on the board and which one
// new tasks are assigned to. The active set keeps the registry's creation
// order so "first active profile" is stable across toggles.
type Selection struct {
	active     []models.Profile
	assigneeID string
}

// NewSelection creates an empty Selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Toggle adds the profile to the active set if absent and removes it if
// present, then re-derives the assignee. Returns true when the profile is
// active after the call.
func (s *Selection) Toggle(profile models.Profile) bool {
	for i, p := range s.active {
		if p.ID == profile.ID {
			s.active = append(s.active[:i], s.active[i+1:]...)
			s.fixAssignee()
			return false
		}
	}

	// Insert keeping creation order.
	idx := len(s.active)
	for i, p := range s.active {
		if profile.CreatedAt.Before(p.CreatedAt) {
			idx = i
			break
		}
	}
	s.active = append(s.active, models.Profile{})
	copy(s.active[idx+1:], s.active[idx:])
	s.active[idx] = profile

	s.fixAssignee()
	return true
}

// Drop removes a profile from the active set, for profiles deleted from
// the registry while selected.
func (s *Selection) Drop(profileID string) {
	for i, p := range s.active {
		if p.ID == profileID {
			s.active = append(s.active[:i], s.active[i+1:]...)
			s.fixAssignee()
			return
		}
	}
}

// fixAssignee reassigns the assignee to the first active profile whenever
// the current one is no longer active.
func (s *Selection) fixAssignee() {
	for _, p := range s.active {
		if p.ID == s.assigneeID {
			return
		}
	}
	if len(s.active) > 0 {
		s.assigneeID = s.active[0].ID
	} else {
		s.assigneeID = ""
	}
}

// AssigneeID returns the profile id new tasks are created under, or ""
// when no profile is active.
func (s *Selection) AssigneeID() string {
	return s.assigneeID
}

// ActiveIDs returns the ids of the active profiles in creation order.
func (s *Selection) ActiveIDs() []string {
	ids := make([]string, len(s.active))
	for i, p := range s.active {
		ids[i] = p.ID
	}
	return ids
}

// Active returns a copy of the active profiles in creation order.
func (s *Selection) Active() []models.Profile {
	out := make([]models.Profile, len(s.active))
	copy(out, s.active)
	return out
}

// Empty reports whether no profile is active.
func (s *Selection) Empty() bool {
	return len(s.active) == 0
}

// Contains reports whether the profile is currently active.
func (s *Selection) Contains(profileID string) bool {
	for _, p := range s.active {
		if p.ID == profileID {
			return true
		}
	}
	return false
}
