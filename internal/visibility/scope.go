package visibility

import (
	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// Scope is the set of user identities whose owned records a viewer may see.
// It is derived per request and never persisted or cached.
type Scope map[string]struct{}

// Contains reports whether the given user id is in scope.
func (s Scope) Contains(userID string) bool {
	_, ok := s[userID]
	return ok
}

func (s Scope) add(userID string) {
	if userID != "" {
		s[userID] = struct{}{}
	}
}

// IDs returns the scope members as a slice. Order is unspecified.
func (s Scope) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// ResolveScope computes the allowed-owner set for a viewer against the full
// user directory.
//
// Rules by designation:
//   - Admin sees every user.
//   - Recruiter sees only themselves.
//   - Mentor sees themselves plus Recruiters reporting directly to them.
//   - Manager sees themselves, Mentors reporting directly to them, and
//     Recruiters reporting to those Mentors. Recruiters reporting directly
//     to a Manager are deliberately excluded.
//
// A nil viewer yields an empty scope; an unrecognized designation fails
// closed to self-only. The walk is two bounded passes over the directory,
// so a malformed reporter graph (cycles, self references) cannot cause
// unbounded traversal.
func ResolveScope(viewer *domain.User, users []domain.User) Scope {
	scope := Scope{}
	if viewer == nil || viewer.ID == "" {
		return scope
	}

	designation, ok := domain.ParseDesignation(string(viewer.Designation))
	if !ok {
		scope.add(viewer.ID)
		return scope
	}

	switch designation {
	case domain.DesignationAdmin:
		for i := range users {
			scope.add(users[i].ID)
		}
		scope.add(viewer.ID)
	case domain.DesignationManager:
		scope.add(viewer.ID)
		mentors := directReportees(viewer.ID, users, domain.DesignationMentor)
		for mentorID := range mentors {
			scope.add(mentorID)
			for recruiterID := range directReportees(mentorID, users, domain.DesignationRecruiter) {
				scope.add(recruiterID)
			}
		}
	case domain.DesignationMentor:
		scope.add(viewer.ID)
		for recruiterID := range directReportees(viewer.ID, users, domain.DesignationRecruiter) {
			scope.add(recruiterID)
		}
	case domain.DesignationRecruiter:
		scope.add(viewer.ID)
	}
	return scope
}

// directReportees returns ids of users whose reporter is reporterID and
// whose designation matches want. Self references are skipped so a cyclic
// graph only ever contributes each id once.
func directReportees(reporterID string, users []domain.User, want domain.Designation) map[string]struct{} {
	out := map[string]struct{}{}
	for i := range users {
		u := &users[i]
		if u.ReporterID == nil || *u.ReporterID != reporterID || u.ID == reporterID {
			continue
		}
		if got, ok := domain.ParseDesignation(string(u.Designation)); !ok || got != want {
			continue
		}
		out[u.ID] = struct{}{}
	}
	return out
}
