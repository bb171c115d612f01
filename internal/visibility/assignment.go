package visibility

import (
	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// JobScope is the set of job identities a viewer is personally assigned to.
type JobScope map[string]struct{}

// Contains reports whether the given job id is in scope.
func (s JobScope) Contains(jobID string) bool {
	_, ok := s[jobID]
	return ok
}

// ExpandByAssignment returns the jobs where the viewer is the lead
// recruiter or an assigned team member. Assignment visibility is granted
// independently of the owner scope; the two are OR-combined by the record
// filter.
func ExpandByAssignment(viewer *domain.User, jobs []domain.Job) JobScope {
	scope := JobScope{}
	if viewer == nil || viewer.ID == "" {
		return scope
	}
	for i := range jobs {
		job := &jobs[i]
		if job.LeadRecruiterID != nil && *job.LeadRecruiterID == viewer.ID {
			scope[job.ID] = struct{}{}
			continue
		}
		for _, assigned := range job.AssignedRecruiterIDs {
			if assigned == viewer.ID {
				scope[job.ID] = struct{}{}
				break
			}
		}
	}
	return scope
}
