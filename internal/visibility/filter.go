package visibility

import (
	"strings"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// JobRef carries the denormalized job attributes the filter matches
// against. References arrive from the collaborator layer in varying shapes;
// the index normalizes them to plain identifiers up front.
type JobRef struct {
	Title      string
	ClientName string
	Stages     []string
}

// JobIndex maps job ids to their filterable attributes.
type JobIndex map[string]JobRef

// NewJobIndex builds a lookup from the job and client collections.
func NewJobIndex(jobs []domain.Job, clients []domain.Client) JobIndex {
	clientNames := make(map[string]string, len(clients))
	for i := range clients {
		clientNames[clients[i].ID] = clients[i].Name
	}
	idx := make(JobIndex, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		idx[job.ID] = JobRef{
			Title:      job.Title,
			ClientName: clientNames[job.ClientID],
			Stages:     job.Stages,
		}
	}
	return idx
}

// StagesForTitle returns the configured pipeline stages of the job with the
// given title, used to populate the dependent stage dropdown.
func (idx JobIndex) StagesForTitle(title string) []string {
	for _, ref := range idx {
		if ref.Title == title {
			return ref.Stages
		}
	}
	return nil
}

// CandidateCriteria captures the user-entered filters of the candidate
// listing screens. Empty values and the literal "all" pass everything
// through.
type CandidateCriteria struct {
	Status   string
	Client   string
	JobTitle string
	Stage    string
	Search   string
}

// LeaveCriteria captures the leave listing filters.
type LeaveCriteria struct {
	Status   string
	Category string
	Search   string
}

// FilterCandidates applies the visibility predicate and the user-entered
// criteria to a candidate collection. A candidate is visible when its owner
// is in the owner scope OR its job is in the assignment scope; candidates
// with neither reference resolvable are excluded. Secondary filters are
// AND-combined; the stage filter only takes effect while a specific job
// title is selected, since stage options are populated from that job's
// pipeline.
func FilterCandidates(candidates []domain.Candidate, owners Scope, jobs JobScope, idx JobIndex, criteria CandidateCriteria) []domain.Candidate {
	result := make([]domain.Candidate, 0, len(candidates))
	jobTitleActive := !passesAll(criteria.JobTitle)
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	for i := range candidates {
		cand := &candidates[i]
		if !candidateVisible(cand, owners, jobs) {
			continue
		}
		if !passesAll(criteria.Status) && string(cand.Status) != strings.ToUpper(criteria.Status) {
			continue
		}
		ref, hasRef := idx[cand.JobID]
		if !passesAll(criteria.Client) && (!hasRef || ref.ClientName != criteria.Client) {
			continue
		}
		if jobTitleActive {
			if !hasRef || ref.Title != criteria.JobTitle {
				continue
			}
			if !passesAll(criteria.Stage) && cand.Stage != criteria.Stage {
				continue
			}
		}
		if search != "" && !candidateMatchesSearch(cand, ref, search) {
			continue
		}
		result = append(result, *cand)
	}
	return result
}

// FilterLeaves applies the owner-scope predicate and leave criteria to a
// leave request collection. Leave requests carry no job reference, so
// assignment scope does not apply.
func FilterLeaves(leaves []domain.LeaveRequest, owners Scope, criteria LeaveCriteria) []domain.LeaveRequest {
	result := make([]domain.LeaveRequest, 0, len(leaves))
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	for i := range leaves {
		leave := &leaves[i]
		if leave.UserID == "" || !owners.Contains(leave.UserID) {
			continue
		}
		if !passesAll(criteria.Status) && string(leave.Status) != strings.ToUpper(criteria.Status) {
			continue
		}
		if !passesAll(criteria.Category) && !strings.EqualFold(leave.Category, criteria.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(leave.Reason), search) {
			continue
		}
		result = append(result, *leave)
	}
	return result
}

func candidateVisible(cand *domain.Candidate, owners Scope, jobs JobScope) bool {
	if cand.CreatedBy != "" && owners.Contains(cand.CreatedBy) {
		return true
	}
	if cand.JobID != "" && jobs.Contains(cand.JobID) {
		return true
	}
	return false
}

func candidateMatchesSearch(cand *domain.Candidate, ref JobRef, search string) bool {
	if strings.Contains(strings.ToLower(cand.Name), search) ||
		strings.Contains(strings.ToLower(cand.Email), search) ||
		strings.Contains(strings.ToLower(cand.Phone), search) ||
		strings.Contains(strings.ToLower(ref.Title), search) {
		return true
	}
	for _, skill := range cand.Skills {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}
	return false
}

// passesAll reports whether a criterion value means "no filtering".
func passesAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, "all")
}
