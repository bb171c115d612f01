package service

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
	"github.com/JTSTBP/ATS-sub003/internal/persistence"
	"github.com/JTSTBP/ATS-sub003/internal/repository"
)

// In-memory repositories for service tests. They mimic the pgx contracts,
// including pgx.ErrNoRows on missing rows.

type fakeUserRepo struct {
	users map[string]domain.User
	seq   int
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]domain.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	if user.ID == "" {
		user.ID = "user-" + strconv.Itoa(r.seq)
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

type fakeJobRepo struct {
	jobs       map[string]domain.Job
	seq        int
	lastFilter repository.JobFilter
}

func newFakeJobRepo(jobs ...domain.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: map[string]domain.Job{}}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (r *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.seq++
	if job.ID == "" {
		job.ID = "job-" + strconv.Itoa(r.seq)
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &job, nil
}

func (r *fakeJobRepo) ListAll(_ context.Context) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job)
	}
	return out, nil
}

func (r *fakeJobRepo) ListWithFilter(_ context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	r.lastFilter = filter
	var out []domain.Job
	for _, job := range r.jobs {
		if filter.ClientID != nil && job.ClientID != *filter.ClientID {
			continue
		}
		if filter.Status != nil && job.Status != *filter.Status {
			continue
		}
		if filter.CreatedBy != nil && job.CreatedBy != *filter.CreatedBy {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

type fakeClientRepo struct {
	clients map[string]domain.Client
	seq     int
}

func newFakeClientRepo(clients ...domain.Client) *fakeClientRepo {
	repo := &fakeClientRepo{clients: map[string]domain.Client{}}
	for _, c := range clients {
		repo.clients[c.ID] = c
	}
	return repo
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) error {
	r.seq++
	if client.ID == "" {
		client.ID = "client-" + strconv.Itoa(r.seq)
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &client, nil
}

func (r *fakeClientRepo) ListAll(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, client := range r.clients {
		out = append(out, client)
	}
	return out, nil
}

type fakeCandidateRepo struct {
	candidates map[string]domain.Candidate
	seq        int
	lastFilter repository.CandidateFilter
}

func newFakeCandidateRepo(candidates ...domain.Candidate) *fakeCandidateRepo {
	repo := &fakeCandidateRepo{candidates: map[string]domain.Candidate{}}
	for _, c := range candidates {
		repo.candidates[c.ID] = c
	}
	return repo
}

func (r *fakeCandidateRepo) Create(_ context.Context, cand *domain.Candidate) error {
	r.seq++
	if cand.ID == "" {
		cand.ID = "cand-" + strconv.Itoa(r.seq)
	}
	r.candidates[cand.ID] = *cand
	return nil
}

func (r *fakeCandidateRepo) Update(_ context.Context, cand *domain.Candidate) error {
	if _, ok := r.candidates[cand.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.candidates[cand.ID] = *cand
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id string) (*domain.Candidate, error) {
	cand, ok := r.candidates[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &cand, nil
}

func (r *fakeCandidateRepo) ListAll(_ context.Context) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, 0, len(r.candidates))
	for _, cand := range r.candidates {
		out = append(out, cand)
	}
	return out, nil
}

func (r *fakeCandidateRepo) ListWithFilter(_ context.Context, filter repository.CandidateFilter) ([]domain.Candidate, error) {
	r.lastFilter = filter
	var out []domain.Candidate
	for _, cand := range r.candidates {
		if filter.JobID != nil && cand.JobID != *filter.JobID {
			continue
		}
		if filter.CreatedBy != nil && cand.CreatedBy != *filter.CreatedBy {
			continue
		}
		if filter.Status != nil && cand.Status != *filter.Status {
			continue
		}
		out = append(out, cand)
	}
	return out, nil
}

type fakeLeaveRepo struct {
	leaves         map[string]domain.LeaveRequest
	seq            int
	lastListedUser string
}

func newFakeLeaveRepo(leaves ...domain.LeaveRequest) *fakeLeaveRepo {
	repo := &fakeLeaveRepo{leaves: map[string]domain.LeaveRequest{}}
	for _, l := range leaves {
		repo.leaves[l.ID] = l
	}
	return repo
}

func (r *fakeLeaveRepo) Create(_ context.Context, leave *domain.LeaveRequest) error {
	r.seq++
	if leave.ID == "" {
		leave.ID = "leave-" + strconv.Itoa(r.seq)
	}
	r.leaves[leave.ID] = *leave
	return nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, leave *domain.LeaveRequest) error {
	if _, ok := r.leaves[leave.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.leaves[leave.ID] = *leave
	return nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	leave, ok := r.leaves[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &leave, nil
}

func (r *fakeLeaveRepo) ListAll(_ context.Context) ([]domain.LeaveRequest, error) {
	out := make([]domain.LeaveRequest, 0, len(r.leaves))
	for _, leave := range r.leaves {
		out = append(out, leave)
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByUser(_ context.Context, userID string) ([]domain.LeaveRequest, error) {
	r.lastListedUser = userID
	var out []domain.LeaveRequest
	for _, leave := range r.leaves {
		if leave.UserID == userID {
			out = append(out, leave)
		}
	}
	return out, nil
}

type fakePasswordResetRepo struct {
	tokens map[string]repository.PasswordResetToken
	seq    int
}

func newFakePasswordResetRepo(tokens ...repository.PasswordResetToken) *fakePasswordResetRepo {
	repo := &fakePasswordResetRepo{tokens: map[string]repository.PasswordResetToken{}}
	for _, tok := range tokens {
		repo.tokens[tok.Token] = tok
	}
	return repo
}

func (r *fakePasswordResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	r.seq++
	if token.ID == "" {
		token.ID = "reset-" + strconv.Itoa(r.seq)
	}
	r.tokens[token.Token] = *token
	return nil
}

func (r *fakePasswordResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := r.tokens[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &token, nil
}

func (r *fakePasswordResetRepo) MarkUsed(_ context.Context, id string) error {
	now := time.Now()
	for key, token := range r.tokens {
		if token.ID == id {
			token.UsedAt = &now
			r.tokens[key] = token
		}
	}
	return nil
}

// testDirectory builds a DirectoryService backed by an unconnected Redis
// wrapper, so every lookup hits the fake repository.
func testDirectory(users *fakeUserRepo) *DirectoryService {
	return NewDirectoryService(users, &persistence.Redis{}, zap.NewNop())
}
