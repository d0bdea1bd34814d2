package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository"
)

// memStore is an in-memory stand-in for the gorm repositories. The
// transactor serialises units of work and restores a snapshot on error.
type memStore struct {
	mu     sync.Mutex
	txMu   sync.Mutex
	nextID uint

	hackathons  map[uint]domain.Hackathon
	users       map[string]domain.User
	teams       map[uint]domain.Team
	members     map[uint][]string
	submissions map[uint]domain.Submission
	sponsors    map[uint]domain.Sponsor
	invites     map[uint]domain.SponsorInvite
	prizes      map[uint]domain.Prize
	issues      map[uint]domain.Issue
}

func newMemStore() *memStore {
	return &memStore{
		hackathons:  map[uint]domain.Hackathon{},
		users:       map[string]domain.User{},
		teams:       map[uint]domain.Team{},
		members:     map[uint][]string{},
		submissions: map[uint]domain.Submission{},
		sponsors:    map[uint]domain.Sponsor{},
		invites:     map[uint]domain.SponsorInvite{},
		prizes:      map[uint]domain.Prize{},
		issues:      map[uint]domain.Issue{},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() *memStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make(map[uint][]string, len(s.members))
	for k, v := range s.members {
		members[k] = append([]string(nil), v...)
	}

	return &memStore{
		nextID:      s.nextID,
		hackathons:  copyMap(s.hackathons),
		users:       copyMap(s.users),
		teams:       copyMap(s.teams),
		members:     members,
		submissions: copyMap(s.submissions),
		sponsors:    copyMap(s.sponsors),
		invites:     copyMap(s.invites),
		prizes:      copyMap(s.prizes),
		issues:      copyMap(s.issues),
	}
}

func (s *memStore) restore(snap *memStore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID = snap.nextID
	s.hackathons = snap.hackathons
	s.users = snap.users
	s.teams = snap.teams
	s.members = snap.members
	s.submissions = snap.submissions
	s.sponsors = snap.sponsors
	s.invites = snap.invites
	s.prizes = snap.prizes
	s.issues = snap.issues
}

type txKey struct{}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// hackathons

type memHackathonRepo struct{ s *memStore }

func (r memHackathonRepo) Create(_ context.Context, h domain.Hackathon) (domain.Hackathon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	h.ID = r.s.id()
	h.CreatedAt, h.UpdatedAt = time.Now(), time.Now()
	r.s.hackathons[h.ID] = h
	return h, nil
}

func (r memHackathonRepo) Update(_ context.Context, h domain.Hackathon) (domain.Hackathon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.hackathons[h.ID]; !ok {
		return domain.Hackathon{}, repository.ErrHackathonNotFound
	}
	h.UpdatedAt = time.Now()
	r.s.hackathons[h.ID] = h
	return h, nil
}

func (r memHackathonRepo) FindByID(_ context.Context, id uint) (domain.Hackathon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	h, ok := r.s.hackathons[id]
	if !ok {
		return domain.Hackathon{}, repository.ErrHackathonNotFound
	}
	return h, nil
}

func (r memHackathonRepo) FindAll(_ context.Context) ([]domain.Hackathon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Hackathon, 0, len(r.s.hackathons))
	for _, h := range r.s.hackathons {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// users

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; ok {
		return domain.User{}, repository.ErrDuplicate
	}
	u.CreatedAt, u.UpdatedAt = time.Now(), time.Now()
	r.s.users[u.ID] = u
	return u, nil
}

func (r memUserRepo) Update(_ context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u.UpdatedAt = time.Now()
	r.s.users[u.ID] = u
	return u, nil
}

func (r memUserRepo) FindByID(_ context.Context, id string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

// teams

type memTeamRepo struct{ s *memStore }

func (r memTeamRepo) load(id uint) (domain.Team, bool) {
	t, ok := r.s.teams[id]
	if !ok {
		return domain.Team{}, false
	}
	t.Members = make([]domain.User, 0, len(r.s.members[id]))
	for _, uid := range r.s.members[id] {
		u, ok := r.s.users[uid]
		if !ok {
			u = domain.User{ID: uid}
		}
		t.Members = append(t.Members, u)
	}
	return t, true
}

func (r memTeamRepo) Create(_ context.Context, t domain.Team) (domain.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = r.s.id()
	t.Members = nil
	t.CreatedAt, t.UpdatedAt = time.Now(), time.Now()
	r.s.teams[t.ID] = t
	loaded, _ := r.load(t.ID)
	return loaded, nil
}

func (r memTeamRepo) Update(_ context.Context, t domain.Team) (domain.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.teams[t.ID]
	if !ok {
		return domain.Team{}, repository.ErrTeamNotFound
	}
	stored.Name = t.Name
	stored.Description = t.Description
	stored.UpdatedAt = time.Now()
	r.s.teams[t.ID] = stored
	loaded, _ := r.load(t.ID)
	return loaded, nil
}

func (r memTeamRepo) FindByID(_ context.Context, id uint) (domain.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.load(id)
	if !ok {
		return domain.Team{}, repository.ErrTeamNotFound
	}
	return t, nil
}

func (r memTeamRepo) FindByIDForUpdate(ctx context.Context, id uint) (domain.Team, error) {
	return r.FindByID(ctx, id)
}

func (r memTeamRepo) FindByHackathonID(_ context.Context, hackathonID uint) ([]domain.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.Team{}
	for id, t := range r.s.teams {
		if t.HackathonID == hackathonID {
			loaded, _ := r.load(id)
			out = append(out, loaded)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memTeamRepo) FindByMember(_ context.Context, hackathonID uint, userID, email string) (domain.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := make([]uint, 0, len(r.s.teams))
	for id := range r.s.teams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		t, _ := r.load(id)
		if t.HackathonID == hackathonID && t.HasMember(userID, email) {
			return t, nil
		}
	}
	return domain.Team{}, repository.ErrTeamNotFound
}

func (r memTeamRepo) AddMember(_ context.Context, team domain.Team, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, uids := range r.s.members {
		if r.s.teams[id].HackathonID != team.HackathonID {
			continue
		}
		for _, uid := range uids {
			if uid == userID {
				return repository.ErrDuplicate
			}
		}
	}
	r.s.members[team.ID] = append(r.s.members[team.ID], userID)
	return nil
}

func (r memTeamRepo) RemoveMember(_ context.Context, teamID uint, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	uids := r.s.members[teamID]
	for i, uid := range uids {
		if uid == userID {
			r.s.members[teamID] = append(append([]string(nil), uids[:i]...), uids[i+1:]...)
			return nil
		}
	}
	return repository.ErrMemberNotFound
}

// submissions

type memSubmissionRepo struct{ s *memStore }

func (r memSubmissionRepo) resolve(sub domain.Submission) domain.Submission {
	sub.SponsorsUsed = make([]domain.Sponsor, 0, len(sub.SponsorIDs))
	for _, id := range sub.SponsorIDs {
		if sp, ok := r.s.sponsors[id]; ok {
			sub.SponsorsUsed = append(sub.SponsorsUsed, sp)
		}
	}
	return sub
}

func (r memSubmissionRepo) Create(_ context.Context, sub domain.Submission) (domain.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.submissions {
		if existing.TeamID == sub.TeamID {
			return domain.Submission{}, repository.ErrDuplicate
		}
	}
	sub.ID = r.s.id()
	sub.SponsorIDs = append([]uint(nil), sub.SponsorIDs...)
	sub.CreatedAt, sub.UpdatedAt = time.Now(), time.Now()
	r.s.submissions[sub.ID] = sub
	return r.resolve(sub), nil
}

func (r memSubmissionRepo) Update(_ context.Context, sub domain.Submission) (domain.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.submissions[sub.ID]; !ok {
		return domain.Submission{}, repository.ErrSubmissionNotFound
	}
	sub.SponsorIDs = append([]uint(nil), sub.SponsorIDs...)
	sub.UpdatedAt = time.Now()
	r.s.submissions[sub.ID] = sub
	return r.resolve(sub), nil
}

func (r memSubmissionRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.submissions[id]; !ok {
		return repository.ErrSubmissionNotFound
	}
	delete(r.s.submissions, id)
	return nil
}

func (r memSubmissionRepo) FindByID(_ context.Context, id uint) (domain.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sub, ok := r.s.submissions[id]
	if !ok {
		return domain.Submission{}, repository.ErrSubmissionNotFound
	}
	return r.resolve(sub), nil
}

func (r memSubmissionRepo) FindByIDForUpdate(ctx context.Context, id uint) (domain.Submission, error) {
	return r.FindByID(ctx, id)
}

func (r memSubmissionRepo) FindByTeamID(_ context.Context, teamID uint) (domain.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sub := range r.s.submissions {
		if sub.TeamID == teamID {
			return r.resolve(sub), nil
		}
	}
	return domain.Submission{}, repository.ErrSubmissionNotFound
}

func (r memSubmissionRepo) FindByHackathonID(_ context.Context, hackathonID uint) ([]domain.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.Submission{}
	for _, sub := range r.s.submissions {
		if r.s.teams[sub.TeamID].HackathonID == hackathonID {
			out = append(out, r.resolve(sub))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// sponsors

type memSponsorRepo struct{ s *memStore }

func (r memSponsorRepo) withEmployees(sp domain.Sponsor) domain.Sponsor {
	sp.Employees = nil
	for _, u := range r.s.users {
		if u.CompanyID != nil && *u.CompanyID == sp.ID {
			sp.Employees = append(sp.Employees, u)
		}
	}
	return sp
}

func (r memSponsorRepo) Create(_ context.Context, sp domain.Sponsor) (domain.Sponsor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp.ID = r.s.id()
	sp.CreatedAt = time.Now()
	r.s.sponsors[sp.ID] = sp
	return sp, nil
}

func (r memSponsorRepo) UpdateLogo(_ context.Context, id uint, logoURL string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp, ok := r.s.sponsors[id]
	if !ok {
		return repository.ErrSponsorNotFound
	}
	sp.LogoURL = logoURL
	r.s.sponsors[id] = sp
	return nil
}

func (r memSponsorRepo) FindByID(_ context.Context, id uint) (domain.Sponsor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp, ok := r.s.sponsors[id]
	if !ok {
		return domain.Sponsor{}, repository.ErrSponsorNotFound
	}
	return r.withEmployees(sp), nil
}

func (r memSponsorRepo) FindByHackathonID(_ context.Context, hackathonID uint) ([]domain.Sponsor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.Sponsor{}
	for _, sp := range r.s.sponsors {
		if sp.HackathonID == hackathonID {
			out = append(out, r.withEmployees(sp))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memSponsorRepo) FindByIDs(_ context.Context, hackathonID uint, ids []uint) ([]domain.Sponsor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.Sponsor{}
	for _, id := range ids {
		if sp, ok := r.s.sponsors[id]; ok && sp.HackathonID == hackathonID {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memSponsorRepo) CreateInvite(_ context.Context, invite domain.SponsorInvite) (domain.SponsorInvite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.invites {
		if existing.Email == strings.ToLower(invite.Email) {
			return domain.SponsorInvite{}, repository.ErrDuplicate
		}
	}
	invite.ID = r.s.id()
	invite.Email = strings.ToLower(invite.Email)
	invite.CreatedAt = time.Now()
	r.s.invites[invite.ID] = invite
	return invite, nil
}

func (r memSponsorRepo) FindInviteByEmail(_ context.Context, email string) (domain.SponsorInvite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, invite := range r.s.invites {
		if invite.Email == strings.ToLower(email) {
			return invite, nil
		}
	}
	return domain.SponsorInvite{}, repository.ErrInviteNotFound
}

func (r memSponsorRepo) DeleteInvite(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.invites, id)
	return nil
}

// prizes

type memPrizeRepo struct{ s *memStore }

func (r memPrizeRepo) Create(_ context.Context, p domain.Prize) (domain.Prize, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.id()
	p.CreatedAt = time.Now()
	r.s.prizes[p.ID] = p
	return p, nil
}

func (r memPrizeRepo) FindByID(_ context.Context, id uint) (domain.Prize, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.prizes[id]
	if !ok {
		return domain.Prize{}, repository.ErrPrizeNotFound
	}
	return p, nil
}

func (r memPrizeRepo) FindByHackathonID(_ context.Context, hackathonID uint) ([]domain.Prize, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.Prize{}
	for _, p := range r.s.prizes {
		if p.HackathonID == hackathonID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memPrizeRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.prizes[id]; !ok {
		return repository.ErrPrizeNotFound
	}
	delete(r.s.prizes, id)
	return nil
}

// issues

type memIssueRepo struct{ s *memStore }

func (r memIssueRepo) Create(_ context.Context, issue domain.Issue) (domain.Issue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	issue.ID = r.s.id()
	issue.CreatedAt, issue.UpdatedAt = time.Now(), time.Now()
	r.s.issues[issue.ID] = issue
	return issue, nil
}

func (r memIssueRepo) FindByID(_ context.Context, id uint) (domain.Issue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	issue, ok := r.s.issues[id]
	if !ok {
		return domain.Issue{}, repository.ErrIssueNotFound
	}
	return issue, nil
}

func (r memIssueRepo) FindByIDForUpdate(ctx context.Context, id uint) (domain.Issue, error) {
	return r.FindByID(ctx, id)
}

func (r memIssueRepo) FindByHackathonID(_ context.Context, hackathonID uint) ([]domain.Issue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.Issue{}
	for _, issue := range r.s.issues {
		if issue.HackathonID == hackathonID {
			out = append(out, issue)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memIssueRepo) UpdateStatus(_ context.Context, id uint, status domain.IssueStatus) (domain.Issue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	issue, ok := r.s.issues[id]
	if !ok {
		return domain.Issue{}, repository.ErrIssueNotFound
	}
	issue.Status = status
	issue.UpdatedAt = time.Now()
	r.s.issues[id] = issue
	return issue, nil
}

// notifier

type recordingNotifier struct {
	mu        sync.Mutex
	published []uint
}

func (n *recordingNotifier) Publish(hackathonID uint) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.published = append(n.published, hackathonID)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.published)
}

// harness wires every service over one memStore.
type harness struct {
	store       *memStore
	notifier    *recordingNotifier
	hackathons  *HackathonService
	users       *UserService
	teams       *TeamService
	submissions *SubmissionService
	leaderboard *LeaderboardService
	sponsors    *SponsorService
	prizes      *PrizeService
	issues      *IssueService
}

var organiser = domain.Identity{UserID: "org-1", Email: "org@example.com", Role: domain.RoleOrganiser}

func guest(id string) domain.Identity {
	return domain.Identity{UserID: id, Email: id + "@example.com", FirstName: id, Role: domain.RoleGuest}
}

func newHarness() *harness {
	s := newMemStore()
	n := &recordingNotifier{}

	hackathonRepo := memHackathonRepo{s}
	teamRepo := memTeamRepo{s}
	submissionRepo := memSubmissionRepo{s}
	sponsorRepo := memSponsorRepo{s}
	prizeRepo := memPrizeRepo{s}

	users := NewUserService(s, memUserRepo{s}, sponsorRepo)

	return &harness{
		store:       s,
		notifier:    n,
		hackathons:  NewHackathonService(s, hackathonRepo),
		users:       users,
		teams:       NewTeamService(s, teamRepo, hackathonRepo, users, submissionRepo, n),
		submissions: NewSubmissionService(s, submissionRepo, teamRepo, hackathonRepo, sponsorRepo, n),
		leaderboard: NewLeaderboardService(hackathonRepo, teamRepo, submissionRepo),
		sponsors:    NewSponsorService(sponsorRepo, hackathonRepo, teamRepo, submissionRepo, prizeRepo, nil),
		prizes:      NewPrizeService(prizeRepo, hackathonRepo, sponsorRepo),
		issues:      NewIssueService(s, memIssueRepo{s}, hackathonRepo),
	}
}
