package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

// In-memory repositories backing the HTTP tests. They honor the same
// contracts as the Postgres implementations so the handlers and use cases
// under test are the real ones.

type fakeLeadRepo struct {
	mu    sync.Mutex
	leads map[string]*entity.Lead
	order []string
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: map[string]*entity.Lead{}}
}

func (r *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *lead
	r.leads[lead.ID] = &cp
	r.order = append(r.order, lead.ID)
	return nil
}

func (r *fakeLeadRepo) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lead, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	cp := *lead
	return &cp, nil
}

func (r *fakeLeadRepo) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	leads := []*entity.Lead{}
	for _, id := range r.order {
		if lead, ok := r.leads[id]; ok {
			cp := *lead
			leads = append(leads, &cp)
		}
	}
	return leads, nil
}

func (r *fakeLeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leads[lead.ID]; !ok {
		return entity.ErrLeadNotFound
	}
	cp := *lead
	r.leads[lead.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leads[id]; !ok {
		return entity.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

type fakeMembershipRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Membership
	order []string
	leads *fakeLeadRepo

	purgeErr error // when set, PurgeForLead fails (cascade rollback tests)
}

func newFakeMembershipRepo(leads *fakeLeadRepo) *fakeMembershipRepo {
	return &fakeMembershipRepo{items: map[string]*entity.Membership{}, leads: leads}
}

func membershipKey(collection, leadID, userID string) string {
	return collection + "|" + leadID + "|" + userID
}

func (r *fakeMembershipRepo) Upsert(ctx context.Context, m *entity.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := membershipKey(m.Collection, m.LeadID, m.UserID)
	if existing, ok := r.items[key]; ok {
		m.ID = existing.ID
		m.CreatedAt = existing.CreatedAt
		return nil
	}
	cp := *m
	r.items[key] = &cp
	r.order = append(r.order, key)
	return nil
}

func (r *fakeMembershipRepo) Insert(ctx context.Context, m *entity.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := membershipKey(m.Collection, m.LeadID, m.UserID)
	if _, ok := r.items[key]; ok {
		return nil
	}
	cp := *m
	r.items[key] = &cp
	r.order = append(r.order, key)
	return nil
}

func (r *fakeMembershipRepo) FindByCollection(ctx context.Context, collection string) ([]*entity.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	memberships := []*entity.Membership{}
	for _, key := range r.order {
		m, ok := r.items[key]
		if !ok || m.Collection != collection {
			continue
		}
		cp := *m
		if lead, err := r.leads.FindByID(ctx, m.LeadID); err == nil {
			cp.Lead = lead
		}
		memberships = append(memberships, &cp)
	}
	return memberships, nil
}

func (r *fakeMembershipRepo) FindByLead(ctx context.Context, leadID string) ([]*entity.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	memberships := []*entity.Membership{}
	for _, key := range r.order {
		if m, ok := r.items[key]; ok && m.LeadID == leadID {
			cp := *m
			memberships = append(memberships, &cp)
		}
	}
	return memberships, nil
}

func (r *fakeMembershipRepo) DeleteByLead(ctx context.Context, collection, leadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, m := range r.items {
		if m.Collection == collection && m.LeadID == leadID {
			r.drop(key)
		}
	}
	return nil
}

func (r *fakeMembershipRepo) PurgeForLead(ctx context.Context, leadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.purgeErr != nil {
		return r.purgeErr
	}
	for key, m := range r.items {
		if m.LeadID == leadID {
			r.drop(key)
		}
	}
	return nil
}

// drop removes the key from both the map and the order slice so a later
// restore-Insert does not leave a duplicate order entry. Caller holds mu.
func (r *fakeMembershipRepo) drop(key string) {
	delete(r.items, key)
	kept := r.order[:0]
	for _, k := range r.order {
		if k != key {
			kept = append(kept, k)
		}
	}
	r.order = kept
}

type fakeContactRepo struct {
	mu      sync.Mutex
	records []*entity.ContactRecord

	purgeErr error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{}
}

func (r *fakeContactRepo) Insert(ctx context.Context, record *entity.ContactRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *record
	r.records = append(r.records, &cp)
	return nil
}

func (r *fakeContactRepo) FindAll(ctx context.Context) ([]*entity.ContactRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := []*entity.ContactRecord{}
	for _, rec := range r.records {
		cp := *rec
		records = append(records, &cp)
	}
	return records, nil
}

func (r *fakeContactRepo) FindByLead(ctx context.Context, leadID string) ([]*entity.ContactRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := []*entity.ContactRecord{}
	for _, rec := range r.records {
		if rec.LeadID == leadID {
			cp := *rec
			records = append(records, &cp)
		}
	}
	return records, nil
}

func (r *fakeContactRepo) PurgeForLead(ctx context.Context, leadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.purgeErr != nil {
		return r.purgeErr
	}
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.LeadID != leadID {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*entity.DispatchJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.DispatchJob{}}
}

func (r *fakeJobRepo) Insert(ctx context.Context, job *entity.DispatchJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id string) (*entity.DispatchJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, entity.ErrJobNotFound
	}
	cp := *job
	return &cp, nil
}

func (r *fakeJobRepo) Claim(ctx context.Context, id string) (*entity.DispatchJob, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, false, entity.ErrJobNotFound
	}
	if job.Status != entity.JobStatusPending {
		cp := *job
		return &cp, false, nil
	}
	job.Attempts++
	cp := *job
	return &cp, true, nil
}

func (r *fakeJobRepo) Finalize(ctx context.Context, id, status, lastError string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.Status != entity.JobStatusPending {
		return entity.ErrJobNotFound
	}
	job.Status = status
	job.LastError = lastError
	job.CompletedAt = &completedAt
	return nil
}

type stubTransport struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (t *stubTransport) Send(ctx context.Context, channel, recipient, subject, content string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	return t.err
}

type testEnv struct {
	router      *chi.Mux
	leads       *fakeLeadRepo
	memberships *fakeMembershipRepo
	contacts    *fakeContactRepo
	jobs        *fakeJobRepo
	transport   *stubTransport
}

// newTestEnv wires the real handlers and use cases over the fakes, with the
// same route table main mounts.
func newTestEnv() *testEnv {
	leads := newFakeLeadRepo()
	memberships := newFakeMembershipRepo(leads)
	contacts := newFakeContactRepo()
	jobs := newFakeJobRepo()
	transport := &stubTransport{}

	createUC := usecase.NewCreateLeadUseCase(leads)
	updateUC := usecase.NewUpdateLeadUseCase(leads)
	deleteUC := usecase.NewDeleteLeadUseCase(leads, memberships, contacts)
	trackUC := usecase.NewTrackLeadUseCase(leads, memberships)
	logUC := usecase.NewLogContactUseCase(leads, contacts)
	sendUC := usecase.NewSendMessageUseCase(jobs, transport, nil)

	leadHandler := NewLeadHandler(createUC, updateUC, deleteUC, leads)
	savedHandler := NewMembershipHandler(entity.CollectionSaved, trackUC, memberships)
	prospectionHandler := NewMembershipHandler(entity.CollectionProspection, trackUC, memberships)
	contactHandler := NewContactHandler(logUC, contacts)
	dispatchHandler := NewDispatchHandler(sendUC, jobs)

	r := chi.NewRouter()
	r.Get("/leads", leadHandler.List)
	r.Post("/leads", leadHandler.Create)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Put("/leads/{id}", leadHandler.Update)
	r.Delete("/leads/{id}", leadHandler.Delete)
	r.Get("/saved-leads", savedHandler.List)
	r.Post("/saved-leads", savedHandler.Add)
	r.Delete("/saved-leads/{leadId}", savedHandler.Remove)
	r.Get("/prospection-leads", prospectionHandler.List)
	r.Post("/prospection-leads", prospectionHandler.Add)
	r.Delete("/prospection-leads/{leadId}", prospectionHandler.Remove)
	r.Get("/contact-history", contactHandler.List)
	r.Get("/contact-history/{leadId}", contactHandler.ListForLead)
	r.Post("/contact-history", contactHandler.Create)
	r.Post("/send-email", dispatchHandler.SendEmail)
	r.Post("/send-mail", dispatchHandler.SendMail)
	r.Get("/dispatch-jobs/{id}", dispatchHandler.Get)
	r.Post("/dispatch-jobs/{id}/attempt", dispatchHandler.Attempt)

	return &testEnv{
		router:      r,
		leads:       leads,
		memberships: memberships,
		contacts:    contacts,
		jobs:        jobs,
		transport:   transport,
	}
}
