package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMembershipRepository
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Upsert(ctx context.Context, membership *entity.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) Insert(ctx context.Context, membership *entity.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) FindByCollection(ctx context.Context, collection string) ([]*entity.Membership, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindByLead(ctx context.Context, leadID string) ([]*entity.Membership, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Membership), args.Error(1)
}

func (m *MockMembershipRepository) DeleteByLead(ctx context.Context, collection, leadID string) error {
	args := m.Called(ctx, collection, leadID)
	return args.Error(0)
}

func (m *MockMembershipRepository) PurgeForLead(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Insert(ctx context.Context, record *entity.ContactRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockContactRepository) FindAll(ctx context.Context) ([]*entity.ContactRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactRecord), args.Error(1)
}

func (m *MockContactRepository) FindByLead(ctx context.Context, leadID string) ([]*entity.ContactRecord, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactRecord), args.Error(1)
}

func (m *MockContactRepository) PurgeForLead(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// MockDispatchJobRepository
type MockDispatchJobRepository struct {
	mock.Mock
}

func (m *MockDispatchJobRepository) Insert(ctx context.Context, job *entity.DispatchJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockDispatchJobRepository) FindByID(ctx context.Context, id string) (*entity.DispatchJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DispatchJob), args.Error(1)
}

func (m *MockDispatchJobRepository) Claim(ctx context.Context, id string) (*entity.DispatchJob, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.DispatchJob), args.Bool(1), args.Error(2)
}

func (m *MockDispatchJobRepository) Finalize(ctx context.Context, id, status, lastError string, completedAt time.Time) error {
	args := m.Called(ctx, id, status, lastError, completedAt)
	return args.Error(0)
}

// MockTransport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(ctx context.Context, channel, recipient, subject, content string) error {
	args := m.Called(ctx, channel, recipient, subject, content)
	return args.Error(0)
}

// MockOutcomePublisher
type MockOutcomePublisher struct {
	mock.Mock
}

func (m *MockOutcomePublisher) PublishOutcome(ctx context.Context, payload queue.DispatchOutcome) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
