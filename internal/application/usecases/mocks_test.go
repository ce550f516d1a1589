package usecases

import (
	"context"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/stretchr/testify/mock"
)

type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) Fetch(ctx context.Context, filter repositories.DateFilter) ([]entities.SurveyRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SurveyRecord), args.Error(1)
}

func (m *MockSurveyRepository) Create(ctx context.Context, record *entities.SurveyRecord) error {
	return m.Called(ctx, record).Error(0)
}

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueSubmit(ctx context.Context, record entities.SurveyRecord) error {
	return m.Called(ctx, record).Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id string) (*entities.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entities.AdminUser) error {
	return m.Called(ctx, admin).Error(0)
}

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// memoryBlacklist guarda os tokens revogados em memória
type memoryBlacklist struct {
	tokens map[string]bool
}

func newMemoryBlacklist() *memoryBlacklist {
	return &memoryBlacklist{tokens: map[string]bool{}}
}

func (b *memoryBlacklist) Add(_ context.Context, token string, _ time.Duration) error {
	b.tokens[token] = true
	return nil
}

func (b *memoryBlacklist) Contains(_ context.Context, token string) (bool, error) {
	return b.tokens[token], nil
}
