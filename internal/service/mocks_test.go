package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fitcoach/internal/model"
	"fitcoach/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id uuid.UUID, fromName, toName string) (int64, error) {
	args := m.Called(ctx, id, fromName, toName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, fromRole, toRole string) (int64, error) {
	args := m.Called(ctx, id, fromRole, toRole)
	return args.Get(0).(int64), args.Error(1)
}

// MockCoachRepository is a mock implementation of CoachRepository. Its
// WithTransaction runs the callback against the mocks themselves, so tests
// exercise the same code path as a real transaction.
type MockCoachRepository struct {
	mock.Mock
	users repository.UserRepository
}

func (m *MockCoachRepository) Create(ctx context.Context, coach *model.Coach) error {
	args := m.Called(ctx, coach)
	return args.Error(0)
}

func (m *MockCoachRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Coach, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coach), args.Error(1)
}

func (m *MockCoachRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, coaches repository.CoachRepository, users repository.UserRepository) error) error {
	return fn(ctx, m, m.users)
}

// MockCourseRepository is a mock implementation of CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) UpdateFields(ctx context.Context, id uuid.UUID, course *model.Course) (int64, error) {
	args := m.Called(ctx, id, course)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepository) ListWithRelations(ctx context.Context) ([]model.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

// MockCreditPurchaseRepository is a mock implementation of CreditPurchaseRepository.
type MockCreditPurchaseRepository struct {
	mock.Mock
}

func (m *MockCreditPurchaseRepository) Create(ctx context.Context, purchase *model.CreditPurchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockCreditPurchaseRepository) SumPurchasedCredits(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookingRepository is a mock implementation of BookingRepository. Its
// WithTransaction hands the callback a TxRepositories built from the mocks,
// mirroring how the real repository rebinds itself to the transaction.
type MockBookingRepository struct {
	mock.Mock
	txCourses   repository.CourseRepository
	txPurchases repository.CreditPurchaseRepository
}

func (m *MockBookingRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.CourseBooking, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CourseBooking), args.Error(1)
}

func (m *MockBookingRepository) CountActiveForCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountActiveForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *model.CourseBooking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, userID, courseID uuid.UUID, at time.Time) (int64, error) {
	args := m.Called(ctx, userID, courseID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos repository.TxRepositories) error) error {
	return fn(ctx, repository.TxRepositories{
		Courses:   m.txCourses,
		Bookings:  m,
		Purchases: m.txPurchases,
	})
}

// MockSkillRepository is a mock implementation of SkillRepository.
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) List(ctx context.Context) ([]model.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCreditPackageRepository is a mock implementation of CreditPackageRepository.
type MockCreditPackageRepository struct {
	mock.Mock
}

func (m *MockCreditPackageRepository) List(ctx context.Context) ([]model.CreditPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CreditPackage), args.Error(1)
}

func (m *MockCreditPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CreditPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreditPackage), args.Error(1)
}

func (m *MockCreditPackageRepository) FindByName(ctx context.Context, name string) (*model.CreditPackage, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreditPackage), args.Error(1)
}

func (m *MockCreditPackageRepository) Create(ctx context.Context, pkg *model.CreditPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockCreditPackageRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}
