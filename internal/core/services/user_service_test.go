package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agrifusion/agrifusion-backend/internal/apperrors"
	"github.com/agrifusion/agrifusion-backend/internal/core/domain"
	portssvc "github.com/agrifusion/agrifusion-backend/internal/core/ports/services"
	"github.com/agrifusion/agrifusion-backend/internal/core/services"
	"github.com/agrifusion/agrifusion-backend/internal/dto"
	"github.com/agrifusion/agrifusion-backend/internal/utils"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func strPtr(s string) *string { return &s }

// --- Test Suite ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- Register Tests ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	password := "password123"

	req := dto.RegisterRequest{
		FullName: "Asha Patel",
		Email:    strPtr("asha@example.com"),
		Password: &password,
	}

	suite.mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.FullName == "Asha Patel" &&
			user.Email != nil && *user.Email == "asha@example.com" &&
			user.PasswordHash != nil && *user.PasswordHash != password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("Asha Patel", user.FullName)
	suite.Equal("English", user.LanguagePreference)
	suite.Nil(user.Phone)
	suite.Require().NotNil(user.PasswordHash)
	ok, cmpErr := utils.CheckPasswordHash(password, *user.PasswordHash)
	suite.Require().NoError(cmpErr)
	suite.True(ok)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_PhoneOnlyNoPassword() {
	ctx := context.Background()

	req := dto.RegisterRequest{
		FullName: "Ravi Kumar",
		Phone:    strPtr("+919876543210"),
	}

	suite.mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Phone != nil && *user.Phone == "+919876543210" &&
			user.Email == nil && user.PasswordHash == nil
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Nil(user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_MissingIdentifiers() {
	ctx := context.Background()

	// Empty strings count as absent, same as nil.
	req := dto.RegisterRequest{
		FullName: "No Contact",
		Email:    strPtr(""),
		Phone:    strPtr(""),
	}

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_MissingFullName() {
	ctx := context.Background()

	req := dto.RegisterRequest{Email: strPtr("asha@example.com")}

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateIdentifier() {
	ctx := context.Background()

	req := dto.RegisterRequest{
		FullName: "Asha Patel",
		Email:    strPtr("asha@example.com"),
	}

	suite.mockUserRepo.On("CreateUser", ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Login Tests ---

func (suite *UserServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		FullName:     "Asha Patel",
		Email:        strPtr("asha@example.com"),
		PasswordHash: &hash,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

	user, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    strPtr("asha@example.com"),
		Password: password,
	})

	suite.Require().NoError(err)
	suite.Equal(stored, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLogin_ByPhone() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		FullName:     "Ravi Kumar",
		Phone:        strPtr("+919876543210"),
		PasswordHash: &hash,
	}

	suite.mockUserRepo.On("FindUserByPhone", ctx, "+919876543210").Return(stored, nil).Once()

	user, err := suite.service.Login(ctx, dto.LoginRequest{
		Phone:    strPtr("+919876543210"),
		Password: password,
	})

	suite.Require().NoError(err)
	suite.Equal(stored, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLogin_EmailPrecedence() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        strPtr("asha@example.com"),
		PasswordHash: &hash,
	}

	// Both identifiers supplied: only the email lookup must happen.
	suite.mockUserRepo.On("FindUserByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

	user, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    strPtr("asha@example.com"),
		Phone:    strPtr("+919876543210"),
		Password: password,
	})

	suite.Require().NoError(err)
	suite.NotNil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByPhone", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLogin_FailuresAreIndistinguishable() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        strPtr("asha@example.com"),
		PasswordHash: &hash,
	}

	// Unknown identifier.
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	_, errUnknown := suite.service.Login(ctx, dto.LoginRequest{
		Email:    strPtr("nobody@example.com"),
		Password: "whatever",
	})

	// Wrong password for an existing account.
	suite.mockUserRepo.On("FindUserByEmail", ctx, "asha@example.com").
		Return(stored, nil).Once()
	_, errWrongPw := suite.service.Login(ctx, dto.LoginRequest{
		Email:    strPtr("asha@example.com"),
		Password: "wrong-password",
	})

	suite.Require().Error(errUnknown)
	suite.Require().Error(errWrongPw)
	suite.ErrorIs(errUnknown, apperrors.ErrAuthentication)
	suite.ErrorIs(errWrongPw, apperrors.ErrAuthentication)
	// Identical error values: nothing for a caller to tell them apart by.
	suite.Equal(errUnknown, errWrongPw)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLogin_NoStoredPasswordHash() {
	ctx := context.Background()

	stored := &domain.User{
		UserID: uuid.NewString(),
		Email:  strPtr("asha@example.com"),
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

	user, err := suite.service.Login(ctx, dto.LoginRequest{
		Email:    strPtr("asha@example.com"),
		Password: "anything",
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrAuthentication)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestLogin_MissingPassword() {
	ctx := context.Background()

	user, err := suite.service.Login(ctx, dto.LoginRequest{
		Email: strPtr("asha@example.com"),
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

// --- Profile Tests ---

func (suite *UserServiceTestSuite) TestGetProfile_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := &domain.User{UserID: userID, FullName: "Asha Patel"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(expected, nil).Once()

	user, err := suite.service.GetProfile(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetProfile_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetProfile(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateProfile_PassesAllowListedFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.UpdateProfileRequest{
		FullName:     strPtr("Asha P."),
		FarmLocation: strPtr("Nashik"),
	}
	updated := &domain.User{UserID: userID, FullName: "Asha P.", FarmLocation: strPtr("Nashik")}

	suite.mockUserRepo.On("UpdateUserProfile", ctx, userID, req).Return(updated, nil).Once()

	user, err := suite.service.UpdateProfile(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal(updated, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
