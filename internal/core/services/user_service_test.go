package services_test

import (
	"context"
	"testing"

	"github.com/puffpay/puffpay-backend/internal/adapters/memstore"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/core/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	repos := memstore.NewRepositoryProvider(memstore.NewStore())
	suite.service = services.NewUserService(repos.UserRepo)
}

func (suite *UserServiceTestSuite) TestRegisterAndAuthenticate() {
	user, err := suite.service.Register(suite.ctx, dto.RegisterUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.test",
		Password: "correct horse battery",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.NotEqual("correct horse battery", user.PasswordHash)

	got, err := suite.service.Authenticate(suite.ctx, dto.LoginRequest{
		Email:    "jamie@example.test",
		Password: "correct horse battery",
	})
	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	_, err := suite.service.Register(suite.ctx, dto.RegisterUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.test",
		Password: "correct horse battery",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Authenticate(suite.ctx, dto.LoginRequest{
		Email:    "jamie@example.test",
		Password: "wrong",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	_, err := suite.service.Authenticate(suite.ctx, dto.LoginRequest{
		Email:    "nobody@example.test",
		Password: "whatever",
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	_, err := suite.service.Register(suite.ctx, dto.RegisterUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.test",
		Password: "correct horse battery",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Register(suite.ctx, dto.RegisterUserRequest{
		Name:     "Other",
		Email:    "JAMIE@example.test",
		Password: "another password",
	})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestUpdateUser() {
	user, err := suite.service.Register(suite.ctx, dto.RegisterUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.test",
		Password: "correct horse battery",
	})
	suite.Require().NoError(err)

	newName := "Jamie Lee"
	updated, err := suite.service.UpdateUser(suite.ctx, user.UserID, dto.UpdateUserRequest{Name: &newName})
	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(user.Email, updated.Email)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
