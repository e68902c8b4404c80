package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"subly/internal/models/db_models"
	"subly/internal/models/request_models"
	"subly/internal/models/response_models"
	"subly/internal/repositories"
	"subly/pkg/utils"
)

type UserServiceInterface interface {
	CreateUser(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*response_models.UserOutput, error)
}

type UserService struct {
	userRepo         repositories.UserRepository
	subscriptionRepo repositories.ISubscriptionRepository
	createToken      func(userID uuid.UUID, role string) (string, error)
}

func NewUserService(
	userRepo repositories.UserRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
) UserServiceInterface {
	return &UserService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		createToken:      utils.CreateToken,
	}
}

func (u *UserService) CreateUser(ctx context.Context, request request_models.SignUpRequest) error {

	existingUser, err := u.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingUser != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}

	if err := u.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (u *UserService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	user, err := u.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	// A signing failure is on us, not the caller's password.
	token, err := u.createToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	current, err := u.subscriptionRepo.FindActiveByUserID(ctx, user.ID.String(), time.Now().Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token:             token,
		IsUserHavePremium: current != nil,
	}, nil
}

func (u *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*response_models.UserOutput, error) {

	user, err := u.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return &response_models.UserOutput{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
