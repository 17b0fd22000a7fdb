package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"studentloan-backend/internal/domain/customer"
	"studentloan-backend/internal/domain/uow"
	"studentloan-backend/pkg/id"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields      = errors.New("name, email, phone and password are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncompleteAccount  = errors.New("account has no customer profile")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

type Usecase struct {
	users  customer.Repository
	uow    uow.UnitOfWork
	tokens *TokenIssuer
	log    *zap.Logger
	cost   int
}

func NewUsecase(users customer.Repository, tx uow.UnitOfWork, tokens *TokenIssuer, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{users: users, uow: tx, tokens: tokens, log: log, cost: bcrypt.DefaultCost}
}

// Register creates the customer profile and its login in one transaction.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	var uni *string
	if s := strings.TrimSpace(in.University); s != "" {
		uni = &s
	}

	user := &customer.User{
		UserID:       id.NewID32(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         customer.RoleUser,
		CustomerID:   id.NewID32(),
		Phone:        in.Phone,
		University:   uni,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Customers.GetUserByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return ErrEmailTaken
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("lookup email: %w", err)
		}

		if err := r.Customers.CreateCustomer(ctx, &customer.Customer{
			CustomerID: user.CustomerID,
			Name:       user.Name,
			Email:      user.Email,
			Phone:      user.Phone,
			University: uni,
		}); err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		if err := r.Customers.CreateUser(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("user registered", zap.String("user_id", user.UserID), zap.String("customer_id", user.CustomerID))
	return u.session(user)
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*Session, error) {
	user, err := u.users.GetUserByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if user.CustomerID == "" {
		return nil, ErrIncompleteAccount
	}
	return u.session(user)
}

// Resolve maps a bearer token to the caller's identity.
func (u *Usecase) Resolve(ctx context.Context, token string) (customer.Identity, error) {
	userID, err := u.tokens.Verify(token)
	if err != nil {
		return customer.Identity{}, err
	}
	user, err := u.users.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.Identity{}, ErrUserNotFound
		}
		return customer.Identity{}, fmt.Errorf("lookup user: %w", err)
	}
	return customer.Identity{UserID: user.UserID, CustomerID: user.CustomerID, Role: user.Role}, nil
}

// ListCustomers is the admin view of every account.
func (u *Usecase) ListCustomers(ctx context.Context) ([]customer.Listing, error) {
	return u.users.ListUsers(ctx)
}

func (u *Usecase) session(user *customer.User) (*Session, error) {
	token, err := u.tokens.Issue(user.UserID)
	if err != nil {
		return nil, err
	}
	return &Session{User: toUserDTO(user), Token: token}, nil
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
