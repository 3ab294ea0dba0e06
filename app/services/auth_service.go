package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/app/repositories"
	"github.com/bedjos/storefront/pkg/auth"
	"github.com/bedjos/storefront/pkg/database"
	"github.com/bedjos/storefront/pkg/logger"
)

type SignupInput struct {
	Name     string `json:"name"     validate:"required,max=120"`
	Email    string `json:"email"    validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"nullable,max=20"`
}

type LoginInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CustomerSession is returned by customer signup and login.
type CustomerSession struct {
	AccessToken string          `json:"access_token"`
	Customer    CustomerProfile `json:"customer"`
}

type CustomerProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AuthService registers accounts and issues tokens for them.
type AuthService struct {
	accounts *repositories.AccountRepository
	tokens   *auth.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		accounts: repositories.NewAccountRepository(db),
		tokens:   tokens,
	}
}

// AdminLogin checks the credentials and returns a token with the admin role.
func (s *AuthService) AdminLogin(ctx context.Context, in LoginInput) (string, models.Admin, error) {
	admin, err := s.accounts.FindAdminByEmail(ctx, normalizeEmail(in.Email))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", models.Admin{}, fmt.Errorf("find admin: %w", err)
	}
	if err != nil || !auth.CheckPassword(admin.PasswordHash, in.Password) {
		return "", models.Admin{}, newError(ErrInvalidCredentials, "Invalid credentials")
	}

	token, err := s.tokens.Issue(strconv.FormatUint(uint64(admin.ID), 10), auth.RoleAdmin)
	if err != nil {
		return "", models.Admin{}, err
	}
	return token, admin, nil
}

// Admin resolves an admin-role token subject to the account.
func (s *AuthService) Admin(ctx context.Context, subject string) (models.Admin, error) {
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return models.Admin{}, newError(ErrInvalidCredentials, "Unauthorized")
	}
	admin, err := s.accounts.FindAdmin(ctx, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Admin{}, newError(ErrInvalidCredentials, "Unauthorized")
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}

// CreateAdmin stores a new admin with a hashed password.
func (s *AuthService) CreateAdmin(ctx context.Context, email, password string) (models.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.Admin{}, newError(ErrValidation, "Email and password required")
	}

	if _, err := s.accounts.FindAdminByEmail(ctx, email); err == nil {
		return models.Admin{}, newError(ErrDuplicateEmail, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Admin{}, fmt.Errorf("find admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Admin{}, fmt.Errorf("hash password: %w", err)
	}

	admin := models.Admin{Email: email, PasswordHash: hash}
	if err := s.accounts.CreateAdmin(ctx, &admin); err != nil {
		if database.IsUniqueViolation(err) {
			return models.Admin{}, newError(ErrDuplicateEmail, "Email already registered")
		}
		return models.Admin{}, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// EnsureAdmin creates the admin unless one with that email already exists.
// It reports whether a row was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := s.CreateAdmin(ctx, email, password)
	switch {
	case err == nil:
		logger.WithCtx(ctx).Info("default admin created", "email", normalizeEmail(email))
		return true, nil
	case errors.Is(err, ErrDuplicateEmail):
		return false, nil
	default:
		return false, err
	}
}

// Signup registers a customer and signs them in.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (CustomerSession, error) {
	email := normalizeEmail(in.Email)

	if _, err := s.accounts.FindCustomerByEmail(ctx, email); err == nil {
		return CustomerSession{}, newError(ErrDuplicateEmail, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return CustomerSession{}, fmt.Errorf("find customer: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return CustomerSession{}, fmt.Errorf("hash password: %w", err)
	}

	customer := models.Customer{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
	}
	if err := s.accounts.CreateCustomer(ctx, &customer); err != nil {
		if database.IsUniqueViolation(err) {
			return CustomerSession{}, newError(ErrDuplicateEmail, "Email already registered")
		}
		return CustomerSession{}, fmt.Errorf("create customer: %w", err)
	}

	logger.WithCtx(ctx).Info("customer registered", "customer_id", customer.ID)
	return s.customerSession(customer)
}

// CustomerLogin checks the credentials and returns a customer-role token.
func (s *AuthService) CustomerLogin(ctx context.Context, in LoginInput) (CustomerSession, error) {
	customer, err := s.accounts.FindCustomerByEmail(ctx, normalizeEmail(in.Email))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return CustomerSession{}, fmt.Errorf("find customer: %w", err)
	}
	if err != nil || !auth.CheckPassword(customer.PasswordHash, in.Password) {
		return CustomerSession{}, newError(ErrInvalidCredentials, "Invalid credentials")
	}
	return s.customerSession(customer)
}

// Customer resolves a customer-role token subject to the account.
func (s *AuthService) Customer(ctx context.Context, subject string) (models.Customer, error) {
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return models.Customer{}, newError(ErrInvalidCredentials, "Unauthorized")
	}
	customer, err := s.accounts.FindCustomer(ctx, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Customer{}, newError(ErrInvalidCredentials, "Unauthorized")
	}
	if err != nil {
		return models.Customer{}, fmt.Errorf("find customer: %w", err)
	}
	return customer, nil
}

// Customers lists every registered customer.
func (s *AuthService) Customers(ctx context.Context) ([]models.Customer, error) {
	out, err := s.accounts.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (s *AuthService) customerSession(c models.Customer) (CustomerSession, error) {
	token, err := s.tokens.Issue(strconv.FormatUint(uint64(c.ID), 10), auth.RoleCustomer)
	if err != nil {
		return CustomerSession{}, err
	}
	return CustomerSession{
		AccessToken: token,
		Customer:    CustomerProfile{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
