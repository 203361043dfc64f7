package service

import (
	"errors"
	"strings"

	"natheme-api/models"
	"natheme-api/rolestate"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Sentinel errors returned by auth operations. The HTTP status mapping
// happens once, in the handlers; error messages are client-facing.
var (
	ErrMissingFields      = errors.New("Please fill in all required fields")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrWeakPassword       = errors.New("Password must be at least 8 characters long and contain at least one letter and one number.")
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailRequired      = errors.New("Email is required")
	ErrUserNotFound       = errors.New("User not found")
	ErrAlreadyAdmin       = errors.New("User is already an admin")
	ErrNotAdmin           = errors.New("User is not an admin")
	ErrOwnerImmutable     = errors.New("Owner account role cannot be changed")
)

// AuthService implements signup, signin and the role transitions.
type AuthService struct {
	db         *gorm.DB
	tokens     *TokenService
	ownerEmail string
}

func NewAuthService(db *gorm.DB, tokens *TokenService, ownerEmail string) *AuthService {
	return &AuthService{db: db, tokens: tokens, ownerEmail: ownerEmail}
}

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Location        string
}

// Signup validates the input, creates the user and issues a token.
// Validation order is fixed: missing fields, password mismatch, policy,
// then duplicate email.
func (s *AuthService) Signup(in SignupInput) (*models.User, string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, "", ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return nil, "", ErrPasswordMismatch
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, "", err
	}

	var existing models.User
	if err := s.db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, "", ErrUserExists
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	role := models.RoleCustomer
	if s.ownerEmail != "" && in.Email == s.ownerEmail {
		// Owner status comes from configuration, never from a request
		role = models.RoleOwner
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        in.Phone,
		Location:     in.Location,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Two concurrent signups can pass the existence check; the unique
		// index on email is the real safety net.
		if isDuplicateKey(err) {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Signin verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Signin(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Promote sets a user's role to admin.
func (s *AuthService) Promote(email string) (*models.User, error) {
	return s.changeRole(email, models.RoleAdmin)
}

// Demote sets an admin's role back to customer.
func (s *AuthService) Demote(email string) (*models.User, error) {
	return s.changeRole(email, models.RoleCustomer)
}

func (s *AuthService) changeRole(email string, to models.UserRole) (*models.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := rolestate.CanTransition(user.Role, to, rolestate.ActorOwner); err != nil {
		switch {
		case user.Role == models.RoleOwner:
			return nil, ErrOwnerImmutable
		case to == models.RoleAdmin:
			return nil, ErrAlreadyAdmin
		default:
			return nil, ErrNotAdmin
		}
	}
	if err := s.db.Model(&user).Update("role", to).Error; err != nil {
		return nil, err
	}
	user.Role = to
	return &user, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
