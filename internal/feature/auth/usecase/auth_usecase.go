package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ghanalingo/internal/feature/auth/domain/entity"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// emailPattern accepts the local@domain.tld shape and nothing fancier.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dummyHash is compared against when the email is unknown, so login
// takes the same time whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailTaken or
	// ErrUsernameTaken when the corresponding unique constraint rejects
	// the row.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user matching the specified username.
	// It returns ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer mints the signed claim set returned to clients.
type TokenIssuer interface {
	Issue(ident entity.Identity) (string, error)
}

// RegisterInput is the untrimmed registration payload.
type RegisterInput struct {
	FirstName         string
	LastName          string
	Email             string
	Password          string
	PreferredLanguage string
}

// AuthResult is the outcome of a successful registration or login.
// Identity is what the issued token asserts and what a server-side
// session should store; it carries the preferred language, which has no
// column on the user row.
type AuthResult struct {
	Token    string
	User     *entity.User
	Identity entity.Identity
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// validateRegisterInput trims the payload and checks each field in the
// order clients expect the messages: firstName, lastName, email, email
// format, password, password length.
func validateRegisterInput(in RegisterInput) (RegisterInput, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	if in.FirstName == "" {
		return in, &ValidationError{Field: "firstName", Message: "First name is required and must be a valid string"}
	}
	in.LastName = strings.TrimSpace(in.LastName)
	if in.LastName == "" {
		return in, &ValidationError{Field: "lastName", Message: "Last name is required and must be a valid string"}
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		return in, &ValidationError{Field: "email", Message: "Email is required and must be a valid string"}
	}
	if !emailPattern.MatchString(in.Email) {
		return in, &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	if strings.TrimSpace(in.Password) == "" {
		return in, &ValidationError{Field: "password", Message: "Password is required and must be a valid string"}
	}
	if len(in.Password) < minPasswordLength {
		return in, &ValidationError{Field: "password", Message: "Password must be at least 6 characters long"}
	}
	in.PreferredLanguage = strings.TrimSpace(in.PreferredLanguage)
	return in, nil
}

// Register creates a new user with a hashed password and a generated
// username, and issues a signed token for it.
//
// There is no pre-check SELECT for either unique field: the insert is
// attempted and the store's constraint violation is the only
// uniqueness signal. A username collision gets a fresh candidate, up to
// maxUsernameAttempts; an email collision is final.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in, err := validateRegisterInput(in)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user *entity.User
	for attempt := 0; ; attempt++ {
		if attempt >= maxUsernameAttempts {
			return nil, ErrUsernameExhausted
		}
		user = &entity.User{
			Username:     GenerateUsername(in.FirstName, in.LastName),
			Email:        in.Email,
			PasswordHash: string(hashed),
			FirstName:    in.FirstName,
			LastName:     in.LastName,
		}
		err := u.users.Create(ctx, user)
		if err == nil {
			break
		}
		if errors.Is(err, ErrUsernameTaken) {
			continue
		}
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	ident := identityFor(user, in.PreferredLanguage)
	token, err := u.tokens.Issue(ident)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user, Identity: ident}, nil
}

// Login authenticates a user and issues a signed token on success.
// Unknown email and wrong password are reported identically, and a
// dummy bcrypt comparison runs on the unknown-email path for timing
// parity.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "email", Message: "Email and password are required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Field: "email", Message: "Invalid email format"}
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash := dummyHash
	if err == nil {
		hash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	// preferredLanguage is not persisted, so a fresh login cannot carry
	// one.
	ident := identityFor(user, "")
	token, err := u.tokens.Issue(ident)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user, Identity: ident}, nil
}

// CurrentUser re-reads the user row for a resolved identity. Credential
// data is not trusted for identity fields; only the user ID is used.
func (u *authUsecase) CurrentUser(ctx context.Context, ident entity.Identity) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, ident.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func identityFor(user *entity.User, preferredLanguage string) entity.Identity {
	return entity.Identity{
		UserID:            user.ID,
		Username:          user.Username,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Email:             user.Email,
		PreferredLanguage: preferredLanguage,
	}
}
