package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	apperrors "taskflow/internal/errors"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

const (
	minPasswordLength = 6

	// PasswordUpdatedMessage acknowledges a successful password change.
	PasswordUpdatedMessage = "Password updated successfully!"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthState is a snapshot of the authentication store.
type AuthState struct {
	User      *model.SessionUser `json:"user"`
	Profile   *model.Profile     `json:"profile"`
	IsLoading bool               `json:"isLoading"`
	Error     *apperrors.Error   `json:"error"`
}

// SessionProvider exposes the current identity to other stores.
type SessionProvider interface {
	CurrentUser() *model.SessionUser
	CurrentProfile() *model.Profile
}

// Notifier delivers user-facing acknowledgments.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// LogNotifier writes acknowledgments to the log.
type LogNotifier struct {
	Log logrus.FieldLogger
}

func (n LogNotifier) Notify(_ context.Context, message string) {
	n.Log.Info(message)
}

// AuthService handles session state against the local user registry.
// Actions record their failure in State().Error and also return it.
type AuthService interface {
	SessionProvider
	Initialize(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) error
	FetchProfile(ctx context.Context)
	ClearError()
	State() AuthState
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	slice    *repository.SliceRepository[repository.AuthSlice]
	notifier Notifier
	rt       Runtime

	mu    sync.RWMutex
	state AuthState
}

// NewAuthService creates the authentication store. Call Initialize before
// serving reads.
func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	slice *repository.SliceRepository[repository.AuthSlice],
	notifier Notifier,
	rt Runtime,
) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		slice:    slice,
		notifier: notifier,
		rt:       rt,
	}
}

// Initialize rehydrates the persisted snapshot, then re-derives the session
// from the session marker and the registry. A marker whose user left the
// registry keeps the user with no profile.
func (s *authService) Initialize(ctx context.Context) {
	snapshot, _ := s.slice.Load(ctx)

	s.mu.Lock()
	s.state.User = snapshot.User
	s.state.Profile = snapshot.Profile
	s.mu.Unlock()

	marker := s.sessions.Get(ctx)
	if marker == nil {
		return
	}

	var profile *model.Profile
	if stored, err := s.users.FindByEmail(ctx, marker.Email); err == nil {
		profile = stored.Profile()
	} else {
		s.rt.Log.WithField("email", marker.Email).Warn("session user missing from registry")
	}

	s.mu.Lock()
	s.state.User = marker
	s.state.Profile = profile
	s.mu.Unlock()
	s.persist(ctx)
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	s.begin()
	s.rt.delay(s.rt.Latency.Login)

	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return s.fail("login", err, "Login failed. Please check your credentials.")
	}

	stored, err := s.users.FindByEmail(ctx, email)
	if err != nil || stored.Password != password {
		return s.fail("login", apperrors.ErrInvalidCredentials, "")
	}

	if err := s.establish(ctx, stored); err != nil {
		return s.fail("login", err, "Login failed. Please check your credentials.")
	}
	return nil
}

func (s *authService) Signup(ctx context.Context, email, password string) error {
	s.begin()
	s.rt.delay(s.rt.Latency.Signup)

	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return s.fail("signup", err, "Signup failed. Please try again.")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return s.fail("signup", apperrors.ErrWeakPassword, "")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return s.fail("signup", apperrors.ErrDuplicateAccount, "")
	}

	now := s.rt.Now()
	lowered := strings.ToLower(email)
	stored := &model.StoredUser{
		ID:        "user_" + s.rt.newID(),
		Email:     lowered,
		Password:  password,
		Name:      strings.SplitN(email, "@", 2)[0],
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, stored); err != nil {
		return s.fail("signup", apperrors.Storage("USERS_WRITE_FAILED", "Signup failed. Please try again.", err), "")
	}

	if err := s.establish(ctx, stored); err != nil {
		return s.fail("signup", err, "Signup failed. Please try again.")
	}
	return nil
}

func (s *authService) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	s.begin()
	s.rt.delay(s.rt.Latency.UpdatePassword)

	user := s.CurrentUser()
	if user == nil {
		return s.fail("update password", apperrors.ErrNotAuthenticated, "")
	}

	stored, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil || stored.Password != currentPassword {
		return s.fail("update password", apperrors.ErrWrongPassword, "")
	}

	if err := s.users.UpdatePassword(ctx, user.ID, newPassword, s.rt.Now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.fail("update password", apperrors.ErrUserNotFound, "")
		}
		return s.fail("update password", apperrors.Storage("USERS_WRITE_FAILED", "Failed to update password", err), "")
	}

	s.mu.Lock()
	s.state.IsLoading = false
	s.mu.Unlock()

	s.notifier.Notify(ctx, PasswordUpdatedMessage)
	return nil
}

// Logout never touches isLoading; a failed marker removal is reported but
// leaves the session in place.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		e := apperrors.Storage("LOGOUT_FAILED", "Logout failed", err)
		s.rt.Log.WithError(err).Error("logout error")
		s.mu.Lock()
		s.state.Error = e
		s.mu.Unlock()
		return e
	}

	s.mu.Lock()
	s.state.User = nil
	s.state.Profile = nil
	s.state.Error = nil
	s.mu.Unlock()
	s.persist(ctx)
	return nil
}

// FetchProfile refreshes the profile from the registry. Missing sessions and
// missing users are ignored.
func (s *authService) FetchProfile(ctx context.Context) {
	user := s.CurrentUser()
	if user == nil {
		return
	}

	stored, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.state.Profile = stored.Profile()
	s.mu.Unlock()
	s.persist(ctx)
}

func (s *authService) ClearError() {
	s.mu.Lock()
	s.state.Error = nil
	s.mu.Unlock()
}

func (s *authService) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *authService) CurrentUser() *model.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User
}

func (s *authService) CurrentProfile() *model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Profile
}

func (s *authService) begin() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = nil
	s.mu.Unlock()
}

// establish writes the session marker and replaces the session state.
func (s *authService) establish(ctx context.Context, stored *model.StoredUser) error {
	session := stored.Session()
	if err := s.sessions.Save(ctx, session); err != nil {
		return apperrors.Storage("SESSION_WRITE_FAILED", "", err)
	}

	s.mu.Lock()
	s.state.User = session
	s.state.Profile = stored.Profile()
	s.state.IsLoading = false
	s.state.Error = nil
	s.mu.Unlock()
	s.persist(ctx)
	return nil
}

func (s *authService) fail(action string, err error, fallback string) error {
	e := apperrors.As(err, fallback)
	if e.Message == "" {
		e.Message = fallback
	}
	s.rt.Log.WithError(err).WithField("action", action).Warn("auth action failed")

	s.mu.Lock()
	s.state.Error = e
	s.state.IsLoading = false
	s.mu.Unlock()
	return e
}

// persist saves the {user, profile} snapshot. Failures are logged only.
func (s *authService) persist(ctx context.Context) {
	s.mu.RLock()
	snapshot := repository.AuthSlice{User: s.state.User, Profile: s.state.Profile}
	s.mu.RUnlock()

	if err := s.slice.Save(ctx, snapshot); err != nil {
		s.rt.Log.WithError(err).Warn("persist auth snapshot failed")
	}
}

func validateCredentials(email, password string) error {
	if email == "" {
		return apperrors.ErrEmailRequired
	}
	if password == "" {
		return apperrors.ErrPasswordRequired
	}
	if !emailPattern.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}
