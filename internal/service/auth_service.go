package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/dto"
	"github.com/arkan-dev/eduverse-api/internal/middleware"
	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/repository"
)

// ErrNotLoggedIn indicates the request has no active learner identity.
var ErrNotLoggedIn = errors.New("no active learner")

// demoLearnerName is the display name given to sessions started with an
// email that has no registration. Logging in alone does not register the
// identity; the first profile or premium change writes it through.
const demoLearnerName = "Learner"

// AuthService manages the learner registry and the single active session.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (dto.SessionResponse, error)
	Logout(ctx context.Context) (string, error)
	ActiveLearner(ctx context.Context, email string) (models.Learner, error)
	UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (models.Learner, error)
	ActivatePremium(ctx context.Context, email, plan string) (models.Learner, error)
}

type authService struct {
	learners   repository.LearnerRepository
	sessions   repository.SessionRepository
	jwtSecret  string
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(learners repository.LearnerRepository, sessions repository.SessionRepository, jwtSecret string, sessionTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		learners:   learners,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		logger:     logger.With().Str("component", "auth_service").Logger(),
	}
}

// Login activates a session for the email. A registered learner resumes their
// identity; an unknown email gets a demo identity instead of a rejection, so
// the flow never fails on a missing registration.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	learner, err := s.learners.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrLearnerNotFound) {
			return dto.SessionResponse{}, fmt.Errorf("failed to look up learner: %w", err)
		}
		learner = models.Learner{
			Name:  demoLearnerName,
			Email: email,
			Role:  models.RoleSchoolStudent,
		}
		s.logger.Info().Str("email", email).Msg("unregistered email, starting demo session")
	}

	return s.activate(ctx, learner)
}

// Signup registers the learner and activates their session. Registering an
// email that already exists overwrites the previous entry.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (dto.SessionResponse, error) {
	learner := models.Learner{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(strings.ToLower(req.Email)),
	}

	saved, err := s.learners.Upsert(ctx, learner)
	if err != nil {
		return dto.SessionResponse{}, fmt.Errorf("failed to register learner: %w", err)
	}

	return s.activate(ctx, saved)
}

// Logout clears the active session and returns the key of the learner that
// was signed in, so callers can release session-scoped state. The registry is
// untouched.
func (s *authService) Logout(ctx context.Context) (string, error) {
	learner, err := s.sessions.GetActive(ctx)
	if err != nil && !errors.Is(err, repository.ErrNoActiveSession) {
		return "", err
	}

	if err := s.sessions.ClearActive(ctx); err != nil {
		return "", fmt.Errorf("failed to clear session: %w", err)
	}

	return learner.Key(), nil
}

// ActiveLearner resolves the identity behind a session email. The session
// snapshot wins so demo identities and unsaved profile edits stay visible;
// the registry is the fallback.
func (s *authService) ActiveLearner(ctx context.Context, email string) (models.Learner, error) {
	if email == "" {
		return models.Learner{}, ErrNotLoggedIn
	}

	if active, err := s.sessions.GetActive(ctx); err == nil && active.Key() == email {
		return active, nil
	}

	learner, err := s.learners.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrLearnerNotFound) {
			return models.Learner{}, ErrNotLoggedIn
		}
		return models.Learner{}, err
	}

	return learner, nil
}

// UpdateProfile merges the provided fields into the active identity and
// writes the result back to the registry, registering a demo identity if it
// was not there yet.
func (s *authService) UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (models.Learner, error) {
	learner, err := s.ActiveLearner(ctx, email)
	if err != nil {
		return models.Learner{}, err
	}

	if req.Name != nil {
		learner.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		learner.Role = models.NormalizeRole(*req.Role)
	}
	if req.Avatar != nil {
		learner.Avatar = strings.TrimSpace(*req.Avatar)
	}

	return s.persistActive(ctx, learner)
}

// ActivatePremium marks the active learner premium after a successful
// checkout. The plan only matters to the payment collaborator; here it is
// logged and the premium flag is what changes access.
func (s *authService) ActivatePremium(ctx context.Context, email, plan string) (models.Learner, error) {
	learner, err := s.ActiveLearner(ctx, email)
	if err != nil {
		return models.Learner{}, err
	}

	learner.IsPremium = true

	saved, err := s.persistActive(ctx, learner)
	if err != nil {
		return models.Learner{}, err
	}

	s.logger.Info().Str("learner", saved.Key()).Str("plan", plan).Msg("premium activated")

	return saved, nil
}

func (s *authService) activate(ctx context.Context, learner models.Learner) (dto.SessionResponse, error) {
	if err := s.sessions.SaveActive(ctx, learner); err != nil {
		return dto.SessionResponse{}, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := middleware.IssueSessionToken(s.jwtSecret, learner, s.sessionTTL)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	return dto.SessionResponse{Token: token, Learner: learner}, nil
}

// persistActive writes the learner back to the registry unconditionally,
// then refreshes the session snapshot. Only login-time demo synthesis skips
// the registry; any identity change after that survives a logout.
func (s *authService) persistActive(ctx context.Context, learner models.Learner) (models.Learner, error) {
	saved, err := s.learners.Upsert(ctx, learner)
	if err != nil {
		return models.Learner{}, fmt.Errorf("failed to update learner: %w", err)
	}

	if err := s.sessions.SaveActive(ctx, saved); err != nil {
		return models.Learner{}, fmt.Errorf("failed to refresh session: %w", err)
	}

	return saved, nil
}
