package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arkan-dev/eduverse-api/internal/dto"
	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/repository"
)

func newTestAuthService(t *testing.T) (AuthService, repository.LearnerRepository) {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	learners := repository.NewLearnerRepository(testDB(t))
	sessions := repository.NewSessionRepository(redisClient, time.Hour)

	return NewAuthService(learners, sessions, "test-secret", time.Hour, zerolog.Nop()), learners
}

func TestLoginUnknownEmailStartsDemoSession(t *testing.T) {
	svc, learners := newTestAuthService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, dto.LoginRequest{Email: "new@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, "Learner", session.Learner.Name)
	require.Equal(t, models.RoleSchoolStudent, session.Learner.Role)

	// Logging in alone does not register the demo identity.
	_, err = learners.GetByEmail(ctx, "new@example.com")
	require.ErrorIs(t, err, repository.ErrLearnerNotFound)

	active, err := svc.ActiveLearner(ctx, "new@example.com")
	require.NoError(t, err)
	require.Equal(t, "Learner", active.Name)
}

func TestSignupRegistersAndResumes(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	session, err := svc.Signup(ctx, dto.SignupRequest{Name: "Alice", Email: "Alice@Example.com"})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", session.Learner.Email)

	resumed, err := svc.Login(ctx, dto.LoginRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	require.Equal(t, "Alice", resumed.Learner.Name)
}

func TestSignupLastWriteWins(t *testing.T) {
	svc, learners := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, dto.SignupRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, dto.SignupRequest{Name: "Alicia", Email: "alice@example.com"})
	require.NoError(t, err)

	learner, err := learners.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "Alicia", learner.Name)
}

func TestLoginAfterLogoutRestoresIdentityState(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, dto.SignupRequest{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)

	role := "professional"
	avatar := "https://avatars.example.com/jane.png"
	_, err = svc.UpdateProfile(ctx, "jane@x.com", dto.UpdateProfileRequest{Role: &role, Avatar: &avatar})
	require.NoError(t, err)

	_, err = svc.ActivatePremium(ctx, "jane@x.com", "yearly")
	require.NoError(t, err)

	_, err = svc.Logout(ctx)
	require.NoError(t, err)

	session, err := svc.Login(ctx, dto.LoginRequest{Email: "jane@x.com"})
	require.NoError(t, err)
	require.Equal(t, "Jane", session.Learner.Name)
	require.Equal(t, models.RoleProfessional, session.Learner.Role)
	require.Equal(t, avatar, session.Learner.Avatar)
	require.True(t, session.Learner.IsPremium)
}

func TestLogoutClearsSessionNotRegistry(t *testing.T) {
	svc, learners := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, dto.SignupRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	key, err := svc.Logout(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", key)

	// The registry entry survives; a later login resumes the identity.
	learner, err := learners.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "Alice", learner.Name)
}

func TestUpdateProfileRegistersDemoIdentity(t *testing.T) {
	svc, learners := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "demo@example.com"})
	require.NoError(t, err)

	name := "Dana"
	role := "professional"
	updated, err := svc.UpdateProfile(ctx, "demo@example.com", dto.UpdateProfileRequest{Name: &name, Role: &role})
	require.NoError(t, err)
	require.Equal(t, "Dana", updated.Name)
	require.Equal(t, models.RoleProfessional, updated.Role)

	// The first identity change writes the demo learner through to the
	// registry, so the edit survives the session.
	learner, err := learners.GetByEmail(ctx, "demo@example.com")
	require.NoError(t, err)
	require.Equal(t, "Dana", learner.Name)
	require.Equal(t, models.RoleProfessional, learner.Role)
}

func TestPremiumOnDemoIdentitySurvivesLogout(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "demo@example.com"})
	require.NoError(t, err)

	_, err = svc.ActivatePremium(ctx, "demo@example.com", "monthly")
	require.NoError(t, err)

	_, err = svc.Logout(ctx)
	require.NoError(t, err)

	session, err := svc.Login(ctx, dto.LoginRequest{Email: "demo@example.com"})
	require.NoError(t, err)
	require.True(t, session.Learner.IsPremium)
}

func TestActivatePremiumPersistsForRegisteredLearner(t *testing.T) {
	svc, learners := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, dto.SignupRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	upgraded, err := svc.ActivatePremium(ctx, "alice@example.com", "monthly")
	require.NoError(t, err)
	require.True(t, upgraded.IsPremium)

	learner, err := learners.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, learner.IsPremium)
}

func TestActiveLearnerRequiresSession(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ActiveLearner(context.Background(), "")
	require.ErrorIs(t, err, ErrNotLoggedIn)
}
