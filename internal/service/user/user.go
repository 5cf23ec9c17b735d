package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nephrocare/dialyse_backend/config"
	"github.com/nephrocare/dialyse_backend/internal/repo"
	entgrant "github.com/nephrocare/dialyse_backend/internal/repo/patientaccessgrant"
	entprofile "github.com/nephrocare/dialyse_backend/internal/repo/permissionprofile"
	entuser "github.com/nephrocare/dialyse_backend/internal/repo/user"
	"github.com/nephrocare/dialyse_backend/internal/service/auth"
	"github.com/nephrocare/dialyse_backend/pkg/authorize"
	"github.com/nephrocare/dialyse_backend/pkg/email"
	"github.com/nephrocare/dialyse_backend/pkg/util/password"
)

// adminUsername is the bootstrap account. It can never be deleted.
const adminUsername = "admin"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateUserRequest struct {
	Username string
	Password string
	Email    *string
	Role     string // admin | user
}

type ChangePasswordRequest struct {
	// CurrentPassword is required for self-service changes, ignored when
	// an admin resets someone else's password.
	CurrentPassword string
	NewPassword     string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context) ([]*repo.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	Create(ctx context.Context, req CreateUserRequest) (*repo.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest, verifyCurrent bool) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db          *repo.Client
	emailClient *email.Client
	authSvc     auth.Service
	authorize   authorize.IAuthorization
	cfg         *config.Config
}

func New(
	db *repo.Client,
	emailClient *email.Client,
	authSvc auth.Service,
	authz authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &userService{
		db:          db,
		emailClient: emailClient,
		authSvc:     authSvc,
		authorize:   authz,
		cfg:         cfg,
	}
}

func (s *userService) List(ctx context.Context) ([]*repo.User, error) {
	return s.db.User.Query().
		Where(entuser.DeletedAtIsNil()).
		Order(entuser.ByUsername(sql.OrderAsc())).
		All(ctx)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, req CreateUserRequest) (*repo.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return nil, ErrUsernameRequired
	}
	if len(req.Password) < s.minPasswordLength() {
		return nil, ErrPasswordTooShort
	}
	switch req.Role {
	case string(entuser.RoleAdmin), string(entuser.RoleUser):
	default:
		return nil, ErrInvalidRole
	}

	taken, err := s.db.User.Query().
		Where(entuser.Username(req.Username), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.User.Create().
		SetUsername(req.Username).
		SetPasswordHash(hash).
		SetRole(entuser.Role(req.Role))
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		c = c.SetEmail(strings.TrimSpace(*req.Email))
	}

	u, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := authorize.AssignUserRole(ctx, s.authorize, u.ID.String(), string(u.Role)); err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}

	// New accounts start as restricted viewers until an admin widens them.
	if u.Role == entuser.RoleUser {
		_, err = s.db.PermissionProfile.Create().
			SetUserID(u.ID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create permission profile: %w", err)
		}
	}

	s.notifyAccountCreated(ctx, u)
	return u, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest, verifyCurrent bool) error {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if verifyCurrent {
		if err := password.Verify(u.PasswordHash, req.CurrentPassword); err != nil {
			return ErrInvalidPassword
		}
	}
	if len(req.NewPassword) < s.minPasswordLength() {
		return ErrPasswordTooShort
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.User.UpdateOne(u).SetPasswordHash(hash).Exec(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	// A changed password invalidates every live session.
	if err := s.authSvc.RevokeAllSessions(ctx, userID); err != nil {
		slog.Warn("failed to revoke sessions after password change", "user_id", userID, "error", err)
	}

	s.notifyPasswordChanged(ctx, u)
	return nil
}

// Delete removes an account and everything keyed on it: grants, profile
// and the Casbin role binding. The bootstrap admin is refused outright.
func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.Username == adminUsername {
		return ErrAdminUndeletable
	}

	if err := s.authSvc.RevokeAllSessions(ctx, userID); err != nil {
		slog.Warn("failed to revoke sessions of deleted user", "user_id", userID, "error", err)
	}

	if _, err := s.db.PatientAccessGrant.Delete().
		Where(entgrant.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete grants: %w", err)
	}
	if _, err := s.db.PermissionProfile.Delete().
		Where(entprofile.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if err := authorize.RemoveUserRole(ctx, s.authorize, u.ID.String(), string(u.Role)); err != nil {
		slog.Warn("failed to remove role binding", "user_id", userID, "error", err)
	}

	if err := s.db.User.UpdateOne(u).SetDeletedAt(time.Now()).Exec(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *userService) minPasswordLength() int {
	if n := s.cfg.Password.MinLength; n > 0 {
		return n
	}
	return 8
}

func (s *userService) notifyAccountCreated(ctx context.Context, u *repo.User) {
	if u.Email == nil || s.emailClient == nil {
		return
	}
	msg := email.BuildAccountCreatedEmail(email.AccountEmailData{
		Username: u.Username,
		Email:    *u.Email,
		Role:     string(u.Role),
		LoginURL: s.cfg.Server.Domain,
	})
	if err := s.emailClient.Send(ctx, msg); err != nil {
		slog.Warn("failed to send account created email", "user_id", u.ID, "error", err)
	}
}

func (s *userService) notifyPasswordChanged(ctx context.Context, u *repo.User) {
	if u.Email == nil || s.emailClient == nil {
		return
	}
	msg := email.BuildPasswordChangedEmail(email.AccountEmailData{
		Username: u.Username,
		Email:    *u.Email,
		Role:     string(u.Role),
		LoginURL: s.cfg.Server.Domain,
	})
	if err := s.emailClient.Send(ctx, msg); err != nil {
		slog.Warn("failed to send password changed email", "user_id", u.ID, "error", err)
	}
}
