package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/config"
	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, c domain.UserChanges, now time.Time) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListWithMovieCounts(ctx context.Context, limit, offset int) ([]domain.UserWithMovieCount, error)
	CountUsers(ctx context.Context) (int, error)
}

// auditLogger writes audit entries and reads back a user's own trail.
type auditLogger interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
	GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
}

// txManager runs callbacks in a read-write transaction or a read-only snapshot.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile and admin operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditLogger
	tx    txManager
	cfg   config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditLogger,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
		tx:    tx,
		cfg:   cfg,
	}
}
