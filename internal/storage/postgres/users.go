package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, external_id, username, email, name, role, bio, profile_image_url, resume_url, skills, company_id, created_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.ExternalID,
		&u.Username,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.Bio,
		&u.ProfileImageURL,
		&u.ResumeURL,
		&u.Skills,
		&u.CompanyID,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a single user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %d\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return user, nil
}

// GetByExternalID retrieves the user bound to an external subject identifier.
func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by external ID %s: %v\n", externalID, err)
		return nil, fmt.Errorf("failed to get user by external ID: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves a single user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by username %s: %v\n", username, err)
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// Create inserts a new user row with the candidate default role.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	query := `
		INSERT INTO users (external_id, username, email, name, profile_image_url, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query,
		req.ExternalID,
		req.Username,
		req.Email,
		req.Name,
		req.ProfileImageURL,
		models.UserRoleCandidate,
	)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			log.Printf("Attempted to create user with duplicate username or external id %q: %v\n", req.Username, err)
			if pgErr.ConstraintName == "users_username_key" {
				return nil, storage.ErrDuplicateUsername
			}
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating user %q: %v\n", req.Username, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %d", user.ID)
	return user, nil
}

// SyncProfile refreshes only the mutable profile projection of the user bound
// to the external identifier. Role and company binding are never touched here.
func (r *UserRepo) SyncProfile(ctx context.Context, req *dto.SyncProfileRequest) (*models.User, error) {
	query := `
		UPDATE users
		SET name = $1, email = $2, profile_image_url = $3
		WHERE external_id = $4
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, req.Name, req.Email, req.ProfileImageURL, req.ExternalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error syncing profile for external ID %s: %v\n", req.ExternalID, err)
		return nil, fmt.Errorf("failed to sync profile: %w", err)
	}
	return user, nil
}

// UpdateProfile modifies the user's own row based on non-nil fields in the request DTO.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.Email != nil {
		appendSet("email", *req.Email)
	}
	if req.Bio != nil {
		appendSet("bio", *req.Bio)
	}
	if req.ProfileImageURL != nil {
		appendSet("profile_image_url", *req.ProfileImageURL)
	}
	if req.ResumeURL != nil {
		appendSet("resume_url", *req.ResumeURL)
	}
	if req.Skills != nil {
		appendSet("skills", *req.Skills)
	}

	if len(setClauses) == 0 {
		// Nothing to change; return the current row so the caller still gets
		// the full post-mutation state.
		return r.GetByID(ctx, req.UserID)
	}

	args = append(args, req.UserID)
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING `+userColumns, strings.Join(setClauses, ", "), argID)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for update with ID: %d\n", req.UserID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating user %d: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to update user %d: %w", req.UserID, err)
	}

	log.Printf("User updated successfully: %d", user.ID)
	return user, nil
}

// AssignCompany promotes the user to employer and binds the company id.
func (r *UserRepo) AssignCompany(ctx context.Context, userID, companyID int) (*models.User, error) {
	query := `
		UPDATE users
		SET role = $1, company_id = $2
		WHERE id = $3
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, models.UserRoleEmployer, companyID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for company assignment with ID: %d\n", userID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error assigning company %d to user %d: %v\n", companyID, userID, err)
		return nil, fmt.Errorf("failed to assign company to user %d: %w", userID, err)
	}

	log.Printf("User %d promoted to employer for company %d", user.ID, companyID)
	return user, nil
}
