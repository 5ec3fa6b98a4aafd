// Package identity maps externally-authenticated subjects to local user rows.
// The authentication handshake itself happens outside this service; all we
// receive is a verified subject identifier plus a profile bundle.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"
)

// ExternalProfile is the profile bundle supplied by the authentication
// collaborator. Only Subject is guaranteed to be present.
type ExternalProfile struct {
	Subject         string
	Username        string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// Resolver resolves external subjects to local users with create-on-first-sight
// semantics.
type Resolver struct {
	userRepo storage.UserRepository
}

// NewResolver creates a new Resolver.
func NewResolver(userRepo storage.UserRepository) *Resolver {
	return &Resolver{userRepo: userRepo}
}

// Resolve returns the local user bound to the profile's subject, creating the
// row on first sight. Repeated calls with the same subject are idempotent:
// the unique constraint on external_id guarantees at most one row per subject.
// For an existing user only the mutable profile projection (name, email,
// avatar) is refreshed; role and company binding are never touched.
func (r *Resolver) Resolve(ctx context.Context, profile ExternalProfile) (*models.User, error) {
	if profile.Subject == "" {
		return nil, fmt.Errorf("identity: empty subject identifier")
	}

	name := displayName(profile)
	email := optional(profile.Email)
	avatar := optional(profile.ProfileImageURL)

	existing, err := r.userRepo.GetByExternalID(ctx, profile.Subject)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("identity: failed to look up subject: %w", err)
	}

	if existing != nil {
		user, err := r.userRepo.SyncProfile(ctx, &dto.SyncProfileRequest{
			ExternalID:      profile.Subject,
			Name:            &name,
			Email:           email,
			ProfileImageURL: avatar,
		})
		if err != nil {
			return nil, fmt.Errorf("identity: failed to refresh profile: %w", err)
		}
		return user, nil
	}

	subject := profile.Subject
	req := &dto.CreateUserRequest{
		ExternalID:      &subject,
		Username:        fallbackUsername(profile),
		Email:           email,
		Name:            &name,
		ProfileImageURL: avatar,
	}

	user, err := r.userRepo.Create(ctx, req)
	if err != nil && errors.Is(err, storage.ErrDuplicateUsername) {
		// Someone else already owns the synthesized handle; disambiguate with
		// a subject-derived suffix and try once more.
		req.Username = req.Username + "_" + truncate(profile.Subject, 8)
		user, err = r.userRepo.Create(ctx, req)
	}
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			// A concurrent first-sight resolution won the insert race; the
			// row exists now, so fall back to the update path.
			log.Printf("Identity: insert race for subject %s, syncing existing row", profile.Subject)
			return r.userRepo.SyncProfile(ctx, &dto.SyncProfileRequest{
				ExternalID:      profile.Subject,
				Name:            &name,
				Email:           email,
				ProfileImageURL: avatar,
			})
		}
		return nil, fmt.Errorf("identity: failed to create user: %w", err)
	}

	return user, nil
}

// fallbackUsername synthesizes a handle: supplied username, else the local
// part of the email, else a truncated subject identifier.
func fallbackUsername(profile ExternalProfile) string {
	if profile.Username != "" {
		return profile.Username
	}
	if profile.Email != "" {
		if local, _, found := strings.Cut(profile.Email, "@"); found && local != "" {
			return local
		}
	}
	return "user_" + truncate(profile.Subject, 8)
}

// displayName joins the name fields, falling back to the supplied username or
// the literal "User".
func displayName(profile ExternalProfile) string {
	name := strings.TrimSpace(profile.FirstName + " " + profile.LastName)
	if name != "" {
		return name
	}
	if profile.Username != "" {
		return profile.Username
	}
	return "User"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
