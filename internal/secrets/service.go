package secrets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Yotam1312/EasyPass/internal/cryptox"
)

// Service implements the vault operations. Passwords are encrypted before
// they reach the repository and decrypted before they are returned, on every
// call; the handler layer never sees ciphertext. All operations are scoped to
// the ownerID passed in explicitly by the caller.
type Service struct {
	repo   Repository
	cipher *cryptox.Cipher
	logger *slog.Logger
}

// NewService builds the vault service.
func NewService(repo Repository, cipher *cryptox.Cipher, logger *slog.Logger) *Service {
	return &Service{repo: repo, cipher: cipher, logger: logger}
}

// List returns all of the owner's entries with passwords decrypted.
func (s *Service) List(ctx context.Context, ownerID int64) ([]Entry, error) {
	entries, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.decryptAll(ctx, entries)
}

// Create encrypts the password and persists a new entry for the owner. The
// returned entry carries the plaintext password back for display consistency.
func (s *Service) Create(ctx context.Context, ownerID int64, service, username, password string) (Entry, error) {
	encrypted, err := s.cipher.Encrypt(password)
	if err != nil {
		return Entry{}, fmt.Errorf("encrypt password: %w", err)
	}

	created, err := s.repo.Create(ctx, Entry{
		OwnerID:  ownerID,
		Service:  service,
		Username: username,
		Password: encrypted,
	})
	if err != nil {
		return Entry{}, err
	}
	created.Password = password
	return created, nil
}

// Update re-encrypts the password and mutates an owned entry in place. An
// entry that is missing or owned by another user yields ErrNotFound.
func (s *Service) Update(ctx context.Context, ownerID, id int64, service, username, password string) (Entry, error) {
	encrypted, err := s.cipher.Encrypt(password)
	if err != nil {
		return Entry{}, fmt.Errorf("encrypt password: %w", err)
	}

	updated, err := s.repo.Update(ctx, Entry{
		ID:       id,
		OwnerID:  ownerID,
		Service:  service,
		Username: username,
		Password: encrypted,
	})
	if err != nil {
		return Entry{}, err
	}
	updated.Password = password
	return updated, nil
}

// Delete removes an owned entry. Deleting an already-deleted or foreign entry
// yields ErrNotFound.
func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// SearchByService returns the owner's entries whose service name contains the
// substring, case-insensitively, with passwords decrypted. No matches is an
// empty slice, not an error.
func (s *Service) SearchByService(ctx context.Context, ownerID int64, substring string) ([]Entry, error) {
	entries, err := s.repo.SearchByService(ctx, ownerID, substring)
	if err != nil {
		return nil, err
	}
	return s.decryptAll(ctx, entries)
}

func (s *Service) decryptAll(ctx context.Context, entries []Entry) ([]Entry, error) {
	for i := range entries {
		plain, err := s.cipher.Decrypt(entries[i].Password)
		if err != nil {
			// Corrupt ciphertext is fatal for the record but must not leak
			// anything beyond the entry id.
			s.logger.ErrorContext(ctx, "stored password failed to decrypt",
				"entry_id", entries[i].ID, "error", err)
			return nil, fmt.Errorf("decrypt entry %d: %w", entries[i].ID, err)
		}
		entries[i].Password = plain
	}
	return entries, nil
}
