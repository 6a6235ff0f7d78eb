package plants

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plantcare-app/plantcare/internal/backend"
	"github.com/plantcare-app/plantcare/internal/common"
)

const table = "plants"

// TokenSource yields the bearer token for owner-scoped queries. The session
// gateway satisfies it; an empty token means no session, which the backend's
// row-level security rejects.
type TokenSource interface {
	AccessToken() string
}

// Store is the plant record store contract.
//
// Listing is ordered by creation time descending; an empty result is not an
// error. GetByID returns common.ErrNotFound both for missing rows and rows
// hidden by access control. Update overwrites all caller-writable fields.
// Delete is idempotent: removing an id that is already gone succeeds.
type Store interface {
	ListForUser(ctx context.Context, userID string) ([]PlantRecord, error)
	GetByID(ctx context.Context, id string) (*PlantRecord, error)
	Create(ctx context.Context, ownerID string, f Fields) (*PlantRecord, error)
	Update(ctx context.Context, id string, f Fields) error
	Delete(ctx context.Context, id string) error
}

type backendStore struct {
	client *backend.Client
	tokens TokenSource
}

// NewStore builds a Store over the backend table API.
func NewStore(client *backend.Client, tokens TokenSource) Store {
	return &backendStore{client: client, tokens: tokens}
}

func (s *backendStore) ListForUser(ctx context.Context, userID string) ([]PlantRecord, error) {
	resp, err := s.client.From(table).
		Select("*").
		Eq("user_id", userID).
		Order("created_at", false).
		Bearer(s.tokens.AccessToken()).
		Execute(ctx)
	if err != nil {
		return nil, backend.AsStoreError(err)
	}
	if err := resp.Err(); err != nil {
		return nil, backend.AsStoreError(err)
	}

	records := []PlantRecord{}
	if err := resp.JSON(&records); err != nil {
		return nil, common.NewStoreError("", fmt.Errorf("decode plant list: %w", err))
	}
	return records, nil
}

func (s *backendStore) GetByID(ctx context.Context, id string) (*PlantRecord, error) {
	// A malformed id cannot match any row; report it the same way as a miss
	// instead of letting the backend fail on a type error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}

	resp, err := s.client.From(table).
		Select("*").
		Eq("id", id).
		Single().
		Bearer(s.tokens.AccessToken()).
		Execute(ctx)
	if err != nil {
		return nil, backend.AsStoreError(err)
	}
	if err := resp.Err(); err != nil {
		return nil, backend.AsStoreError(err)
	}

	var rec PlantRecord
	if err := resp.JSON(&rec); err != nil {
		return nil, common.NewStoreError("", fmt.Errorf("decode plant: %w", err))
	}
	return &rec, nil
}

func (s *backendStore) Create(ctx context.Context, ownerID string, f Fields) (*PlantRecord, error) {
	payload := struct {
		OwnerID string `json:"user_id"`
		Fields
	}{OwnerID: ownerID, Fields: f}

	resp, err := s.client.From(table).
		Bearer(s.tokens.AccessToken()).
		ExecuteInsert(ctx, payload)
	if err != nil {
		return nil, backend.AsStoreError(err)
	}
	if err := resp.Err(); err != nil {
		return nil, backend.AsStoreError(err)
	}

	var created []PlantRecord
	if err := resp.JSON(&created); err != nil {
		return nil, common.NewStoreError("", fmt.Errorf("decode created plant: %w", err))
	}
	if len(created) == 0 {
		return nil, common.NewStoreError("", fmt.Errorf("backend returned no created row"))
	}
	return &created[0], nil
}

func (s *backendStore) Update(ctx context.Context, id string, f Fields) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}

	resp, err := s.client.From(table).
		Eq("id", id).
		Bearer(s.tokens.AccessToken()).
		ExecuteUpdate(ctx, f)
	if err != nil {
		return backend.AsStoreError(err)
	}
	if err := resp.Err(); err != nil {
		return backend.AsStoreError(err)
	}

	var updated []PlantRecord
	if err := resp.JSON(&updated); err != nil {
		return common.NewStoreError("", fmt.Errorf("decode updated plant: %w", err))
	}
	if len(updated) == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *backendStore) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		// Nothing with this id can exist; deletion is idempotent.
		return nil
	}

	resp, err := s.client.From(table).
		Eq("id", id).
		Bearer(s.tokens.AccessToken()).
		ExecuteDelete(ctx)
	if err != nil {
		return backend.AsStoreError(err)
	}
	// An empty result (row already gone) is still success.
	return backend.AsStoreError(resp.Err())
}
