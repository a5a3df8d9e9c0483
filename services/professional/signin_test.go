// File: services/professional/signin_test.go
package professional

import (
	"context"
	"testing"

	professionalRepo "agendly/database/repository/professional"
	"agendly/models"
	"agendly/utils"

	"golang.org/x/crypto/bcrypt"
)

// fakeAuthStore mirrors the middleware's cache: token hash -> professional ID.
type fakeAuthStore struct {
	entries map[string]string
}

func newFakeAuthStore() *fakeAuthStore {
	return &fakeAuthStore{entries: map[string]string{}}
}

func (f *fakeAuthStore) Get(_ context.Context, key string, dest interface{}) error {
	v, ok := f.entries[key]
	if !ok {
		return utils.ErrCacheMiss
	}
	if p, ok := dest.(*string); ok {
		*p = v
	}
	return nil
}

func (f *fakeAuthStore) Set(_ context.Context, key string, value interface{}) error {
	if id, ok := value.(string); ok {
		f.entries[key] = id
	}
	return nil
}

func (f *fakeAuthStore) Invalidate(_ context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

type fakeAccountRepo struct {
	professionalRepo.ProfessionalRepository
	rec           *models.Professional
	storedHash    string
	hashUpdated   bool
	deletedCalled bool
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (*models.Professional, error) {
	if f.rec != nil && f.rec.ID == id {
		return f.rec, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*models.Professional, error) {
	if f.rec != nil && f.rec.Email == email {
		return f.rec, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateTokenHash(_ context.Context, _, tokenHash string) error {
	f.storedHash = tokenHash
	f.hashUpdated = true
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, _ string) error {
	f.deletedCalled = true
	return nil
}

type silentRecorder struct{}

func (silentRecorder) Record(context.Context, string, string, string, string, string, map[string]string) {
}

func newAuthTestService(t *testing.T, store *fakeAuthStore) (*DefaultProfessionalService, *fakeAccountRepo) {
	t.Helper()
	pw, err := bcrypt.GenerateFromPassword([]byte("Sunny123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeAccountRepo{
		rec: &models.Professional{
			ID:           "prof-1",
			Email:        "helena@example.com",
			PasswordHash: string(pw),
			TokenHash:    "stale-hash",
		},
	}
	return &DefaultProfessionalService{
		Repo:      repo,
		AuthCache: store,
		Audit:     silentRecorder{},
	}, repo
}

func TestSignOutEvictsCachedTokenHash(t *testing.T) {
	store := newFakeAuthStore()
	store.entries["stale-hash"] = "prof-1"
	svc, repo := newAuthTestService(t, store)

	if err := svc.SignOut(context.Background(), "prof-1"); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if repo.storedHash != "" || !repo.hashUpdated {
		t.Fatalf("stored hash = %q, want cleared", repo.storedHash)
	}
	if _, ok := store.entries["stale-hash"]; ok {
		t.Fatal("revoked token hash still cached; old token would keep authenticating")
	}
}

func TestAuthenticateRotationEvictsOldTokenHash(t *testing.T) {
	store := newFakeAuthStore()
	store.entries["stale-hash"] = "prof-1"
	svc, repo := newAuthTestService(t, store)

	resp, err := svc.Authenticate(context.Background(), "helena@example.com", "Sunny123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if repo.storedHash != utils.HashToken(resp.Token) {
		t.Fatalf("stored hash does not match issued token")
	}
	if _, ok := store.entries["stale-hash"]; ok {
		t.Fatal("pre-rotation token hash still cached after rotation")
	}
}

func TestDeleteAccountEvictsCachedTokenHash(t *testing.T) {
	store := newFakeAuthStore()
	store.entries["stale-hash"] = "prof-1"
	svc, repo := newAuthTestService(t, store)

	if err := svc.DeleteAccount(context.Background(), "prof-1"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if !repo.deletedCalled {
		t.Fatal("repository delete was not invoked")
	}
	if _, ok := store.entries["stale-hash"]; ok {
		t.Fatal("deleted account's token hash still cached")
	}
}
