package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/melodia/catalog-api/internal/core/domain"
	"github.com/melodia/catalog-api/internal/core/ports"
)

type stubArtistRepo struct {
	seq     int
	artists map[string]*domain.Artist
}

func newStubArtistRepo() *stubArtistRepo {
	return &stubArtistRepo{artists: make(map[string]*domain.Artist)}
}

func (r *stubArtistRepo) Create(_ context.Context, artist *domain.Artist) (*domain.Artist, error) {
	r.seq++
	copy := *artist
	copy.ID = fmt.Sprintf("a%d", r.seq)
	r.artists[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubArtistRepo) FindByID(_ context.Context, id string) (*domain.Artist, error) {
	a, ok := r.artists[id]
	if !ok {
		return nil, domain.ErrArtistNotFound
	}
	out := *a
	return &out, nil
}

func (r *stubArtistRepo) FindAll(_ context.Context) ([]domain.Artist, error) {
	var out []domain.Artist
	for _, a := range r.artists {
		out = append(out, *a)
	}
	return out, nil
}

func seedUserAndArtist(t *testing.T, users *stubUserRepo, artists *stubArtistRepo) (userID, artistID string) {
	t.Helper()
	u, err := users.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "x", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	a, err := artists.Create(context.Background(), &domain.Artist{Name: "Daft Punk", Genre: "Electronic"})
	if err != nil {
		t.Fatalf("seed artist: %v", err)
	}
	return u.ID, a.ID
}

func TestUserService_AddFavorite_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	artists := newStubArtistRepo()
	svc := NewUserService(users, artists, testLogger())
	userID, artistID := seedUserAndArtist(t, users, artists)

	if _, err := svc.AddFavorite(context.Background(), userID, artistID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	user, err := svc.AddFavorite(context.Background(), userID, artistID)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(user.Favorites) != 1 {
		t.Fatalf("expected exactly one edge, got %d", len(user.Favorites))
	}
	if user.Favorites[0].ID != artistID {
		t.Fatalf("unexpected favorite: %+v", user.Favorites[0])
	}
}

func TestUserService_RemoveFavorite_NeverAddedIsNoop(t *testing.T) {
	users := newStubUserRepo()
	artists := newStubArtistRepo()
	svc := NewUserService(users, artists, testLogger())
	userID, artistID := seedUserAndArtist(t, users, artists)

	user, err := svc.RemoveFavorite(context.Background(), userID, artistID)
	if err != nil {
		t.Fatalf("remove of never-added pair should succeed, got %v", err)
	}
	if len(user.Favorites) != 0 {
		t.Fatalf("expected empty favorites, got %d", len(user.Favorites))
	}
}

func TestUserService_AddRemoveRoundTrip(t *testing.T) {
	users := newStubUserRepo()
	artists := newStubArtistRepo()
	svc := NewUserService(users, artists, testLogger())
	userID, artistID := seedUserAndArtist(t, users, artists)

	user, err := svc.AddFavorite(context.Background(), userID, artistID)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(user.Favorites) != 1 {
		t.Fatalf("expected one favorite after add, got %d", len(user.Favorites))
	}

	user, err = svc.RemoveFavorite(context.Background(), userID, artistID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(user.Favorites) != 0 {
		t.Fatalf("expected no favorites after remove, got %d", len(user.Favorites))
	}
}

func TestUserService_Favorites_MissingArtist(t *testing.T) {
	users := newStubUserRepo()
	artists := newStubArtistRepo()
	svc := NewUserService(users, artists, testLogger())
	userID, artistID := seedUserAndArtist(t, users, artists)

	if _, err := svc.AddFavorite(context.Background(), userID, artistID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := svc.AddFavorite(context.Background(), userID, "missing"); !errors.Is(err, domain.ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound on add, got %v", err)
	}
	if _, err := svc.RemoveFavorite(context.Background(), userID, "missing"); !errors.Is(err, domain.ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound on remove, got %v", err)
	}

	user, err := svc.Profile(context.Background(), userID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if len(user.Favorites) != 1 {
		t.Fatalf("favorite set changed by failed operations: %d edges", len(user.Favorites))
	}
}

func TestUserService_UpdateProfile_HashesPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubArtistRepo(), testLogger())

	created, err := users.Create(context.Background(), &domain.User{Username: "bob", PasswordHash: "old", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{
		Username: "robert",
		Password: "newpass",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "robert" {
		t.Fatalf("username not updated: %q", updated.Username)
	}
	if updated.PasswordHash == "newpass" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")) != nil {
		t.Fatalf("stored hash does not match new password")
	}
}

func TestUserService_UpdateProfile_DuplicateUsername(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubArtistRepo(), testLogger())

	_, _ = users.Create(context.Background(), &domain.User{Username: "taken", Role: domain.RoleUser})
	created, _ := users.Create(context.Background(), &domain.User{Username: "bob", Role: domain.RoleUser})

	if _, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{Username: "taken"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubArtistRepo(), testLogger())

	created, _ := users.Create(context.Background(), &domain.User{Username: "gone", Role: domain.RoleUser})

	deleted, err := svc.DeleteUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.Username != "gone" {
		t.Fatalf("unexpected deleted record: %+v", deleted)
	}

	if _, err := svc.DeleteUser(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
