package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/dailydiet/internal/auth"
	"github.com/mmynk/dailydiet/internal/calculator"
	"github.com/mmynk/dailydiet/internal/models"
	"github.com/mmynk/dailydiet/internal/storage"
	"github.com/mmynk/dailydiet/internal/storage/sqlite"
	"github.com/mmynk/dailydiet/internal/storage/sqlstore"
)

// setupTestStore creates a SQLite store in a temp file.
func setupTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "dailydiet-service-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	store, err := sqlite.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to create store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.RemoveAll(tmpDir)
	})
	return store
}

func newUser(t *testing.T, store *sqlstore.Store, email string) string {
	t.Helper()
	user := models.NewUser(email, "Test", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user.ID
}

var breakfast = models.MealFields{
	Name:        "Pão com ovo",
	Description: "Pão francês com ovo frito",
	MealDate:    time.Date(2023, 11, 1, 8, 10, 0, 0, time.UTC),
	InDiet:      true,
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	store := setupTestStore(t)
	jwtManager := auth.NewJWTManager("service-test-secret", auth.DefaultTokenDuration)
	svc := NewUserService(auth.NewPasswordAuthenticator(store), jwtManager, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Alice", "alice@example.com", "123456")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	subject, err := jwtManager.Validate(token)
	if err != nil {
		t.Fatalf("registration token invalid: %v", err)
	}
	if subject != user.ID {
		t.Errorf("token subject: expected %s, got %s", user.ID, subject)
	}

	if _, _, err := svc.Register(ctx, "Alice Again", "alice@example.com", "abcdef"); !errors.Is(err, auth.ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}

	loginToken, err := svc.Login(ctx, "alice@example.com", "123456")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if subject, _ := jwtManager.Validate(loginToken); subject != user.ID {
		t.Errorf("login token subject: expected %s, got %s", user.ID, subject)
	}

	if _, err := svc.Login(ctx, "alice@example.com", "wrong-password"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	me, err := svc.CurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if me.Name != "Alice" {
		t.Errorf("name: expected 'Alice', got '%s'", me.Name)
	}
}

func TestMealService_CreateGetList(t *testing.T) {
	store := setupTestStore(t)
	svc := NewMealService(store)
	ctx := context.Background()
	owner := newUser(t, store, "owner@example.com")

	meal, err := svc.Create(ctx, owner, breakfast)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if meal.ID == "" {
		t.Error("expected non-empty meal ID")
	}
	if meal.UserID != owner {
		t.Errorf("owner: expected %s, got %s", owner, meal.UserID)
	}

	got, err := svc.Get(ctx, owner, meal.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != breakfast.Name {
		t.Errorf("name: expected '%s', got '%s'", breakfast.Name, got.Name)
	}

	meals, err := svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(meals) != 1 {
		t.Errorf("expected 1 meal, got %d", len(meals))
	}
}

func TestMealService_Ownership(t *testing.T) {
	store := setupTestStore(t)
	svc := NewMealService(store)
	ctx := context.Background()
	alice := newUser(t, store, "alice@example.com")
	bob := newUser(t, store, "bob@example.com")

	meal, err := svc.Create(ctx, alice, breakfast)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Get(ctx, bob, meal.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}

	name := "Hijacked"
	if _, err := svc.Update(ctx, bob, meal.ID, models.MealPatch{Name: &name}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, bob, meal.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}

	summary, err := svc.Summary(ctx, bob)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("bob sees %d meals", summary.Total)
	}
}

func TestMealService_UpdateMerge(t *testing.T) {
	store := setupTestStore(t)
	svc := NewMealService(store)
	ctx := context.Background()
	owner := newUser(t, store, "owner@example.com")

	meal, err := svc.Create(ctx, owner, breakfast)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	description := "Pão francês com ovo frito e manteiga"
	updated, err := svc.Update(ctx, owner, meal.ID, models.MealPatch{Description: &description})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Description != description {
		t.Errorf("description: expected '%s', got '%s'", description, updated.Description)
	}
	if updated.Name != meal.Name {
		t.Errorf("name changed: '%s'", updated.Name)
	}
	if !updated.MealDate.Equal(meal.MealDate) {
		t.Errorf("meal_date changed: %v", updated.MealDate)
	}
	if updated.InDiet != meal.InDiet {
		t.Errorf("in_diet changed: %v", updated.InDiet)
	}
}

func TestMealService_UpdateEmptyPatch(t *testing.T) {
	store := setupTestStore(t)
	svc := NewMealService(store)
	owner := newUser(t, store, "owner@example.com")

	_, err := svc.Update(context.Background(), owner, "any-id", models.MealPatch{})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Messages) != 1 {
		t.Errorf("expected 1 message, got %v", validationErr.Messages)
	}
}

func TestMealService_DeleteThenGet(t *testing.T) {
	store := setupTestStore(t)
	svc := NewMealService(store)
	ctx := context.Background()
	owner := newUser(t, store, "owner@example.com")

	meal, err := svc.Create(ctx, owner, breakfast)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, owner, meal.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, owner, meal.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get after delete: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, owner, meal.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second Delete: expected ErrNotFound, got %v", err)
	}
}

func TestMealService_Summary(t *testing.T) {
	store := setupTestStore(t)
	svc := NewMealService(store)
	ctx := context.Background()
	owner := newUser(t, store, "owner@example.com")

	// Insertion order drives the streak, not meal_date.
	base := time.Date(2023, 11, 10, 12, 0, 0, 0, time.UTC)
	for i, inDiet := range []bool{true, true, false, true} {
		fields := breakfast
		fields.InDiet = inDiet
		fields.MealDate = base.Add(-time.Duration(i) * 24 * time.Hour)
		if _, err := svc.Create(ctx, owner, fields); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	summary, err := svc.Summary(ctx, owner)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	want := calculator.Summary{Total: 4, OnDietCount: 3, OffDietCount: 1, LongestOnDietStreak: 2}
	if summary != want {
		t.Errorf("Summary = %+v, want %+v", summary, want)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("name is required", "invalid email format")
	want := "validation failed: name is required; invalid email format"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
