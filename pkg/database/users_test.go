package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCreateAndValidateUser(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()
	username := "gardener-" + uuid.New().String()[:8]

	user, err := dm.CreateUser(ctx, username, "correct horse battery staple")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("Expected user ID to be set")
	}

	validated, err := dm.ValidateUser(ctx, username, "correct horse battery staple")
	if err != nil {
		t.Fatalf("Failed to validate user: %v", err)
	}
	if validated.ID != user.ID {
		t.Errorf("Expected user ID %s, got %s", user.ID, validated.ID)
	}

	if _, err := dm.ValidateUser(ctx, username, "wrong password"); err == nil {
		t.Error("Expected error for wrong password")
	}

	if _, err := dm.ValidateUser(ctx, "no-such-user", "whatever"); err == nil {
		t.Error("Expected error for unknown user")
	}
}

func TestCreateUser_EmptyCredentials(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	if _, err := dm.CreateUser(context.Background(), "", "secret"); err == nil {
		t.Error("Expected error for empty username")
	}
	if _, err := dm.CreateUser(context.Background(), "someone", ""); err == nil {
		t.Error("Expected error for empty password")
	}
}

func TestCreateUser_LongPassword(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()
	username := "gardener-" + uuid.New().String()[:8]

	// Longer than bcrypt's 72-byte limit, handled by SHA-256 pre-hashing
	long := make([]byte, 200)
	for i := range long {
		long[i] = byte('a' + i%26)
	}

	if _, err := dm.CreateUser(ctx, username, string(long)); err != nil {
		t.Fatalf("Failed to create user with long password: %v", err)
	}

	if _, err := dm.ValidateUser(ctx, username, string(long)); err != nil {
		t.Fatalf("Failed to validate long password: %v", err)
	}
}
