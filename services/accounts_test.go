package services

import (
	"errors"
	"testing"
)

func TestRegister_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	accounts := &AccountsService{DB: db}

	if _, err := accounts.Register("dup@example.com", "password123", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := accounts.Register("dup@example.com", "different", "")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second register error = %v, want ErrEmailTaken", err)
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	db := openTestDB(t)
	accounts := &AccountsService{DB: db}

	user, err := accounts.Register("  Mixed@Example.COM ", "password123", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "mixed@example.com" {
		t.Errorf("email = %q, want normalized lowercase", user.Email)
	}
	if _, err := accounts.Register("mixed@example.com", "password123", ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("normalized duplicate error = %v, want ErrEmailTaken", err)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	db := openTestDB(t)
	accounts := &AccountsService{DB: db}

	user, err := accounts.Register("hash@example.com", "password123", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}
	if !user.VerifyPassword("password123") {
		t.Error("stored hash should verify the original password")
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestFindByLogin_ConstantShape(t *testing.T) {
	db := openTestDB(t)
	accounts := &AccountsService{DB: db}
	createTestUser(t, db, "known@example.com")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "password123"},
		{"wrong password", "known@example.com", "wrong-password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := accounts.FindByLogin(tt.email, tt.password)
			if err != nil {
				t.Fatalf("FindByLogin returned error %v, want nil", err)
			}
			if user != nil {
				t.Fatal("FindByLogin returned a user, want nil")
			}
		})
	}
}

func TestFindByLogin_Success(t *testing.T) {
	db := openTestDB(t)
	accounts := &AccountsService{DB: db}
	created := createTestUser(t, db, "login@example.com")

	user, err := accounts.FindByLogin("login@example.com", "password123")
	if err != nil {
		t.Fatalf("FindByLogin: %v", err)
	}
	if user == nil || user.ID != created.ID {
		t.Fatal("FindByLogin should return the matching user")
	}
}
