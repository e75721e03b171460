package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

func errDuplicateUsername() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
}

func TestRegisterStoresBcryptHash(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users)

	u, err := svc.Register(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	stored := users.users[u.ID]
	if stored.PasswordHash == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterFieldErrors(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "", "")
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}
	if len(fe["username"]) == 0 {
		t.Error("missing username error")
	}
	if len(fe["password"]) == 0 {
		t.Error("missing password error")
	}

	_, err = svc.Register(context.Background(), "alice", "")
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}
	if _, ok := fe["username"]; ok {
		t.Error("username flagged although present")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register(context.Background(), "alice", "pw2")
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}
	if len(fe["username"]) == 0 {
		t.Fatal("duplicate username not reported on the username field")
	}
}

func TestLogin(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	registered, err := svc.Register(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatal(err)
	}

	u, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != registered.ID {
		t.Errorf("user id = %d, want %d", u.ID, registered.ID)
	}

	// A wrong password is indistinguishable from an unknown user.
	if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("wrong password: err = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.Login(context.Background(), "nobody", "s3cret"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: err = %v, want ErrUserNotFound", err)
	}
}
