package service

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/auth"
	"github.com/olegiv/groeiboek/internal/model"
)

func TestRegister_DuplicateEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db, testIssuer(), testLockout())

	if _, err := svc.Register(ctx, "user@example.com", "User", "een-goed-wachtwoord"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "USER@example.com", "User", "een-goed-wachtwoord")
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("got %v, want conflict", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	svc := NewAuthService(db, testIssuer(), testLockout())
	_, err := svc.Register(context.Background(), "user@example.com", "User", "kort")
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestLogin_Roundtrip(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	issuer := testIssuer()
	svc := NewAuthService(db, issuer, testLockout())

	registered, err := svc.Register(ctx, "user@example.com", "User", "een-goed-wachtwoord")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, pair, err := svc.Login(ctx, "user@example.com", "een-goed-wachtwoord")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("user = %d, want %d", user.ID, registered.ID)
	}

	gotID, gotEmail, err := issuer.VerifyAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if gotID != user.ID || gotEmail != "user@example.com" {
		t.Errorf("token claims = (%d, %q)", gotID, gotEmail)
	}
	if pair.RefreshToken == "" {
		t.Error("no refresh token issued")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db, testIssuer(), testLockout())

	if _, err := svc.Register(ctx, "user@example.com", "User", "een-goed-wachtwoord"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, err := svc.Login(ctx, "user@example.com", "fout-wachtwoord")
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestLogin_LocksAfterRepeatedFailures(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	lockout := auth.NewLockout(auth.LockoutConfig{MaxFailedAttempts: 3})
	svc := NewAuthService(db, testIssuer(), lockout)

	if _, err := svc.Register(ctx, "user@example.com", "User", "een-goed-wachtwoord"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(ctx, "user@example.com", "fout"); !errors.Is(err, apperr.ErrInvalid) {
			t.Fatalf("attempt %d: got %v, want validation error", i, err)
		}
	}
	// Even the right password is refused while locked.
	_, _, err := svc.Login(ctx, "user@example.com", "een-goed-wachtwoord")
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("locked login: got %v, want conflict", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db, testIssuer(), testLockout())

	if _, err := svc.Register(ctx, "user@example.com", "User", "een-goed-wachtwoord"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, pair, err := svc.Login(ctx, "user@example.com", "een-goed-wachtwoord")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	next, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The old token is revoked by the rotation.
	if _, err := svc.Refresh(ctx, pair.RefreshToken); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("reusing rotated token: got %v, want conflict", err)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db, testIssuer(), testLockout())

	if _, err := svc.Register(ctx, "user@example.com", "User", "een-goed-wachtwoord"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, pair, err := svc.Login(ctx, "user@example.com", "een-goed-wachtwoord")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Refresh(ctx, pair.RefreshToken); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("got %v, want conflict", err)
	}
}

func TestPasswordReset_Flow(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db, testIssuer(), testLockout())

	if _, err := svc.Register(ctx, "user@example.com", "User", "een-goed-wachtwoord"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := svc.RequestPasswordReset(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	if token == "" {
		t.Fatal("no reset token for a known email")
	}

	if err := svc.ResetPassword(ctx, token, "nieuw-wachtwoord"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, _, err := svc.Login(ctx, "user@example.com", "een-goed-wachtwoord"); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("old password: got %v, want validation error", err)
	}
	if _, _, err := svc.Login(ctx, "user@example.com", "nieuw-wachtwoord"); err != nil {
		t.Errorf("new password: %v", err)
	}

	// Tokens redeem once.
	if err := svc.ResetPassword(ctx, token, "nog-een-wachtwoord"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("token reuse: got %v, want conflict", err)
	}
}

func TestPasswordReset_UnknownEmailSilent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	svc := NewAuthService(db, testIssuer(), testLockout())
	token, err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	if token != "" {
		t.Error("unknown email should not yield a token")
	}
}

func TestSetUserStatus_DeactivateRevokesTokens(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewAuthService(db, testIssuer(), testLockout())

	user, err := svc.Register(ctx, "user@example.com", "User", "een-goed-wachtwoord")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, pair, err := svc.Login(ctx, "user@example.com", "een-goed-wachtwoord")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.SetUserStatus(ctx, user.ID, model.UserInactive); err != nil {
		t.Fatalf("SetUserStatus: %v", err)
	}
	if _, err := svc.Refresh(ctx, pair.RefreshToken); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("got %v, want conflict", err)
	}
	if _, _, err := svc.Login(ctx, "user@example.com", "een-goed-wachtwoord"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("inactive login: got %v, want conflict", err)
	}
}
