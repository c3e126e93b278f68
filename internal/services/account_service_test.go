package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	mem "github.com/nickross327/culturecompass-app-sub000/pkg/memcache"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

func newAccountFixture(now time.Time, accounts ...*db_models.Account) (AccountServiceInterface, *fakeAccountRepo, *fakeMail, mem.ResetTokenStore, *fakeBadges) {
	repo := newFakeAccountRepo(accounts...)
	clock := &fakeClock{now: now}
	mail := newFakeMail()
	tokens := mem.NewResetTokens()
	badges := &fakeBadges{}

	svc := NewAccountService(repo, NewEntitlementService(repo, clock), badges, mail, tokens, clock)
	return svc, repo, mail, tokens, badges
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	existing := &db_models.Account{Email: "amelia@example.com"}
	existing.ID = uuid.New()

	svc, _, _, _, _ := newAccountFixture(time.Now(), existing)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Amelia",
		Email:       "amelia@example.com",
		Password:    "hunter22",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateAccountSendsWelcomeAndAttributesReferral(t *testing.T) {
	inviter := &db_models.Account{Email: "host@example.com", ReferralCode: "HOST1234"}
	inviter.ID = uuid.New()

	svc, repo, mail, _, _ := newAccountFixture(time.Now(), inviter)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName:  "Guest",
		Email:        "guest@example.com",
		Password:     "hunter22",
		ReferralCode: "HOST1234",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, _ := repo.FindByEmail(context.Background(), "guest@example.com")
	if created == nil {
		t.Fatalf("account was not stored")
	}
	if created.ReferredBy != "HOST1234" {
		t.Fatalf("referred_by = %q, want HOST1234", created.ReferredBy)
	}
	if created.PasswordHash == "hunter22" {
		t.Fatalf("password must be stored hashed")
	}
	if created.ReferralCode == "" {
		t.Fatalf("new accounts get their own referral code")
	}
	if len(mail.welcomes) != 1 || mail.welcomes[0] != "guest@example.com" {
		t.Fatalf("welcome mail not sent: %v", mail.welcomes)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := utils.HashPassword("correct-horse")
	account := &db_models.Account{Email: "amelia@example.com", PasswordHash: hash}
	account.ID = uuid.New()

	svc, _, _, _, _ := newAccountFixture(time.Now(), account)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "amelia@example.com",
		Password: "battery-staple",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStartTrialIsOneShot(t *testing.T) {
	account := &db_models.Account{Email: "amelia@example.com"}
	account.ID = uuid.New()

	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	svc, repo, _, _, _ := newAccountFixture(now, account)
	ctx := context.Background()

	resp, err := svc.StartTrial(ctx, account.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.HasPremium {
		t.Fatalf("freshly started trial should grant premium")
	}

	stored, _ := repo.FindByID(ctx, account.ID.String())
	if stored.TrialStartedAt == nil || *stored.TrialStartedAt != now.Unix() {
		t.Fatalf("trial start not persisted: %+v", stored.TrialStartedAt)
	}

	_, err = svc.StartTrial(ctx, account.ID.String())
	if !errors.Is(err, utils.ErrTrialAlreadyStarted) {
		t.Fatalf("expected ErrTrialAlreadyStarted, got %v", err)
	}

	stored.TrialUsed = true
	stored.TrialStartedAt = nil
	_, err = svc.StartTrial(ctx, account.ID.String())
	if !errors.Is(err, utils.ErrTrialAlreadyUsed) {
		t.Fatalf("expected ErrTrialAlreadyUsed, got %v", err)
	}
}

func TestCompleteShareCountsAndEvaluatesBadges(t *testing.T) {
	account := &db_models.Account{Email: "amelia@example.com"}
	account.ID = uuid.New()

	svc, _, _, _, badges := newAccountFixture(time.Now(), account)
	ctx := context.Background()

	total, err := svc.CompleteShare(ctx, account.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Fatalf("shares_completed = %d, want 1", total)
	}

	total, _ = svc.CompleteShare(ctx, account.ID.String())
	if total != 2 {
		t.Fatalf("shares_completed = %d, want 2", total)
	}

	if len(badges.evaluated) != 2 || badges.evaluated[0] != db_models.MetricSharesCompleted {
		t.Fatalf("badge evaluation not triggered: %v", badges.evaluated)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	hash, _ := utils.HashPassword("old-password")
	account := &db_models.Account{Email: "amelia@example.com", PasswordHash: hash}
	account.ID = uuid.New()

	svc, repo, mail, _, _ := newAccountFixture(time.Now(), account)
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "amelia@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, ok := mail.resets["amelia@example.com"]
	if !ok || token == "" {
		t.Fatalf("no reset token was mailed")
	}

	err := svc.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Token:       token,
		NewPassword: "new-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.FindByID(ctx, account.ID.String())
	if utils.ComparePasswords(stored.PasswordHash, "new-password") != nil {
		t.Fatalf("new password was not stored")
	}

	// Tokens are single-use.
	err = svc.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Token:       token,
		NewPassword: "another-password",
	})
	if !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken on reuse, got %v", err)
	}
}

func TestForgotPasswordHidesUnknownEmails(t *testing.T) {
	svc, _, mail, _, _ := newAccountFixture(time.Now())

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("unknown email must not error: %v", err)
	}
	if len(mail.resets) != 0 {
		t.Fatalf("no mail should be sent for unknown emails")
	}
}

func TestRequestDeletionMarksAccount(t *testing.T) {
	account := &db_models.Account{Email: "amelia@example.com"}
	account.ID = uuid.New()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	svc, repo, mail, _, _ := newAccountFixture(now, account)
	ctx := context.Background()

	if err := svc.RequestDeletion(ctx, account.ID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.FindByID(ctx, account.ID.String())
	if stored.DeletionRequestedAt == nil || *stored.DeletionRequestedAt != now.Unix() {
		t.Fatalf("deletion request not persisted")
	}
	if len(mail.deletions) != 1 {
		t.Fatalf("deletion confirmation mail not sent")
	}
}
