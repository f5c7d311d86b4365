package service

import (
	"context"
	"testing"
	"time"

	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"github.com/xela07ax/mrfashion-backend/internal/infra/auth"
)

func TestHasRole(t *testing.T) {
	repo := &mockUserRepo{users: []domain.User{
		{ID: "1", Email: "seller@shop.io", Role: domain.RoleSeller},
		{ID: "2", Email: "buyer@shop.io"},
	}}
	svc := NewAuthService(repo, auth.NewSigner("secret", time.Hour))

	cases := []struct {
		name  string
		email string
		want  bool
	}{
		{"seller matches", "seller@shop.io", true},
		{"buyer without role denied", "buyer@shop.io", false},
		// Отсутствие записи пользователя — deny-by-default
		{"unknown user denied", "ghost@shop.io", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := svc.HasRole(context.Background(), c.email, domain.RoleSeller)
			if err != nil {
				t.Fatalf("HasRole() error: %v", err)
			}
			if got != c.want {
				t.Errorf("HasRole(%q) = %v, want %v", c.email, got, c.want)
			}
		})
	}
}

func TestIssueToken_NoSecret(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, auth.NewSigner("", time.Hour))

	if _, err := svc.IssueToken(context.Background(), &domain.TokenRequest{Email: "a@b.c"}); err == nil {
		t.Fatal("IssueToken() expected error without a signing secret")
	}
}

func TestIssueToken_RoundtripEmail(t *testing.T) {
	signer := auth.NewSigner("secret", time.Hour)
	svc := NewAuthService(&mockUserRepo{}, signer)

	resp, err := svc.IssueToken(context.Background(), &domain.TokenRequest{Email: "a@b.c"})
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	claims, err := auth.NewVerifier("secret").VerifyToken(resp.Token)
	if err != nil {
		t.Fatalf("VerifyToken() error: %v", err)
	}
	if claims.Email != "a@b.c" {
		t.Errorf("claims.Email = %q, want a@b.c", claims.Email)
	}
}
