package util

import (
	"testing"
	"time"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func testUser() *model.User {
	u := &model.User{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Role:     model.RoleEmployee,
	}
	u.ID = 42
	return u
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateJWT() returned empty token")
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("Claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "jdoe" {
		t.Errorf("Claims.Username = %q, want %q", claims.Username, "jdoe")
	}
	if claims.Role != model.RoleEmployee {
		t.Errorf("Claims.Role = %q, want %q", claims.Role, model.RoleEmployee)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ParseJWT(token, "another-secret-that-is-long-enough!!"); err == nil {
		t.Error("ParseJWT() with wrong secret should fail")
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Error("ParseJWT() with expired token should fail")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not.a.token", testSecret); err == nil {
		t.Error("ParseJWT() with garbage input should fail")
	}
}
