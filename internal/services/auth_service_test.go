package services

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/streamline-live/streamline-backend/internal/models"
)

func TestLoginIssuesTokenWithStoredRole(t *testing.T) {
	db := openTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)

	cases := []struct {
		username string
		role     string
	}{
		{"siti", models.RoleHost},
		{"admin", models.RoleAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.username, func(t *testing.T) {
			user := createUser(t, db, tc.username, "password123", tc.role)

			resp, err := svc.Login(tc.username, "password123")
			if err != nil {
				t.Fatalf("login failed: %v", err)
			}
			if resp.User.ID != user.ID {
				t.Errorf("user id = %s, want %s", resp.User.ID, user.ID)
			}
			if resp.User.Role != tc.role {
				t.Errorf("response role = %q, want %q", resp.User.Role, tc.role)
			}

			token, err := jwt.Parse(resp.Token, func(tok *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil {
				t.Fatalf("token does not verify: %v", err)
			}
			claims := token.Claims.(jwt.MapClaims)
			if claims["role"] != tc.role {
				t.Errorf("token role claim = %v, want %q", claims["role"], tc.role)
			}
			if claims["userId"] != user.ID.String() {
				t.Errorf("token userId claim = %v, want %s", claims["userId"], user.ID)
			}
			if claims["username"] != tc.username {
				t.Errorf("token username claim = %v, want %q", claims["username"], tc.username)
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	createUser(t, db, "siti", "password123", models.RoleHost)

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Login("siti", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := svc.Login("nobody", "password123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestGetCurrentUser(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	user := createUser(t, db, "rina", "password123", models.RoleHost)

	got, err := svc.GetCurrentUser(user.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if got.Username != "rina" || got.Role != models.RoleHost {
		t.Errorf("profile = %+v, want rina/HOST", got)
	}

	if _, err := svc.GetCurrentUser(uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
