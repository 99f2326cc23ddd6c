package services

import (
	"testing"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestValidatePasswordPolicy(t *testing.T) {
	bad := []string{
		"short1A",
		"alllowercase1",
		"ALLUPPERCASE1",
		"NoDigitsHere",
	}
	for _, pw := range bad {
		if err := ValidatePassword(pw); err == nil {
			t.Fatalf("password %q should be rejected", pw)
		}
	}
	if err := ValidatePassword("Sensible1Password"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
}

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	svc := AuthService{
		Users:     repositories.UserRepo{DB: db},
		Limiter:   NewLoginLimiter(),
		JWTSecret: []byte("test-secret"),
		Now:       func() time.Time { return time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC) },
	}
	return svc, mock, func() { db.Close() }
}

func userRows(t *testing.T, id int64, email, mobile, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return sqlmock.NewRows([]string{
		"id", "name", "email", "mobile", "password_hash", "role", "signup_method",
		"last_login_at", "last_login_device", "created_at",
	}).AddRow(id, "Asha Patil", email, mobile, string(hash), "user", "manual",
		nil, "", time.Now())
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs("asha@example.com", "9876543210").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Register(RegisterPayload{
		Name:     "Asha Patil",
		Email:    "Asha@Example.com",
		Mobile:   "9876543210",
		Password: "Sensible1Password",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(9, 1))

	u, err := svc.Register(RegisterPayload{
		Name:     "  Asha   Patil ",
		Email:    "Asha@Example.com",
		Mobile:   "9876543210",
		Password: "Sensible1Password",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.ID != 9 {
		t.Fatalf("user id: got %d, want 9", u.ID)
	}
	if u.Email != "asha@example.com" {
		t.Fatalf("email should be lowercased, got %q", u.Email)
	}
	if u.Name != "Asha Patil" {
		t.Fatalf("name should be whitespace-normalized, got %q", u.Name)
	}
	if u.Role != "user" || u.SignupMethod != "manual" {
		t.Fatalf("unexpected role/signup method: %q/%q", u.Role, u.SignupMethod)
	}
	if u.PasswordHash == "Sensible1Password" {
		t.Fatalf("password must not be stored in the clear")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestLoginIssues24HourToken(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	// Token verification checks exp against the wall clock, so the service
	// clock must not sit in the past here.
	now := time.Now()
	svc.Now = func() time.Time { return now }

	mock.ExpectQuery("SELECT(.+)FROM users WHERE email = \\? OR mobile = \\?").
		WithArgs("asha@example.com", "asha@example.com").
		WillReturnRows(userRows(t, 9, "asha@example.com", "9876543210", "Sensible1Password"))
	mock.ExpectExec("UPDATE users SET last_login_at").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, token, err := svc.Login(LoginPayload{
		Identifier: "Asha@Example.com",
		Password:   "Sensible1Password",
	}, "Desktop / Chrome")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if u.ID != 9 {
		t.Fatalf("user id: got %d, want 9", u.ID)
	}
	if u.LastLoginDevice != "Desktop / Chrome" {
		t.Fatalf("device descriptor not recorded: %q", u.LastLoginDevice)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["uid"].(float64) != 9 {
		t.Fatalf("uid claim: got %v", claims["uid"])
	}
	exp := int64(claims["exp"].(float64))
	want := svc.Now().Add(24 * time.Hour).Unix()
	if exp != want {
		t.Fatalf("exp claim: got %d, want %d", exp, want)
	}
}

func TestLoginWrongPasswordCountsTowardLockout(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT(.+)FROM users WHERE email = \\? OR mobile = \\?").
			WillReturnRows(userRows(t, 9, "asha@example.com", "9876543210", "Sensible1Password"))
	}

	for i := 0; i < 5; i++ {
		_, _, err := svc.Login(LoginPayload{Identifier: "asha@example.com", Password: "wrongPass1"}, "Desktop / Chrome")
		if !domain.IsValidation(err) {
			t.Fatalf("attempt %d: expected ValidationError, got %v", i+1, err)
		}
	}

	// Sixth attempt is refused before touching the store.
	_, _, err := svc.Login(LoginPayload{Identifier: "asha@example.com", Password: "Sensible1Password"}, "Desktop / Chrome")
	if !domain.IsForbidden(err) {
		t.Fatalf("expected ForbiddenError after lockout, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestDescribeDevice(t *testing.T) {
	cases := []struct {
		ua, want string
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1", "Mobile / Safari"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36", "Desktop / Chrome"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:122.0) Gecko/20100101 Firefox/122.0", "Desktop / Firefox"},
		{"", "Unknown"},
	}
	for _, tc := range cases {
		if got := DescribeDevice(tc.ua); got != tc.want {
			t.Fatalf("DescribeDevice(%q): got %q, want %q", tc.ua, got, tc.want)
		}
	}
}
