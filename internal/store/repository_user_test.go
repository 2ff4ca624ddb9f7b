package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"user_id", "email", "hashed_password", "session_token", "reset_token", "created_at"}).
		AddRow(user.UserID, user.Email, user.HashedPassword, user.SessionToken, user.ResetToken, user.CreatedAt)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	want := models.User{
		UserID:         1,
		Email:          "a@x.com",
		HashedPassword: []byte("bcrypt-hash"),
		CreatedAt:      time.Now(),
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(want.Email, want.HashedPassword).
		WillReturnRows(userRows(want))

	created, err := repo.Create(ctx, want.Email, want.HashedPassword)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != want.Email {
		t.Errorf("expected email %s, got %s", want.Email, created.Email)
	}
	if created.SessionToken != nil || created.ResetToken != nil {
		t.Error("fresh user should hold no tokens")
	}
}

func TestCreate_UniqueViolation_Postgres(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), "a@x.com", []byte("hash"))
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestCreate_UniqueViolation_SQLite(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.Create(context.Background(), "a@x.com", []byte("hash"))
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), "a@x.com", []byte("hash"))
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
	if errors.Is(err, ErrEmailAlreadyRegistered) || errors.Is(err, ErrUserNotFound) {
		t.Fatal("infrastructure failure must not be reported as a domain error")
	}
}

func TestFindByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	token := "11111111-2222-3333-4444-555555555555"
	want := models.User{
		UserID:         7,
		Email:          "b@x.com",
		HashedPassword: []byte("hash"),
		SessionToken:   &token,
		CreatedAt:      time.Now(),
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(want.Email).
		WillReturnRows(userRows(want))

	found, err := repo.FindByEmail(context.Background(), want.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.SessionToken == nil || *found.SessionToken != token {
		t.Errorf("expected session token %q, got %v", token, found.SessionToken)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindBySessionToken_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("unknown-token").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindBySessionToken(context.Background(), "unknown-token")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindByResetToken_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	reset := "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	want := models.User{
		UserID:         3,
		Email:          "c@x.com",
		HashedPassword: []byte("hash"),
		ResetToken:     &reset,
		CreatedAt:      time.Now(),
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(reset).
		WillReturnRows(userRows(want))

	found, err := repo.FindByResetToken(context.Background(), reset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 3 {
		t.Errorf("expected UserID=3, got %d", found.UserID)
	}
}

func TestUpdate_SetSessionToken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 7, models.UserUpdate{
		SessionToken: models.SetString("fresh-token"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdate_ClearBothTokensAndPassword(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 7, models.UserUpdate{
		HashedPassword: []byte("new-hash"),
		SessionToken:   models.SetNull(),
		ResetToken:     models.SetNull(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 404, models.UserUpdate{
		SessionToken: models.SetNull(),
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdate_EmptyUpdate(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	err := repo.Update(context.Background(), 7, models.UserUpdate{})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestUpdate_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnError(errors.New("connection reset"))

	err := repo.Update(context.Background(), 7, models.UserUpdate{
		SessionToken: models.SetString("t"),
	})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want ErrorClassification
	}{
		{"connection failure is retryable", pgerrcode.ConnectionFailure, Retryable},
		{"deadlock is retryable", pgerrcode.DeadlockDetected, Retryable},
		{"unique violation is not retryable", pgerrcode.UniqueViolation, NonRetryable},
		{"syntax error is not retryable", pgerrcode.SyntaxError, NonRetryable},
	}

	classifier := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(pgError(tt.code))
			if got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	if classifier.Classify(busy) != Retryable {
		t.Error("SQLITE_BUSY should be retryable")
	}

	constraint := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	if classifier.Classify(constraint) != NonRetryable {
		t.Error("constraint violation should not be retryable")
	}

	if classifier.Classify(errors.New("plain")) != NonRetryable {
		t.Error("unknown errors should not be retryable")
	}
}

func TestIsUniqueViolation_IgnoresOtherCodes(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	if repo.isUniqueViolation(pgError(pgerrcode.NotNullViolation)) {
		t.Error("not-null violation must not map to ErrEmailAlreadyRegistered")
	}
	if repo.isUniqueViolation(errors.New("random")) {
		t.Error("arbitrary errors must not map to ErrEmailAlreadyRegistered")
	}
	if !strings.HasPrefix(pgerrcode.UniqueViolation, "23") {
		t.Fatal("sanity: unique violation should be an integrity constraint code")
	}
}
