package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"temanikan/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})
	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name        string
		user        models.User
		mockExpect  func(sqlmock.Sqlmock)
		wantID      int
		wantErrIs   error
		errContains string
	}{
		{
			name: "success lowercases email",
			user: models.User{Name: "Rina", Email: " Rina@Mail.com ", Role: models.RoleMember, PasswordHash: "h1"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Rina", "rina@mail.com", "member", nil, "h1").
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "duplicate email",
			user: models.User{Name: "Rina", Email: "rina@mail.com", Role: models.RoleMember, PasswordHash: "h1"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))
			},
			wantErrIs: ErrEmailTaken,
		},
		{
			name: "exec error",
			user: models.User{Name: "Budi", Email: "budi@mail.com", Role: models.RoleMember, PasswordHash: "h2"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnError(errors.New("db exec failed"))
			},
			errContains: "insert user",
		},
		{
			name: "last insert id error",
			user: models.User{Name: "Sari", Email: "sari@mail.com", Role: models.RoleMember, PasswordHash: "h3"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			errContains: "get last insert id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockExpect(mock)

			id, err := NewUserRepository(db).Create(context.Background(), tt.user)

			if tt.wantErrIs != nil || tt.errContains != "" {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Fatalf("expected %v, got %v", tt.wantErrIs, err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContains, err.Error())
				}
				if id != 0 {
					t.Fatalf("expected id=0 on error, got %d", id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	cols := []string{"id", "name", "email", "role", "avatar", "password_hash"}

	tests := []struct {
		name       string
		email      string
		mockExpect func(sqlmock.Sqlmock)
		wantUser   *models.User
		wantErr    bool
	}{
		{
			name:  "found",
			email: "Rina@mail.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("rina@mail.com").
					WillReturnRows(sqlmock.NewRows(cols).AddRow(7, "Rina", "rina@mail.com", "member", nil, "h1"))
			},
			wantUser: &models.User{ID: 7, Name: "Rina", Email: "rina@mail.com", Role: models.RoleMember, PasswordHash: "h1"},
		},
		{
			name:  "not found",
			email: "missing@mail.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("missing@mail.com").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name:  "query error",
			email: "budi@mail.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockExpect(mock)

			u, err := NewUserRepository(db).GetByEmail(context.Background(), tt.email)

			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "select user") {
					t.Fatalf("expected select user error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil {
				t.Fatalf("expected user, got nil")
			}
			if u.ID != tt.wantUser.ID || u.Email != tt.wantUser.Email || u.Role != tt.wantUser.Role || u.PasswordHash != tt.wantUser.PasswordHash {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
			if u.Avatar != nil {
				t.Fatalf("expected nil avatar, got %q", *u.Avatar)
			}
		})
	}
}
