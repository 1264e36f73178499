package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/ptr"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	client := &domain.Client{
		FirstName:      "María",
		LastName:       "García",
		Email:          "maria@example.com",
		Phone:          "5512345678",
		CountryCode:    "+52",
		Country:        ptr.Ptr("México"),
		MembershipType: domain.DefaultMembershipType,
		Status:         domain.ClientStatusActive,
	}

	mock.ExpectQuery(`INSERT INTO clients \(first_name,last_name,email`).
		WithArgs(
			"María", "García", "maria@example.com", "5512345678", "+52",
			nil, nil, nil, "México",
			domain.DefaultMembershipType, domain.ClientStatusActive, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	created, err := repo.Create(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, domain.ClientID("7"), created.ID)
	assert.Equal(t, "María García", created.DisplayName())
	// входной объект не меняется
	assert.Empty(t, client.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_EmailTaken(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO clients`).
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Message: "duplicate key value"})

	_, err := repo.Create(context.Background(), &domain.Client{Email: "maria@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO clients`).WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Client{Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(clientColumns).
		AddRow(int64(1), "María", "García", "maria@example.com", "5512345678", "+52",
			birth, "Instagram", nil, "México", "regular", "active", nil).
		AddRow(int64(2), "Carlos", "Rodríguez", "carlos@example.com", "5587654321", nil,
			nil, nil, "1", nil, nil, nil, "https://img.example.com/c.png")

	mock.ExpectQuery(`SELECT id, first_name, .* FROM clients ORDER BY id ASC`).WillReturnRows(rows)

	clients, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, domain.ClientID("1"), clients[0].ID)
	require.NotNil(t, clients[0].BirthDate)
	assert.Equal(t, "1990-05-17", *clients[0].BirthDate)
	assert.Equal(t, "Instagram", *clients[0].Origin)
	assert.Nil(t, clients[0].RelatedClient)

	assert.Equal(t, domain.ClientID("2"), clients[1].ID)
	assert.Empty(t, clients[1].CountryCode)
	assert.Nil(t, clients[1].BirthDate)
	assert.Equal(t, "1", *clients[1].RelatedClient)
	assert.Equal(t, "https://img.example.com/c.png", *clients[1].Image)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .* FROM clients`).WillReturnError(errors.New("timeout"))

	_, err := repo.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .* FROM clients WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(int64(2), "Carlos", "Rodríguez", "carlos@example.com", "5587654321", "+52",
				nil, nil, nil, nil, "regular", "active", nil))

	client, err := repo.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Rodríguez", client.DisplayName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .* FROM clients WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(clientColumns))

	_, err := repo.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, ErrClientNotFound)

	// нечисловой ID не доходит до базы
	_, err = repo.GetByID(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
