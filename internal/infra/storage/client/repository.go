package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/psqlbuilder"
)

const (
	tableClients = "clients"

	// unique_violation
	pqUniqueViolation = "23505"
)

var clientColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"country_code",
	"birth_date",
	"origin",
	"related_client",
	"country",
	"membership_type",
	"status",
	"image",
}

// Repository репозиторий справочника клиентов салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает клиента и возвращает его с присвоенным ID
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	query, args, err := psqlbuilder.Insert(tableClients).
		Columns(
			"first_name",
			"last_name",
			"email",
			"phone",
			"country_code",
			"birth_date",
			"origin",
			"related_client",
			"country",
			"membership_type",
			"status",
			"image",
		).
		Values(
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.CountryCode,
			c.BirthDate,
			c.Origin,
			c.RelatedClient,
			c.Country,
			c.MembershipType,
			c.Status,
			c.Image,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, fmt.Errorf("%w: Create - email=%s", ErrEmailTaken, c.Email)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created := *c
	created.ID = domain.ClientID(strconv.FormatInt(id, 10))
	return &created, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id domain.ClientID) (*domain.Client, error) {
	numericID, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		// в таблице только числовые ID
		return nil, ErrClientNotFound
	}

	query, args, err := psqlbuilder.Select(clientColumns...).
		From(tableClients).
		Where(squirrel.Eq{"id": numericID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetAll возвращает всех клиентов в порядке создания
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	query, args, err := psqlbuilder.Select(clientColumns...).
		From(tableClients).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan client: %v", ErrScanRow, err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows iteration: %v", ErrScanRow, err)
	}

	return clients, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var (
		id                                  int64
		c                                   domain.Client
		birthDate                           sql.NullTime
		origin, related, country, image     sql.NullString
		membershipType, status, countryCode sql.NullString
	)

	err := row.Scan(
		&id,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&countryCode,
		&birthDate,
		&origin,
		&related,
		&country,
		&membershipType,
		&status,
		&image,
	)
	if err != nil {
		return nil, err
	}

	c.ID = domain.ClientID(strconv.FormatInt(id, 10))
	c.CountryCode = countryCode.String
	c.MembershipType = membershipType.String
	c.Status = status.String
	if birthDate.Valid {
		formatted := birthDate.Time.Format(domain.DateFormat)
		c.BirthDate = &formatted
	}
	c.Origin = nullStringPtr(origin)
	c.RelatedClient = nullStringPtr(related)
	c.Country = nullStringPtr(country)
	c.Image = nullStringPtr(image)

	return &c, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
