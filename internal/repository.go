package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"ordergate/internal/model"
)

const (
	invoiceLinkFields = "invoice_id, invoice_status, net_invoice_amount, invoice_number, order_id"
	customerFields    = "id, name, phone"
)

//go:embed migrations/*.sql
var migrations embed.FS

type IRepository interface {
	GetInvoiceLinks(context.Context, []int64) ([]model.InvoiceLink, error)
	GetCustomerByID(context.Context, int) (model.Customer, error)
	GetCustomerByPhone(context.Context, string) (model.Customer, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

// NewRepository opens the shared database handle and runs migrations. The
// handle is owned by the caller and closed through Close at shutdown.
func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations)
	if err = goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	if err = goose.Up(conn, "migrations"); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) Close() error {
	return r.Conn.Close()
}

// GetInvoiceLinks loads the locally authoritative fields for the given
// external invoice ids in a single batched query.
func (r Repository) GetInvoiceLinks(ctx context.Context, ids []int64) ([]model.InvoiceLink, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = id
	}

	rows, err := r.Conn.QueryContext(ctx, "SELECT "+invoiceLinkFields+" FROM invoices WHERE invoice_id IN ("+strings.Join(placeholders, ", ")+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []model.InvoiceLink
	for rows.Next() {
		var l model.InvoiceLink
		err = rows.Scan(&l.InvoiceID, &l.InvoiceStatus, &l.NetInvoiceAmount, &l.InvoiceNumber, &l.OrderID)
		if err != nil {
			return nil, err
		}

		links = append(links, l)
	}

	return links, rows.Err()
}

func (r Repository) GetCustomerByID(ctx context.Context, id int) (model.Customer, error) {
	var cu model.Customer

	err := r.Conn.QueryRowContext(ctx, "SELECT "+customerFields+" FROM customers WHERE id = $1", id).Scan(&cu.ID, &cu.Name, &cu.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}

	return cu, nil
}

func (r Repository) GetCustomerByPhone(ctx context.Context, phone string) (model.Customer, error) {
	var cu model.Customer

	err := r.Conn.QueryRowContext(ctx, "SELECT "+customerFields+" FROM customers WHERE phone = $1", phone).Scan(&cu.ID, &cu.Name, &cu.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}

	return cu, nil
}
