package internal

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"ordergate/internal/model"
)

const sessionTTL = time.Hour * 72

type IService interface {
	PlaceOrder(context.Context, model.OrderRequest) (json.RawMessage, error)
	GetInvoicesByCustomerAndDateRange(context.Context, model.InvoiceQuery) ([]model.Invoice, error)
	NewSession(context.Context, int, string) (string, error)
}

type Service struct {
	Repository IRepository
	Gateway    IGateway
	TokenCache ITokenCache
	secret     string
	logger     *zap.SugaredLogger
}

func NewService(repository IRepository, gateway IGateway, cache ITokenCache, secret string, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: repository, Gateway: gateway, TokenCache: cache, secret: secret, logger: logger}
}

// PlaceOrder authenticates against the external gateway and submits one
// order. The external response is returned unmodified on success; no local
// row is written, the external system is the order of record.
func (s Service) PlaceOrder(ctx context.Context, req model.OrderRequest) (json.RawMessage, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.Gateway.CreateOrder(ctx, token, req.External())
	if err != nil {
		s.logger.Errorf("create order for customer %d: %s", req.CustomerID, err.Error())
		return nil, err
	}

	return data, nil
}

// GetInvoicesByCustomerAndDateRange fetches the customer's invoices from the
// external system and overwrites InvoiceStatus, NetInvoiceAmount,
// InvoiceNumber and OrderID with local values for every invoice the local
// store knows about. Invoices without a local match pass through untouched.
func (s Service) GetInvoicesByCustomerAndDateRange(ctx context.Context, q model.InvoiceQuery) ([]model.Invoice, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	invoices, err := s.Gateway.FetchInvoices(ctx, token, q)
	if err != nil {
		s.logger.Errorf("fetch invoices for customer %d: %s", q.CustomerID, err.Error())
		return nil, err
	}

	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]int64, 0, len(invoices))
	for _, inv := range invoices {
		if id, ok := inv.InvoiceID(); ok {
			ids = append(ids, id)
		}
	}

	links, err := s.Repository.GetInvoiceLinks(ctx, ids)
	if err != nil {
		// Enrichment is a read-only presentation concern; the external
		// payload is valid on its own, so a lookup failure degrades to
		// returning the raw invoices.
		s.logger.Warnf("invoice enrichment skipped for customer %d: %s", q.CustomerID, err.Error())
		return invoices, nil
	}

	byID := make(map[int64]model.InvoiceLink, len(links))
	for _, l := range links {
		byID[l.InvoiceID] = l
	}

	for _, inv := range invoices {
		id, ok := inv.InvoiceID()
		if !ok {
			continue
		}
		l, ok := byID[id]
		if !ok {
			continue
		}

		inv["InvoiceStatus"] = l.InvoiceStatus
		inv["NetInvoiceAmount"] = l.NetInvoiceAmount
		inv["InvoiceNumber"] = l.InvoiceNumber
		if l.OrderID.Valid {
			inv["OrderID"] = l.OrderID.Int64
		}
	}

	return invoices, nil
}

// NewSession issues a signed session token for a known customer. The phone
// number must match the customer row; OTP verification happens upstream.
func (s Service) NewSession(ctx context.Context, customerID int, phone string) (string, error) {
	cu, err := s.Repository.GetCustomerByID(ctx, customerID)
	if err != nil {
		return "", err
	}

	if cu.Phone != phone {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":  strconv.Itoa(cu.ID),
		"exp": time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	return t, nil
}

// token returns a bearer token for one gateway operation. Without a cache
// every call authenticates from scratch; cache errors are never fatal.
func (s Service) token(ctx context.Context) (string, error) {
	if s.TokenCache != nil {
		t, err := s.TokenCache.Get(ctx)
		if err != nil {
			s.logger.Warnf("token cache read: %s", err.Error())
		}
		if t != "" {
			return t, nil
		}
	}

	t, err := s.Gateway.Authenticate(ctx)
	if err != nil {
		s.logger.Errorf("gateway authentication: %s", err.Error())
		return "", ErrAuthenticationFailed
	}

	if s.TokenCache != nil {
		if err = s.TokenCache.Set(ctx, t); err != nil {
			s.logger.Warnf("token cache write: %s", err.Error())
		}
	}

	return t, nil
}
