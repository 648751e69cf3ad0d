package model

import (
	"database/sql"
	"strconv"

	"github.com/shopspring/decimal"
)

// Invoice is an invoice record as returned by the external system. The
// external system owns the schema; fields we do not know about must pass
// through unmodified, so the record stays a plain map.
type Invoice map[string]interface{}

// InvoiceID reads the external system's lowercase-led id field. It is
// normally a JSON number, but some records carry it as a numeric string.
func (i Invoice) InvoiceID() (int64, bool) {
	switch v := i["invoiceID"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// InvoiceQuery is the invoice-list filter in the external system's casing.
// The date bounds are Unix-millisecond timestamps encoded as strings; their
// ordering is the caller's responsibility.
type InvoiceQuery struct {
	FromDateTime string `json:"FromDateTime"`
	ToDateTime   string `json:"ToDateTime"`
	CustomerID   int    `json:"CustomerID"`
}

// InvoiceHistoryInput is the inbound request body for the invoice endpoint.
type InvoiceHistoryInput struct {
	FromDateTime string `json:"fromDateTime"`
	ToDateTime   string `json:"toDateTime"`
}

// InvoiceLink holds the locally authoritative invoice fields merged onto
// external records during reconciliation.
type InvoiceLink struct {
	InvoiceID        int64
	InvoiceStatus    string
	NetInvoiceAmount decimal.Decimal
	InvoiceNumber    string
	OrderID          sql.NullInt64
}
