package model

import "github.com/shopspring/decimal"

type OrderItem struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type OrderRequest struct {
	CustomerID   int         `json:"customerId"`
	CustomerName string      `json:"customerName"`
	OrderItems   []OrderItem `json:"orderItems"`
	OrderDate    string      `json:"orderDate"`
}

// ExternalOrder is the order-creation payload in the external system's casing.
type ExternalOrder struct {
	OrderDate      string              `json:"OrderDate"`
	CustomerID     int                 `json:"CustomerID"`
	CustomerName   string              `json:"CustomerName"`
	ListOrderItems []ExternalOrderItem `json:"ListOrderItems"`
	OrderItemCount int                 `json:"OrderItemCount"`
}

type ExternalOrderItem struct {
	ProductID   int             `json:"ProductID"`
	ProductName string          `json:"ProductName"`
	OrderQty    int             `json:"OrderQty"`
	Price       decimal.Decimal `json:"Price"`
}

// External renames the request into the external schema.
func (r OrderRequest) External() ExternalOrder {
	items := make([]ExternalOrderItem, 0, len(r.OrderItems))
	for _, i := range r.OrderItems {
		items = append(items, ExternalOrderItem{
			ProductID:   i.ProductID,
			ProductName: i.ProductName,
			OrderQty:    i.Quantity,
			Price:       i.Price,
		})
	}

	return ExternalOrder{
		OrderDate:      r.OrderDate,
		CustomerID:     r.CustomerID,
		CustomerName:   r.CustomerName,
		ListOrderItems: items,
		OrderItemCount: len(r.OrderItems),
	}
}
