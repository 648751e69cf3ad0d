package internal

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ordergate/internal/model"
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) PlaceOrder(c *fiber.Ctx) error {
	cu, ok := c.Locals(CustomerKey).(model.Customer)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i model.OrderRequest
	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on place order request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "incorrect request format"})
	}

	i.CustomerID = cu.ID
	if i.CustomerName == "" {
		i.CustomerName = cu.Name
	}

	if i.OrderDate == "" || len(i.OrderItems) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "orderDate and a non-empty orderItems list are required"})
	}
	for _, item := range i.OrderItems {
		if item.ProductID == 0 || item.ProductName == "" || item.Quantity == 0 || item.Price.IsZero() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "every order item needs productId, productName, quantity and price"})
		}
	}

	data, err := h.Service.PlaceOrder(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on place order request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

func (h *Handlers) InvoicesByCustomer(c *fiber.Ctx) error {
	cu, ok := c.Locals(CustomerKey).(model.Customer)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i model.InvoiceHistoryInput
	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on invoice history request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "incorrect request format"})
	}

	if i.FromDateTime == "" || i.ToDateTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "fromDateTime and toDateTime are required"})
	}

	q := model.InvoiceQuery{
		FromDateTime: i.FromDateTime,
		ToDateTime:   i.ToDateTime,
		CustomerID:   cu.ID,
	}

	invoices, err := h.Service.GetInvoicesByCustomerAndDateRange(c.Context(), q)
	if err != nil {
		h.logger.Errorf("Error on invoice history request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if invoices == nil {
		invoices = []model.Invoice{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "invoices": invoices})
}

func (h *Handlers) CreateSession(c *fiber.Ctx) error {
	var i model.SessionInput

	if err := c.BodyParser(&i); err != nil || i.CustomerID == 0 || i.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "customerId and phone are required"})
	}

	t, err := h.Service.NewSession(c.Context(), i.CustomerID, i.Phone)
	if err != nil {
		h.logger.Errorf("Error on session request: %s", err.Error())
		if errors.Is(err, ErrCustomerNotFound) || errors.Is(err, ErrInvalidCredentials) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "token": t})
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:    "token",
		Value:   token,
		Path:    "/",
		Expires: time.Now().Add(sessionTTL),
	}

	c.Cookie(cookie)
}
