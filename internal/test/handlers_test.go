package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"ordergate/internal"
	mock_internal "ordergate/internal/mock"
	"ordergate/internal/model"
)

const testSecret = "secret"

func signedToken(id string) string {
	claims := jwt.MapClaims{
		"id":  id,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	t, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	Expect(err).ShouldNot(HaveOccurred())
	return t
}

func jsonRequest(target, body, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

var _ = Describe("Handlers", func() {
	var (
		ctrl *gomock.Controller
		svc  *mock_internal.MockIService
		rep  *mock_internal.MockIRepository
		app  *fiber.App
	)

	customer := model.Customer{ID: 7, Name: "Acme Store", Phone: "+15550100"}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		svc = mock_internal.NewMockIService(ctrl)
		rep = mock_internal.NewMockIRepository(ctrl)
		logger := zap.NewNop().Sugar()

		handlers := internal.NewHandlers(svc, logger)

		app = fiber.New()
		api := app.Group("/api")
		api.Post("/session", handlers.CreateSession)
		api.Use(internal.SessionMiddleware(rep, testSecret, logger))
		api.Post("/orders/place", handlers.PlaceOrder)
		api.Post("/invoices/by-customer", handlers.InvoicesByCustomer)
	})
	AfterEach(func() {
		ctrl.Finish()
	})
	Context("PlaceOrder", func() {
		It("rejects an empty orderItems list before invoking the service", func() {
			rep.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)

			res, err := app.Test(jsonRequest("/api/orders/place", `{"orderDate":"2025-01-15","orderItems":[]}`, signedToken("7")), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
		It("rejects an item without a price", func() {
			rep.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)

			body := `{"orderDate":"2025-01-15","orderItems":[{"productId":10,"productName":"Rice","quantity":5}]}`
			res, err := app.Test(jsonRequest("/api/orders/place", body, signedToken("7")), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
		It("fills the customer from the session and returns the external data", func() {
			rep.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)

			var got model.OrderRequest
			svc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r model.OrderRequest) (json.RawMessage, error) {
					got = r
					return json.RawMessage(`{"OrderID":555}`), nil
				})

			body := `{"orderDate":"2025-01-15","orderItems":[{"productId":10,"productName":"Rice","quantity":5,"price":100}]}`
			res, err := app.Test(jsonRequest("/api/orders/place", body, signedToken("7")), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))

			Expect(got.CustomerID).Should(Equal(7))
			Expect(got.CustomerName).Should(Equal("Acme Store"))

			raw, err := io.ReadAll(res.Body)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(raw)).Should(ContainSubstring(`"success":true`))
			Expect(string(raw)).Should(ContainSubstring(`"OrderID":555`))
		})
		It("maps a service failure to 500 with the message", func() {
			rep.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)
			svc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(nil, internal.ErrAuthenticationFailed)

			body := `{"orderDate":"2025-01-15","orderItems":[{"productId":10,"productName":"Rice","quantity":5,"price":100}]}`
			res, err := app.Test(jsonRequest("/api/orders/place", body, signedToken("7")), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusInternalServerError))

			raw, err := io.ReadAll(res.Body)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(raw)).Should(ContainSubstring("Failed to authenticate with external order API"))
		})
	})
	Context("InvoicesByCustomer", func() {
		It("requires both date bounds", func() {
			rep.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)

			res, err := app.Test(jsonRequest("/api/invoices/by-customer", `{"fromDateTime":"1700000000000"}`, signedToken("7")), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
		It("queries with the session customer id", func() {
			rep.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(customer, nil)

			var got model.InvoiceQuery
			svc.EXPECT().GetInvoicesByCustomerAndDateRange(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, q model.InvoiceQuery) ([]model.Invoice, error) {
					got = q
					return []model.Invoice{{"invoiceID": float64(900)}}, nil
				})

			body := `{"fromDateTime":"1700000000000","toDateTime":"1703000000000"}`
			res, err := app.Test(jsonRequest("/api/invoices/by-customer", body, signedToken("7")), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))

			Expect(got).Should(Equal(model.InvoiceQuery{
				FromDateTime: "1700000000000",
				ToDateTime:   "1703000000000",
				CustomerID:   7,
			}))

			raw, err := io.ReadAll(res.Body)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(raw)).Should(ContainSubstring(`"invoiceID":900`))
		})
	})
	Context("SessionMiddleware", func() {
		It("rejects a missing token with SESSION_EXPIRED", func() {
			res, err := app.Test(jsonRequest("/api/orders/place", `{}`, ""), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusUnauthorized))

			raw, err := io.ReadAll(res.Body)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(raw)).Should(ContainSubstring("SESSION_EXPIRED"))
		})
		It("rejects an expired token with SESSION_EXPIRED", func() {
			claims := jwt.MapClaims{
				"id":  "7",
				"exp": time.Now().Add(-time.Hour).Unix(),
			}
			expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
			Expect(err).ShouldNot(HaveOccurred())

			res, err := app.Test(jsonRequest("/api/orders/place", `{}`, expired), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusUnauthorized))

			raw, err := io.ReadAll(res.Body)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(raw)).Should(ContainSubstring("SESSION_EXPIRED"))
		})
		It("rejects a token for a missing customer with USER_NOT_FOUND", func() {
			rep.EXPECT().GetCustomerByID(gomock.Any(), 7).Return(model.Customer{}, internal.ErrCustomerNotFound)

			res, err := app.Test(jsonRequest("/api/orders/place", `{}`, signedToken("7")), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusUnauthorized))

			raw, err := io.ReadAll(res.Body)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(raw)).Should(ContainSubstring("USER_NOT_FOUND"))
		})
	})
	Context("CreateSession", func() {
		It("issues a token and sets the auth cookie", func() {
			svc.EXPECT().NewSession(gomock.Any(), 7, "+15550100").Return("tok", nil)

			res, err := app.Test(jsonRequest("/api/session", `{"customerId":7,"phone":"+15550100"}`, ""), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusOK))
			Expect(res.Header.Get(fiber.HeaderSetCookie)).Should(ContainSubstring("token=tok"))

			raw, err := io.ReadAll(res.Body)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(raw)).Should(ContainSubstring(`"token":"tok"`))
		})
		It("rejects a mismatched phone with 401", func() {
			svc.EXPECT().NewSession(gomock.Any(), 7, "+15550199").Return("", internal.ErrInvalidCredentials)

			res, err := app.Test(jsonRequest("/api/session", `{"customerId":7,"phone":"+15550199"}`, ""), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
		It("rejects a request without a phone", func() {
			res, err := app.Test(jsonRequest("/api/session", `{"customerId":7}`, ""), -1)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
	})
})
