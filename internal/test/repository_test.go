package test

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"ordergate/internal"
	"ordergate/internal/model"
)

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})
	Context("GetInvoiceLinks", func() {
		It("batches all ids into one query", func() {
			expectedRows := sqlmock.NewRows([]string{
				"InvoiceID",
				"InvoiceStatus",
				"NetInvoiceAmount",
				"InvoiceNumber",
				"OrderID",
			}).
				AddRow(int64(900), "Paid", "500", "INV-900", int64(55)).
				AddRow(int64(901), "Open", "120", "INV-901", nil)

			mock.ExpectQuery("SELECT (.+) FROM invoices WHERE invoice_id IN \\(\\$1, \\$2\\)").
				WithArgs(int64(900), int64(901)).WillReturnRows(expectedRows).RowsWillBeClosed()

			links, err := repo.GetInvoiceLinks(context.Background(), []int64{900, 901})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(links).Should(HaveLen(2))
			Expect(links[0].NetInvoiceAmount.Equal(decimal.NewFromInt(500))).Should(BeTrue())
			Expect(links[0].OrderID).Should(Equal(sql.NullInt64{Int64: 55, Valid: true}))
			Expect(links[1].OrderID.Valid).Should(BeFalse())
		})
		It("does not query for an empty id list", func() {
			links, err := repo.GetInvoiceLinks(context.Background(), nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(links).Should(BeNil())
		})
		It("returns the query error", func() {
			mock.ExpectQuery("SELECT (.+) FROM invoices WHERE invoice_id IN \\(\\$1\\)").
				WithArgs(int64(900)).WillReturnError(errors.New("some error"))

			_, err := repo.GetInvoiceLinks(context.Background(), []int64{900})
			Expect(err).Should(HaveOccurred())
		})
	})
	Context("GetCustomerByID", func() {
		It("loads the customer row", func() {
			expected := model.Customer{ID: 7, Name: "Acme Store", Phone: "+15550100"}

			expectedRows := sqlmock.NewRows([]string{
				"ID",
				"Name",
				"Phone",
			}).AddRow(expected.ID, expected.Name, expected.Phone)

			mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
				WithArgs(7).WillReturnRows(expectedRows).RowsWillBeClosed()

			cu, err := repo.GetCustomerByID(context.Background(), 7)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cu).Should(Equal(expected))
		})
		It("maps no rows to ErrCustomerNotFound", func() {
			mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
				WithArgs(7).WillReturnError(sql.ErrNoRows)

			_, err := repo.GetCustomerByID(context.Background(), 7)
			Expect(err).Should(Equal(internal.ErrCustomerNotFound))
		})
		It("returns other errors as is", func() {
			mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
				WithArgs(7).WillReturnError(errors.New("some error"))

			_, err := repo.GetCustomerByID(context.Background(), 7)
			Expect(err).Should(HaveOccurred())
			Expect(err).ShouldNot(Equal(internal.ErrCustomerNotFound))
		})
	})
	Context("GetCustomerByPhone", func() {
		It("loads the customer row", func() {
			expected := model.Customer{ID: 7, Name: "Acme Store", Phone: "+15550100"}

			expectedRows := sqlmock.NewRows([]string{
				"ID",
				"Name",
				"Phone",
			}).AddRow(expected.ID, expected.Name, expected.Phone)

			mock.ExpectQuery("SELECT (.+) FROM customers WHERE phone = \\$1").
				WithArgs(expected.Phone).WillReturnRows(expectedRows).RowsWillBeClosed()

			cu, err := repo.GetCustomerByPhone(context.Background(), expected.Phone)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cu).Should(Equal(expected))
		})
		It("maps no rows to ErrCustomerNotFound", func() {
			mock.ExpectQuery("SELECT (.+) FROM customers WHERE phone = \\$1").
				WithArgs("+15550100").WillReturnError(sql.ErrNoRows)

			_, err := repo.GetCustomerByPhone(context.Background(), "+15550100")
			Expect(err).Should(Equal(internal.ErrCustomerNotFound))
		})
	})
})
