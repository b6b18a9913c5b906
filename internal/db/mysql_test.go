package db_test

import (
	"context"
	"database/sql"

	"crm/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Database on MySQL", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		gormDB, err := gorm.Open(mysql.New(mysql.Config{
			Conn:                      mockDb,
			SkipInitializeWithVersion: true,
		}), &gorm.Config{
			Logger:         logger.Discard,
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{DB: gormDB}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	When("the insert hits a duplicate entry", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec("^INSERT INTO `tests`").
				WithArgs("Alice").
				WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'Alice' for key 'username'"})
			mock.ExpectRollback()
		})

		It("should return ErrConstraint", func() {
			err := testDB.SaveToTable(ctx, &Test{Username: "Alice"})
			Expect(err).To(MatchError(db.ErrConstraint))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	When("the insert succeeds", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec("^INSERT INTO `tests` \\(`username`\\) VALUES \\(\\?\\)$").
				WithArgs("Alice").
				WillReturnResult(sqlmock.NewResult(7, 1))
			mock.ExpectCommit()
		})

		It("should write the generated id back", func() {
			record := Test{Username: "Alice"}
			Expect(testDB.SaveToTable(ctx, &record)).To(Succeed())
			Expect(record.ID).To(Equal(uint(7)))
		})
	})
})
