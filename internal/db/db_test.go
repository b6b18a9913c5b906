package db_test

import (
	"context"
	"database/sql"

	"crm/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{
			Logger:         logger.Discard,
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("SaveToTable", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should write the generated id back", func() {
				record := Test{Username: "Alice"}
				err := testDB.SaveToTable(ctx, &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert hits a unique index", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WithArgs("Alice").
					WillReturnError(gorm.ErrDuplicatedKey)
				mock.ExpectRollback()
			})

			It("should return ErrConstraint", func() {
				err := testDB.SaveToTable(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(db.ErrConstraint))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		It("should reject non pointer records", func() {
			err := testDB.SaveToTable(ctx, Test{Username: "Alice"})
			Expect(err).To(MatchError(ContainSubstring("must be a pointer")))
		})

		It("should skip empty slices", func() {
			err := testDB.SaveToTable(ctx, &[]Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY id`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Alice"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Alice", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(1)))
				Expect(results[1].ID).To(Equal(uint(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "tests" SET "username"=\$1 WHERE id = \$2`).
				WithArgs("Carol", 3).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should report the rows matched", func() {
			n, err := testDB.UpdateBy(ctx, "id", 3, &Test{}, map[string]any{"username": "Carol"})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "tests" WHERE id = \$1`).
				WithArgs(42).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()
		})

		It("should report zero rows for a missing id", func() {
			n, err := testDB.DeleteBy(ctx, "id", 42, &Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
