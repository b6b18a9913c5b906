package db_test

import (
	"context"
	"path/filepath"

	"crm/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type Person struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Email string `gorm:"uniqueIndex;not null"`
	Name  string
}

var _ = Describe("SQLite", func() {
	var (
		ctx    context.Context
		path   string
		testDB *db.GormDB
	)

	BeforeEach(func() {
		ctx = context.Background()
		path = filepath.Join(GinkgoT().TempDir(), "nested", "crm.db")

		var err error
		testDB, err = db.NewSQLiteDB(path, zap.NewNop().Sugar(), true)
		Expect(err).NotTo(HaveOccurred())
		Expect(testDB.MigrateTable(ctx, &Person{})).To(Succeed())
	})

	AfterEach(func() {
		Expect(testDB.Close()).To(Succeed())
	})

	It("creates the database file and its directory", func() {
		Expect(path).To(BeAnExistingFile())
	})

	It("migrates idempotently", func() {
		Expect(testDB.MigrateTable(ctx, &Person{})).To(Succeed())
	})

	It("assigns increasing ids", func() {
		first := Person{Email: "a@b.com"}
		second := Person{Email: "c@d.com"}
		Expect(testDB.SaveToTable(ctx, &first)).To(Succeed())
		Expect(testDB.SaveToTable(ctx, &second)).To(Succeed())
		Expect(first.ID).To(BeNumerically(">", 0))
		Expect(second.ID).To(BeNumerically(">", first.ID))
	})

	It("reports unique violations as ErrConstraint", func() {
		Expect(testDB.SaveToTable(ctx, &Person{Email: "a@b.com"})).To(Succeed())
		err := testDB.SaveToTable(ctx, &Person{Email: "a@b.com"})
		Expect(err).To(MatchError(db.ErrConstraint))

		var people []Person
		Expect(testDB.GetAllBy(ctx, "email", "a@b.com", &people)).To(Succeed())
		Expect(people).To(HaveLen(1))
	})

	It("returns ErrNotFound for a missing row", func() {
		var p Person
		Expect(testDB.GetOneBy(ctx, "email", "nobody@x.org", &p)).To(MatchError(db.ErrNotFound))
	})

	It("returns an empty slice when nothing matches", func() {
		people := []Person{}
		Expect(testDB.GetAllBy(ctx, "name", "nobody", &people)).To(Succeed())
		Expect(people).To(BeEmpty())
	})

	It("updates and deletes by column and reports rows affected", func() {
		p := Person{Email: "a@b.com", Name: "Ann"}
		Expect(testDB.SaveToTable(ctx, &p)).To(Succeed())

		n, err := testDB.UpdateBy(ctx, "id", p.ID, &Person{}, map[string]any{"name": "Anne"})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(int64(1)))

		var got Person
		Expect(testDB.GetOneBy(ctx, "id", p.ID, &got)).To(Succeed())
		Expect(got.Name).To(Equal("Anne"))

		n, err = testDB.DeleteBy(ctx, "id", p.ID+100, &Person{})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())

		n, err = testDB.DeleteBy(ctx, "id", p.ID, &Person{})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(int64(1)))
	})
})
