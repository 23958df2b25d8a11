package db_test

import (
	"context"
	"database/sql"
	"ipregistrar/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Record struct {
	ID    uint `gorm:"primaryKey"`
	Label string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}

	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Close", func() {
		It("should close the connection pool", func() {
			mock.ExpectClose()
			Expect(testDB.Close()).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			// Reset the mock expectations before each test
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"records\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Record{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Seed", func() {
		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "records"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "records" \("label","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("seeded", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

				mock.ExpectCommit()
			})

			It("should insert the records", func() {
				err := testDB.Seed(context.Background(), &[]Record{{ID: 1, Label: "seeded"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table already has rows", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "records"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			})

			It("should leave the table untouched", func() {
				err := testDB.Seed(context.Background(), &[]Record{{ID: 1, Label: "seeded"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("records are not a slice pointer", func() {
			It("should return an error", func() {
				err := testDB.Seed(context.Background(), Record{ID: 1})
				Expect(err).To(MatchError(ContainSubstring("pointer to a slice")))
			})
		})
	})

	Describe("SaveToTable", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "records" \("label","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) ON CONFLICT \("id"\) DO UPDATE SET "label"="excluded"\."label".*$`).
				WithArgs("mint_nft", 1, "register_ip", 2).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

			mock.ExpectCommit()
		})

		It("should upsert records without errors", func() {
			err := testDB.SaveToTable(context.Background(), &[]Record{
				{ID: 1, Label: "mint_nft"},
				{ID: 2, Label: "register_ip"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE label = \$1 ORDER BY "records"\."id" LIMIT \$2.*`).
					WithArgs("mint_nft", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).
						AddRow(1, "mint_nft"))
			})

			It("should return the correct record", func() {
				var result Record
				err := testDB.GetOneBy(context.Background(), "label", "mint_nft", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Label).To(Equal("mint_nft"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE label = \$1 ORDER BY "records"\."id" LIMIT \$2.*`).
					WithArgs("unknown", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Record
				err := testDB.GetOneBy(context.Background(), "label", "unknown", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE label IN \(\$1,\$2\).*`).
					WithArgs("mint_nft", "register_ip").
					WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).
						AddRow(1, "mint_nft").
						AddRow(2, "register_ip"))
			})

			It("should return all matching records", func() {
				var results []Record
				err := testDB.GetAllBy(context.Background(), "label", []string{"mint_nft", "register_ip"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Label).To(Equal("mint_nft"))
				Expect(results[1].Label).To(Equal("register_ip"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE label.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Record
				err := testDB.GetAllBy(context.Background(), "label", "Invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAll", func() {
		When("rows exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" ORDER BY id desc`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).
						AddRow(2, "register_ip").
						AddRow(1, "mint_nft"))
			})

			It("should return them in order", func() {
				var results []Record
				err := testDB.GetAll(context.Background(), "id desc", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Label).To(Equal("register_ip"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Record
				err := testDB.GetAll(context.Background(), "id", &results)
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})
})
