package db_test

import (
	"context"
	"database/sql"
	"regexp"

	"workoutlog/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("GormDB", func() {
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

		testDB = db.NewGormDB(gormDB)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		var record *Test

		BeforeEach(func() {
			record = &Test{Username: "Alice"}
		})

		JustBeforeEach(func() {
			err = testDB.Create(ctx, record)
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "tests" ("username") VALUES ($1) RETURNING "id"`)).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectCommit()
			})

			It("should fill the generated id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(7)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO "tests".*`).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				Expect(err).To(MatchError(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails for another reason", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(err).NotTo(MatchError(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
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
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
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
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY id DESC`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(2, "Alice").
						AddRow(1, "Alice"))
			})

			It("should return all matching records in order", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Alice", "id DESC", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(2)))
				Expect(results[1].ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("nothing matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1$`).
					WithArgs("Nobody").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return no records and no error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Nobody", "", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(BeEmpty())
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
				err := testDB.GetAllBy(ctx, "username", "Invalid", "", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteWhere", func() {
		var (
			affected   int64
			conditions map[string]any
		)

		BeforeEach(func() {
			conditions = map[string]any{"id": 1, "username": "Alice"}
		})

		JustBeforeEach(func() {
			affected, err = testDB.DeleteWhere(ctx, &Test{}, conditions)
		})

		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "tests" WHERE .*`).
					WithArgs(1, "Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should report one deleted row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "tests" WHERE .*`).
					WithArgs(1, "Alice").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should report zero rows", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(BeZero())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the statement fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "tests" WHERE .*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("delete from table")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no conditions are given", func() {
			BeforeEach(func() {
				conditions = nil
			})

			It("should refuse to run", func() {
				Expect(err).To(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
