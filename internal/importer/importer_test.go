package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront-be/internal/category"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Import(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		svc := NewService(db, category.NewRepository(db))

		csv := "category_name,name,price,stock\n" +
			"Tools,Widget,9.50,5\n" +
			"Tools,Gadget,4.00,10\n"

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM categories WHERE name").
			WithArgs("Tools").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs("Tools").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectExec("INSERT INTO products").
			WithArgs("Widget", 9.5, 5, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT id FROM categories WHERE name").
			WithArgs("Tools").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectExec("INSERT INTO products").
			WithArgs("Gadget", 4.0, 10, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		count, err := svc.Import(context.Background(), strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingColumns", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		svc := NewService(db, category.NewRepository(db))

		csv := "category_name,name,price\n" +
			"Tools,Widget,9.50\n"

		_, err = svc.Import(context.Background(), strings.NewReader(csv))
		assert.ErrorIs(t, err, ErrMissingColumns)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InvalidRowRejectedBeforeWriting", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		svc := NewService(db, category.NewRepository(db))

		// second row is broken; the valid first row must not be inserted
		csv := "category_name,name,price,stock\n" +
			"Tools,Widget,9.50,5\n" +
			"Tools,Gadget,cheap,10\n"

		_, err = svc.Import(context.Background(), strings.NewReader(csv))
		assert.ErrorIs(t, err, ErrInvalidRow)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertErrorRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		svc := NewService(db, category.NewRepository(db))

		csv := "category_name,name,price,stock\n" +
			"Tools,Widget,9.50,5\n"

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM categories WHERE name").
			WithArgs("Tools").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectExec("INSERT INTO products").
			WithArgs("Widget", 9.5, 5, 2).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err = svc.Import(context.Background(), strings.NewReader(csv))
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestParse(t *testing.T) {
	t.Run("ColumnOrderIrrelevant", func(t *testing.T) {
		csv := "name,stock,price,category_name\n" +
			"Widget,5,9.50,Tools\n"

		rows, err := parse(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Widget", rows[0].Name)
		assert.Equal(t, "Tools", rows[0].CategoryName)
		assert.InDelta(t, 9.5, rows[0].Price, 0.001)
		assert.Equal(t, 5, rows[0].Stock)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		_, err := parse(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrMissingColumns)
	})

	t.Run("BadStock", func(t *testing.T) {
		csv := "category_name,name,price,stock\n" +
			"Tools,Widget,9.50,many\n"

		_, err := parse(strings.NewReader(csv))
		assert.ErrorIs(t, err, ErrInvalidRow)
	})
}
