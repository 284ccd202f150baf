package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFansNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFanService(db)

	mock.ExpectQuery(`SELECT \* FROM "fans" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(uuid.NewString(), "Ana Pérez", "ana@example.com").
			AddRow(uuid.NewString(), "Luis Gómez", "luis@example.com"))

	fans, err := svc.List()
	require.NoError(t, err)
	require.Len(t, fans, 2)
	assert.Equal(t, "Ana Pérez", fans[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFan(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFanService(db)

	mock.ExpectExec(`DELETE FROM "fans"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, svc.Delete(uuid.New()))

	mock.ExpectExec(`DELETE FROM "fans"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, svc.Delete(uuid.New()), ErrFanNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
