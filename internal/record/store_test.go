package record

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO recruitment_records").
		WithArgs(sqlmock.AnyArg(), "request-123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewPostgresStore(db)
	id, err := store.Publish(context.Background(), "request-123", map[string]int{"invited": 3})
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err, "record id should be a uuid")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishInsertError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO recruitment_records").
		WillReturnError(errors.New("disk full"))

	store := NewPostgresStore(db)
	_, err = store.Publish(context.Background(), "request-123", map[string]int{})
	assert.Error(t, err)
}
