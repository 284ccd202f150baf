package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The full predicates matter: a token resolves only while unused and
// unexpired, and consumption re-checks both inside the conditional write.
const (
	tokenLookupQuery  = `SELECT \* FROM "tokens" WHERE value = \$1 AND used = \$2 AND expires_at > \$3 ORDER BY "tokens"\."id" LIMIT \$4`
	tokenConsumeQuery = `UPDATE "tokens" SET "used"=\$1 WHERE value = \$2 AND used = \$3 AND expires_at > \$4`
)

func TestIssueRejectsBadInput(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig(""))

	_, err := svc.Issue(0, "")
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = svc.Issue(101, "")
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = svc.Issue(5, "Quinta Regional")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueCreatesTokens(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig(""))

	mock.ExpectExec(`INSERT INTO "tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	tokens, err := svc.Issue(3, "Sub 23")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	seen := map[string]bool{}
	for _, tok := range tokens {
		require.NotNil(t, tok.Category)
		assert.Equal(t, "Sub 23", *tok.Category)
		assert.False(t, tok.Used)
		assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), tok.ExpiresAt, time.Minute)
		_, err := uuid.Parse(tok.Value)
		assert.NoError(t, err, "token value should be a uuid")
		assert.False(t, seen[tok.Value], "token values must be unique")
		seen[tok.Value] = true
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueBoundsAccepted(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig(""))

	mock.ExpectExec(`INSERT INTO "tokens"`).WillReturnResult(sqlmock.NewResult(0, 1))
	tokens, err := svc.Issue(1, "")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
	assert.Nil(t, tokens[0].Category)

	mock.ExpectExec(`INSERT INTO "tokens"`).WillReturnResult(sqlmock.NewResult(0, 100))
	tokens, err = svc.Issue(100, "")
	require.NoError(t, err)
	assert.Len(t, tokens, 100)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveAdminTokenSkipsStore(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig("master-token"))

	resolution, err := svc.Resolve("master-token")
	require.NoError(t, err)
	assert.Equal(t, KindAdmin, resolution.Kind)
	assert.Nil(t, resolution.Token)
	assert.Nil(t, resolution.Category())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveUnknownToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig(""))

	mock.ExpectQuery(tokenLookupQuery).
		WithArgs("nope", false, sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Resolve("nope")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveSingleUseToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig("master-token"))

	value := uuid.NewString()
	mock.ExpectQuery(tokenLookupQuery).
		WithArgs(value, false, sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "value", "category", "used", "expires_at"}).
			AddRow(uuid.NewString(), value, "Tercera", false, time.Now().Add(time.Hour)))

	resolution, err := svc.Resolve(value)
	require.NoError(t, err)
	assert.Equal(t, KindSingleUse, resolution.Kind)
	require.NotNil(t, resolution.Token)
	assert.Equal(t, value, resolution.Token.Value)
	require.NotNil(t, resolution.Category())
	assert.Equal(t, "Tercera", *resolution.Category())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveRejectsStaleRows(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig(""))

	// Even if a stale row comes back, an expired token never resolves.
	expired := uuid.NewString()
	mock.ExpectQuery(tokenLookupQuery).
		WithArgs(expired, false, sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "value", "used", "expires_at"}).
			AddRow(uuid.NewString(), expired, false, time.Now().Add(-time.Minute)))

	_, err := svc.Resolve(expired)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Same for a row already marked used.
	spent := uuid.NewString()
	mock.ExpectQuery(tokenLookupQuery).
		WithArgs(spent, false, sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "value", "used", "expires_at"}).
			AddRow(uuid.NewString(), spent, true, time.Now().Add(time.Hour)))

	_, err = svc.Resolve(spent)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeIsSingleUse(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig(""))

	value := uuid.NewString()

	// First consume wins the conditional update.
	mock.ExpectExec(tokenConsumeQuery).
		WithArgs(true, value, false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, svc.Consume(value))

	// Second consume matches no rows: the token is already spent.
	mock.ExpectExec(tokenConsumeQuery).
		WithArgs(true, value, false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, svc.Consume(value), ErrTokenInvalid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeAdminTokenNeverMutates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db, testConfig("master-token"))

	require.NoError(t, svc.Consume("master-token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
