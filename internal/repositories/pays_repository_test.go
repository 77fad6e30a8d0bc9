package repositories

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paysSelect = `SELECT id, name, code, indicatif, created_at, updated_at FROM pays WHERE id = $1`

// La suppression est logique : la ligne disparaît des lectures filtrées mais
// reste accessible par la voie interne.
func TestPaysSoftDelete_LaLignePersiste(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaysRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE pays SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta(paysSelect + ` AND deleted_at IS NULL`)).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(paysSelect)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "indicatif", "created_at", "updated_at"}).
			AddRow(int64(1), "Togo", "TG", "228", now, now))

	require.NoError(t, repo.SoftDelete(1))

	visible, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Nil(t, visible, "une ligne supprimée ne doit plus être lisible")

	raw, err := repo.GetByIDIncludingDeleted(1)
	require.NoError(t, err)
	require.NotNil(t, raw, "la ligne doit persister en base après la suppression logique")
	assert.Equal(t, "Togo", raw.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaysGetByID_Inconnu(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaysRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(paysSelect + ` AND deleted_at IS NULL`)).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	p, err := repo.GetByID(9)
	require.NoError(t, err)
	assert.Nil(t, p)
}
