package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestRunMigrations(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "0001_a.up.sql", "CREATE TABLE A (ID NUMBER);\n")
	writeMigration(t, dir, "0001_a.down.sql", "DROP TABLE A;")
	writeMigration(t, dir, "0002_b.up.sql", "CREATE TABLE B (ID NUMBER)")
	writeMigration(t, dir, "0002_b.down.sql", "DROP TABLE B")
	writeMigration(t, dir, "README.md", "not a migration")

	t.Run("Up", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE A (ID NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE B (ID NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, RunMigrations(context.Background(), db, dir, Up))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Down", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DROP TABLE B").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DROP TABLE A").WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, RunMigrations(context.Background(), db, dir, Down))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FailureStops", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE A")).WillReturnError(errors.New("ORA-00955"))

		err = RunMigrations(context.Background(), db, dir, Up)
		assert.ErrorContains(t, err, "0001_a.up.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunMigrations_ShippedFiles(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE NEWSLETTER_SUBSCRIBERS").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IDX_NEWSLETTER_SUBSCRIBERS_CREATED").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, RunMigrations(context.Background(), db, "../../database/migrations", Up))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_MissingDir(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	assert.Error(t, RunMigrations(context.Background(), db, filepath.Join(t.TempDir(), "nope"), Up))
}
