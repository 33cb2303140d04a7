package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
	"github.com/jhoicas/insurapro-crm/internal/infrastructure/sqlite"
	"github.com/jhoicas/insurapro-crm/pkg/logger"
)

func newRepo(t *testing.T) (*sqlite.SnapshotRepo, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "crm.db")
	log, err := logger.New(logger.Config{Level: "error", File: filepath.Join(dir, "test.log")})
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	repo, err := sqlite.NewSnapshotRepository(path, log)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func sampleCustomers() []*entity.Customer {
	john := &entity.Customer{
		FirstName: "John", LastName: "Doe",
		Email: "john@example.com", Phone: "333111222",
		Address: "Via Roma 1", TaxCode: "DOEJHN80A01H501X", BirthDate: "01/01/1980",
	}
	john.AddInteraction(entity.Interaction{
		Date: "15/03/2024", Time: "10:30", Kind: entity.KindAppointment,
		Description: "Renovación", Agent: "Rossi", Outcome: "Firmado",
	})
	jane := &entity.Customer{
		FirstName: "Jane", LastName: "Smith",
		Email: "jane@example.com", Phone: "334999888",
		Address: "Via Milano 2", TaxCode: "SMTJNE85B42F205Y", BirthDate: "02/02/1985",
	}
	return []*entity.Customer{john, jane}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.Save(sampleCustomers()))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "John", loaded[0].FirstName, "el orden de inserción se conserva")
	require.Len(t, loaded[0].Interactions, 1)
	assert.Equal(t, entity.KindAppointment, loaded[0].Interactions[0].Kind)
	assert.Empty(t, loaded[1].Interactions)
}

func TestSave_ReescribeLaInstantanea(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.Save(sampleCustomers()))

	// Un segundo guardado con menos clientes no acumula los anteriores.
	only := sampleCustomers()[:1]
	require.NoError(t, repo.Save(only))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1, "cada guardado reemplaza la instantánea completa")
}

func TestLoad_BaseVacia(t *testing.T) {
	repo, _ := newRepo(t)
	loaded, err := repo.Load()
	require.NoError(t, err, "una base recién creada carga una colección vacía")
	assert.Empty(t, loaded)
}

func TestLoad_DescartaHuerfanas(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, repo.Save(sampleCustomers()))

	// Simular una base editada a mano con una interacción huérfana.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`
		INSERT INTO interactions (owner_tax_code, date, time, kind, description, agent, outcome)
		VALUES ('ZZZZZZ99Z99Z999Z', '16/03/2024', '09:00', 'Telefonata', 'Seguimiento', 'Bianchi', '')`)
	require.NoError(t, err)

	loaded, err := repo.Load()
	require.NoError(t, err, "una interacción huérfana no es un error")
	require.Len(t, loaded, 2)
	assert.Len(t, loaded[0].Interactions, 1, "la huérfana no se asigna a nadie")
	assert.Empty(t, loaded[1].Interactions)
}
