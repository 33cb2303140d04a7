// Package sqlite implementa el puerto de persistencia sobre una base SQLite
// embebida (driver puro Go). Mantiene el mismo contrato de instantánea
// completa que los formatos de archivo: dos tablas espejo de los dos
// archivos heredados, reescritas enteras en cada guardado.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
	"github.com/jhoicas/insurapro-crm/internal/domain/repository"
	"github.com/jhoicas/insurapro-crm/pkg/logger"

	// Driver SQLite (puro Go)
	_ "modernc.org/sqlite"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name  TEXT NOT NULL,
	last_name   TEXT NOT NULL,
	email       TEXT NOT NULL,
	phone       TEXT NOT NULL,
	address     TEXT NOT NULL,
	tax_code    TEXT NOT NULL UNIQUE,
	birth_date  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS interactions (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_tax_code TEXT NOT NULL,
	date           TEXT NOT NULL,
	time           TEXT NOT NULL,
	kind           TEXT NOT NULL,
	description    TEXT NOT NULL,
	agent          TEXT NOT NULL,
	outcome        TEXT NOT NULL
);`

// SnapshotRepo implementación de SnapshotRepository sobre SQLite.
type SnapshotRepo struct {
	db  *sql.DB
	log *logger.Logger
}

// NewSnapshotRepository abre (o crea) la base y asegura el esquema.
func NewSnapshotRepository(path string, log *logger.Logger) (*SnapshotRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return &SnapshotRepo{db: db, log: log}, nil
}

// Close cierra la base.
func (r *SnapshotRepo) Close() error {
	return r.db.Close()
}

// Save reescribe ambas tablas dentro de una transacción: o se persiste la
// instantánea completa o no cambia nada.
func (r *SnapshotRepo) Save(customers []*entity.Customer) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM interactions`); err != nil {
		return fmt.Errorf("vaciar interacciones: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM customers`); err != nil {
		return fmt.Errorf("vaciar clientes: %w", err)
	}

	insertCustomer, err := tx.Prepare(`
		INSERT INTO customers (first_name, last_name, email, phone, address, tax_code, birth_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparar insert de clientes: %w", err)
	}
	defer insertCustomer.Close()

	insertInteraction, err := tx.Prepare(`
		INSERT INTO interactions (owner_tax_code, date, time, kind, description, agent, outcome)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparar insert de interacciones: %w", err)
	}
	defer insertInteraction.Close()

	for _, c := range customers {
		if _, err := insertCustomer.Exec(
			c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.TaxCode, c.BirthDate,
		); err != nil {
			return fmt.Errorf("insertar cliente %s: %w", c.TaxCode, err)
		}
		for _, in := range c.Interactions {
			if _, err := insertInteraction.Exec(
				c.TaxCode, in.Date, in.Time, in.Kind.String(), in.Description, in.Agent, in.Outcome,
			); err != nil {
				return fmt.Errorf("insertar interacción de %s: %w", c.TaxCode, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	r.log.Debug().Int("clientes", len(customers)).Msg("estado guardado")
	return nil
}

// Load lee ambas tablas en orden de inserción y reconstruye la colección.
// Interacciones cuyo código fiscal no coincide con ningún cliente (posible
// en una base editada a mano) se descartan con aviso, como en el formato
// heredado.
func (r *SnapshotRepo) Load() ([]*entity.Customer, error) {
	rows, err := r.db.Query(`
		SELECT first_name, last_name, email, phone, address, tax_code, birth_date
		FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("leer clientes: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	byTaxCode := make(map[string]*entity.Customer)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.TaxCode, &c.BirthDate,
		); err != nil {
			return nil, fmt.Errorf("escanear cliente: %w", err)
		}
		customers = append(customers, &c)
		if _, dup := byTaxCode[c.TaxCode]; !dup {
			byTaxCode[c.TaxCode] = &c
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer clientes: %w", err)
	}

	irows, err := r.db.Query(`
		SELECT owner_tax_code, date, time, kind, description, agent, outcome
		FROM interactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("leer interacciones: %w", err)
	}
	defer irows.Close()

	var orphans int
	for irows.Next() {
		var taxCode, kindName string
		var in entity.Interaction
		if err := irows.Scan(
			&taxCode, &in.Date, &in.Time, &kindName, &in.Description, &in.Agent, &in.Outcome,
		); err != nil {
			return nil, fmt.Errorf("escanear interacción: %w", err)
		}
		kind, ok := entity.ParseKind(kindName)
		if !ok {
			r.log.Warn().Str("tipo", kindName).Msg("tipo de interacción no reconocido, se usó el fallback Altro")
		}
		in.Kind = kind
		owner, found := byTaxCode[taxCode]
		if !found {
			orphans++
			continue
		}
		owner.AddInteraction(in)
	}
	if err := irows.Err(); err != nil {
		return nil, fmt.Errorf("leer interacciones: %w", err)
	}

	if orphans > 0 {
		r.log.Warn().Int("interacciones", orphans).Msg("interacciones huérfanas descartadas durante la carga")
	}
	return customers, nil
}
