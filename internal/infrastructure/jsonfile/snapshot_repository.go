// Package jsonfile implementa el puerto de persistencia con un objeto JSON
// por línea. Es el formato alternativo "seguro" frente al heredado: los
// valores con '|' o saltos de línea no corrompen el registro.
package jsonfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
	"github.com/jhoicas/insurapro-crm/internal/domain/repository"
	"github.com/jhoicas/insurapro-crm/pkg/logger"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// customerRecord forma persistida de un cliente con sus interacciones
// embebidas (la propiedad exclusiva se conserva en el propio documento, sin
// clave de unión).
type customerRecord struct {
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Address      string              `json:"address"`
	TaxCode      string              `json:"tax_code"`
	BirthDate    string              `json:"birth_date"`
	Interactions []interactionRecord `json:"interactions,omitempty"`
}

// interactionRecord forma persistida de una interacción. El tipo se guarda
// con su nombre visible para que el archivo siga siendo legible a mano.
type interactionRecord struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Agent       string `json:"agent"`
	Outcome     string `json:"outcome"`
}

// SnapshotRepo implementación de SnapshotRepository sobre un archivo JSONL.
type SnapshotRepo struct {
	path string
	log  *logger.Logger
}

// NewSnapshotRepository construye el adaptador. Crea el directorio de datos
// si no existe.
func NewSnapshotRepository(path string, log *logger.Logger) (*SnapshotRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &SnapshotRepo{path: path, log: log}, nil
}

// Save escribe el estado completo, un cliente por línea.
func (r *SnapshotRepo) Save(customers []*entity.Customer) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("abrir archivo de datos: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, c := range customers {
		rec := customerRecord{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			Address:   c.Address,
			TaxCode:   c.TaxCode,
			BirthDate: c.BirthDate,
		}
		for _, in := range c.Interactions {
			rec.Interactions = append(rec.Interactions, interactionRecord{
				Date:        in.Date,
				Time:        in.Time,
				Kind:        in.Kind.String(),
				Description: in.Description,
				Agent:       in.Agent,
				Outcome:     in.Outcome,
			})
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("serializar cliente: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("escribir archivo de datos: %w", err)
	}
	r.log.Debug().Int("clientes", len(customers)).Str("archivo", r.path).Msg("estado guardado")
	return nil
}

// Load lee el archivo línea a línea. Líneas que no deserializan se saltan
// con aviso en el log, igual que la política tolerante del formato heredado.
func (r *SnapshotRepo) Load() ([]*entity.Customer, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo de datos: %w", err)
	}
	defer f.Close()

	var customers []*entity.Customer
	var malformed int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec customerRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			malformed++
			continue
		}
		c := &entity.Customer{
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Email:     rec.Email,
			Phone:     rec.Phone,
			Address:   rec.Address,
			TaxCode:   rec.TaxCode,
			BirthDate: rec.BirthDate,
		}
		for _, ir := range rec.Interactions {
			kind, ok := entity.ParseKind(ir.Kind)
			if !ok {
				r.log.Warn().Str("tipo", ir.Kind).Msg("tipo de interacción no reconocido, se usó el fallback Altro")
			}
			c.AddInteraction(entity.Interaction{
				Date:        ir.Date,
				Time:        ir.Time,
				Kind:        kind,
				Description: ir.Description,
				Agent:       ir.Agent,
				Outcome:     ir.Outcome,
			})
		}
		customers = append(customers, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leer archivo de datos: %w", err)
	}
	if malformed > 0 {
		r.log.Warn().Int("lineas", malformed).Msg("líneas malformadas descartadas durante la carga")
	}
	return customers, nil
}
