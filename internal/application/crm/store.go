// Package crm contiene el caso de uso central: el almacén en memoria de
// clientes con sus interacciones y todas las operaciones que la capa de
// orquestación puede invocar. El almacén es una única instancia propiedad
// del proceso, inyectada por referencia; la persistencia queda detrás del
// puerto SnapshotRepository.
package crm

import (
	"fmt"

	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
	"github.com/jhoicas/insurapro-crm/internal/domain/repository"
	"github.com/jhoicas/insurapro-crm/pkg/logger"
)

// Store almacén de clientes. Todas las operaciones son síncronas y corren
// hasta completarse; no hay acceso concurrente (proceso único) y por tanto
// no hay disciplina de locking.
type Store struct {
	customers []*entity.Customer
	repo      repository.SnapshotRepository
	log       *logger.Logger
}

// NewStore construye el almacén vacío con su puerto de persistencia.
func NewStore(repo repository.SnapshotRepository, log *logger.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Count devuelve el número de clientes cargados.
func (s *Store) Count() int {
	return len(s.customers)
}

// Save serializa el estado completo a través del puerto de persistencia.
func (s *Store) Save() error {
	if err := s.repo.Save(s.customers); err != nil {
		s.log.Error().Err(err).Msg("guardado fallido")
		return fmt.Errorf("guardar datos: %w", err)
	}
	s.log.Info().Int("clientes", len(s.customers)).Msg("datos guardados")
	return nil
}

// Load reemplaza el estado en memoria con el persistido. Si la carga falla
// el almacén conserva su estado anterior, nunca queda a medio poblar.
func (s *Store) Load() error {
	loaded, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("cargar datos: %w", err)
	}
	s.customers = loaded
	s.log.Info().Int("clientes", len(s.customers)).Msg("datos cargados")
	return nil
}

// indexOf busca un cliente por código fiscal (barrido lineal, coincidencia
// exacta; el código es único por construcción).
func (s *Store) indexOf(taxCode string) int {
	for i, c := range s.customers {
		if c.TaxCode == taxCode {
			return i
		}
	}
	return -1
}
