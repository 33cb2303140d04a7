package crm

import (
	"github.com/jhoicas/insurapro-crm/internal/application/dto"
	"github.com/jhoicas/insurapro-crm/internal/domain"
	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
	"github.com/jhoicas/insurapro-crm/pkg/validate"
)

// AddInteraction registra una interacción para el cliente indicado. Fecha y
// hora se validan aquí porque este es el punto de entrada desde input de
// operador; la reconstrucción desde datos persistidos no re-valida.
func (s *Store) AddInteraction(taxCode string, in dto.CreateInteractionRequest) error {
	i := s.indexOf(taxCode)
	if i == -1 {
		return domain.ErrNotFound
	}
	if !validate.Date(in.Date) {
		return domain.ErrInvalidDate
	}
	if !validate.Time(in.Time) {
		return domain.ErrInvalidTime
	}
	s.customers[i].AddInteraction(entity.Interaction{
		Date:        in.Date,
		Time:        in.Time,
		Kind:        in.Kind,
		Description: in.Description,
		Agent:       in.Agent,
		Outcome:     in.Outcome,
	})
	s.log.Info().
		Str("codigo_fiscal", taxCode).
		Str("tipo", in.Kind.String()).
		Msg("interacción agregada")
	return nil
}

// ListInteractions devuelve las interacciones del cliente en su orden. Una
// lista vacía no es un error: el cliente existe pero no tiene historial.
func (s *Store) ListInteractions(taxCode string) ([]dto.InteractionDetail, error) {
	i := s.indexOf(taxCode)
	if i == -1 {
		return nil, domain.ErrNotFound
	}
	c := s.customers[i]
	out := make([]dto.InteractionDetail, 0, len(c.Interactions))
	for j := range c.Interactions {
		out = append(out, interactionDetail(j, &c.Interactions[j]))
	}
	return out, nil
}

// RemoveInteraction elimina la interacción en la posición indicada (1-based,
// como se muestra en pantalla).
func (s *Store) RemoveInteraction(taxCode string, position int) error {
	i := s.indexOf(taxCode)
	if i == -1 {
		return domain.ErrNotFound
	}
	c := s.customers[i]
	if position < 1 || position > len(c.Interactions) {
		return domain.ErrInvalidInput
	}
	c.RemoveInteraction(position - 1)
	s.log.Info().Str("codigo_fiscal", taxCode).Int("posicion", position).Msg("interacción eliminada")
	return nil
}

// UpdateInteraction sobreescribe los campos no vacíos de la interacción en
// la posición indicada (1-based). Fecha y hora, si vienen, se validan.
func (s *Store) UpdateInteraction(taxCode string, position int, in dto.UpdateInteractionRequest) error {
	i := s.indexOf(taxCode)
	if i == -1 {
		return domain.ErrNotFound
	}
	c := s.customers[i]
	if position < 1 || position > len(c.Interactions) {
		return domain.ErrInvalidInput
	}
	if in.Date != "" && !validate.Date(in.Date) {
		return domain.ErrInvalidDate
	}
	if in.Time != "" && !validate.Time(in.Time) {
		return domain.ErrInvalidTime
	}
	target := &c.Interactions[position-1]
	if in.Date != "" {
		target.Date = in.Date
	}
	if in.Time != "" {
		target.Time = in.Time
	}
	if in.Kind != nil {
		target.Kind = *in.Kind
	}
	if in.Description != "" {
		target.Description = in.Description
	}
	if in.Agent != "" {
		target.Agent = in.Agent
	}
	if in.Outcome != "" {
		target.Outcome = in.Outcome
	}
	s.log.Info().Str("codigo_fiscal", taxCode).Int("posicion", position).Msg("interacción modificada")
	return nil
}

// SearchInteractions busca el término en todas las interacciones de todos
// los clientes: descripción, agente, resultado y nombre de tipo sin
// distinguir mayúsculas, fecha y hora literalmente. Con el almacén vacío
// devuelve ErrEmptyStore; con cero aciertos, ErrNoMatches.
func (s *Store) SearchInteractions(query string) ([]dto.InteractionMatch, error) {
	if len(s.customers) == 0 {
		return nil, domain.ErrEmptyStore
	}
	var out []dto.InteractionMatch
	for _, c := range s.customers {
		for j := range c.Interactions {
			if c.Interactions[j].ContainsText(query) {
				out = append(out, dto.InteractionMatch{
					CustomerName: c.FullName(),
					TaxCode:      c.TaxCode,
					Interaction:  interactionDetail(j, &c.Interactions[j]),
				})
			}
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNoMatches
	}
	return out, nil
}

func interactionDetail(index int, in *entity.Interaction) dto.InteractionDetail {
	return dto.InteractionDetail{
		Position:    index + 1,
		Date:        in.Date,
		Time:        in.Time,
		Kind:        in.Kind.String(),
		Description: in.Description,
		Agent:       in.Agent,
		Outcome:     in.Outcome,
	}
}
