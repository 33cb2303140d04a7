package crm

import (
	"github.com/jhoicas/insurapro-crm/internal/application/dto"
	"github.com/jhoicas/insurapro-crm/internal/domain"
	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
)

// AddCustomer da de alta un cliente. Rechaza con ErrDuplicate si ya existe
// uno con el mismo código fiscal; la unicidad se comprueba solo aquí, nunca
// en la modificación (el código fiscal es inmutable).
func (s *Store) AddCustomer(in dto.CreateCustomerRequest) error {
	if in.TaxCode == "" {
		return domain.ErrInvalidInput
	}
	if s.indexOf(in.TaxCode) != -1 {
		s.log.Warn().Str("codigo_fiscal", in.TaxCode).Msg("alta rechazada: código fiscal duplicado")
		return domain.ErrDuplicate
	}
	s.customers = append(s.customers, &entity.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		TaxCode:   in.TaxCode,
		BirthDate: in.BirthDate,
	})
	s.log.Info().Str("codigo_fiscal", in.TaxCode).Msg("cliente agregado")
	return nil
}

// FindByTaxCode busca un cliente por código fiscal.
func (s *Store) FindByTaxCode(taxCode string) (*dto.CustomerDetail, error) {
	i := s.indexOf(taxCode)
	if i == -1 {
		return nil, domain.ErrNotFound
	}
	return s.detailAt(i), nil
}

// FindByName busca un cliente por nombre y apellido (coincidencia exacta en
// ambos campos, primer acierto).
func (s *Store) FindByName(firstName, lastName string) (*dto.CustomerDetail, error) {
	for i, c := range s.customers {
		if c.FirstName == firstName && c.LastName == lastName {
			return s.detailAt(i), nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListAll devuelve el resumen de todos los clientes en orden de inserción.
// Con el almacén vacío devuelve ErrEmptyStore (aviso suave, no un fallo).
func (s *Store) ListAll() ([]dto.CustomerSummary, error) {
	if len(s.customers) == 0 {
		return nil, domain.ErrEmptyStore
	}
	out := make([]dto.CustomerSummary, 0, len(s.customers))
	for i, c := range s.customers {
		out = append(out, dto.CustomerSummary{
			Position:     i + 1,
			FullName:     c.FullName(),
			Email:        c.Email,
			Phone:        c.Phone,
			TaxCode:      c.TaxCode,
			Interactions: len(c.Interactions),
		})
	}
	return out, nil
}

// UpdateCustomer sobreescribe los campos no vacíos de la petición; los
// vacíos conservan el valor actual.
func (s *Store) UpdateCustomer(taxCode string, in dto.UpdateCustomerRequest) error {
	i := s.indexOf(taxCode)
	if i == -1 {
		return domain.ErrNotFound
	}
	c := s.customers[i]
	if in.FirstName != "" {
		c.FirstName = in.FirstName
	}
	if in.LastName != "" {
		c.LastName = in.LastName
	}
	if in.Email != "" {
		c.Email = in.Email
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if in.Address != "" {
		c.Address = in.Address
	}
	if in.BirthDate != "" {
		c.BirthDate = in.BirthDate
	}
	s.log.Info().Str("codigo_fiscal", taxCode).Msg("cliente modificado")
	return nil
}

// IsDeleteConfirmed reconoce el token afirmativo heredado: solo "si", "Si" y
// "SI" confirman; cualquier otra entrada, incluida la vacía, es un rechazo.
func IsDeleteConfirmed(confirm string) bool {
	return confirm == "si" || confirm == "Si" || confirm == "SI"
}

// DeleteCustomer elimina al cliente y todas sus interacciones como paso
// atómico, condicionado al token de confirmación. Devuelve deleted=false sin
// error cuando la confirmación no es afirmativa.
func (s *Store) DeleteCustomer(taxCode, confirm string) (deleted bool, err error) {
	i := s.indexOf(taxCode)
	if i == -1 {
		return false, domain.ErrNotFound
	}
	if !IsDeleteConfirmed(confirm) {
		s.log.Debug().Str("codigo_fiscal", taxCode).Msg("eliminación cancelada por el operador")
		return false, nil
	}
	s.customers = append(s.customers[:i], s.customers[i+1:]...)
	s.log.Info().Str("codigo_fiscal", taxCode).Msg("cliente eliminado")
	return true, nil
}

// SearchCustomers busca el término en nombre, apellido, email y teléfono sin
// distinguir mayúsculas, y literalmente en el código fiscal. Conserva el
// orden de la colección. Con el almacén vacío devuelve ErrEmptyStore; con
// cero aciertos, ErrNoMatches.
func (s *Store) SearchCustomers(query string) ([]dto.CustomerDetail, error) {
	if len(s.customers) == 0 {
		return nil, domain.ErrEmptyStore
	}
	var out []dto.CustomerDetail
	for i, c := range s.customers {
		if c.ContainsText(query) {
			out = append(out, *s.detailAt(i))
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNoMatches
	}
	return out, nil
}

func (s *Store) detailAt(i int) *dto.CustomerDetail {
	c := s.customers[i]
	return &dto.CustomerDetail{
		Position:     i + 1,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		TaxCode:      c.TaxCode,
		BirthDate:    c.BirthDate,
		Interactions: len(c.Interactions),
	}
}
