package dto

import "github.com/jhoicas/insurapro-crm/internal/domain/entity"

// CreateCustomerRequest datos para alta de cliente. Llegan ya recogidos por
// la capa de orquestación como texto plano.
type CreateCustomerRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	TaxCode   string
	BirthDate string
}

// UpdateCustomerRequest modificación parcial: un campo vacío deja el valor
// actual intacto (no existe operación de "vaciar campo"). El código fiscal
// es inmutable y por eso no aparece aquí.
type UpdateCustomerRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	BirthDate string
}

// CustomerSummary fila de listado.
type CustomerSummary struct {
	Position     int // numeración de pantalla, 1-based
	FullName     string
	Email        string
	Phone        string
	TaxCode      string
	Interactions int
}

// CustomerDetail ficha completa de un cliente.
type CustomerDetail struct {
	Position     int
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	TaxCode      string
	BirthDate    string
	Interactions int
}

// CreateInteractionRequest datos para registrar una interacción. Date y Time
// se validan en el caso de uso antes de construir la entidad.
type CreateInteractionRequest struct {
	Date        string
	Time        string
	Kind        entity.Kind
	Description string
	Agent       string
	Outcome     string
}

// UpdateInteractionRequest modificación parcial de una interacción. Campos
// de texto vacíos no se tocan; Kind en nil conserva el tipo actual.
type UpdateInteractionRequest struct {
	Date        string
	Time        string
	Kind        *entity.Kind
	Description string
	Agent       string
	Outcome     string
}

// InteractionDetail ficha de una interacción para mostrar.
type InteractionDetail struct {
	Position    int // 1-based dentro de la secuencia del cliente
	Date        string
	Time        string
	Kind        string
	Description string
	Agent       string
	Outcome     string
}

// InteractionMatch resultado de búsqueda de interacciones: la interacción
// junto con el cliente propietario.
type InteractionMatch struct {
	CustomerName string
	TaxCode      string
	Interaction  InteractionDetail
}
