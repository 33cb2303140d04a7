package entity

import "strings"

// Customer representa un cliente de la aseguradora. TaxCode es la clave de
// identidad: única en todo el almacén e inmutable después de la creación.
// Las interacciones son propiedad exclusiva del cliente (contención directa,
// sin referencias compartidas).
type Customer struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	TaxCode      string
	BirthDate    string // texto libre, sin validación de formato
	Interactions []Interaction
}

// FullName devuelve nombre y apellido como una sola cadena.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// AddInteraction agrega una interacción al final de la secuencia.
func (c *Customer) AddInteraction(in Interaction) {
	c.Interactions = append(c.Interactions, in)
}

// RemoveInteraction elimina la interacción en la posición indicada.
// Índices fuera de rango se ignoran.
func (c *Customer) RemoveInteraction(index int) {
	if index < 0 || index >= len(c.Interactions) {
		return
	}
	c.Interactions = append(c.Interactions[:index], c.Interactions[index+1:]...)
}

// ContainsText indica si el cliente contiene el término de búsqueda.
// Nombre, apellido, email y teléfono se comparan sin distinguir mayúsculas;
// el código fiscal se compara literalmente.
func (c *Customer) ContainsText(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(c.FirstName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.LastName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Email), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Phone), q) {
		return true
	}
	return strings.Contains(c.TaxCode, query)
}
