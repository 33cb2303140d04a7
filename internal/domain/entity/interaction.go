package entity

import "strings"

// Interaction representa un contacto fechado con un cliente (cita, contrato,
// llamada, email u otro). No tiene existencia propia: vive únicamente dentro
// de la secuencia del cliente que la posee.
type Interaction struct {
	Date        string // DD/MM/YYYY, validada en el punto de entrada
	Time        string // HH:MM, validada en el punto de entrada
	Kind        Kind
	Description string
	Agent       string
	Outcome     string
}

// ContainsText indica si la interacción contiene el término de búsqueda.
// Descripción, agente, resultado y nombre del tipo se comparan sin distinguir
// mayúsculas; fecha y hora se comparan literalmente.
func (i *Interaction) ContainsText(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(i.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(i.Agent), q) {
		return true
	}
	if strings.Contains(strings.ToLower(i.Outcome), q) {
		return true
	}
	if strings.Contains(strings.ToLower(i.Kind.String()), q) {
		return true
	}
	if strings.Contains(i.Date, query) {
		return true
	}
	return strings.Contains(i.Time, query)
}
