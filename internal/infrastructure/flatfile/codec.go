package flatfile

import (
	"strings"

	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
)

// Formato heredado: un registro por línea, campos unidos por '|' en orden
// fijo, sin cabecera, sin escape ni comillas. Un valor que contenga el
// delimitador corrompe ese registro al decodificar; es una limitación
// documentada del formato y se conserva por compatibilidad con los archivos
// de datos existentes.
const (
	fieldSep = "|"

	customerFieldCount    = 7 // nombre|apellido|email|teléfono|dirección|código fiscal|nacimiento
	interactionFieldCount = 7 // código fiscal|fecha|hora|tipo|descripción|agente|resultado
)

// encodeCustomer serializa un cliente como línea del archivo de clientes.
func encodeCustomer(c *entity.Customer) string {
	return strings.Join([]string{
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.TaxCode, c.BirthDate,
	}, fieldSep)
}

// encodeInteraction serializa una interacción etiquetada con el código fiscal
// de su cliente propietario.
func encodeInteraction(taxCode string, in *entity.Interaction) string {
	return strings.Join([]string{
		taxCode, in.Date, in.Time, in.Kind.String(), in.Description, in.Agent, in.Outcome,
	}, fieldSep)
}

// decodeCustomer reconstruye un cliente desde una línea. Devuelve false si la
// línea no produce exactamente el número de campos esperado.
func decodeCustomer(line string) (*entity.Customer, bool) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != customerFieldCount {
		return nil, false
	}
	return &entity.Customer{
		FirstName: fields[0],
		LastName:  fields[1],
		Email:     fields[2],
		Phone:     fields[3],
		Address:   fields[4],
		TaxCode:   fields[5],
		BirthDate: fields[6],
	}, true
}

// decodeInteraction reconstruye una interacción y el código fiscal de su
// propietario desde una línea. El nombre de tipo no reconocido cae en
// KindOther (fallback heredado); kindOK lo señala para que el llamador lo
// registre. Devuelve ok=false si el número de campos no coincide.
func decodeInteraction(line string) (taxCode string, in entity.Interaction, kindOK, ok bool) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != interactionFieldCount {
		return "", entity.Interaction{}, false, false
	}
	kind, kindOK := entity.ParseKind(fields[3])
	return fields[0], entity.Interaction{
		Date:        fields[1],
		Time:        fields[2],
		Kind:        kind,
		Description: fields[4],
		Agent:       fields[5],
		Outcome:     fields[6],
	}, kindOK, true
}
