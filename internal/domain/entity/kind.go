package entity

// Kind categoriza una interacción con el cliente.
type Kind int

const (
	KindAppointment Kind = iota
	KindContract
	KindCall
	KindEmail
	KindOther
)

// Los nombres visibles son los literales italianos del formato heredado:
// los archivos de datos existentes los contienen tal cual y deben seguir
// siendo legibles sin migración.
var kindNames = map[Kind]string{
	KindAppointment: "Appuntamento",
	KindContract:    "Contratto",
	KindCall:        "Telefonata",
	KindEmail:       "Email",
	KindOther:       "Altro",
}

// String devuelve el nombre visible del tipo de interacción.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindOther]
}

// AllKinds devuelve los tipos en el orden del menú heredado.
func AllKinds() []Kind {
	return []Kind{KindAppointment, KindContract, KindCall, KindEmail, KindOther}
}

// ParseKind mapea un nombre visible a su variante. Es total: cualquier
// cadena no reconocida devuelve (KindOther, false) para que el llamador
// decida si acepta el fallback heredado o lo reporta.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if s == name {
			return k, true
		}
	}
	return KindOther, false
}
