// Package validate contiene validadores de forma para los literales de fecha
// y hora que viajan por el sistema como texto. Solo se comprueba la forma
// (separadores y dígitos), no el rango de calendario: el formato heredado
// acepta "99/99/9999" y así debe seguir siendo.
package validate

// Date valida la forma DD/MM/YYYY: longitud 10, '/' en las posiciones 2 y 5,
// dígitos en el resto.
func Date(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 2 || i == 5 {
			if s[i] != '/' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Time valida la forma HH:MM: longitud 5, ':' en la posición 2, dígitos en
// el resto.
func Time(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < 5; i++ {
		if i == 2 {
			if s[i] != ':' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
