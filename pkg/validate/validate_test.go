package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/insurapro-crm/pkg/validate"
)

// El validador comprueba únicamente la forma, no el rango de calendario:
// "31/02/2024" y "24:75" son válidos a propósito (compatibilidad con el
// comportamiento heredado).
func TestDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"fecha normal", "15/03/2024", true},
		{"sin chequeo de calendario", "31/02/2024", true},
		{"solo dígitos fuera de rango", "99/99/9999", true},
		{"formato ISO rechazado", "2024-02-31", false},
		{"separador incorrecto", "15-03-2024", false},
		{"demasiado corta", "1/3/2024", false},
		{"demasiado larga", "15/03/20244", false},
		{"letras en los dígitos", "aa/03/2024", false},
		{"vacía", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validate.Date(tc.input),
				"Date(%q) debe devolver %v", tc.input, tc.want)
		})
	}
}

func TestTime(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"hora normal", "23:59", true},
		{"sin chequeo de rango", "24:75", true},
		{"separador incorrecto", "24-75", false},
		{"demasiado corta", "9:30", false},
		{"demasiado larga", "09:300", false},
		{"letras en los dígitos", "ab:30", false},
		{"vacía", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validate.Time(tc.input),
				"Time(%q) debe devolver %v", tc.input, tc.want)
		})
	}
}
