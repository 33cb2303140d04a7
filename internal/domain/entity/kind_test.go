package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
)

func TestParseKind_NombresHeredados(t *testing.T) {
	for _, k := range entity.AllKinds() {
		parsed, ok := entity.ParseKind(k.String())
		assert.True(t, ok, "el nombre visible %q debe reconocerse", k.String())
		assert.Equal(t, k, parsed, "el round-trip nombre → variante debe ser estable")
	}
}

func TestParseKind_DesconocidoCaeEnAltro(t *testing.T) {
	kind, ok := entity.ParseKind("Reunión")
	assert.False(t, ok, "un nombre no reconocido debe señalarse")
	assert.Equal(t, entity.KindOther, kind, "el fallback heredado es Altro")

	kind, ok = entity.ParseKind("")
	assert.False(t, ok)
	assert.Equal(t, entity.KindOther, kind)

	// La comparación es sensible a mayúsculas, como en el formato original.
	_, ok = entity.ParseKind("appuntamento")
	assert.False(t, ok, "los nombres heredados se comparan literalmente")
}
