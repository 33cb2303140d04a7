package repository

import "github.com/jhoicas/insurapro-crm/internal/domain/entity"

// SnapshotRepository define el puerto de persistencia del almacén de clientes.
// El estado se guarda y se carga completo en una sola operación; el formato
// concreto (archivos planos heredados, JSON por línea, SQLite) es detalle del
// adaptador, de modo que el almacén nunca toca la codificación.
type SnapshotRepository interface {
	// Save serializa todos los clientes con sus interacciones. Si la escritura
	// falla, el error es de sistema (I/O), nunca de validación.
	Save(customers []*entity.Customer) error

	// Load reconstruye la colección completa. Si el soporte de datos no puede
	// abrirse el error envuelve la causa (fs.ErrNotExist en el primer
	// arranque); el llamador decide cómo tratarlo. Registros malformados o
	// interacciones huérfanas se descartan según la política tolerante del
	// formato heredado.
	Load() ([]*entity.Customer, error)
}
