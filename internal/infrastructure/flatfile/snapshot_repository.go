package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/insurapro-crm/internal/domain/entity"
	"github.com/jhoicas/insurapro-crm/internal/domain/repository"
	"github.com/jhoicas/insurapro-crm/pkg/logger"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación de SnapshotRepository sobre los dos archivos
// planos del formato heredado (clientes e interacciones).
type SnapshotRepo struct {
	customersPath    string
	interactionsPath string
	log              *logger.Logger
}

// NewSnapshotRepository construye el adaptador. Crea el directorio de datos
// si no existe.
func NewSnapshotRepository(customersPath, interactionsPath string, log *logger.Logger) (*SnapshotRepo, error) {
	if err := os.MkdirAll(filepath.Dir(customersPath), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &SnapshotRepo{
		customersPath:    customersPath,
		interactionsPath: interactionsPath,
		log:              log,
	}, nil
}

// Save escribe el estado completo en ambos archivos. Se intentan ambas
// aperturas; si cualquiera falla la operación entera se aborta como fallo
// de I/O, sin distinción de éxito parcial.
func (r *SnapshotRepo) Save(customers []*entity.Customer) error {
	fc, errC := os.Create(r.customersPath)
	fi, errI := os.Create(r.interactionsPath)
	if errC != nil || errI != nil {
		if fc != nil {
			fc.Close()
		}
		if fi != nil {
			fi.Close()
		}
		if errC != nil {
			return fmt.Errorf("abrir archivo de clientes: %w", errC)
		}
		return fmt.Errorf("abrir archivo de interacciones: %w", errI)
	}
	defer fc.Close()
	defer fi.Close()

	wc := bufio.NewWriter(fc)
	wi := bufio.NewWriter(fi)
	for _, c := range customers {
		fmt.Fprintln(wc, encodeCustomer(c))
		for i := range c.Interactions {
			fmt.Fprintln(wi, encodeInteraction(c.TaxCode, &c.Interactions[i]))
		}
	}
	if err := wc.Flush(); err != nil {
		return fmt.Errorf("escribir archivo de clientes: %w", err)
	}
	if err := wi.Flush(); err != nil {
		return fmt.Errorf("escribir archivo de interacciones: %w", err)
	}

	r.log.Debug().
		Int("clientes", len(customers)).
		Str("archivo", r.customersPath).
		Msg("estado guardado")
	return nil
}

// Load lee ambos archivos y reconstruye la colección. Líneas malformadas se
// saltan sin abortar la carga; interacciones cuyo código fiscal no coincide
// con ningún cliente cargado se descartan. Ambas tolerancias quedan
// registradas en el log para no ocultar pérdida de datos.
func (r *SnapshotRepo) Load() ([]*entity.Customer, error) {
	fc, err := os.Open(r.customersPath)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo de clientes: %w", err)
	}
	defer fc.Close()

	fi, err := os.Open(r.interactionsPath)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo de interacciones: %w", err)
	}
	defer fi.Close()

	var customers []*entity.Customer
	byTaxCode := make(map[string]*entity.Customer)
	var malformed int

	sc := bufio.NewScanner(fc)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		c, ok := decodeCustomer(line)
		if !ok {
			malformed++
			continue
		}
		customers = append(customers, c)
		if _, dup := byTaxCode[c.TaxCode]; !dup {
			byTaxCode[c.TaxCode] = c
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leer archivo de clientes: %w", err)
	}

	var orphans, unknownKinds int
	si := bufio.NewScanner(fi)
	for si.Scan() {
		line := si.Text()
		if line == "" {
			continue
		}
		taxCode, in, kindOK, ok := decodeInteraction(line)
		if !ok {
			malformed++
			continue
		}
		if !kindOK {
			unknownKinds++
		}
		owner, found := byTaxCode[taxCode]
		if !found {
			orphans++
			continue
		}
		owner.AddInteraction(in)
	}
	if err := si.Err(); err != nil {
		return nil, fmt.Errorf("leer archivo de interacciones: %w", err)
	}

	if malformed > 0 {
		r.log.Warn().Int("lineas", malformed).Msg("líneas malformadas descartadas durante la carga")
	}
	if orphans > 0 {
		r.log.Warn().Int("interacciones", orphans).Msg("interacciones huérfanas descartadas durante la carga")
	}
	if unknownKinds > 0 {
		r.log.Warn().Int("interacciones", unknownKinds).Msg("tipos de interacción no reconocidos, se usó el fallback Altro")
	}
	r.log.Debug().Int("clientes", len(customers)).Msg("estado cargado")
	return customers, nil
}
