package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/insurapro-crm/internal/application/crm"
	"github.com/jhoicas/insurapro-crm/internal/domain/repository"
	"github.com/jhoicas/insurapro-crm/internal/infrastructure/flatfile"
	"github.com/jhoicas/insurapro-crm/internal/infrastructure/jsonfile"
	"github.com/jhoicas/insurapro-crm/internal/infrastructure/sqlite"
	"github.com/jhoicas/insurapro-crm/internal/interfaces/cli"
	"github.com/jhoicas/insurapro-crm/pkg/config"
	"github.com/jhoicas/insurapro-crm/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	// El directorio de datos debe existir antes de abrir el archivo de log
	// que vive dentro de él.
	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}

	log, err := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer log.Close()
	log = log.WithField("sesion", uuid.New().String())
	log.Info().
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	repo, closeRepo, err := buildRepository(cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	store := crm.NewStore(repo, log)
	switch err := store.Load(); {
	case err == nil:
		fmt.Println("Datos cargados con éxito.")
	case errors.Is(err, fs.ErrNotExist):
		fmt.Println("No se encontraron datos existentes. Empieza agregando clientes.")
	default:
		log.Error().Err(err).Msg("carga inicial fallida")
		fmt.Println("Aviso: no se pudieron cargar los datos:", err)
	}

	menu, err := cli.New(store, log)
	if err != nil {
		return err
	}
	defer menu.Close()
	return menu.Run()
}

// buildRepository selecciona el adaptador de persistencia según la
// configuración. "legacy" es el predeterminado: los archivos planos
// compatibles con los datos del sistema original.
func buildRepository(cfg *config.Config, log *logger.Logger) (repository.SnapshotRepository, func(), error) {
	noop := func() {}
	switch cfg.Storage.Backend {
	case "legacy", "":
		repo, err := flatfile.NewSnapshotRepository(cfg.Storage.CustomersPath(), cfg.Storage.InteractionsPath(), log)
		return repo, noop, err
	case "jsonl":
		repo, err := jsonfile.NewSnapshotRepository(cfg.Storage.JSONLPath(), log)
		return repo, noop, err
	case "sqlite":
		repo, err := sqlite.NewSnapshotRepository(cfg.Storage.SQLitePath(), log)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("backend de almacenamiento desconocido: %q", cfg.Storage.Backend)
	}
}
