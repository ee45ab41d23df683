package postgres

import (
	"embed"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator aplica as migrações SQL embutidas no binário.
type Migrator struct {
	m   *migrate.Migrate
	log *logger.Logger
}

// NewMigrator cria o migrator para a URL do banco (postgres:// ou postgresql://).
func NewMigrator(databaseURL string, log *logger.Logger) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("fonte de migrações: %w", err)
	}
	dbURL, err := migrateURL(databaseURL)
	if err != nil {
		return nil, err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return nil, fmt.Errorf("instância de migração: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

// Up aplica todas as migrações pendentes.
func (m *Migrator) Up() error {
	err := m.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.log.Info().Msg("nenhuma migração pendente")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migração up: %w", err)
	}
	version, dirty, _ := m.Version()
	m.log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migrações aplicadas")
	return nil
}

// Down desfaz todas as migrações.
func (m *Migrator) Down() error {
	err := m.m.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("migração down: %w", err)
	}
	m.log.Info().Msg("migrações desfeitas")
	return nil
}

// Version devolve a versão atual; 0 se nenhuma migração foi aplicada.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("versão da migração: %w", err)
	}
	return version, dirty, nil
}

// Force marca a versão sem executar nada (recuperação de estado "dirty").
func (m *Migrator) Force(version int) error {
	m.log.Warn().Int("version", version).Msg("forçando versão de migração")
	if err := m.m.Force(version); err != nil {
		return fmt.Errorf("forçar versão %d: %w", version, err)
	}
	return nil
}

// Close libera fonte e conexão.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

// migrateURL troca o esquema pelo do driver pgx/v5 do golang-migrate.
func migrateURL(databaseURL string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("DATABASE_URL inválida: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql", "pgx5":
		u.Scheme = "pgx5"
	default:
		return "", fmt.Errorf("esquema de banco não suportado: %q", u.Scheme)
	}
	return u.String(), nil
}
