// migrate aplica ou desfaz as migrações do banco.
//
// Uso: go run ./cmd/migrate [up|down|version|force N]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/portal-b2b/internal/infrastructure/postgres"
	"github.com/jhoicas/portal-b2b/pkg/config"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("migrate")

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar migrações")
	}
	defer m.Close()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		var (
			v     uint
			dirty bool
		)
		v, dirty, err = m.Version()
		if err == nil {
			fmt.Printf("versão %d (dirty=%t)\n", v, dirty)
		}
	case "force":
		if len(os.Args) < 3 {
			log.Fatal().Msg("uso: migrate force N")
		}
		n, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			log.Fatal().Err(convErr).Msg("versão inválida")
		}
		err = m.Force(n)
	default:
		log.Fatal().Str("cmd", cmd).Msg("comando desconhecido (up|down|version|force N)")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("migração falhou")
	}
}
