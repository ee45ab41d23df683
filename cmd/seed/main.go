// seed prepara um banco novo: cria o primeiro administrador e importa o catálogo
// inicial a partir de uma planilha CSV exportada do sistema antigo.
//
// Uso:
//
//	go run ./cmd/seed admin -email admin@empresa.com -password segredo -name "Admin"
//	go run ./cmd/seed products [-latin1] catalogo.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portal-b2b/internal/application/auth"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/postgres"
	"github.com/jhoicas/portal-b2b/pkg/config"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: seed admin|products [opções]")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	switch os.Args[1] {
	case "admin":
		err = seedAdmin(ctx, pool, os.Args[2:], log)
	case "products":
		err = seedProducts(ctx, pool, os.Args[2:], log)
	default:
		err = fmt.Errorf("comando desconhecido: %s", os.Args[1])
	}
	if err != nil {
		log.Fatal().Err(err).Msg("seed falhou")
	}
}

// seedAdmin cria o administrador ou promove o usuário existente.
func seedAdmin(ctx context.Context, q postgres.Querier, args []string, log *logger.Logger) error {
	fs := flag.NewFlagSet("admin", flag.ExitOnError)
	email := fs.String("email", "", "e-mail do administrador")
	password := fs.String("password", "", "senha (mínimo 6 caracteres)")
	name := fs.String("name", "Administrador", "nome exibido")
	_ = fs.Parse(args)

	if *email == "" || len(*password) < auth.MinPasswordLength {
		return fmt.Errorf("informe -email e -password com pelo menos %d caracteres", auth.MinPasswordLength)
	}
	users := postgres.NewUserRepository(q)
	normalized := strings.ToLower(strings.TrimSpace(*email))
	hash, err := auth.HashPassword(*password)
	if err != nil {
		return err
	}

	existing, err := users.GetByEmail(ctx, normalized)
	if err != nil {
		return err
	}
	now := time.Now()
	if existing != nil {
		existing.Role = entity.RoleAdmin
		existing.Status = entity.StatusAtivo
		existing.UpdatedAt = now
		if err := users.Update(ctx, existing); err != nil {
			return err
		}
		if err := users.UpdatePassword(ctx, existing.ID, hash); err != nil {
			return err
		}
		log.Info().Str("email", normalized).Msg("usuário promovido a administrador")
		return nil
	}

	u := &entity.User{
		ID: uuid.NewString(), Email: normalized, PasswordHash: hash, Name: strings.TrimSpace(*name),
		Role: entity.RoleAdmin, Status: entity.StatusAtivo, CreatedAt: now, UpdatedAt: now,
	}
	if err := users.Create(ctx, u); err != nil {
		return err
	}
	log.Info().Str("email", normalized).Msg("administrador criado")
	return nil
}

// seedProducts importa o CSV; categorias inexistentes são criadas pelo nome.
func seedProducts(ctx context.Context, q postgres.Querier, args []string, log *logger.Logger) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	latin1 := fs.Bool("latin1", false, "arquivo em ISO-8859-1 (exportação do Excel)")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		return fmt.Errorf("informe o caminho do CSV")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := parseCatalog(f, *latin1)
	if err != nil {
		return err
	}

	categories := postgres.NewCategoryRepository(q)
	products := postgres.NewProductRepository(q)
	existing, err := categories.List(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]string, len(existing))
	for _, c := range existing {
		byName[strings.ToLower(c.Name)] = c.ID
	}

	now := time.Now()
	for _, r := range rows {
		catID, ok := byName[strings.ToLower(r.Category)]
		if !ok {
			c := &entity.Category{ID: uuid.NewString(), Name: r.Category, Subcategories: []string{}, CreatedAt: now, UpdatedAt: now}
			if err := categories.Create(ctx, c); err != nil {
				return err
			}
			catID = c.ID
			byName[strings.ToLower(r.Category)] = catID
		}
		p := &entity.Product{
			ID: uuid.NewString(), Name: r.Name, CategoryID: catID, Description: r.Description,
			Images: []string{}, MinQty: r.MinQty, SaleMultiple: r.SaleMultiple, BasePrice: r.Price,
			Variations: []entity.Variation{}, Status: entity.ProductStatusAtivo, CreatedAt: now, UpdatedAt: now,
		}
		if err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("produto %q: %w", r.Name, err)
		}
	}
	log.Info().Int("products", len(rows)).Int("categories", len(byName)).Msg("catálogo importado")
	return nil
}
