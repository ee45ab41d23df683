package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/portal-b2b/internal/application/analytics"
	"github.com/jhoicas/portal-b2b/internal/application/auth"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ordering"
	"github.com/jhoicas/portal-b2b/internal/application/session"
	"github.com/jhoicas/portal-b2b/internal/application/usecase"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/mail"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/memory"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/portal-b2b/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/portal-b2b/pkg/jwt"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "portal-b2b-test"
	testExpMin    = 60
	testPassword  = "senha123"
)

type harness struct {
	app    *fiber.App
	store  *memory.Store
	health map[string]apphttp.HealthCheck
}

// newHarness monta a API completa sobre os stores em memória.
func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logger.Nop()
	store := memory.NewStore()
	blacklist := memory.NewTokenBlacklist()
	sessions := session.NewService(store.Users, memory.NewProfileCache(), blacklist, testJWTSecret, log)

	authUC := auth.NewAuthUseCase(auth.Deps{
		Users:     store.Users,
		Sessions:  sessions,
		Blacklist: blacklist,
		Resets:    memory.NewResetTokenStore(),
		Mailer:    mail.NewLogMailer(log),
		JWT:       auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		BaseURL:   "http://localhost:3000",
		Log:       log,
	})
	carts := memory.NewCartStore(log)
	h := &harness{store: store, health: map[string]apphttp.HealthCheck{}}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.FiberErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		Sessions:    sessions,
		AuthUC:      authUC,
		ProfileUC:   usecase.NewProfileUseCase(store.Users, sessions, 5*time.Minute),
		CartUC:      ordering.NewCartUseCase(carts, store.Products, log),
		CheckoutUC:  ordering.NewCheckoutUseCase(carts, store.Orders, store.Clients, memory.NewIdempotencyStore(), nil, log),
		OrderUC:     ordering.NewOrderUseCase(store.Orders, store, store.Clients, pdf.NewMarotoPDFGenerator("Portal B2B", "http://localhost:3000"), order.PolicyStrict, log),
		ClientUC:    usecase.NewClientUseCase(store.Clients, store, sessions, nil, authUC, log),
		ProductUC:   usecase.NewProductUseCase(store.Products, store.Categories, nil, log),
		CategoryUC:  usecase.NewCategoryUseCase(store.Categories),
		SettingsUC:  usecase.NewSettingsUseCase(store.Settings),
		UserUC:      usecase.NewUserUseCase(store.Users, sessions, log),
		DashboardUC: analytics.NewDashboardUseCase(store.Users, store.Orders),
		ReportUC:    analytics.NewReportUseCase(store.Orders),
		Health:      h.health,
	})
	h.app = app
	return h
}

// seedUser grava um usuário e devolve o header Authorization correspondente.
func (h *harness) seedUser(t *testing.T, email, role, status, clientID string) (*entity.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	u := &entity.User{
		ID: uuid.NewString(), Email: email, PasswordHash: string(hash), Name: "Usuário " + role,
		Role: role, Status: status, ClientID: clientID, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, h.store.Users.Create(context.Background(), u))
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.Role, testIssuer, testExpMin)
	require.NoError(t, err)
	return u, "Bearer " + tok
}

// do dispara a requisição; body pode ser nil, []byte ou qualquer valor serializável em JSON.
func (h *harness) do(t *testing.T, method, path, authHeader string, body interface{}, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e
}
