package http_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	apphttp "github.com/jhoicas/portal-b2b/internal/interfaces/http"
)

// ─── Auth ─────────────────────────────────────────────────────────────────────

func TestRegister_CriaPendenteERedirecionaParaPending(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Loja Nova", Email: "Contato@LojaNova.com", Password: "segredo1",
		CNPJ: "11.222.333/0001-81", Phone: "11999990000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.AuthResponse
	decode(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "/pending", body.Redirect)
	assert.Equal(t, entity.StatusAguardandoAprovacao, body.User.Status)
	assert.Equal(t, "contato@lojanova.com", body.User.Email)
}

func TestRegister_Validacao(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Loja", Email: "nao-e-email", Password: "segredo1", CNPJ: "11222333000181", Phone: "11999990000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Equal(t, "email: e-mail inválido", body.Message)
}

func TestRegister_CNPJIncompleto(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Loja", Email: "a@b.com", Password: "segredo1", CNPJ: "11.222.333", Phone: "11999990000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "cnpj: CNPJ deve ter 14 dígitos", decodeError(t, resp).Message)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	h := newHarness(t)
	h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "")

	resp := h.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Zé", Email: "ze@loja.com", Password: "segredo1", CNPJ: "11222333000181", Phone: "11999990000",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Este e-mail já está em uso.", decodeError(t, resp).Message)
}

func TestRegister_CorpoInvalido(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodPost, "/api/auth/register", "", []byte("{quebrado"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, decodeError(t, resp).Code)
}

func TestLogin(t *testing.T) {
	h := newHarness(t)
	h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")
	h.seedUser(t, "fora@loja.com", entity.RoleCliente, entity.StatusInativo, "")

	t.Run("senha errada", func(t *testing.T) {
		resp := h.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ze@loja.com", Password: "errada"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "E-mail ou senha incorretos.", decodeError(t, resp).Message)
	})
	t.Run("conta desativada", func(t *testing.T) {
		resp := h.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "fora@loja.com", Password: testPassword})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Sua conta está desativada.", decodeError(t, resp).Message)
	})
	t.Run("ok com destino pedido", func(t *testing.T) {
		resp := h.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ze@loja.com", Password: testPassword, Redirect: "/app/orders"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body dto.AuthResponse
		decode(t, resp, &body)
		assert.Equal(t, "/app/orders", body.Redirect)
	})
}

func TestLogout_RevogaToken(t *testing.T) {
	h := newHarness(t)
	_, bearer := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")

	resp := h.do(t, http.MethodPost, "/api/auth/logout", bearer, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/api/profile", bearer, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestForgotPassword_EmailInexistenteResponde204(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodPost, "/api/auth/forgot-password", "", dto.ForgotPasswordRequest{Email: "ninguem@x.com"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ─── Perfil ───────────────────────────────────────────────────────────────────

func TestProfile_TrocaDeSenha(t *testing.T) {
	h := newHarness(t)
	_, bearer := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")

	resp := h.do(t, http.MethodPut, "/api/profile/password", bearer, dto.ChangePasswordRequest{
		CurrentPassword: testPassword, NewPassword: "nova123", ConfirmPassword: "outra123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "As senhas não coincidem.", decodeError(t, resp).Message)

	resp = h.do(t, http.MethodPut, "/api/profile/password", bearer, dto.ChangePasswordRequest{
		CurrentPassword: testPassword, NewPassword: "nova123", ConfirmPassword: "nova123",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ─── Carrinho e checkout ──────────────────────────────────────────────────────

func (h *harness) seedProduct(t *testing.T, id, price string, minQty, multiple int) {
	t.Helper()
	require.NoError(t, h.store.Products.Create(context.Background(), &entity.Product{
		ID: id, Name: "Produto " + id, CategoryID: "cat1", BasePrice: decimal.RequireFromString(price),
		MinQty: minQty, SaleMultiple: multiple, Status: entity.ProductStatusAtivo,
	}))
}

func TestCarrinhoECheckout(t *testing.T) {
	h := newHarness(t)
	h.seedProduct(t, "p1", "10.50", 2, 2)
	_, bearer := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")

	resp := h.do(t, http.MethodPost, "/api/app/cart/items", bearer, dto.AddCartItemRequest{ProductID: "p1", Quantity: 3})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Este produto é vendido em múltiplos de 2", decodeError(t, resp).Message)

	resp = h.do(t, http.MethodPost, "/api/app/cart/items", bearer, dto.AddCartItemRequest{ProductID: "nao-existe", Quantity: 2})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.do(t, http.MethodPost, "/api/app/cart/items", bearer, dto.AddCartItemRequest{ProductID: "p1", Quantity: 4})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cart dto.CartResponse
	decode(t, resp, &cart)
	assert.Equal(t, 4, cart.TotalQuantity)
	assert.True(t, decimal.RequireFromString("42").Equal(cart.Subtotal))

	checkout := dto.CheckoutRequest{Freight: "15,50", CEP: "01310-100"}
	resp = h.do(t, http.MethodPost, "/api/app/checkout", bearer, checkout, apphttp.HeaderIdempotencyKey, "k1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first dto.OrderResponse
	decode(t, resp, &first)
	assert.Equal(t, entity.OrderNovo, first.Status)
	assert.True(t, decimal.RequireFromString("57.5").Equal(first.Total))

	// mesma chave devolve o mesmo pedido
	resp = h.do(t, http.MethodPost, "/api/app/checkout", bearer, checkout, apphttp.HeaderIdempotencyKey, "k1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var replay dto.OrderResponse
	decode(t, resp, &replay)
	assert.Equal(t, first.ID, replay.ID)

	// carrinho foi limpo
	resp = h.do(t, http.MethodPost, "/api/app/checkout", bearer, checkout)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeEmptyCart, decodeError(t, resp).Code)

	resp = h.do(t, http.MethodGet, "/api/app/orders", bearer, nil)
	var mine []dto.OrderResponse
	decode(t, resp, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}

func TestCarrinho_AlterarERemover(t *testing.T) {
	h := newHarness(t)
	h.seedProduct(t, "p1", "5", 0, 0)
	_, bearer := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")

	h.do(t, http.MethodPost, "/api/app/cart/items", bearer, dto.AddCartItemRequest{ProductID: "p1", Quantity: 1})

	resp := h.do(t, http.MethodPatch, "/api/app/cart/items/p1", bearer, dto.UpdateCartItemRequest{Quantity: 7})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cart dto.CartResponse
	decode(t, resp, &cart)
	assert.Equal(t, 7, cart.TotalQuantity)

	resp = h.do(t, http.MethodPatch, "/api/app/cart/items/outro", bearer, dto.UpdateCartItemRequest{Quantity: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.do(t, http.MethodDelete, "/api/app/cart/items/p1", bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart = dto.CartResponse{}
	decode(t, resp, &cart)
	assert.Empty(t, cart.Items)
}

// ─── Pedidos (back-office) ────────────────────────────────────────────────────

func (h *harness) seedOrder(t *testing.T, id, userID string, status entity.OrderStatus) {
	t.Helper()
	now := time.Now()
	require.NoError(t, h.store.Orders.Create(context.Background(), &entity.Order{
		ID: id, UserID: userID, ClientName: "Loja do Zé", Status: status,
		Items:     []entity.OrderItem{{ProductID: "p1", Name: "Camiseta", Quantity: 2, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(20)}},
		Total:     decimal.NewFromInt(20),
		History:   []entity.HistoryEntry{{Status: status, ChangedBy: "Cliente", Timestamp: now}},
		CreatedAt: now, UpdatedAt: now,
	}))
}

func TestAdminPedidos_StatusEFrete(t *testing.T) {
	h := newHarness(t)
	cliente, _ := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")
	h.seedOrder(t, "o1", cliente.ID, entity.OrderNovo)

	resp := h.do(t, http.MethodPatch, "/api/admin/orders/o1/status", admin, dto.UpdateOrderStatusRequest{Status: "aprovado"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var o dto.OrderResponse
	decode(t, resp, &o)
	assert.Equal(t, entity.OrderAprovado, o.Status)

	// strict: não recua duas etapas
	resp = h.do(t, http.MethodPatch, "/api/admin/orders/o1/status", admin, dto.UpdateOrderStatusRequest{Status: "novo"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidTransition, decodeError(t, resp).Code)

	resp = h.do(t, http.MethodPatch, "/api/admin/orders/o1/freight", admin, dto.UpdateFreightRequest{Freight: "15,50"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	o = dto.OrderResponse{}
	decode(t, resp, &o)
	assert.True(t, decimal.RequireFromString("15.5").Equal(o.Freight))

	resp = h.do(t, http.MethodPatch, "/api/admin/orders/nao-existe/status", admin, dto.UpdateOrderStatusRequest{Status: "aprovado"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminPedidos_FiltroInvalido(t *testing.T) {
	h := newHarness(t)
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")

	resp := h.do(t, http.MethodGet, "/api/admin/orders?filter=arquivados", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/api/admin/orders?filter=all", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminPedidos_Kanban(t *testing.T) {
	h := newHarness(t)
	cliente, _ := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")
	_, equipe := h.seedUser(t, "equipe@portal.com", entity.RoleEquipe, entity.StatusAtivo, "")
	h.seedOrder(t, "o1", cliente.ID, entity.OrderNovo)

	resp := h.do(t, http.MethodPost, "/api/admin/orders/board/moves", equipe, dto.BoardMovesRequest{
		Moves: []dto.BoardMove{{OrderID: "o1", To: "em_separacao"}, {OrderID: "o2", To: "aprovado"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var results []dto.BoardMoveResult
	decode(t, resp, &results)
	require.Len(t, results, 2)
	assert.Equal(t, dto.MoveCommitted, results[0].State)
	assert.Equal(t, entity.OrderNovo, results[0].From)
	assert.Equal(t, dto.MoveFailed, results[1].State)
	assert.Equal(t, "Pedido não encontrado.", results[1].Error)

	resp = h.do(t, http.MethodPost, "/api/admin/orders/board/moves", equipe, dto.BoardMovesRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/api/admin/orders/board", equipe, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cols []dto.BoardColumn
	decode(t, resp, &cols)
	assert.NotEmpty(t, cols)
}

func TestPedido_ClienteNaoVePedidoAlheio(t *testing.T) {
	h := newHarness(t)
	dono, _ := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")
	_, outro := h.seedUser(t, "maria@loja.com", entity.RoleCliente, entity.StatusAtivo, "c2")
	h.seedOrder(t, "o1", dono.ID, entity.OrderNovo)

	resp := h.do(t, http.MethodGet, "/api/app/orders/o1", outro, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/api/app/orders/o1/pdf", outro, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ─── Cadastros ────────────────────────────────────────────────────────────────

func TestClientes_ValidacaoDeLimiteDeCredito(t *testing.T) {
	h := newHarness(t)
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")

	in := dto.ClientRequest{
		RazaoSocial: "Loja do Zé LTDA", CNPJ: "11.222.333/0001-81", Phone: "1133334444", ContactName: "Zé",
		UF: "SP", PriceTableID: "1", Status: entity.StatusAtivo, CreditLimit: decimal.NewFromInt(-1),
	}
	resp := h.do(t, http.MethodPost, "/api/admin/clients", admin, in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "creditLimit: deve ser maior ou igual a 0", decodeError(t, resp).Message)

	in.CreditLimit = decimal.NewFromInt(5000)
	resp = h.do(t, http.MethodPost, "/api/admin/clients", admin, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var c dto.ClientResponse
	decode(t, resp, &c)
	assert.Equal(t, "11222333000181", c.CNPJ)

	resp = h.do(t, http.MethodGet, "/api/admin/clients?search=11.222.333/0001-81", admin, nil)
	var list []dto.ClientResponse
	decode(t, resp, &list)
	assert.Len(t, list, 1)
}

func TestClientes_ExcluirDescartaSessaoDosUsuariosVinculados(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	clientID := "11111111-1111-1111-1111-111111111111"
	now := time.Now()
	require.NoError(t, h.store.Clients.Create(ctx, &entity.Client{
		ID: clientID, RazaoSocial: "Loja do Zé LTDA", CNPJ: "11222333000181", Status: entity.StatusAtivo,
		CreatedAt: now, UpdatedAt: now,
	}))
	ze, bearer := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, clientID)
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")

	// perfil entra no cache com o vínculo
	resp := h.do(t, http.MethodGet, "/api/session", bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var before dto.SessionResponse
	decode(t, resp, &before)
	require.NotNil(t, before.User)
	assert.Equal(t, clientID, before.User.ClientID)

	resp = h.do(t, http.MethodDelete, "/api/admin/clients/"+clientID, admin, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	stored, err := h.store.Users.GetByID(ctx, ze.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ClientID)

	resp = h.do(t, http.MethodGet, "/api/session", bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var after dto.SessionResponse
	decode(t, resp, &after)
	require.NotNil(t, after.User)
	assert.Empty(t, after.User.ClientID)

	resp = h.do(t, http.MethodDelete, "/api/admin/clients/"+clientID, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProdutos_CriarEUploadSemStorage(t *testing.T) {
	h := newHarness(t)
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")

	resp := h.do(t, http.MethodPost, "/api/admin/products", admin, dto.ProductRequest{Name: "Sem categoria"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Preencha os campos obrigatórios (Nome, Categoria).", decodeError(t, resp).Message)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="files"; filename="foto.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products/images", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", admin)
	res, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestCategoriasEConfiguracoes(t *testing.T) {
	h := newHarness(t)
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")

	resp := h.do(t, http.MethodPost, "/api/admin/categories", admin, dto.CategoryRequest{Name: "Camisetas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cat dto.CategoryResponse
	decode(t, resp, &cat)

	resp = h.do(t, http.MethodPost, "/api/admin/categories/"+cat.ID+"/subcategories", admin, dto.SubcategoryRequest{Name: "Manga longa"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = h.do(t, http.MethodDelete, "/api/admin/categories/"+cat.ID+"/subcategories/Manga%20longa", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cat = dto.CategoryResponse{}
	decode(t, resp, &cat)
	assert.Empty(t, cat.Subcategories)

	resp = h.do(t, http.MethodPost, "/api/admin/settings/carriers/options", admin, dto.AddOptionRequest{Label: "Jadlog"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var s dto.SettingsResponse
	decode(t, resp, &s)
	require.Len(t, s.Carriers, 1)

	resp = h.do(t, http.MethodGet, "/api/settings/options?list=carriers", admin, nil)
	var opts dto.OptionsResponse
	decode(t, resp, &opts)
	assert.Len(t, opts.Options, 1)

	resp = h.do(t, http.MethodGet, "/api/settings/options?list=outra", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsuarios_AprovarInvalidaCache(t *testing.T) {
	h := newHarness(t)
	pendente, bearer := h.seedUser(t, "novo@loja.com", entity.RoleCliente, entity.StatusAguardandoAprovacao, "")
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")

	// perfil entra no cache como pendente
	resp := h.do(t, http.MethodGet, "/api/app/cart", bearer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = h.do(t, http.MethodPatch, "/api/admin/users/"+pendente.ID+"/status", admin, dto.UpdateUserStatusRequest{Status: entity.StatusAtivo})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/api/app/cart", bearer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.do(t, http.MethodPatch, "/api/admin/users/"+pendente.ID+"/role", admin, dto.UpdateUserRoleRequest{Role: "dono"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRelatorios(t *testing.T) {
	h := newHarness(t)
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")

	resp := h.do(t, http.MethodGet, "/api/admin/reports?days=15", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/api/admin/reports?days=90", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var r dto.ReportResponse
	decode(t, resp, &r)
	assert.Equal(t, 90, r.Days)

	resp = h.do(t, http.MethodGet, "/api/admin/dashboard", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ─── Health ───────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	h := newHarness(t)
	h.health["db"] = func(context.Context) error { return nil }

	resp := h.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	h.health["redis"] = func(context.Context) error { return errors.New("connection refused") }
	resp = h.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
