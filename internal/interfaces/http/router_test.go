package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-demo/internal/application/auth"
	"github.com/jhoicas/tienda-demo/internal/application/notification"
	apporder "github.com/jhoicas/tienda-demo/internal/application/order"
	"github.com/jhoicas/tienda-demo/internal/application/ports"
	"github.com/jhoicas/tienda-demo/internal/application/usecase"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-demo/internal/infrastructure/metrics"
	"github.com/jhoicas/tienda-demo/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/tienda-demo/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-demo/pkg/jwt"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

type failingSender struct{}

func (failingSender) Send(context.Context, ports.EmailMessage) (ports.EmailResult, error) {
	return ports.EmailResult{}, errors.New("connection refused")
}

// client simula un navegador: guarda la cookie de sesión entre peticiones.
type client struct {
	app     *fiber.App
	ledger  *memory.OrderLedger
	metrics *metrics.Recorder
	cookie  string
}

// newClient construye la aplicación completa en memoria. sender nil = modo mock.
func newClient(t *testing.T, sender ports.EmailSender) *client {
	t.Helper()
	log := logger.Nop()
	ledger := memory.NewOrderLedger()
	catalog := memory.NewCatalogRepository(memory.DefaultProducts()...)
	dispatcher := notification.NewDispatcher(sender, "shop@example.com", time.Second, log)
	rec := metrics.NewRecorder()

	app := apphttp.NewApp(apphttp.RouterDeps{
		AppName:    "tienda-demo-test",
		AuthUC:     auth.NewAuthUseCase(memory.NewCredentialRepository(memory.DefaultCredentials()...)),
		ProductUC:  usecase.NewProductUseCase(catalog),
		PlaceOrder: apporder.NewPlaceOrderUseCase(catalog, ledger, dispatcher, log),
		OrderQuery: apporder.NewQueryUseCase(ledger, pdf.NewReceiptGenerator("tienda-demo-test")),
		Metrics:    rec,
		Session:    apphttp.SessionConfig{Secret: testSecret, Issuer: "test", TTL: time.Hour},
		Log:        log,
	})
	return &client{app: app, ledger: ledger, metrics: rec}
}

func (cl *client) do(t *testing.T, method, path string, form url.Values) *http.Response {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cl.cookie != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: cl.cookie})
	}
	resp, err := cl.app.Test(req, -1)
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			cl.cookie = c.Value
		}
	}
	return resp
}

func (cl *client) get(t *testing.T, path string) *http.Response {
	return cl.do(t, http.MethodGet, path, nil)
}

func (cl *client) post(t *testing.T, path string, form url.Values) *http.Response {
	return cl.do(t, http.MethodPost, path, form)
}

func (cl *client) login(t *testing.T) {
	t.Helper()
	resp := cl.post(t, "/", url.Values{"username": {"user"}, "password": {"password"}})
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
}

// sessionUser decodifica el usuario de la cookie actual.
func (cl *client) sessionUser(t *testing.T) string {
	t.Helper()
	if cl.cookie == "" {
		return ""
	}
	user, _, err := pkgjwt.Parse(testSecret, cl.cookie)
	require.NoError(t, err)
	return user
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func order(productID, email string) url.Values {
	return url.Values{"product_id": {productID}, "customer_email": {email}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / logout
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: login correcto redirige al catálogo y la sesión lleva al usuario.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	cl := newClient(t, nil)
	resp := cl.post(t, "/", url.Values{"username": {"user"}, "password": {"password"}})
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/catalog", resp.Header.Get("Location"))
	assert.Equal(t, "user", cl.sessionUser(t))

	body := readBody(t, cl.get(t, "/catalog"))
	assert.Contains(t, body, apphttp.MsgLoginOK)
}

func TestLogin_CredencialesIncorrectasNoCreanSesion(t *testing.T) {
	for _, form := range []url.Values{
		{"username": {"user"}, "password": {"wrong"}},
		{"username": {"admin"}, "password": {"password"}},
		{"username": {""}, "password": {""}},
	} {
		cl := newClient(t, nil)
		resp := cl.post(t, "/", form)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), apphttp.MsgInvalidCredentials)
		assert.Empty(t, cl.sessionUser(t))
	}
}

func TestLoginForm_Renderiza(t *testing.T) {
	cl := newClient(t, nil)
	resp := cl.get(t, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body := readBody(t, resp)
	assert.Contains(t, body, `name="username"`)
	assert.Contains(t, body, `name="password"`)
}

func TestLogout_CierraSesion(t *testing.T) {
	cl := newClient(t, nil)
	cl.login(t)

	resp := cl.get(t, "/logout")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Empty(t, cl.sessionUser(t))

	assert.Contains(t, readBody(t, cl.get(t, "/")), apphttp.MsgLoggedOut)

	resp = cl.get(t, "/catalog")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode, "tras logout el catálogo vuelve a exigir login")
}

func TestLogout_SinSesionEsInofensivo(t *testing.T) {
	cl := newClient(t, nil)
	resp := cl.get(t, "/logout")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

// Escenario D: sin login el catálogo redirige al login con aviso.
func TestCatalog_SinSesionRedirigeAlLogin(t *testing.T) {
	cl := newClient(t, nil)
	resp := cl.get(t, "/catalog")
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Contains(t, readBody(t, cl.get(t, "/")), apphttp.MsgPleaseLogIn)
}

func TestCatalog_MuestraProductos(t *testing.T) {
	cl := newClient(t, nil)
	cl.login(t)

	resp := cl.get(t, "/catalog")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Laptop")
	assert.Contains(t, body, "$1,000")
	assert.Contains(t, body, "Phone")
	assert.Contains(t, body, "$500")
}

// Los avisos se muestran una sola vez.
func TestFlash_SeMuestraUnaVez(t *testing.T) {
	cl := newClient(t, nil)
	cl.login(t)

	assert.Contains(t, readBody(t, cl.get(t, "/catalog")), apphttp.MsgLoginOK)
	assert.NotContains(t, readBody(t, cl.get(t, "/catalog")), apphttp.MsgLoginOK)
}

func TestSesion_CookieManipuladaEsAnonima(t *testing.T) {
	cl := newClient(t, nil)
	cl.login(t)
	cl.cookie += "x"

	resp := cl.get(t, "/catalog")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestSesion_FirmadaConOtroSecretEsAnonima(t *testing.T) {
	cl := newClient(t, nil)
	tok, err := pkgjwt.Generate("otro-secret", "test", "user", nil, time.Hour)
	require.NoError(t, err)
	cl.cookie = tok

	resp := cl.get(t, "/catalog")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

// Escenario B: pedido válido.
func TestOrder_PedidoValido(t *testing.T) {
	cl := newClient(t, nil)
	cl.login(t)
	_ = readBody(t, cl.get(t, "/catalog")) // consume el aviso de login

	resp := cl.post(t, "/order", order("1", "test@example.com"))
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/catalog", resp.Header.Get("Location"))
	require.Equal(t, 1, cl.ledger.Len())
	got := cl.ledger.All()[0]
	assert.Equal(t, "Laptop", got.Product.Name)
	assert.Equal(t, "user", got.User)

	assert.Contains(t, readBody(t, cl.get(t, "/catalog")), "Order placed for Laptop!")
}

// Escenario C: email inválido.
func TestOrder_EmailInvalido(t *testing.T) {
	cl := newClient(t, nil)
	cl.login(t)

	resp := cl.post(t, "/order", order("1", "invalid-email"))
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/catalog", resp.Header.Get("Location"))
	assert.Zero(t, cl.ledger.Len())
	assert.Contains(t, readBody(t, cl.get(t, "/catalog")), "Invalid email address.")
}

func TestOrder_ErroresDeValidacion(t *testing.T) {
	cases := []struct {
		name string
		form url.Values
		msg  string
	}{
		{"sin campos", url.Values{}, apphttp.MsgMissingFields},
		{"sin email", url.Values{"product_id": {"1"}}, apphttp.MsgMissingFields},
		{"sin producto", url.Values{"customer_email": {"a@b.c"}}, apphttp.MsgMissingFields},
		{"id no numérico", order("abc", "a@b.c"), apphttp.MsgProductNotFound},
		{"id desconocido", order("42", "a@b.c"), apphttp.MsgProductNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cl := newClient(t, nil)
			cl.login(t)

			resp := cl.post(t, "/order", tc.form)
			resp.Body.Close()

			assert.Equal(t, http.StatusFound, resp.StatusCode, "nunca un 500")
			assert.Equal(t, "/catalog", resp.Header.Get("Location"))
			assert.Zero(t, cl.ledger.Len())
			assert.Contains(t, readBody(t, cl.get(t, "/catalog")), tc.msg)
		})
	}
}

func TestOrder_SinSesionNoMutaElLedger(t *testing.T) {
	cl := newClient(t, nil)
	resp := cl.post(t, "/order", order("1", "test@example.com"))
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Zero(t, cl.ledger.Len())
}

// Un fallo del proveedor de correo no revierte el pedido.
func TestOrder_FalloDeNotificacionNoRevierte(t *testing.T) {
	cl := newClient(t, failingSender{})
	cl.login(t)

	resp := cl.post(t, "/order", order("2", "test@example.com"))
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, 1, cl.ledger.Len())
	assert.Equal(t, "Phone", cl.ledger.All()[0].Product.Name)
	assert.Contains(t, readBody(t, cl.get(t, "/catalog")), "Order placed for Phone!")
}

func TestOrders_ListadoYRecibo(t *testing.T) {
	cl := newClient(t, nil)
	cl.login(t)
	resp := cl.post(t, "/order", order("1", "test@example.com"))
	resp.Body.Close()
	require.Equal(t, 1, cl.ledger.Len())
	id := cl.ledger.All()[0].ID

	body := readBody(t, cl.get(t, "/orders"))
	assert.Contains(t, body, "Laptop")
	assert.Contains(t, body, "/orders/"+id+"/receipt")

	resp = cl.get(t, "/orders/"+id+"/receipt")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "receipt-"+id+".pdf")
	assert.True(t, strings.HasPrefix(readBody(t, resp), "%PDF-"))
}

func TestOrders_ReciboAjenoOInexistente(t *testing.T) {
	cl := newClient(t, nil)
	cl.ledger.Append(entity.Order{ID: "ajeno", User: "otro", Product: entity.Product{ID: 1, Name: "Laptop"}})
	cl.login(t)

	for _, id := range []string{"ajeno", "no-existe"} {
		resp := cl.get(t, "/orders/"+id+"/receipt")
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/orders", resp.Header.Get("Location"))
	}
	assert.Contains(t, readBody(t, cl.get(t, "/orders")), apphttp.MsgOrderNotFound)
}

func TestOrders_SinSesion(t *testing.T) {
	cl := newClient(t, nil)
	for _, path := range []string{"/orders", "/orders/x/receipt"} {
		resp := cl.get(t, path)
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas y health
// ──────────────────────────────────────────────────────────────────────────────

func TestMetrics_ExponeContadoresPorRuta(t *testing.T) {
	cl := newClient(t, nil)
	cl.get(t, "/catalog").Body.Close()
	cl.get(t, "/").Body.Close()

	resp := cl.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)

	assert.Contains(t, body, `http_requests_total{endpoint="/catalog",http_status="302",method="GET"} 1`)
	assert.Contains(t, body, `http_requests_total{endpoint="/",http_status="200",method="GET"} 1`)
	assert.Contains(t, body, `http_request_latency_seconds_count{endpoint="/catalog",method="GET"} 1`)
	assert.NotContains(t, body, `endpoint="/metrics"`, "el scrape no se instrumenta")
}

func TestMetrics_RutaParametrizadaUsaElPatron(t *testing.T) {
	cl := newClient(t, nil)
	cl.get(t, "/orders/abc/receipt").Body.Close()

	body := readBody(t, cl.get(t, "/metrics"))
	assert.Contains(t, body, `endpoint="/orders/:id/receipt"`)
	assert.NotContains(t, body, `endpoint="/orders/abc/receipt"`)
}

func TestHealth(t *testing.T) {
	cl := newClient(t, nil)
	resp := cl.get(t, "/health")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "tienda-demo-test", body["service"])
}
