package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroFernandess/SGE/internal/application/analytics"
	"github.com/LeandroFernandess/SGE/internal/application/inventory"
	"github.com/LeandroFernandess/SGE/internal/application/usecase"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/memory"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/pdf"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/xlsxexport"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/xmlexport"
	httpRouter "github.com/LeandroFernandess/SGE/internal/interfaces/http"
	"github.com/LeandroFernandess/SGE/pkg/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	s := memory.NewStore()
	money, err := analytics.NewMoneyFormatter("pt-BR")
	require.NoError(t, err)
	metricsUC := analytics.NewMetricsUseCase(s.Metrics(), money, time.UTC)

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       usecase.NewCategoryUseCase(s.Categories()),
		BrandUC:          usecase.NewBrandUseCase(s.Brands()),
		SupplierUC:       usecase.NewSupplierUseCase(s.Suppliers()),
		ProductUC:        usecase.NewProductUseCase(s.Products(), s.Categories(), s.Brands()),
		RegisterMovement: inventory.NewRegisterMovementUseCase(memory.NewTxRunner(s), s.Suppliers()),
		MovementQuery:    inventory.NewMovementQueryUseCase(s.Inflows(), s.Outflows()),
		Metrics:          metricsUC,
		Reports:          analytics.NewReportUseCase(metricsUC, s.Metrics(), pdf.NewMarotoPDFGenerator("SGE"), xmlexport.NewStockExporter(), xlsxexport.NewStockExporter()),
		Storage:          s,
		AppName:          "SGE",
		Log:              logger.Nop(),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, b []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m), string(b))
	return m
}

// create hace POST y devuelve el id del recurso creado.
func create(t *testing.T, app *fiber.App, path string, body interface{}) string {
	t.Helper()
	status, b := do(t, app, fiber.MethodPost, path, body)
	require.Equal(t, fiber.StatusCreated, status, string(b))
	return decode(t, b)["id"].(string)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	status, b := do(t, app, fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", decode(t, b)["status"])
}

func TestLedger_EscenarioDeVentaPorHTTP(t *testing.T) {
	app := newTestApp(t)
	catID := create(t, app, "/api/v1/categories", map[string]string{"name": "Áudio"})
	brandID := create(t, app, "/api/v1/brands", map[string]string{"name": "Acme"})
	supID := create(t, app, "/api/v1/suppliers", map[string]string{"name": "Fornecedor"})
	prdID := create(t, app, "/api/v1/products", map[string]interface{}{
		"title": "Fone", "category_id": catID, "brand_id": brandID,
		"cost_price": "10.00", "selling_price": "15.00",
	})

	status, b := do(t, app, fiber.MethodPost, "/api/v1/inflows", map[string]interface{}{"product_id": prdID, "supplier_id": supID, "quantity": 5})
	require.Equal(t, fiber.StatusCreated, status, string(b))
	assert.EqualValues(t, 5, decode(t, b)["product_stock"])

	status, b = do(t, app, fiber.MethodPost, "/api/v1/outflows", map[string]interface{}{"product_id": prdID, "quantity": 3})
	require.Equal(t, fiber.StatusCreated, status, string(b))
	assert.EqualValues(t, 2, decode(t, b)["product_stock"])

	status, b = do(t, app, fiber.MethodPost, "/api/v1/outflows", map[string]interface{}{"product_id": prdID, "quantity": 10})
	require.Equal(t, fiber.StatusConflict, status)
	errBody := decode(t, b)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody["code"])
	assert.Contains(t, errBody["message"], "Fone")

	status, b = do(t, app, fiber.MethodGet, "/api/v1/products/"+prdID, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 2, decode(t, b)["quantity"])

	status, b = do(t, app, fiber.MethodGet, "/api/v1/metrics/sales", nil)
	require.Equal(t, fiber.StatusOK, status)
	sales := decode(t, b)
	assert.EqualValues(t, 1, sales["total_sales"])
	assert.EqualValues(t, 3, sales["total_product_sold"])
	assert.Equal(t, "45,00", sales["total_sales_value"])
	assert.Equal(t, "15,00", sales["total_sales_profit"])

	status, b = do(t, app, fiber.MethodGet, "/api/v1/outflows", nil)
	require.Equal(t, fiber.StatusOK, status)
	page := decode(t, b)["page"].(map[string]interface{})
	assert.EqualValues(t, 1, page["total"])
}

func TestDashboard_SeriesDeSieteDias(t *testing.T) {
	app := newTestApp(t)
	create(t, app, "/api/v1/categories", map[string]string{"name": "Vazia"})

	status, b := do(t, app, fiber.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, fiber.StatusOK, status, string(b))
	d := decode(t, b)
	daily := d["daily_sales_data"].(map[string]interface{})
	assert.Len(t, daily["dates"], 7)
	assert.Len(t, daily["values"], 7)
	qty := d["daily_sales_quantity_data"].(map[string]interface{})
	assert.Len(t, qty["values"], 7)
	assert.Equal(t, map[string]interface{}{"Vazia": float64(0)}, d["product_count_by_category"])
}

func TestValidacion(t *testing.T) {
	app := newTestApp(t)

	status, b := do(t, app, fiber.MethodPost, "/api/v1/categories", map[string]string{"description": "sin nombre"})
	require.Equal(t, fiber.StatusBadRequest, status)
	body := decode(t, b)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, map[string]interface{}{"name": "required"}, body["fields"])

	status, b = do(t, app, fiber.MethodPost, "/api/v1/outflows", map[string]interface{}{"product_id": "x", "quantity": 0})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]interface{}{"quantity": "gt"}, decode(t, b)["fields"])

	status, b = do(t, app, fiber.MethodPost, "/api/v1/inflows", map[string]interface{}{"product_id": "x", "supplier_id": "y", "quantity": int64(2147483648)})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]interface{}{"quantity": "lte"}, decode(t, b)["fields"])

	status, b = do(t, app, fiber.MethodPost, "/api/v1/outflows", map[string]interface{}{"product_id": "x", "quantity": int64(2147483648)})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]interface{}{"quantity": "lte"}, decode(t, b)["fields"])

	status, b = do(t, app, fiber.MethodPost, "/api/v1/products", map[string]interface{}{
		"title": "X", "category_id": "c", "brand_id": "b", "cost_price": "-1", "selling_price": "1",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]interface{}{"cost_price": "min"}, decode(t, b)["fields"])

	status, _ = do(t, app, fiber.MethodGet, "/api/v1/products?limit=500", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestErrores_NotFoundEInUse(t *testing.T) {
	app := newTestApp(t)

	status, b := do(t, app, fiber.MethodGet, "/api/v1/products/no-existe", nil)
	require.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode(t, b)["code"])

	status, _ = do(t, app, fiber.MethodGet, "/api/v1/inflows/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	catID := create(t, app, "/api/v1/categories", map[string]string{"name": "Cat"})
	brandID := create(t, app, "/api/v1/brands", map[string]string{"name": "Marca"})
	create(t, app, "/api/v1/products", map[string]interface{}{
		"title": "P", "category_id": catID, "brand_id": brandID, "cost_price": "1", "selling_price": "2",
	})

	status, b = do(t, app, fiber.MethodDelete, "/api/v1/categories/"+catID, nil)
	require.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "IN_USE", decode(t, b)["code"])

	emptyID := create(t, app, "/api/v1/brands", map[string]string{"name": "Sem produtos"})
	status, _ = do(t, app, fiber.MethodDelete, "/api/v1/brands/"+emptyID, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestReference_UpdateYListado(t *testing.T) {
	app := newTestApp(t)
	id := create(t, app, "/api/v1/suppliers", map[string]string{"name": "Fornecedor A"})
	create(t, app, "/api/v1/suppliers", map[string]string{"name": "Outro"})

	status, b := do(t, app, fiber.MethodPut, "/api/v1/suppliers/"+id, map[string]string{"name": "Fornecedor B", "description": "atualizado"})
	require.Equal(t, fiber.StatusOK, status, string(b))
	assert.Equal(t, "Fornecedor B", decode(t, b)["name"])

	status, b = do(t, app, fiber.MethodGet, "/api/v1/suppliers?name=fornec", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := decode(t, b)
	assert.Len(t, list["items"], 1)
	assert.EqualValues(t, 1, list["page"].(map[string]interface{})["total"])
}

func TestReports(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/reports/dashboard.pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	b, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	status, b := do(t, app, fiber.MethodGet, "/api/v1/reports/stock.xml", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b), "<StockPosition")
}

func TestReports_StockXLSX(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/reports/stock.xlsx", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "stock.xlsx")
	b, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(b, []byte("PK")))
}
