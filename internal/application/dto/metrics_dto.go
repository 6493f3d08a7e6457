package dto

// ProductMetricsResponse valorización del inventario actual.
// Los importes vienen formateados con 2 decimales y separador de miles según METRICS_LOCALE.
type ProductMetricsResponse struct {
	TotalCostPrice    string `json:"total_cost_price"`
	TotalSellingPrice string `json:"total_selling_price"`
	TotalQuantity     int64  `json:"total_quantity"`
	TotalProfit       string `json:"total_profit"`
}

// SalesMetricsResponse acumulado histórico de ventas (salidas).
type SalesMetricsResponse struct {
	TotalSales       int64  `json:"total_sales"`
	TotalProductSold int64  `json:"total_product_sold"`
	TotalSalesValue  string `json:"total_sales_value"`
	TotalSalesProfit string `json:"total_sales_profit"`
}

// DailySalesValueResponse serie de 7 días (más antiguo primero) con el valor vendido por día.
type DailySalesValueResponse struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

// DailySalesQuantityResponse serie de 7 días con la cantidad de salidas por día.
type DailySalesQuantityResponse struct {
	Dates  []string `json:"dates"`
	Values []int64  `json:"values"`
}

// DashboardResponse respuesta de GET /api/v1/dashboard: todos los bloques de métricas.
type DashboardResponse struct {
	ProductMetrics         ProductMetricsResponse     `json:"product_metrics"`
	SalesMetrics           SalesMetricsResponse       `json:"sales_metrics"`
	DailySalesData         DailySalesValueResponse    `json:"daily_sales_data"`
	DailySalesQuantityData DailySalesQuantityResponse `json:"daily_sales_quantity_data"`
	ProductCountByCategory map[string]int64           `json:"product_count_by_category"`
	ProductCountByBrand    map[string]int64           `json:"product_count_by_brand"`
}
