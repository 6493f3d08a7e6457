package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeInflow  = "INFLOW"  // entrada
	MovementTypeOutflow = "OUTFLOW" // salida (venta)
)

// Inflow representa una entrada de stock de un producto, provista por un proveedor.
// Los movimientos son inmutables una vez creados.
type Inflow struct {
	ID          string
	ProductID   string
	SupplierID  string
	Quantity    int
	Description string
	CreatedAt   time.Time

	// Solo lectura (JOIN), para listados.
	ProductTitle string
	SupplierName string
}

// Outflow representa una salida de stock (venta) de un producto.
type Outflow struct {
	ID          string
	ProductID   string
	Quantity    int
	Description string
	CreatedAt   time.Time

	ProductTitle string
}

// MovementFilter filtra movimientos por título del producto (subcadena).
type MovementFilter struct {
	Product string
	Limit   int
	Offset  int
}
