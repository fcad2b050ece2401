package entity

// Nomes das colunas como aparecem no cabeçalho do dataset (já sem espaços nas bordas).
const (
	ColSales        = "Sales"
	ColProfit       = "Profit"
	ColDiscount     = "Discount"
	ColQuantity     = "Quantity"
	ColSegment      = "Segment"
	ColCategory     = "Category"
	ColSubCategory  = "Sub-Category"
	ColRegion       = "Region"
	ColCity         = "City"
	ColProductName  = "Product Name"
	ColOrderDay     = "Order Day"
	ColDiscountPct  = "Discount (%)"
	ColProfitMargin = "Profit Margin (%)"
	ColLossRisk     = "Loss Risk"
)

// KnownColumns lists every column the dashboard reads, in canonical order.
var KnownColumns = []string{
	ColSales, ColProfit, ColDiscount, ColQuantity,
	ColSegment, ColCategory, ColSubCategory, ColRegion, ColCity, ColProductName, ColOrderDay,
	ColDiscountPct, ColProfitMargin, ColLossRisk,
}

// SalesRecord represents one order line of the Superstore dataset.
type SalesRecord struct {
	Sales       float64 `json:"sales"`
	Profit      float64 `json:"profit"`
	Discount    float64 `json:"discount"`
	Quantity    int     `json:"quantity"`
	Segment     string  `json:"segment"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	Region      string  `json:"region"`
	City        string  `json:"city"`
	ProductName string  `json:"product_name"`
	OrderDay    string  `json:"order_day"`

	// Campos derivados.
	DiscountPct  float64 `json:"discount_pct"`
	ProfitMargin float64 `json:"profit_margin"`
	LossRisk     bool    `json:"loss_risk"`

	// Line is the source line the record was read from; 0 when built in memory.
	Line int `json:"-"`
}

// ZeroSalesPolicy decide o que acontece com a margem de lucro quando Sales = 0.
type ZeroSalesPolicy string

const (
	// ZeroSalesNaN grava NaN na margem; Loss Risk passa a ser Profit < 0.
	ZeroSalesNaN ZeroSalesPolicy = "nan"
	// ZeroSalesFail aborta a derivação com ErrDivisionByZero.
	ZeroSalesFail ZeroSalesPolicy = "fail"
)

// Weekdays is the fixed Monday to Sunday order used by the time trend tab.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
