package types

// CLIArgs represents the resolved run options (flags merged over env and config file).
type CLIArgs struct {
	ConfigFile    string
	Dataset       string   `validate:"required"`
	Sheet         string
	Profile       string
	Region        string
	Tabs          []string `validate:"dive,oneof=kpis segments products discounts regions trends top-products"`
	TopN          int      `validate:"min=1,max=100"`
	Bins          int      `validate:"min=1,max=200"`
	ZeroSales     string   `validate:"oneof=nan fail"`
	ReportName    string
	ReportType    []string `validate:"dive,oneof=csv json pdf xlsx"`
	Dir           string
	DisableColors bool
}
