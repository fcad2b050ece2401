package types

// Config represents the application configuration that can be loaded from a file or
// from SUPERSTORE_* environment variables.
type Config struct {
	Dataset    string   `json:"dataset" yaml:"dataset" toml:"dataset" envconfig:"DATASET"`
	Sheet      string   `json:"sheet" yaml:"sheet" toml:"sheet" envconfig:"SHEET"`
	Profile    string   `json:"profile" yaml:"profile" toml:"profile" envconfig:"PROFILE"`
	Region     string   `json:"region" yaml:"region" toml:"region" envconfig:"REGION"`
	Tabs       []string `json:"tabs" yaml:"tabs" toml:"tabs" envconfig:"TABS"`
	TopN       int      `json:"top_n" yaml:"top_n" toml:"top_n" envconfig:"TOP_N"`
	Bins       int      `json:"bins" yaml:"bins" toml:"bins" envconfig:"BINS"`
	ZeroSales  string   `json:"zero_sales" yaml:"zero_sales" toml:"zero_sales" envconfig:"ZERO_SALES"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name" envconfig:"REPORT_NAME"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type" envconfig:"REPORT_TYPE"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir" envconfig:"DIR"`
}
