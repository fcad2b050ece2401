package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/diillson/superstore-dashboard-go/internal/application/usecase"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
	"github.com/diillson/superstore-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "superstore",
		Short:         "Superstore sales dashboard CLI",
		Long:          "Loads the Superstore sales dataset, derives discount, margin and loss-risk metrics and renders the dashboard tabs.",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Superstore Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP(usecase.FlagDataset, "f", "", "Dataset to load: local .csv/.xlsx path or s3://bucket/key")
	flags.String(usecase.FlagSheet, "", "Worksheet to read from an XLSX dataset (default: first sheet)")
	flags.StringP(usecase.FlagProfile, "p", "", "AWS profile used for s3:// datasets")
	flags.StringP(usecase.FlagRegion, "r", "", "AWS region used for s3:// datasets")
	flags.StringSliceP(usecase.FlagTab, "t", nil, "Tabs to display: kpis, segments, products, discounts, regions, trends, top-products (default: all)")
	flags.Int(usecase.FlagTopN, 10, "Number of entries in the top cities and top/worst product rankings")
	flags.Int(usecase.FlagBins, 30, "Number of bins of the discount histogram")
	flags.String(usecase.FlagZeroSales, "nan", "Profit margin policy for rows with zero sales: nan or fail")
	flags.StringP(usecase.FlagReportName, "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP(usecase.FlagReportType, "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	flags.StringP(usecase.FlagDir, "d", "", "Directory to save the report files (default: current directory)")
	flags.Bool("no-color", false, "Disable colored output")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application; ctx is cancelled on interrupt.
func (app *CLIApp) Execute(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// parseArgs lê as flags e devolve os argumentos junto com o conjunto de flags passadas explicitamente.
func (app *CLIApp) parseArgs() (*types.CLIArgs, map[string]bool) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	dataset, _ := flags.GetString(usecase.FlagDataset)
	sheet, _ := flags.GetString(usecase.FlagSheet)
	profile, _ := flags.GetString(usecase.FlagProfile)
	region, _ := flags.GetString(usecase.FlagRegion)
	tabs, _ := flags.GetStringSlice(usecase.FlagTab)
	topN, _ := flags.GetInt(usecase.FlagTopN)
	bins, _ := flags.GetInt(usecase.FlagBins)
	zeroSales, _ := flags.GetString(usecase.FlagZeroSales)
	reportName, _ := flags.GetString(usecase.FlagReportName)
	reportType, _ := flags.GetStringSlice(usecase.FlagReportType)
	dir, _ := flags.GetString(usecase.FlagDir)
	noColor, _ := flags.GetBool("no-color")

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		Dataset:       dataset,
		Sheet:         sheet,
		Profile:       profile,
		Region:        region,
		Tabs:          tabs,
		TopN:          topN,
		Bins:          bins,
		ZeroSales:     zeroSales,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		DisableColors: noColor,
	}

	explicit := make(map[string]bool)
	for _, name := range []string{
		usecase.FlagDataset, usecase.FlagSheet, usecase.FlagProfile, usecase.FlagRegion, usecase.FlagTab,
		usecase.FlagTopN, usecase.FlagBins, usecase.FlagZeroSales, usecase.FlagReportName, usecase.FlagReportType, usecase.FlagDir,
	} {
		explicit[name] = flags.Changed(name)
	}

	return args, explicit
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, explicit := app.parseArgs()

	if cliArgs.DisableColors {
		pterm.DisableColor()
		color.NoColor = true
	}

	// Exibe o banner de boas-vindas
	displayWelcomeBanner()

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Mescla arquivo de configuração, variáveis SUPERSTORE_* e flags
	resolved, err := app.dashboardUseCase.ResolveArgs(cliArgs, explicit)
	if err != nil {
		return err
	}

	return app.dashboardUseCase.RunDashboard(cmd.Context(), resolved)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
