package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/domain/metrics"
	"github.com/diillson/superstore-dashboard-go/internal/domain/repository"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
	builder     *ReportBuilder
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
		builder:     NewReportBuilder(),
	}
}

// RunDashboard executa a funcionalidade principal do dashboard:
// carrega o dataset, deriva as métricas, calcula as abas, exibe e exporta.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	tabs, err := entity.ParseTabs(args.Tabs)
	if err != nil {
		return err
	}

	report, err := uc.BuildReport(ctx, args, tabs)
	if err != nil {
		return err
	}

	uc.renderReport(report)

	// Exporta os relatórios do dashboard
	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReport(report, args)
	}

	return nil
}

// BuildReport loads the dataset, enriches it once and computes the selected tabs.
func (uc *DashboardUseCase) BuildReport(ctx context.Context, args *types.CLIArgs, tabs []entity.Tab) (*entity.Report, error) {
	status := uc.console.Status(fmt.Sprintf("Loading dataset %s...", args.Dataset))

	table, err := uc.datasetRepo.LoadDataset(ctx, args.Dataset, repository.SourceOptions{
		Sheet:   args.Sheet,
		Profile: args.Profile,
		Region:  args.Region,
	})
	if err != nil {
		status.Stop()
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	var derived []string
	for _, c := range []string{entity.ColDiscountPct, entity.ColProfitMargin, entity.ColLossRisk} {
		if !table.Has(c) {
			derived = append(derived, c)
		}
	}

	status.Update("Deriving metrics...")
	enriched, err := metrics.NewDeriver(entity.ZeroSalesPolicy(args.ZeroSales)).Enrich(table)
	if err != nil {
		status.Stop()
		return nil, err
	}

	status.Update("Computing aggregations...")
	report, err := uc.builder.Build(ctx, enriched, ReportOptions{
		Tabs:   tabs,
		TopN:   args.TopN,
		Bins:   args.Bins,
		Source: args.Dataset,
	})
	status.Stop()
	if err != nil {
		return nil, err
	}

	uc.console.LogSuccess("Loaded %d records from %s", report.Records, args.Dataset)
	if len(derived) > 0 {
		uc.console.LogInfo("Derived columns: %s", strings.Join(derived, ", "))
	} else {
		uc.console.LogInfo("Dataset already has the derived columns; using them as stored")
	}
	return report, nil
}

// exportReport grava o relatório em cada formato pedido; falhas são registradas e não interrompem os demais.
func (uc *DashboardUseCase) exportReport(report *entity.Report, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("%s: %s", types.ErrUnsupportedReportType, reportType)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", reportType, err)
		} else {
			uc.console.LogSuccess("Successfully exported to %s: %s", reportType, path)
		}
	}
}
