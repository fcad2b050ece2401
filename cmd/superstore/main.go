package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/superstore-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/superstore-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/superstore-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/superstore-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/superstore-dashboard-go/internal/application/usecase"
	"github.com/diillson/superstore-dashboard-go/pkg/console"
	"github.com/diillson/superstore-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	datasetRepo := dataset.NewDatasetRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetDashboardUseCase(dashboardUseCase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Executa o aplicativo
	if err := app.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
