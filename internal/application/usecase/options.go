package usecase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/diillson/superstore-dashboard-go/internal/domain/aggregation"
	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// Nomes das flags da CLI, usados para saber quais opções foram passadas explicitamente.
const (
	FlagDataset    = "dataset"
	FlagSheet      = "sheet"
	FlagProfile    = "profile"
	FlagRegion     = "region"
	FlagTab        = "tab"
	FlagTopN       = "top-n"
	FlagBins       = "bins"
	FlagZeroSales  = "zero-sales"
	FlagReportName = "report-name"
	FlagReportType = "report-type"
	FlagDir        = "dir"
)

var validate = validator.New()

// defaultConfig holds the values used when neither flags, env nor file set an option.
func defaultConfig() types.Config {
	return types.Config{
		TopN:       aggregation.DefaultTopN,
		Bins:       aggregation.DefaultHistogramBins,
		ZeroSales:  string(entity.ZeroSalesNaN),
		ReportType: []string{"csv"},
	}
}

// ResolveArgs merges the run options with precedence flags > SUPERSTORE_* env > config file > defaults,
// then validates them. explicit holds the names of the flags set on the command line.
func (uc *DashboardUseCase) ResolveArgs(args *types.CLIArgs, explicit map[string]bool) (*types.CLIArgs, error) {
	cfg := defaultConfig()

	if args.ConfigFile != "" {
		fileCfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		overlay(&cfg, fileCfg, fromSource)
	}

	envCfg, err := uc.configRepo.LoadEnv()
	if err != nil {
		return nil, err
	}
	overlay(&cfg, envCfg, fromSource)

	overlay(&cfg, configFromArgs(args), func(flag string, _ bool) bool { return explicit[flag] })

	resolved := &types.CLIArgs{
		ConfigFile:    args.ConfigFile,
		Dataset:       cfg.Dataset,
		Sheet:         cfg.Sheet,
		Profile:       cfg.Profile,
		Region:        cfg.Region,
		Tabs:          cfg.Tabs,
		TopN:          cfg.TopN,
		Bins:          cfg.Bins,
		ZeroSales:     cfg.ZeroSales,
		ReportName:    cfg.ReportName,
		ReportType:    cfg.ReportType,
		Dir:           cfg.Dir,
		DisableColors: args.DisableColors,
	}

	if resolved.Dataset == "" {
		return nil, types.ErrNoDataset
	}
	if err := validate.Struct(resolved); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Diretório padrão: diretório atual; caso contrário, caminho absoluto
	if resolved.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		resolved.Dir = cwd
	} else {
		absDir, err := filepath.Abs(resolved.Dir)
		if err != nil {
			return nil, err
		}
		resolved.Dir = absDir
	}

	return resolved, nil
}

func fromSource(_ string, zero bool) bool {
	return !zero
}

func configFromArgs(args *types.CLIArgs) *types.Config {
	return &types.Config{
		Dataset:    args.Dataset,
		Sheet:      args.Sheet,
		Profile:    args.Profile,
		Region:     args.Region,
		Tabs:       args.Tabs,
		TopN:       args.TopN,
		Bins:       args.Bins,
		ZeroSales:  args.ZeroSales,
		ReportName: args.ReportName,
		ReportType: args.ReportType,
		Dir:        args.Dir,
	}
}

// overlay copia para dst os campos de src que use aceitar.
func overlay(dst, src *types.Config, use func(flag string, zero bool) bool) {
	if use(FlagDataset, src.Dataset == "") {
		dst.Dataset = src.Dataset
	}
	if use(FlagSheet, src.Sheet == "") {
		dst.Sheet = src.Sheet
	}
	if use(FlagProfile, src.Profile == "") {
		dst.Profile = src.Profile
	}
	if use(FlagRegion, src.Region == "") {
		dst.Region = src.Region
	}
	if use(FlagTab, len(src.Tabs) == 0) {
		dst.Tabs = src.Tabs
	}
	if use(FlagTopN, src.TopN == 0) {
		dst.TopN = src.TopN
	}
	if use(FlagBins, src.Bins == 0) {
		dst.Bins = src.Bins
	}
	if use(FlagZeroSales, src.ZeroSales == "") {
		dst.ZeroSales = src.ZeroSales
	}
	if use(FlagReportName, src.ReportName == "") {
		dst.ReportName = src.ReportName
	}
	if use(FlagReportType, len(src.ReportType) == 0) {
		dst.ReportType = src.ReportType
	}
	if use(FlagDir, src.Dir == "") {
		dst.Dir = src.Dir
	}
}
