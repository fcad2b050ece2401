package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/domain/repository"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

type fakeConsole struct {
	infos    []string
	headers  []string
	bars     []string
	metrics  []types.Metric
	insights []string
	errors   []string
	warnings []string
	success  []string
}

func (c *fakeConsole) Println(a ...interface{}) {}
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }
func (c *fakeConsole) DisplayHeader(title string) { c.headers = append(c.headers, title) }
func (c *fakeConsole) DisplayBars(title string, bars []types.Bar) {
	c.bars = append(c.bars, title)
}
func (c *fakeConsole) DisplayMetrics(metrics []types.Metric) {
	c.metrics = append(c.metrics, metrics...)
}
func (c *fakeConsole) DisplayInsight(text string) { c.insights = append(c.insights, text) }

type fakeStatus struct{}

func (fakeStatus) Update(message string) {}
func (fakeStatus) Stop() {}

type fakeTable struct{ rows int }

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{}) { t.rows++ }
func (t *fakeTable) Render() string { return "" }

type fakeDatasetRepo struct {
	table  *entity.Table
	err    error
	source string
	opts   repository.SourceOptions
}

func (r *fakeDatasetRepo) LoadDataset(ctx context.Context, source string, opts repository.SourceOptions) (*entity.Table, error) {
	r.source, r.opts = source, opts
	return r.table, r.err
}

type fakeExportRepo struct {
	calls []string
	fail  map[string]error
}

func (r *fakeExportRepo) export(kind string, report *entity.Report, filename, dir string) (string, error) {
	r.calls = append(r.calls, kind)
	if err := r.fail[kind]; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s.%s", dir, filename, kind), nil
}

func (r *fakeExportRepo) ExportToCSV(report *entity.Report, filename, dir string) (string, error) {
	return r.export("csv", report, filename, dir)
}

func (r *fakeExportRepo) ExportToJSON(report *entity.Report, filename, dir string) (string, error) {
	return r.export("json", report, filename, dir)
}

func (r *fakeExportRepo) ExportToPDF(report *entity.Report, filename, dir string) (string, error) {
	return r.export("pdf", report, filename, dir)
}

func (r *fakeExportRepo) ExportToXLSX(report *entity.Report, filename, dir string) (string, error) {
	return r.export("xlsx", report, filename, dir)
}

type fakeConfigRepo struct {
	file    *types.Config
	fileErr error
	env     types.Config
}

func (r *fakeConfigRepo) LoadConfigFile(path string) (*types.Config, error) {
	if r.fileErr != nil {
		return nil, r.fileErr
	}
	return r.file, nil
}

func (r *fakeConfigRepo) LoadEnv() (*types.Config, error) {
	env := r.env
	return &env, nil
}

var sourceColumns = []string{
	entity.ColSales, entity.ColProfit, entity.ColDiscount, entity.ColQuantity, entity.ColSegment,
	entity.ColCategory, entity.ColSubCategory, entity.ColRegion, entity.ColCity, entity.ColProductName, entity.ColOrderDay,
}

func salesTable() *entity.Table {
	return entity.NewTable(sourceColumns, []entity.SalesRecord{
		{Segment: "Consumer", Category: "Furniture", SubCategory: "Chairs", Region: "South", City: "Henderson",
			ProductName: "Chair A", OrderDay: "Monday", Sales: 200, Profit: 40, Discount: 0, Quantity: 2},
		{Segment: "Consumer", Category: "Furniture", SubCategory: "Tables", Region: "South", City: "Henderson",
			ProductName: "Table B", OrderDay: "Tuesday", Sales: 500, Profit: -150, Discount: 0.45, Quantity: 3},
		{Segment: "Corporate", Category: "Technology", SubCategory: "Phones", Region: "East", City: "New York City",
			ProductName: "Phone D", OrderDay: "Monday", Sales: 800, Profit: 120, Discount: 0.2, Quantity: 4},
	})
}
