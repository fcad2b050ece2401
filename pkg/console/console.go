package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BoldRed      = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// maxBarWidth é a largura, em caracteres, da maior barra.
const maxBarWidth = 40

// barLength scales value against the largest absolute value of the chart.
func barLength(value, maxAbs float64) int {
	if maxAbs == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	n := int(math.Round(math.Abs(value) / maxAbs * maxBarWidth))
	if n == 0 && value != 0 {
		n = 1
	}
	return n
}

// DisplayBars exibe um gráfico de barras horizontais dentro de um painel.
func (c *Console) DisplayBars(title string, bars []types.Bar) {
	if len(bars) == 0 {
		pterm.Warning.Printfln("No data to chart for %s", title)
		return
	}

	// Encontra o valor máximo para escala
	maxAbs := 0.0
	for _, b := range bars {
		if v := math.Abs(b.Value); !math.IsNaN(v) && !math.IsInf(v, 0) && v > maxAbs {
			maxAbs = v
		}
	}

	tableData := pterm.TableData{}
	for _, b := range bars {
		bar := strings.Repeat("█", barLength(b.Value, maxAbs))
		value := b.Display
		if value == "" {
			value = fmt.Sprintf("%.2f", b.Value)
		}

		// Valores negativos em vermelho
		if b.Value < 0 {
			bar = pterm.FgRed.Sprint(bar)
			value = pterm.FgRed.Sprint(value)
		} else {
			bar = pterm.FgBlue.Sprint(bar)
		}
		tableData = append(tableData, []string{b.Label, value, bar})
	}

	table := pterm.DefaultTable.WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayHeader exibe o título de uma aba.
func (c *Console) DisplayHeader(title string) {
	pterm.DefaultSection.Println(title)
}

// DisplayMetrics exibe os KPIs lado a lado em painéis.
func (c *Console) DisplayMetrics(metrics []types.Metric) {
	if len(metrics) == 0 {
		return
	}
	row := make([]pterm.Panel, 0, len(metrics))
	for _, m := range metrics {
		box := pterm.DefaultBox.WithTitle(m.Label).Sprint(BrightCyan(m.Value))
		row = append(row, pterm.Panel{Data: box})
	}
	_ = pterm.DefaultPanel.WithPanels(pterm.Panels{row}).WithPadding(2).Render()
}

// DisplayInsight exibe uma observação sobre os dados da aba.
func (c *Console) DisplayInsight(text string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "INSIGHT", Style: pterm.NewStyle(pterm.BgMagenta, pterm.FgBlack)}).Println(text)
}
