package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayHeader(title string)
	DisplayBars(title string, bars []Bar)
	DisplayMetrics(metrics []Metric)
	DisplayInsight(text string)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// Bar representa uma barra horizontal de um gráfico no console.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// Display substitui o valor formatado padrão, quando preenchido.
	Display string `json:"display,omitempty"`
}

// Metric é um indicador exibido no painel de KPIs.
type Metric struct {
	Label string
	Value string
}
