package types

import "errors"

var (
	ErrNoDataset             = errors.New("no dataset specified. Use --dataset or set it in the config file")
	ErrUnsupportedFormat     = errors.New("unsupported dataset format")
	ErrUnsupportedReportType = errors.New("unsupported report type")
	ErrUnknownTab            = errors.New("unknown dashboard tab")

	// Erros do domínio: derivação de métricas e agregações.
	ErrMissingColumn  = errors.New("missing column")
	ErrDivisionByZero = errors.New("division by zero")
	ErrEmptyGroup     = errors.New("empty group")
	ErrInvalidValue   = errors.New("invalid value")
)
