package repository

import (
	"context"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
)

// SourceOptions tunes how a dataset is read.
type SourceOptions struct {
	// Sheet is the XLSX worksheet to read; empty means the first one.
	Sheet string
	// Profile and Region configure the AWS client for s3:// sources.
	Profile string
	Region  string
}

// DatasetRepository loads the sales dataset into an immutable table.
type DatasetRepository interface {
	LoadDataset(ctx context.Context, source string, opts SourceOptions) (*entity.Table, error)
}
