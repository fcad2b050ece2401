package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/domain/repository"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// DatasetRepositoryImpl implementa o DatasetRepository para arquivos locais e objetos S3,
// com cache de configuração AWS por perfil/região.
type DatasetRepositoryImpl struct {
	cfgCache map[string]aws.Config
	mu       sync.Mutex

	loadAWSConfig func(ctx context.Context, profile, region string) (aws.Config, error)
	newS3Client   func(cfg aws.Config) objectGetter
}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
func NewDatasetRepository() repository.DatasetRepository {
	return &DatasetRepositoryImpl{
		cfgCache:      make(map[string]aws.Config),
		loadAWSConfig: defaultAWSConfig,
		newS3Client:   defaultS3Client,
	}
}

// LoadDataset lê o arquivo (CSV ou XLSX) e monta a tabela.
func (r *DatasetRepositoryImpl) LoadDataset(ctx context.Context, source string, opts repository.SourceOptions) (*entity.Table, error) {
	if strings.TrimSpace(source) == "" {
		return nil, types.ErrNoDataset
	}

	format, err := detectFormat(source)
	if err != nil {
		return nil, err
	}

	body, err := r.open(ctx, source, opts)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var (
		rows  [][]string
		lines []int
	)
	switch format {
	case formatCSV:
		rows, lines, err = readCSV(body)
	case formatXLSX:
		rows, err = readXLSX(body, opts.Sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading dataset %s: %w", source, err)
	}

	table, err := buildTable(rows, lines)
	if err != nil {
		return nil, fmt.Errorf("error parsing dataset %s: %w", source, err)
	}
	return table, nil
}

func (r *DatasetRepositoryImpl) open(ctx context.Context, source string, opts repository.SourceOptions) (io.ReadCloser, error) {
	if isS3URI(source) {
		return r.openS3(ctx, source, opts)
	}

	fileInfo, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("error accessing dataset: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", source)
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	return file, nil
}

type format int

const (
	formatCSV format = iota
	formatXLSX
)

func detectFormat(source string) (format, error) {
	ext := strings.ToLower(filepath.Ext(source))
	switch ext {
	case ".csv", ".txt":
		return formatCSV, nil
	case ".xlsx", ".xlsm":
		return formatXLSX, nil
	default:
		return 0, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, ext)
	}
}
