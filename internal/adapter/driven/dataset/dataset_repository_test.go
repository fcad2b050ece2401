package dataset

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/domain/repository"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

const sampleCSV = ` Order ID ,Segment, Sales ,Profit,Discount,Quantity,Category,Sub-Category,Region,City,Product Name,Order Day
CA-1,Consumer,261.96,41.9136,0,2,Furniture,Bookcases,South,Henderson,Bush Somerset Collection Bookcase,Tuesday
CA-2,Corporate,14.62,6.8714,0,2,Office Supplies,Labels,West,Los Angeles,"Self-Adhesive Address Labels, White",Sunday

US-3,Consumer,957.5775,-383.031,0.45,5,Furniture,Tables,South,Fort Lauderdale,Bretford CR4500 Series Table,Monday
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDataset_CSV(t *testing.T) {
	repo := NewDatasetRepository()
	table, err := repo.LoadDataset(context.Background(), writeFile(t, "superstore.csv", sampleCSV), repository.SourceOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len(), "blank lines are skipped")
	assert.True(t, table.Has(entity.ColSales), "header names are trimmed")
	assert.True(t, table.Has("Order ID"))
	assert.False(t, table.Has(entity.ColDiscountPct))

	first := table.Record(0)
	assert.Equal(t, 261.96, first.Sales)
	assert.Equal(t, 41.9136, first.Profit)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, "Bookcases", first.SubCategory)
	assert.Equal(t, "Tuesday", first.OrderDay)

	assert.Equal(t, "Self-Adhesive Address Labels, White", table.Record(1).ProductName)
	assert.Equal(t, 0.45, table.Record(2).Discount)
}

func TestLoadDataset_PreEnrichedCSV(t *testing.T) {
	content := "Sales,Profit,Discount,Discount (%),Profit Margin (%),Loss Risk\n" +
		"100,20,0.1,10.0,20.0,False\n" +
		"0,-5,0.5,50.0,,True\n"
	table, err := NewDatasetRepository().LoadDataset(context.Background(), writeFile(t, "enriched.csv", content), repository.SourceOptions{})
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	assert.True(t, table.Has(entity.ColLossRisk))
	assert.Equal(t, 20.0, table.Record(0).ProfitMargin)
	assert.False(t, table.Record(0).LossRisk)
	assert.True(t, math.IsNaN(table.Record(1).ProfitMargin), "pandas writes NaN as an empty cell")
	assert.True(t, table.Record(1).LossRisk)
}

func TestLoadDataset_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		column  string
	}{
		{name: "text sales", content: "Sales,Profit\nabc,1\n", column: entity.ColSales},
		{name: "empty profit", content: "Sales,Profit\n10,\n", column: entity.ColProfit},
		{name: "nan discount", content: "Discount\nNaN\n", column: entity.ColDiscount},
		{name: "fractional quantity", content: "Quantity\n2.5\n", column: entity.ColQuantity},
		{name: "bad loss risk", content: "Loss Risk\nmaybe\n", column: entity.ColLossRisk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDatasetRepository().LoadDataset(context.Background(), writeFile(t, "bad.csv", tt.content), repository.SourceOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidValue))
			assert.Contains(t, err.Error(), "line 2")
			assert.Contains(t, err.Error(), tt.column)
		})
	}
}

func TestLoadDataset_InvalidValueReportsFileLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    string
	}{
		{name: "after blank lines", content: "Sales,Profit\n10,1\n\n\nabc,2\n", line: "line 5 "},
		{name: "after multi-line quoted field", content: "Sales,Product Name\n10,\"two\nlines\"\nabc,x\n", line: "line 4 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDatasetRepository().LoadDataset(context.Background(), writeFile(t, "bad.csv", tt.content), repository.SourceOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidValue))
			assert.Contains(t, err.Error(), tt.line)
			assert.Contains(t, err.Error(), entity.ColSales)
		})
	}
}

func TestLoadDataset_RecordsKeepSourceLine(t *testing.T) {
	table, err := NewDatasetRepository().LoadDataset(context.Background(), writeFile(t, "superstore.csv", sampleCSV), repository.SourceOptions{})
	require.NoError(t, err)

	lines := make([]int, 0, table.Len())
	table.Each(func(r entity.SalesRecord) { lines = append(lines, r.Line) })
	assert.Equal(t, []int{2, 3, 5}, lines)
}

func TestLoadDataset_XLSXInvalidValueReportsRow(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Sales", "Profit"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{10, 1}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"abc", 2}))

	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := NewDatasetRepository().LoadDataset(context.Background(), path, repository.SourceOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidValue))
	assert.Contains(t, err.Error(), "line 4 ")
}

func TestLoadDataset_SourceErrors(t *testing.T) {
	repo := NewDatasetRepository()
	ctx := context.Background()

	_, err := repo.LoadDataset(ctx, "  ", repository.SourceOptions{})
	assert.True(t, errors.Is(err, types.ErrNoDataset))

	_, err = repo.LoadDataset(ctx, "data.parquet", repository.SourceOptions{})
	assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))

	_, err = repo.LoadDataset(ctx, filepath.Join(t.TempDir(), "missing.csv"), repository.SourceOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing dataset")

	_, err = repo.LoadDataset(ctx, writeFile(t, "empty.csv", ""), repository.SourceOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header row")
}

func TestLoadDataset_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := "Orders"
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Sales", "Profit", "Discount", "Quantity", "City"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{100.5, -3.25, 0.2, 3, "Seattle"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{40, 8, 0, 1, "Chicago"}))

	path := filepath.Join(t.TempDir(), "superstore.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	repo := NewDatasetRepository()
	table, err := repo.LoadDataset(context.Background(), path, repository.SourceOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, 100.5, table.Record(0).Sales)
	assert.Equal(t, -3.25, table.Record(0).Profit)
	assert.Equal(t, 3, table.Record(0).Quantity)
	assert.Equal(t, "Chicago", table.Record(1).City)

	table, err = repo.LoadDataset(context.Background(), path, repository.SourceOptions{Sheet: sheet})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	_, err = repo.LoadDataset(context.Background(), path, repository.SourceOptions{Sheet: "Nope"})
	require.Error(t, err)
}

type fakeS3 struct {
	body   string
	bucket string
	key    string
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = aws.ToString(params.Bucket)
	f.key = aws.ToString(params.Key)
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestLoadDataset_S3(t *testing.T) {
	client := &fakeS3{body: sampleCSV}
	configLoads := 0
	repo := &DatasetRepositoryImpl{
		cfgCache: make(map[string]aws.Config),
		loadAWSConfig: func(ctx context.Context, profile, region string) (aws.Config, error) {
			configLoads++
			assert.Equal(t, "analytics", profile)
			assert.Equal(t, "us-east-2", region)
			return aws.Config{Region: region}, nil
		},
		newS3Client: func(cfg aws.Config) objectGetter { return client },
	}

	opts := repository.SourceOptions{Profile: "analytics", Region: "us-east-2"}
	for i := 0; i < 2; i++ {
		table, err := repo.LoadDataset(context.Background(), "s3://sales-bucket/exports/superstore.csv", opts)
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())
	}
	assert.Equal(t, "sales-bucket", client.bucket)
	assert.Equal(t, "exports/superstore.csv", client.key)
	assert.Equal(t, 1, configLoads, "AWS config is cached per profile and region")
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{uri: "s3://bucket/data.csv", bucket: "bucket", key: "data.csv"},
		{uri: "s3://bucket/a/b/data.xlsx", bucket: "bucket", key: "a/b/data.xlsx"},
		{uri: "s3://bucket", wantErr: true},
		{uri: "s3:///data.csv", wantErr: true},
		{uri: "s3://bucket/", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := parseS3URI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
