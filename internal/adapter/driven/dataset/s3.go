package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/diillson/superstore-dashboard-go/internal/domain/repository"
)

const s3Scheme = "s3://"

// objectGetter é o subconjunto do cliente S3 usado para baixar o dataset.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func defaultAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var optFns []func(*config.LoadOptions) error
	if profile != "" {
		optFns = append(optFns, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		optFns = append(optFns, config.WithRegion(region))
	}
	return config.LoadDefaultConfig(ctx, optFns...)
}

func defaultS3Client(cfg aws.Config) objectGetter {
	return s3.NewFromConfig(cfg)
}

func isS3URI(source string) bool {
	return strings.HasPrefix(strings.ToLower(source), s3Scheme)
}

// parseS3URI separa s3://bucket/key em bucket e key.
func parseS3URI(uri string) (string, string, error) {
	rest := uri[len(s3Scheme):]
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: expected s3://bucket/key", uri)
	}
	return bucket, key, nil
}

func (r *DatasetRepositoryImpl) getAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cacheKey := fmt.Sprintf("%s-%s", profile, region)
	if cfg, ok := r.cfgCache[cacheKey]; ok {
		return cfg, nil
	}

	cfg, err := r.loadAWSConfig(ctx, profile, region)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[cacheKey] = cfg
	return cfg, nil
}

func (r *DatasetRepositoryImpl) openS3(ctx context.Context, uri string, opts repository.SourceOptions) (io.ReadCloser, error) {
	bucket, key, err := parseS3URI(uri)
	if err != nil {
		return nil, err
	}

	cfg, err := r.getAWSConfig(ctx, opts.Profile, opts.Region)
	if err != nil {
		return nil, err
	}

	out, err := r.newS3Client(cfg).GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error downloading %s: %w", uri, err)
	}
	return out.Body, nil
}
