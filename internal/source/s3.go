package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jacksmith/adminui/internal/model"
)

// S3Config holds optional client settings. Empty values fall back to the
// environment (ADMINUI_S3_REGION, ADMINUI_S3_ENDPOINT, ADMINUI_S3_PATH_STYLE)
// and then to the default AWS credential chain.
type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // optional; for S3-compatible stores such as MinIO
	PathStyle bool   `yaml:"path_style"`
}

// objectGetter is the part of *s3.Client the source needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a record document from an S3 object.
type S3Source struct {
	client objectGetter
	bucket string
	key    string
}

// NewS3Source builds an S3 client from cfg and the environment.
func NewS3Source(ctx context.Context, bucket, key string, cfg S3Config) (*S3Source, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	cfg = cfg.withEnv()

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3Source(client, bucket, key), nil
}

func newS3Source(client objectGetter, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

func (s *S3Source) String() string {
	return "s3://" + s.bucket + "/" + s.key
}

// Fetch downloads and decodes the object.
func (s *S3Source) Fetch(ctx context.Context) ([]model.Record, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, loadError(s, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxBodyBytes))
	if err != nil {
		return nil, loadError(s, fmt.Errorf("failed to read object: %w", err))
	}

	format := model.FormatForPath(s.key)
	if ct := aws.ToString(out.ContentType); strings.Contains(ct, "yaml") {
		format = model.FormatYAML
	}
	records, err := model.DecodeRecords(data, format)
	if err != nil {
		return nil, loadError(s, err)
	}
	return records, nil
}

func (c S3Config) withEnv() S3Config {
	if c.Region == "" {
		c.Region = os.Getenv("ADMINUI_S3_REGION")
	}
	if c.Endpoint == "" {
		c.Endpoint = os.Getenv("ADMINUI_S3_ENDPOINT")
	}
	if !c.PathStyle {
		c.PathStyle = strings.EqualFold(os.Getenv("ADMINUI_S3_PATH_STYLE"), "true")
	}
	return c
}
