package blob

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func testConfig() Config {
	return Config{
		Region:       "us-east-1",
		Bucket:       "filevault",
		BaseEndpoint: "http://127.0.0.1:9000",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
	}
}

func TestPresignUpload_ErrorFromClientFactory(t *testing.T) {
	signer := NewS3Signer(testConfig())

	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := signer.PresignUpload(context.Background(), "k")
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("want load-fail, got %v", err)
	}
}

func TestPresignDownload_ErrorFromClientFactory(t *testing.T) {
	signer := NewS3Signer(testConfig())

	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := signer.PresignDownload(context.Background(), "k")
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("want load-fail, got %v", err)
	}
}

func TestPresignUpload_URLFromPresigner(t *testing.T) {
	signer := NewS3Signer(testConfig())

	origPut := presignPutObject
	defer func() { presignPutObject = origPut }()
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if *in.Bucket != "filevault" || *in.Key != "obj-1" {
			t.Fatalf("unexpected input: %v %v", *in.Bucket, *in.Key)
		}
		return &v4.PresignedHTTPRequest{URL: "https://signed/put"}, nil
	}

	url, err := signer.PresignUpload(context.Background(), "obj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://signed/put" {
		t.Fatalf("unexpected url: %v", url)
	}
}

func TestPresignDownload_ErrorFromPresigner(t *testing.T) {
	signer := NewS3Signer(testConfig())

	origGet := presignGetObject
	defer func() { presignGetObject = origGet }()
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	_, err := signer.PresignDownload(context.Background(), "obj-1")
	if err == nil || err.Error() != "presign-fail" {
		t.Fatalf("want presign-fail, got %v", err)
	}
}

func TestNewS3SignerDefaultsExpiry(t *testing.T) {
	signer := NewS3Signer(Config{})
	if signer.cfg.URLExpiry != 15*time.Minute {
		t.Fatalf("unexpected expiry: %v", signer.cfg.URLExpiry)
	}
}
