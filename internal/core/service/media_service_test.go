package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelspro/reels-api/internal/infrastructure/config"
)

func stubAWS(t *testing.T, presign func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error)) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewClient := newS3ClientFromConfig
	origNewPresign := newS3PresignClient
	origPresignPut := presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewClient
		newS3PresignClient = origNewPresign
		presignPutObject = origPresignPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return nil
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return nil
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return presign(in)
	}
}

func TestMediaService_UploadCredentials(t *testing.T) {
	stubAWS(t, func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://storage.example.com/" + *in.Key}, nil
	})

	svc := NewMediaService(config.MediaConfig{Bucket: "reels-media", Region: "us-east-1"})
	creds, err := svc.UploadCredentials(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, creds.Video.Key)
	assert.NotEmpty(t, creds.Thumbnail.Key)
	assert.NotEqual(t, creds.Video.Key, creds.Thumbnail.Key)
	assert.Equal(t, "https://storage.example.com/"+creds.Video.Key, creds.Video.URL)
	assert.Equal(t, "https://storage.example.com/"+creds.Thumbnail.Key, creds.Thumbnail.URL)
	assert.True(t, creds.ExpiresAt.After(time.Now()))
}

func TestMediaService_UploadCredentials_DistinctPerCall(t *testing.T) {
	stubAWS(t, func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://storage.example.com/" + *in.Key}, nil
	})

	svc := NewMediaService(config.MediaConfig{Bucket: "reels-media"})
	first, err := svc.UploadCredentials(context.Background())
	require.NoError(t, err)
	second, err := svc.UploadCredentials(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.Video.Key, second.Video.Key)
}

func TestMediaService_UploadCredentials_PresignError(t *testing.T) {
	stubAWS(t, func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign failed")
	})

	svc := NewMediaService(config.MediaConfig{Bucket: "reels-media"})
	_, err := svc.UploadCredentials(context.Background())
	require.Error(t, err)
}
