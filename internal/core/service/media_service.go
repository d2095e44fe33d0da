package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/reelspro/reels-api/internal/core/ports"
	"github.com/reelspro/reels-api/internal/infrastructure/config"
)

const uploadURLExpiry = 15 * time.Minute

// Indirections over the AWS SDK so tests can stub the presign path without a
// live endpoint.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// MediaService hands out presigned PUT URLs so clients upload media straight
// to object storage; the API never proxies the bytes.
type MediaService struct {
	cfg config.MediaConfig
}

func NewMediaService(cfg config.MediaConfig) *MediaService {
	return &MediaService{cfg: cfg}
}

func (s *MediaService) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
	})

	return newS3PresignClient(client), nil
}

// UploadCredentials returns one presigned destination for the video asset and
// one for its thumbnail, both under a fresh storage prefix.
func (s *MediaService) UploadCredentials(ctx context.Context) (*ports.UploadCredentials, error) {
	pc, err := s.presignClient(ctx)
	if err != nil {
		return nil, err
	}

	prefix := storagePrefix()
	video, err := s.presignTarget(ctx, pc, prefix+"/video")
	if err != nil {
		return nil, err
	}
	thumbnail, err := s.presignTarget(ctx, pc, prefix+"/thumbnail")
	if err != nil {
		return nil, err
	}

	return &ports.UploadCredentials{
		Video:     *video,
		Thumbnail: *thumbnail,
		ExpiresAt: time.Now().UTC().Add(uploadURLExpiry),
	}, nil
}

func (s *MediaService) presignTarget(ctx context.Context, pc *s3.PresignClient, key string) (*ports.UploadTarget, error) {
	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(uploadURLExpiry))
	if err != nil {
		return nil, err
	}
	return &ports.UploadTarget{Key: key, URL: req.URL}, nil
}

// storagePrefix shards uploads by date so buckets stay listable.
func storagePrefix() string {
	d := time.Now().UTC()
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.NewString())
}
