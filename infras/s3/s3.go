package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"lessons/config"
	"lessons/infras/otel"
	"lessons/shared/constant"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"

	anyETag = "*"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrPreconditionFailed = errors.New("object changed since it was read")
)

// Object is an object body together with the ETag it was read at.
type Object struct {
	Body []byte
	ETag string
}

// S3 reads and conditionally writes whole objects in the configured bucket.
type S3 interface {
	GetObject(ctx context.Context, key string) (Object, error)
	// PutObject writes body only if the stored ETag still equals ifMatch. An empty ifMatch
	// means the object must not exist yet.
	PutObject(ctx context.Context, key string, body []byte, ifMatch string) (etag string, err error)
}

type s3Impl struct {
	client *s3.Client
	bucket string
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) (S3, error) {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(config.External.S3.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")

		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := config.External.S3.APIEndpoint; endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Impl{
		client: client,
		bucket: config.External.S3.BucketName,
		otel:   otel,
	}, nil
}

func (svc *s3Impl) GetObject(ctx context.Context, key string) (obj Object, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".GetObject")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	out, err := svc.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return obj, ErrObjectNotFound
		}

		return obj, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	obj.Body, err = io.ReadAll(out.Body)
	if err != nil {
		return obj, fmt.Errorf("failed to read object %s: %w", key, err)
	}

	obj.ETag = aws.ToString(out.ETag)

	return obj, nil
}

func (svc *s3Impl) PutObject(ctx context.Context, key string, body []byte, ifMatch string) (etag string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PutObject")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	input := &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(constant.ContentTypeJSON),
		ContentLength: aws.Int64(int64(len(body))),
	}

	if ifMatch == "" {
		input.IfNoneMatch = aws.String(anyETag)
	} else {
		input.IfMatch = aws.String(ifMatch)
	}

	out, err := svc.client.PutObject(ctx, input)
	if err != nil {
		if isPreconditionFailure(err) {
			return "", ErrPreconditionFailed
		}

		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return aws.ToString(out.ETag), nil
}

// isPreconditionFailure covers 412 and the 409 some providers return for a concurrent conditional write.
func isPreconditionFailure(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return true
		}
	}

	var respErr interface{ HTTPStatusCode() int }
	if errors.As(err, &respErr) {
		code := respErr.HTTPStatusCode()

		return code == http.StatusPreconditionFailed || code == http.StatusConflict
	}

	return false
}
