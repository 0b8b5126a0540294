// internal/storage/presigner.go
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dangerclosesec/sarpa/internal/config"
	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/google/uuid"
)

// Image types accepted for upload, mapped to the extension used when the
// file name has none.
var allowedContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// UploadTarget is what a client needs to put a file into the bucket.
type UploadTarget struct {
	Key          string    `json:"key"`
	UploadURL    string    `json:"presignedUrl"`
	ViewURL      string    `json:"url"`
	OriginalName string    `json:"originalName"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Presigner issues short-lived URLs for uploading and viewing images.
// A Presigner without a bucket is valid and reports itself disabled.
type Presigner struct {
	client  *s3.PresignClient
	bucket  string
	prefix  string
	ttl     time.Duration
	viewURL string
	now     func() time.Time
}

func NewPresigner(ctx context.Context, cfg *config.Config) (*Presigner, error) {
	sc := cfg.Storage
	p := &Presigner{
		bucket:  sc.Bucket,
		prefix:  sc.Prefix,
		ttl:     sc.PresignTTL,
		viewURL: "/api/files/",
		now:     time.Now,
	}
	if p.ttl <= 0 {
		p.ttl = time.Hour
	}
	if sc.Bucket == "" {
		return p, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(sc.Region)}
	if sc.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(sc.AccessKey, sc.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if sc.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.Endpoint)
			o.UsePathStyle = true
		}
	})
	p.client = s3.NewPresignClient(client)
	return p, nil
}

func (p *Presigner) Enabled() bool { return p != nil && p.client != nil && p.bucket != "" }

// PresignUpload validates the content type and returns a PUT URL for a fresh
// key under the company's folder.
func (p *Presigner) PresignUpload(ctx context.Context, companyID uuid.UUID, filename, contentType string) (*UploadTarget, error) {
	if !p.Enabled() {
		return nil, domain.ErrStorageNotConfigured
	}

	filename = strings.TrimSpace(filename)
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if filename == "" || contentType == "" {
		return nil, domain.NewValidationError("filename and contentType are required")
	}
	defaultExt, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, domain.ErrUnsupportedUploadType
	}

	now := p.now()
	key := p.objectKey(companyID, filename, defaultExt, now)

	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return nil, fmt.Errorf("presigning upload: %w", err)
	}

	return &UploadTarget{
		Key:          key,
		UploadURL:    req.URL,
		ViewURL:      p.viewURL + key,
		OriginalName: filename,
		ExpiresAt:    now.Add(p.ttl),
	}, nil
}

// PresignView returns a GET URL for an object the company uploaded through
// PresignUpload. Keys of other companies are reported as not found.
func (p *Presigner) PresignView(ctx context.Context, companyID uuid.UUID, key string) (string, error) {
	if !p.Enabled() {
		return "", domain.ErrStorageNotConfigured
	}
	if !p.ownsKey(companyID, key) {
		return "", domain.ErrNotFound
	}

	req, err := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", fmt.Errorf("presigning view: %w", err)
	}
	return req.URL, nil
}

func (p *Presigner) companyPrefix(companyID uuid.UUID) string {
	return p.prefix + companyID.String() + "/"
}

func (p *Presigner) objectKey(companyID uuid.UUID, filename, defaultExt string, now time.Time) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if ext == "" || strings.ContainsAny(ext, "/\\ ") {
		ext = defaultExt
	}
	return fmt.Sprintf("%s%s-%d.%s", p.companyPrefix(companyID), uuid.NewString(), now.Unix(), ext)
}

func (p *Presigner) ownsKey(companyID uuid.UUID, key string) bool {
	prefix := p.companyPrefix(companyID)
	if companyID == uuid.Nil || strings.Contains(key, "..") || !strings.HasPrefix(key, prefix) {
		return false
	}
	rest := strings.TrimPrefix(key, prefix)
	return rest != "" && !strings.Contains(rest, "/")
}
