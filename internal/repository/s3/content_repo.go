// Package s3 loads the content documents from an S3-compatible bucket.
package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a fetched document is served before it is fetched again
const DefaultTTL = time.Minute

// ClientConfig holds the connection settings for the bucket
type ClientConfig struct {
	Region          string
	Endpoint        string // empty for AWS; set for S3-compatible providers
	AccessKeyID     string
	SecretAccessKey string
}

// NewClient creates an S3 client. Static credentials are used when given,
// otherwise the default AWS credential chain applies.
func NewClient(ctx context.Context, cfg ClientConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.Endpoint == "" {
		return s3.NewFromConfig(awsCfg), nil
	}
	// S3-compatible providers need a custom endpoint and path-style addressing
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	}), nil
}

// ObjectGetter is the subset of *s3.Client used by the repository
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type cached[T any] struct {
	doc       *T
	fetchedAt time.Time
}

// ContentRepository reads projects.json and gallery.json from bucket/prefix.
// Bucket reads happen outside mu; concurrent misses for one document share a fetch.
type ContentRepository struct {
	client ObjectGetter
	bucket string
	prefix string
	ttl    time.Duration
	now    func() time.Time

	group    singleflight.Group
	mu       sync.Mutex
	projects cached[domain.ProjectDocument]
	gallery  cached[domain.GalleryDocument]
}

func NewContentRepository(client ObjectGetter, bucket, prefix string, ttl time.Duration) *ContentRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ContentRepository{
		client: client,
		bucket: bucket,
		prefix: prefix,
		ttl:    ttl,
		now:    time.Now,
	}
}

var _ domain.ContentRepository = (*ContentRepository)(nil)

func (r *ContentRepository) Projects(ctx context.Context) (*domain.ProjectDocument, error) {
	return load(ctx, r, repository.ProjectsFile, &r.projects, repository.DecodeProjects)
}

func (r *ContentRepository) Gallery(ctx context.Context) (*domain.GalleryDocument, error) {
	return load(ctx, r, repository.GalleryFile, &r.gallery, repository.DecodeGallery)
}

// load serves slot while fresh, otherwise fetches name. On failure a stale copy
// beats no content.
func load[T any](ctx context.Context, r *ContentRepository, name string, slot *cached[T], decode func([]byte) (*T, error)) (*T, error) {
	r.mu.Lock()
	cur := *slot
	r.mu.Unlock()
	if cur.doc != nil && r.now().Sub(cur.fetchedAt) < r.ttl {
		return cur.doc, nil
	}

	v, err, _ := r.group.Do(name, func() (interface{}, error) {
		data, err := r.fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		doc, err := decode(data)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		*slot = cached[T]{doc: doc, fetchedAt: r.now()}
		r.mu.Unlock()
		return doc, nil
	})
	if err == nil {
		return v.(*T), nil
	}

	r.mu.Lock()
	stale := slot.doc
	r.mu.Unlock()
	if stale != nil {
		return stale, nil
	}
	return nil, repository.Unavailable(name, err)
}

func (r *ContentRepository) key(name string) string {
	if r.prefix == "" {
		return name
	}
	return path.Join(r.prefix, name)
}

func (r *ContentRepository) fetch(ctx context.Context, name string) ([]byte, error) {
	if r.bucket == "" {
		return nil, fmt.Errorf("no bucket configured")
	}
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key(name)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", r.bucket, r.key(name), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", r.bucket, r.key(name), err)
	}
	return data, nil
}
