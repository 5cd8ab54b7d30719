package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSFiles stores the workbooks in Google Cloud Storage. Each logical
// bucket maps to the GCS bucket prefix+bucket. Credentials come from
// Application Default Credentials.
type GCSFiles struct {
	client *storage.Client
	prefix string
}

func NewGCSFiles(ctx context.Context, prefix string) (*GCSFiles, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSFiles{client: client, prefix: prefix}, nil
}

func (g *GCSFiles) bucket(name string) *storage.BucketHandle {
	return g.client.Bucket(g.prefix + name)
}

func (g *GCSFiles) UploadFile(ctx context.Context, bucket, name string, data []byte, upsert bool) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	obj := g.bucket(bucket).Object(name)
	if !upsert {
		obj = obj.If(storage.Conditions{DoesNotExist: true})
	}

	w := obj.NewWriter(ctx)
	w.ContentType = tipoContenido(name)
	w.CacheControl = "max-age=3600"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("gcs: write %s/%s: %w", bucket, name, g.traducir(err))
	}
	// Close finalizes the upload.
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs: finalize upload %s/%s: %w", bucket, name, g.traducir(err))
	}
	return nil
}

func (g *GCSFiles) ListFiles(ctx context.Context, bucket string) ([]FileInfo, error) {
	it := g.bucket(bucket).Objects(ctx, nil)
	var files []FileInfo
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gcs: list %s: %w", bucket, g.traducir(err))
		}
		files = append(files, FileInfo{Name: attrs.Name, CreatedAt: attrs.Created})
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].CreatedAt.After(files[j].CreatedAt) })
	if len(files) > limiteListado {
		files = files[:limiteListado]
	}
	return files, nil
}

func (g *GCSFiles) PublicURL(bucket, name string) string {
	return "https://storage.googleapis.com/" + g.prefix + bucket + "/" + url.PathEscape(name)
}

func (g *GCSFiles) Download(ctx context.Context, bucket, name string) ([]byte, error) {
	r, err := g.bucket(bucket).Object(name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs: open %s/%s: %w", bucket, name, g.traducir(err))
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gcs: read %s/%s: %w", bucket, name, err)
	}
	return data, nil
}

func (g *GCSFiles) Close() error { return g.client.Close() }

func (g *GCSFiles) traducir(err error) error {
	switch {
	case errors.Is(err, storage.ErrBucketNotExist):
		return ErrBucketNotFound
	case errors.Is(err, storage.ErrObjectNotExist):
		return ErrNotFound
	}
	return err
}

var _ Files = (*GCSFiles)(nil)
