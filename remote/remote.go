// Package remote fetches and stores ".properties" documents over HTTP,
// S3-compatible object storage and SFTP.
package remote

import (
	"bytes"
	"context"
	"fmt"

	"github.com/carlmjohnson/requests"

	"github.com/kjk/properties"
)

// Logf is called with the outcome of remote operations. Replace to
// route into your logger.
var Logf = func(format string, args ...any) {}

// the conventional mime type for the format
const propertiesContentType = "text/x-java-properties"

// FetchURL downloads and parses a ".properties" document. The body is
// read as Latin-1 bytes, the classic interchange encoding.
func FetchURL(ctx context.Context, url string) (*properties.Properties, error) {
	var buf bytes.Buffer
	err := requests.
		URL(url).
		ToBytesBuffer(&buf).
		Fetch(ctx)
	if err != nil {
		Logf("FetchURL %s failed: %v\n", url, err)
		return nil, fmt.Errorf("fetching '%s': %w", url, err)
	}
	Logf("FetchURL %s: %d bytes\n", url, buf.Len())
	p := properties.New()
	if err = p.Load(&buf); err != nil {
		return nil, err
	}
	return p, nil
}

// PostURL stores p and POSTs the document to url.
func PostURL(ctx context.Context, url string, p *properties.Properties, comment string) error {
	var buf bytes.Buffer
	if err := p.Store(&buf, comment); err != nil {
		return err
	}
	err := requests.
		URL(url).
		BodyBytes(buf.Bytes()).
		ContentType(propertiesContentType).
		Fetch(ctx)
	if err != nil {
		Logf("PostURL %s failed: %v\n", url, err)
		return fmt.Errorf("posting to '%s': %w", url, err)
	}
	Logf("PostURL %s: %d bytes\n", url, buf.Len())
	return nil
}
