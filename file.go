package properties

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"

	"github.com/kjk/properties/atomicfile"
)

// ReadFile loads the file at path in the classic Latin-1 encoding.
// Files compressed with gzip, bzip2, zstd or brotli are decompressed
// transparently, picked by extension.
func ReadFile(path string) (*Properties, error) {
	p := New()
	if err := ReadFileInto(path, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadFileInto is like ReadFile but loads into p, for instances built
// with non-default ordering.
func ReadFileInto(path string, p *Properties) error {
	r, err := openFileMaybeCompressed(path)
	if err != nil {
		return err
	}
	err = p.Load(r)
	err2 := r.Close()
	if err != nil {
		return err
	}
	return err2
}

// WriteFile stores p at path by writing a temp file and renaming it over
// path, so a crash never leaves a torn file. The extension picks the
// compression: .gz, .zst, .zstd or .br. bzip2 is read-only.
func WriteFile(path string, p *Properties, comment string) error {
	var buf bytes.Buffer
	if err := p.Store(&buf, comment); err != nil {
		return err
	}
	d := buf.Bytes()
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		d, err = gzipCompressData(d)
	case ".zst", ".zstd":
		d, err = zstdCompressData(d)
	case ".br":
		d, err = brCompressData(d)
	case ".bz2":
		err = fmt.Errorf("can't write '%s': no bzip2 compressor", path)
	}
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(path, d)
}

// io.Closer goes to the file and the decompressor, io.Reader to the
// wrapping decompressor
type readerWrappedFile struct {
	f       *os.File
	r       io.Reader
	closeFn func()
}

func (rc *readerWrappedFile) Read(p []byte) (int, error) {
	return rc.r.Read(p)
}

func (rc *readerWrappedFile) Close() error {
	if rc.closeFn != nil {
		rc.closeFn()
	}
	return rc.f.Close()
}

func wrapInReadCloser(f *os.File, r io.Reader, err error, closeFn func()) (io.ReadCloser, error) {
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readerWrappedFile{f: f, r: r, closeFn: closeFn}, nil
}

func openFileMaybeCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		r, err := gzip.NewReader(f)
		return wrapInReadCloser(f, r, err, nil)
	case ".bz2":
		return wrapInReadCloser(f, bzip2.NewReader(f), nil, nil)
	case ".zst", ".zstd":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return wrapInReadCloser(f, r, nil, r.Close)
	case ".br":
		return wrapInReadCloser(f, brotli.NewReader(f), nil, nil)
	}
	return f, nil
}

func getErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func gzipCompressData(d []byte) ([]byte, error) {
	var dst bytes.Buffer
	w, err := gzip.NewWriterLevel(&dst, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = w.Write(d)
	err2 := w.Close()
	if err = getErr(err, err2); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}

func zstdCompressData(d []byte) ([]byte, error) {
	var dst bytes.Buffer
	w, err := zstd.NewWriter(&dst)
	if err != nil {
		return nil, err
	}
	_, err = w.Write(d)
	err2 := w.Close()
	if err = getErr(err, err2); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}

func brCompressData(d []byte) ([]byte, error) {
	var dst bytes.Buffer
	w := brotli.NewWriterLevel(&dst, brotli.DefaultCompression)
	_, err := w.Write(d)
	err2 := w.Close()
	if err = getErr(err, err2); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}
