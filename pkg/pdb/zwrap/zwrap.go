// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file. Structure files often arrive as .pdb.gz and we do
// not want to care.
package zwrap

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
)

// FpGzip reads through the decompressor if there is one.
type FpGzip struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying ReadCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Compressed says if we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer and wraps it so the correct
// Close and Read will be called. It fails if the source is not gzipped.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, zrdr: zrdr}, nil
}

// ReadSeekCloser is what WrapMaybe needs, so it can rewind.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe decides if the underlying stream is compressed
// and wraps the file pointer if necessary.
// If you pass in something which can seek, you get back a ReadCloser
// which cannot seek.
func WrapMaybe(fpIn ReadSeekCloser) (*FpGzip, error) {
	if out, err := Wrap(fpIn); err == nil {
		return out, nil // It was compressed. Return compressed reader.
	}
	if _, err := fpIn.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &FpGzip{fp: fpIn}, nil
}

// Open opens a file, compressed or not. Close the result when done.
func Open(fname string) (*FpGzip, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	r, err := WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return r, nil
}
