package archive

import (
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// CompressFile compresses a single file into an lz4 frame at dst and returns
// the number of compressed bytes written. This path is independent of the zip
// container and is meant for one-off file compression.
func CompressFile(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, ErrExpectedFile
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	counter := &countingWriter{w: out}
	zw := lz4.NewWriter(counter)
	if _, err := io.Copy(zw, in); err != nil {
		zw.Close()
		return counter.n, err
	}
	if err := zw.Close(); err != nil {
		return counter.n, err
	}
	return counter.n, nil
}

// DecompressFile reverses CompressFile and returns the number of decompressed
// bytes written to dst.
func DecompressFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	zr := lz4.NewReader(in)
	return io.Copy(out, zr)
}

// countingWriter counts bytes passed through to the wrapped writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
