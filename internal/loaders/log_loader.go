package loaders

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"api-insights/internal/shared/loggers"
)

// gzip member header magic bytes (RFC 1952).
var gzipMagic = []byte{0x1f, 0x8b}

//go:generate mockgen -source=log_loader.go -destination=./mocks/log_loader_mock.go -package=mocks
type LogLoader interface {
	// LoadFile opens path and decodes its contents as JSON. Gzip-compressed
	// files are decompressed transparently.
	LoadFile(ctx context.Context, path string) (any, error)

	// Load decodes r as JSON, decompressing gzip input transparently. The
	// decoded value is returned as-is: a JSON array becomes []any, anything
	// else passes through for the analysis layer to classify.
	Load(ctx context.Context, r io.Reader) (any, error)
}

type logLoader struct{}

func NewLogLoader() LogLoader {
	return &logLoader{}
}

func (l *logLoader) LoadFile(ctx context.Context, path string) (any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errFileUnreadable(path, err)
	}
	defer file.Close()

	decoded, err := l.Load(ctx, file)
	if err != nil {
		return nil, err
	}

	loggers.Ctx(ctx).Debug().Msgf("loaded log file: %s", path)
	return decoded, nil
}

func (l *logLoader) Load(ctx context.Context, r io.Reader) (any, error) {
	buffered := bufio.NewReader(r)

	// Sniff for a gzip member; inputs shorter than the magic cannot be one.
	head, err := buffered.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, errFileUnreadable("stream", err)
	}

	var src io.Reader = buffered
	if bytes.Equal(head, gzipMagic) {
		gzReader, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, errDecompressFailed(err)
		}
		defer gzReader.Close()
		src = gzReader
	}

	data, err := io.ReadAll(src)
	if err != nil {
		if src != buffered {
			return nil, errDecompressFailed(err)
		}
		return nil, errFileUnreadable("stream", err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, errMalformedJSON(err)
	}
	return decoded, nil
}
