package loaders

import (
	"fmt"

	"api-insights/internal/shared/svcerrors"
)

// LogLoader errors
const (
	codeFileUnreadable   = "LDR_1000"
	codeDecompressFailed = "LDR_1001"
	codeMalformedJSON    = "LDR_1002"
)

// errFileUnreadable returns an error when the input file cannot be opened or read.
func errFileUnreadable(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeFileUnreadable, fmt.Sprintf("cannot read log file: %s", path), cause)
}

// errDecompressFailed returns an error when gzip input cannot be decompressed.
func errDecompressFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDecompressFailed, "invalid gzip payload", cause)
}

// errMalformedJSON returns an error when the payload is not valid JSON.
func errMalformedJSON(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedJSON, "invalid json", cause)
}
