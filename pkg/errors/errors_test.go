package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapPreservesChain(t *testing.T) {
	cause := stdErrors.New("socket closed")
	err := Wrap(CodeDependency, cause, "catalog feed unreachable")

	require.Equal(t, CodeDependency, err.Code())
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("outer: %w", err)
	typed := As(wrapped)
	require.NotNil(t, typed)
	require.Equal(t, CodeDependency, typed.Code())
}

func TestAsReturnsNilForPlainErrors(t *testing.T) {
	require.Nil(t, As(stdErrors.New("plain")))
	require.Nil(t, As(nil))
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NOT_A_CODE"))
	require.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestDumpWalksChain(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeInternal, cause, "persisting cart")

	dump := Dump(fmt.Errorf("handler: %w", err))
	require.Equal(t, CodeInternal, dump.Code)
	require.GreaterOrEqual(t, len(dump.Chain), 2)
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"size": "is required"})
	details, ok := err.Details().(map[string]string)
	require.True(t, ok)
	require.Equal(t, "is required", details["size"])
}
