package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		ct   CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.ct.String())
		})
	}
}

func TestParseCompressionType(t *testing.T) {
	for _, name := range []string{"zstd", "ZSTD", "Zstd"} {
		ct, ok := ParseCompressionType(name)
		require.True(t, ok)
		require.Equal(t, CompressionZstd, ct)
	}

	ct, ok := ParseCompressionType("lz4")
	require.True(t, ok)
	require.Equal(t, CompressionLZ4, ct)

	_, ok = ParseCompressionType("gzip")
	require.False(t, ok)

	_, ok = ParseCompressionType("unknown")
	require.False(t, ok)
}

func TestRecordConstants(t *testing.T) {
	require.Equal(t, 2, RecordSize)
	require.Equal(t, 255, MaxRunLength)
}
