package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lxl66566/urldecoder/libs/log"
)

func TestNewDefaultLogger(t *testing.T) {
	testCases := map[string]struct {
		format    string
		level     string
		expectErr bool
	}{
		"invalid format": {
			format:    "foo",
			level:     log.LogLevelInfo,
			expectErr: true,
		},
		"invalid level": {
			format:    log.LogFormatJSON,
			level:     "foo",
			expectErr: true,
		},
		"valid format and level": {
			format:    log.LogFormatJSON,
			level:     log.LogLevelInfo,
			expectErr: false,
		},
		"plain format": {
			format:    log.LogFormatPlain,
			level:     log.LogLevelDebug,
			expectErr: false,
		},
	}

	for name, tc := range testCases {
		tc := tc

		t.Run(name, func(t *testing.T) {
			_, err := log.NewDefaultLogger(tc.format, tc.level)
			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDefaultLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewDefaultLoggerWithOutput(&buf, log.LogFormatJSON, log.LogLevelInfo)
	require.NoError(t, err)

	logger.With("module", "corpus").Info("wrote seed", "name", "seed_basic_01", "bytes", 82)
	logger.Debug("filtered out")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "wrote seed", entry["message"])
	require.Equal(t, "corpus", entry["module"])
	require.Equal(t, "seed_basic_01", entry["name"])
	require.EqualValues(t, 82, entry["bytes"])
}

func TestOverrideWithNewLogger(t *testing.T) {
	logger := log.NewNopLogger()
	require.NoError(t, log.OverrideWithNewLogger(logger, log.LogFormatJSON, log.LogLevelError))
	require.Error(t, log.OverrideWithNewLogger(logger, "foo", log.LogLevelError))
}

func TestOverrideWithNewLoggerKeepsOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewDefaultLoggerWithOutput(&buf, log.LogFormatPlain, log.LogLevelError)
	require.NoError(t, err)

	logger.Info("dropped")
	require.Zero(t, buf.Len())

	require.NoError(t, log.OverrideWithNewLogger(logger, log.LogFormatJSON, log.LogLevelInfo))
	logger.Info("kept", "name", "seed_malformed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "kept", entry["message"])
	require.Equal(t, "seed_malformed", entry["name"])
}
