package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "debug", "json")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("invoice_id", 7).Info("created")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "created", entry["msg"])
	assert.EqualValues(t, 7, entry["invoice_id"])
}

func TestNewWithOutputUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "loud", "text")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}
