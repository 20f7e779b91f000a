package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_DefaultNotNil(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
}

func TestSetLogger_Replaces(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))

	SetLogger(custom)
	defer SetLogger(nil)

	Logger().Info("profile rendered", "name", "resnet18")
	assert.Contains(t, buf.String(), "profile rendered")
	assert.Contains(t, buf.String(), "resnet18")
}
