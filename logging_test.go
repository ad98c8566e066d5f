package spincube

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := newLogger(&out, &errOut, 0, "spincube", false)

	l.Debugf("hidden %d", 1)
	l.Infof("New viewport: (width: %d, height: %d)", 800, 600)
	l.Warnf("cant load %s map", "diffuse")
	l.Errorf("fatal")

	assert.Equal(t, "[spincube] INFO: New viewport: (width: 800, height: 600)\n", out.String())
	assert.Equal(t, "[spincube] WARN: cant load diffuse map\n[spincube] ERROR: fatal\n", errOut.String())
}

func TestDefaultLogger_Debug(t *testing.T) {
	var out bytes.Buffer
	l := newLogger(&out, &bytes.Buffer{}, 0, "", false)

	assert.False(t, l.DebugEnabled())
	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())

	l.Debugf("value=%v", true)
	assert.Equal(t, "DEBUG: value=true\n", out.String())
}

func TestApp_Logger(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())

	app, err := NewAppBuilder().UseModule(LoggingModule{Prefix: "x"}).Build()
	assert.NoError(t, err)
	_, isDefault := app.Logger().(*DefaultLogger)
	assert.True(t, isDefault)
}

func TestLoggingModule_InstallsGivenLogger(t *testing.T) {
	var errOut bytes.Buffer
	l := newLogger(&bytes.Buffer{}, &errOut, 0, "spincube", false)

	app, err := NewAppBuilder().UseModule(LoggingModule{Logger: l}).Build()
	assert.NoError(t, err)
	assert.Same(t, l, app.Logger())

	app.Logger().Errorf("%v", "install *spincube.RendererModule: boom")
	assert.Equal(t, "[spincube] ERROR: install *spincube.RendererModule: boom\n", errOut.String())
}
