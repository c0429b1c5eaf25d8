package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Version string `json:"version" yaml:"version"`
	Loader  string `json:"loader" yaml:"loader"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "", want: FormatText},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	data := sample{Version: "1.20.1", Loader: "fabric"}
	text := func(w io.Writer) error {
		_, err := io.WriteString(w, "1.20.1\n")
		return err
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatText, data, text))
		assert.Equal(t, "1.20.1\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatJSON, data, text))

		var got struct {
			Status string `json:"status"`
			Data   sample `json:"data"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "success", got.Status)
		assert.Equal(t, data, got.Data)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatYAML, data, text))

		var got struct {
			Status string `yaml:"status"`
			Data   sample `yaml:"data"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "success", got.Status)
		assert.Equal(t, data, got.Data)
	})
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderError(&buf, FormatText, nil, errors.New("boom")))
	assert.Empty(t, buf.String())

	require.NoError(t, RenderError(&buf, FormatJSON, nil, errors.New("boom")))
	var env Envelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "boom", env.Error)
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "0B", HumanSize(0))
	assert.Equal(t, "1.536kB", HumanSize(1536))
	assert.Equal(t, "2MB", HumanSize(2_000_000))
}

func TestIndicator(t *testing.T) {
	assert.Contains(t, Indicator(true), "✓")
	assert.Contains(t, Indicator(false), "✗")
}
