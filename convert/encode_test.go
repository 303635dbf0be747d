package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	perrors "github.com/tapiab/open-space-toolkit-physics/errors"
	"github.com/tapiab/open-space-toolkit-physics/time"
)

func convertAll(t *testing.T, c *Converter, inputs ...string) []*Result {
	t.Helper()
	results, err := c.ConvertAll(context.Background(), inputs)
	require.NoError(t, err)
	return results
}

func TestParseEncoding(t *testing.T) {
	for _, name := range []string{"text", "JSON", "Yaml"} {
		e, err := ParseEncoding(name)
		require.NoError(t, err)
		assert.Contains(t, Encodings, e)
	}

	_, err := ParseEncoding("toml")
	require.Error(t, err)
	assert.Equal(t, perrors.CodeInvalidArgument, perrors.GetCode(err))
}

func TestConverter_EncodeText(t *testing.T) {
	c, err := New(WithOutputFormat(time.FormatSTK))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = c.Encode(&buf, convertAll(t, c, "2018-01-01 00:00:00", "jd:2451545"), EncodingText)
	require.NoError(t, err)
	assert.Equal(t, "1 Jan 2018 00:00:00\n1 Jan 2000 12:00:00\n", buf.String())
}

func TestConverter_EncodeJSON(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = c.Encode(&buf, convertAll(t, c, "mjd:58119"), EncodingJSON)
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"input": "mjd:58119",
		"standard": "2018-01-01 00:00:00",
		"iso8601": "2018-01-01T00:00:00",
		"stk": "1 Jan 2018 00:00:00",
		"julianDate": 2458119.5,
		"modifiedJulianDate": 58119
	}]`, buf.String())
}

func TestConverter_EncodeYAML(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	results := convertAll(t, c, "2018-01-01T00:00:00", "6 Jan 1980 00:00:00")

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, results, EncodingYAML))

	var decoded []Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	for i, r := range results {
		assert.Equal(t, r.Input, decoded[i].Input)
		assert.Equal(t, r.Standard, decoded[i].Standard)
		assert.Equal(t, r.ISO8601, decoded[i].ISO8601)
		assert.Equal(t, r.STK, decoded[i].STK)
		assert.Equal(t, r.JulianDate, decoded[i].JulianDate)
		assert.Equal(t, r.ModifiedJulianDate, decoded[i].ModifiedJulianDate)
	}
}

func TestConverter_EncodeEmpty(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, nil, EncodingText))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, c.Encode(&buf, []*Result{}, EncodingJSON))
	var decoded []json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, decoded)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestConverter_EncodeErrors(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	results := convertAll(t, c, "2018-01-01 00:00:00")

	t.Run("unknown encoding", func(t *testing.T) {
		err := c.Encode(&bytes.Buffer{}, results, Encoding("xml"))
		require.Error(t, err)
		assert.Equal(t, perrors.CodeInvalidArgument, perrors.GetCode(err))
	})

	for _, enc := range Encodings {
		t.Run("write failure "+enc.String(), func(t *testing.T) {
			err := c.Encode(failingWriter{}, results, enc)
			require.Error(t, err)
			assert.Equal(t, perrors.CodeInternal, perrors.GetCode(err))
			assert.Contains(t, err.Error(), "disk full")
		})
	}
}
