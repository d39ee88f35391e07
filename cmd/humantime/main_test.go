package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/auth-platform/libs/go/humantime/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "duration parse",
			args: []string{"duration", "parse", "1h 30m"},
			want: "1h 30m\nseconds: 5400\nnanos: 0\n",
		},
		{
			name: "duration format",
			args: []string{"duration", "format", "--seconds", "90061", "--nanos", "5000"},
			want: "1day 1h 1m 1s 5us\nseconds: 90061\nnanos: 5000\n",
		},
		{
			name: "timestamp parse",
			args: []string{"timestamp", "parse", "2018-02-14T00:28:07Z"},
			want: "2018-02-14T00:28:07Z\nunix: 1518568087\nnanos: 0\n",
		},
		{
			name: "timestamp parse weak",
			args: []string{"timestamp", "parse", "--weak", "2018-02-14 00:28:07"},
			want: "2018-02-14T00:28:07Z\nunix: 1518568087\nnanos: 0\n",
		},
		{
			name: "timestamp format fixed precision",
			args: []string{"timestamp", "format", "--seconds", "1518568087", "--nanos", "500000000", "--precision", "3"},
			want: "2018-02-14T00:28:07.500Z\nunix: 1518568087\nnanos: 500000000\n",
		},
		{
			name: "timestamp format auto precision",
			args: []string{"timestamp", "format", "--seconds", "1518568087", "--nanos", "500000000"},
			want: "2018-02-14T00:28:07.5Z\nunix: 1518568087\nnanos: 500000000\n",
		},
		{
			name: "add",
			args: []string{"add", "2018-02-14T00:28:07Z", "1day"},
			want: "2018-02-15T00:28:07Z\nunix: 1518654487\nnanos: 0\n",
		},
		{
			name: "sub",
			args: []string{"sub", "2018-02-14T00:28:07Z", "1h"},
			want: "2018-02-13T23:28:07Z\nunix: 1518564487\nnanos: 0\n",
		},
		{
			name: "between",
			args: []string{"between", "2018-02-14T00:00:00Z", "2018-02-15T01:00:00Z"},
			want: "1day 1h\nseconds: 90000\nnanos: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRun_JSON(t *testing.T) {
	code, stdout, _ := execute("--output", "json", "duration", "parse", "2h37m")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"text":"2h 37m","seconds":9420,"nanos":0}`, stdout)

	code, stdout, _ = execute("-o", "json", "timestamp", "parse", "1970-01-01T00:00:00.000000001Z")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"text":"1970-01-01T00:00:00.000000001Z","unix":0,"nanos":1}`, stdout)
}

func TestRun_Now(t *testing.T) {
	code, stdout, _ := execute("-o", "json", "timestamp", "now")
	require.Equal(t, 0, code)

	var res instantResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	v, err := timestamp.ParseStrict(res.Text)
	require.NoError(t, err)
	assert.Equal(t, res.Unix, v.Unix())
	assert.NotContains(t, res.Text, ".")
}

func TestRun_ParseErrorsShowCaret(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
		caret   string
	}{
		{
			name:    "unknown unit",
			args:    []string{"duration", "parse", "10 x"},
			message: `unknown time unit "x" at 3`,
			caret:   "  10 x\n     ^\n",
		},
		{
			name:    "missing number",
			args:    []string{"duration", "parse", "1h m"},
			message: "expected number at 3",
			caret:   "  1h m\n     ^\n",
		},
		{
			name:    "strict separator",
			args:    []string{"timestamp", "parse", "2018-02-14 00:28:07Z"},
			message: "invalid format at 10, expected 'T'",
			caret:   "  2018-02-14 00:28:07Z\n            ^\n",
		},
		{
			name:    "day out of range",
			args:    []string{"timestamp", "parse", "2019-02-29T00:00:00Z"},
			message: "day is out of range at 8",
			caret:   "  2019-02-29T00:00:00Z\n          ^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.message)
			assert.True(t, strings.HasSuffix(stderr, tt.caret), "stderr: %q", stderr)
		})
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"precision out of range", []string{"timestamp", "format", "--seconds", "0", "--precision", "10"}, 1, "precision is out of range"},
		{"year out of range", []string{"timestamp", "format", "--seconds", "253402300800"}, 1, "out of range for year 0000-9999"},
		{"nanos carry", []string{"duration", "format", "--seconds", "1", "--nanos", "1500000000"}, 1, "must be below one second"},
		{"nanos carry at max seconds", []string{"duration", "format", "--seconds", "18446744073709551615", "--nanos", "1000000000"}, 1, "must be below one second"},
		{"timestamp nanos carry", []string{"timestamp", "format", "--seconds", "9223372036854775807", "--nanos", "1000000000"}, 1, "seconds overflow"},
		{"reversed between", []string{"between", "2018-02-15T00:00:00Z", "2018-02-14T00:00:00Z"}, 1, "is after"},
		{"bad argument", []string{"add", "yesterday", "1s"}, 2, "timestamp:"},
		{"bad duration argument", []string{"add", "2018-02-14T00:28:07Z", "1 fortnight"}, 2, "unknown time unit"},
		{"unknown command", []string{"reverse"}, 2, "humantime:"},
		{"bad output", []string{"--output", "xml", "duration", "parse", "1s"}, 2, "humantime:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestRun_DebugLogging(t *testing.T) {
	code, _, stderr := execute("--log-level", "debug", "--log-format", "json", "duration", "parse", "5s")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, `"msg":"duration parsed"`)
	assert.Contains(t, stderr, `"seconds":5`)

	code, _, stderr = execute("duration", "parse", "5s")
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)
}
