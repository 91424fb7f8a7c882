package adapter

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

func TestLocalRobotResultAdapter_Parse_LegacySchema(t *testing.T) {
	adapter := NewLocalRobotResultAdapter()

	result, err := adapter.Parse(m.Path(filepath.Join("testdata", "output_rf6.xml")))
	require.NoError(t, err)

	assert.Equal(t, "Webapp Tests", result.Suite.Name)
	assert.Equal(t, "20240110 12:00:00.000", result.Suite.Start)
	assert.Equal(t, "20240110 12:00:05.000", result.Suite.End)
	require.Len(t, result.Suite.Tests, 4)

	valid := result.Suite.Tests[0]
	assert.Equal(t, "Valid Login", valid.Name)
	assert.Equal(t, "/work/webapp_tests/login.robot", valid.Source)
	assert.Equal(t, "PASS", valid.Status)
	assert.Equal(t, "", valid.Message)
	assert.Equal(t, int64(1250), valid.ElapsedMillis)

	invalid := result.Suite.Tests[1]
	assert.Equal(t, "FAIL", invalid.Status)
	assert.Equal(t, "Expected 'Welcome' but got 'Error'", invalid.Message)
	assert.Equal(t, int64(700), invalid.ElapsedMillis)

	// Suites without a source inherit the nearest one.
	skipped := result.Suite.Tests[2]
	assert.Equal(t, "SKIP", skipped.Status)
	assert.Equal(t, "/work/webapp_tests", skipped.Source)

	assert.Equal(t, int64(100), result.Suite.Tests[3].ElapsedMillis)
}

func TestLocalRobotResultAdapter_Parse_RF7Schema(t *testing.T) {
	adapter := NewLocalRobotResultAdapter()

	result, err := adapter.Parse(m.Path(filepath.Join("testdata", "output_rf7.xml")))
	require.NoError(t, err)

	require.Len(t, result.Suite.Tests, 2)
	assert.Equal(t, int64(1500), result.Suite.Tests[0].ElapsedMillis)
	assert.Equal(t, int64(250), result.Suite.Tests[1].ElapsedMillis)
	assert.Equal(t, "Status code 404 != 204", result.Suite.Tests[1].Message)

	start, err := ParseRobotTimestamp(result.Suite.Start)
	require.NoError(t, err)
	end, err := ParseRobotTimestamp(result.Suite.End)
	require.NoError(t, err)
	assert.Equal(t, 65*time.Second, end.Sub(start))
}

func TestParseRobotResult_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		notRobotErr bool
	}{
		{"malformed xml", "<robot><suite>", false},
		{"not xml at all", "hello", false},
		{"other root element", `<testsuite name="junit"></testsuite>`, true},
		{"robot without suite", `<robot generator="Robot 6.1"></robot>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRobotResult([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.notRobotErr, errors.Is(err, ErrNotRobotResult))
		})
	}
}

func TestParseRobotResult_MissingDuration(t *testing.T) {
	data := `<robot><suite name="S"><test name="T"><status status="pass"/></test><status status="PASS"/></suite></robot>`

	result, err := ParseRobotResult([]byte(data))
	require.NoError(t, err)
	require.Len(t, result.Suite.Tests, 1)

	assert.Equal(t, "PASS", result.Suite.Tests[0].Status)
	assert.Equal(t, "", result.Suite.Tests[0].Source)
	assert.Equal(t, int64(-1), result.Suite.Tests[0].ElapsedMillis)
}

func TestParseRobotResult_ElapsedSecondsRoundToMillis(t *testing.T) {
	tests := []struct {
		elapsed string
		want    int64
	}{
		{"1.005", 1005},
		{"0.29", 290},
		{"2.0004", 2000},
		{"0.0006", 1},
	}

	for _, tt := range tests {
		t.Run(tt.elapsed, func(t *testing.T) {
			data := `<robot generator="Robot 7.0"><suite name="S"><test name="T">` +
				`<status status="PASS" start="2024-01-10T09:30:00.000000" elapsed="` + tt.elapsed + `"/>` +
				`</test><status status="PASS"/></suite></robot>`

			result, err := ParseRobotResult([]byte(data))
			require.NoError(t, err)
			require.Len(t, result.Suite.Tests, 1)

			assert.Equal(t, tt.want, result.Suite.Tests[0].ElapsedMillis)
		})
	}
}

func TestLocalRobotResultAdapter_Parse_MissingFile(t *testing.T) {
	adapter := NewLocalRobotResultAdapter()

	_, err := adapter.Parse(m.Path(filepath.Join(t.TempDir(), "output.xml")))
	require.Error(t, err)
}

func TestParseRobotTimestamp(t *testing.T) {
	want := time.Date(2024, 1, 10, 12, 0, 5, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"legacy with millis", "20240110 12:00:05.500", false},
		{"legacy without millis", "20240110 12:00:05", false},
		{"iso with micros", "2024-01-10T12:00:05.123456", false},
		{"empty", "", true},
		{"garbage", "yesterday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRobotTimestamp(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}
