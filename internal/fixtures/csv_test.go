package fixtures_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
	"github.com/trentd187/beetlerank-devapi/internal/models"
)

func TestWriteCheckpointsCSV_Default(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixtures.WriteCheckpointsCSV(&buf, fixtures.Default().Checkpoints()))

	want := "STEP,STEPNAME,X,Y,Z\n" +
		"0,start,0.0,1.0,2.0\n" +
		"-1,reset,1.0,2.0,3.0\n" +
		"1,*,2.0,3.0,4.0\n" +
		"2,end,3.0,4.0,5.0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCheckpointsCSV_Decimals(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.Checkpoint{{Step: 3, Name: models.StepNameCheckpoint, X: 1.25, Y: -0.5, Z: 100}}
	require.NoError(t, fixtures.WriteCheckpointsCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "3,*,1.25,-0.5,100.0", lines[1])
}

func TestParseCheckpointsCSV_RoundTrip(t *testing.T) {
	rows := fixtures.Default().Checkpoints()

	var buf bytes.Buffer
	require.NoError(t, fixtures.WriteCheckpointsCSV(&buf, rows))

	got, err := fixtures.ParseCheckpointsCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestParseCheckpointsCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{"empty", "", "read checkpoints header"},
		{"wrong header", "STEP,NAME,X,Y,Z\n", "unexpected checkpoints header"},
		{"short row", "STEP,STEPNAME,X,Y,Z\n0,start,0.0\n", "read checkpoints"},
		{"bad step", "STEP,STEPNAME,X,Y,Z\nzero,start,0,0,0\n", "checkpoints line 2: STEP"},
		{"bad step name", "STEP,STEPNAME,X,Y,Z\n0,begin,0,0,0\n", `unknown STEPNAME "begin"`},
		{"bad coordinate", "STEP,STEPNAME,X,Y,Z\n0,start,0,north,0\n", "checkpoints line 2: Y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixtures.ParseCheckpointsCSV(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
