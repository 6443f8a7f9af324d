package fixtures

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trentd187/beetlerank-devapi/internal/models"
)

// CheckpointsHeader is the first line of every checkpoints CSV.
var CheckpointsHeader = []string{"STEP", "STEPNAME", "X", "Y", "Z"}

// WriteCheckpointsCSV writes the header followed by one line per row.
func WriteCheckpointsCSV(w io.Writer, rows []models.Checkpoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CheckpointsHeader); err != nil {
		return errors.Wrap(err, "write checkpoints header")
	}
	for _, row := range rows {
		record := []string{strconv.Itoa(row.Step), string(row.Name)}
		for _, v := range row.Point() {
			record = append(record, formatCoord(v))
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "write checkpoint %d", row.Step)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush checkpoints")
}

// formatCoord prints a coordinate with at least one decimal place ("0.0", "1.25").
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// ParseCheckpointsCSV reads a checkpoints CSV produced by WriteCheckpointsCSV
// (or by the real upload endpoint).
func ParseCheckpointsCSV(r io.Reader) ([]models.Checkpoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CheckpointsHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read checkpoints header")
	}
	for i, name := range CheckpointsHeader {
		if header[i] != name {
			return nil, errors.Errorf("unexpected checkpoints header %q", strings.Join(header, ","))
		}
	}

	var rows []models.Checkpoint
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read checkpoints")
		}
		row, err := parseCheckpoint(record)
		if err != nil {
			return nil, errors.Wrapf(err, "checkpoints line %d", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseCheckpoint(record []string) (models.Checkpoint, error) {
	var (
		cp  models.Checkpoint
		err error
	)
	if cp.Step, err = strconv.Atoi(record[0]); err != nil {
		return cp, errors.Wrap(err, "STEP")
	}
	cp.Name = models.StepName(record[1])
	if !cp.Name.Valid() {
		return cp, errors.Errorf("unknown STEPNAME %q", record[1])
	}
	coords := []*float64{&cp.X, &cp.Y, &cp.Z}
	for i, dst := range coords {
		if *dst, err = strconv.ParseFloat(record[2+i], 64); err != nil {
			return cp, errors.Wrap(err, CheckpointsHeader[2+i])
		}
	}
	return cp, nil
}
