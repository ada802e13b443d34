package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"weathercli.app/internal/weather"
	"weathercli.app/pkg/errors"
)

// Sink writes a finished report to stdout or to a file. The document is
// fully rendered before any byte is written, so a failure never leaves a
// partial report behind.
type Sink struct {
	stdout io.Writer
	stderr io.Writer
}

// NewSink creates a sink bound to the process streams
func NewSink() *Sink {
	return &Sink{stdout: os.Stdout, stderr: os.Stderr}
}

// NewSinkWithWriters creates a sink bound to the given writers
func NewSinkWithWriters(stdout, stderr io.Writer) *Sink {
	return &Sink{stdout: stdout, stderr: stderr}
}

// Write renders the report per the query's format and delivers it to the
// query's output path, or stdout when no path is set.
func (s *Sink) Write(report *weather.Report, query *weather.Query) error {
	var rendered []byte
	var err error

	switch query.Format {
	case weather.FormatText:
		rendered = []byte(renderText(report))
	default:
		rendered, err = renderJSON(report, query.Pretty)
		if err != nil {
			return errors.NewOutputError("encode weather report", err)
		}
	}

	if query.OutputPath == "" {
		if _, err := fmt.Fprintln(s.stdout, string(rendered)); err != nil {
			return errors.NewOutputError("write weather report to stdout", err)
		}
		return nil
	}

	if err := os.WriteFile(query.OutputPath, append(rendered, '\n'), 0o644); err != nil {
		return errors.NewOutputError(
			fmt.Sprintf("write weather report to %s", query.OutputPath), err)
	}

	fmt.Fprintf(s.stderr, "Weather data saved to %s\n", query.OutputPath)
	return nil
}

func renderJSON(report *weather.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

func renderText(report *weather.Report) string {
	c := report.Conditions
	return fmt.Sprintf(
		"Weather in %s, %s:\n"+
			"%s (%s)\n"+
			"Temperature: %g%s (feels like %g%s)\n"+
			"Humidity: %s\n"+
			"Wind: %s\n"+
			"Pressure: %s",
		report.Location.City, report.Location.Country,
		c.Main, c.Description,
		c.Temperature.Current, c.Temperature.Unit,
		c.Temperature.FeelsLike, c.Temperature.Unit,
		c.Humidity,
		c.Wind.Speed,
		c.Pressure,
	)
}
