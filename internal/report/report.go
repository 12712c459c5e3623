// Package report persists the briefing as formatted JSON and prints the
// human-readable console summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AnuragAmbekar741/mission-briefing/internal/domain"
)

// Writer writes the briefing file and the console summary.
type Writer struct {
	path   string
	out    io.Writer
	logger *slog.Logger
}

// NewWriter creates a Writer. The file at path is overwritten on each run.
func NewWriter(path string, out io.Writer, logger *slog.Logger) *Writer {
	return &Writer{
		path:   path,
		out:    out,
		logger: logger,
	}
}

// Write persists the briefing as pretty-printed JSON and echoes the fixed
// summary lines. A write failure is fatal to the run; nothing is retried.
func (w *Writer) Write(b domain.Briefing) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode briefing: %w", err)
	}
	if err := os.WriteFile(w.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write briefing: %w", err)
	}

	w.logger.Info("briefing written", "path", w.path, "bytes", len(data))
	w.printSummary(b)
	return nil
}

func (w *Writer) printSummary(b domain.Briefing) {
	fmt.Fprintf(w.out, "Observer:     %s (%.4f, %.4f)\n", b.Location.DisplayName, b.Location.Lat, b.Location.Lon)
	fmt.Fprintf(w.out, "ISS distance: %.1f km\n", b.SatelliteDistanceKm)
	fmt.Fprintf(w.out, "Next launch:  %s in %.1f h\n", b.NextLaunch.Name, b.HoursToLaunch)
	fmt.Fprintf(w.out, "Sky image:    %q (%s)\n", b.SkyImage.Title, b.SkyImage.MediaType)
	fmt.Fprintf(w.out, "NEO feed:     %d objects, %d hazardous\n", b.NeoSummary.TotalCount, b.NeoSummary.HazardousCount)
	fmt.Fprintf(w.out, "Threat:       %s (score %d)\n", b.Threat.Level, b.Threat.Score)
}
