package pipeline

import (
	"path/filepath"
	"strings"
)

// outputPaths are the published artifact locations for one run, all derived
// deterministically from the input filename so distinct inputs never
// collide.
type outputPaths struct {
	Subtitle string
	Master   string
	Short    string
}

func outputsFor(outputsDir, filename string) outputPaths {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return outputPaths{
		Subtitle: filepath.Join(outputsDir, base+".srt"),
		Master:   filepath.Join(outputsDir, "master_"+filename),
		Short:    filepath.Join(outputsDir, "short_"+base+".mp4"),
	}
}

// sanitizeFilename makes an uploaded filename safe for tool command lines.
func sanitizeFilename(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
