package output

import (
	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/sonemaro/fileorg/pkg/organizer"
	"gopkg.in/yaml.v3"
)

func (f *formatter) formatYAML(summary *organizer.Summary) (string, error) {
	f.log.Debug("Formatting YAML output")

	// Reuse JSON structure for YAML output
	bytes, err := yaml.Marshal(f.convertSummary(summary))
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}
