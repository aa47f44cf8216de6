package utils

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// LogEvent prints a standardized event with module/action fields.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(module, action, message string) {
	log.WithFields(log.Fields{
		"module": strings.ToUpper(module),
		"action": action,
	}).Info(message)
}

func LogError(module, action string, err error) {
	log.WithFields(log.Fields{
		"module": strings.ToUpper(module),
		"action": action,
	}).Error(err)
}
