package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized line with module/action/request_id. Keep
// messages summarized; never log credentials or full email bodies.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}

// LogWarn mirrors LogEvent for advisory failures that must not interrupt the
// request, such as a failed notification email.
func LogWarn(requestID, module, action string, err error) {
	log.Printf("[%s] WARNING action=%s request_id=%s err=%v",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), err)
}
