package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per domain action with the
// module tag (booking, docs, auth) and request_id for tracing. Buyer
// phone numbers and payloads stay out; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
