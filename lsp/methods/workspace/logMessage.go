package workspace

import (
	"fmt"

	"bennypowers.dev/sasseval/internal/log"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// canNotify reports whether context is connected to a client
func canNotify(context *glsp.Context) bool {
	return context != nil && context.Notify != nil
}

// LogError logs an error message to stderr and, when connected, to the client
func LogError(context *glsp.Context, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	log.Error("%s", message)
	logMessage(context, protocol.MessageTypeError, message)
}

// LogWarning logs a warning message to stderr and, when connected, to the client
func LogWarning(context *glsp.Context, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	log.Warn("%s", message)
	logMessage(context, protocol.MessageTypeWarning, message)
}

func logMessage(context *glsp.Context, messageType protocol.MessageType, message string) {
	if !canNotify(context) {
		return
	}
	go func() {
		context.Notify(protocol.ServerWindowLogMessage, &protocol.LogMessageParams{
			Type:    messageType,
			Message: message,
		})
	}()
}

// ShowMessage sends a message to be displayed to the user
func ShowMessage(context *glsp.Context, messageType protocol.MessageType, message string) {
	if !canNotify(context) {
		return
	}
	go func() {
		context.Notify(protocol.ServerWindowShowMessage, &protocol.ShowMessageParams{
			Type:    messageType,
			Message: message,
		})
	}()
}
