package vulkan

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

func debugMessengerOptions(logger logrus.FieldLogger) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    logDebug(logger),
	}
}

// logDebug returns a messenger callback that writes validation messages to
// logger at a level matching their severity.
func logDebug(logger logrus.FieldLogger) func(ext_debug_utils.DebugUtilsMessageTypeFlags, ext_debug_utils.DebugUtilsMessageSeverityFlags, *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	return func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
		entry := logger.WithField("type", msgType)

		switch {
		case severity&ext_debug_utils.SeverityError != 0:
			entry.Error(data.Message)
		case severity&ext_debug_utils.SeverityWarning != 0:
			entry.Warn(data.Message)
		default:
			entry.Debug(data.Message)
		}

		// Never abort the call that triggered the message.
		return false
	}
}
