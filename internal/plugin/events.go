package plugin

import (
    "context"
    "log/slog"

    "cryptoagent/internal/runtime"
)

// eventHandlers returns the plugin's event-log handlers. Each one records
// the event at debug level and nothing else.
func eventHandlers(log *slog.Logger) map[runtime.EventType][]runtime.EventHandler {
    logEvent := func(ctx context.Context, ev runtime.Event) error {
        log.DebugContext(ctx, "event received", "event", string(ev.Type), "keys", len(ev.Payload))
        return nil
    }
    return map[runtime.EventType][]runtime.EventHandler{
        runtime.EventMessageReceived:      {logEvent},
        runtime.EventVoiceMessageReceived: {logEvent},
        runtime.EventWorldConnected:       {logEvent},
        runtime.EventWorldJoined:          {logEvent},
    }
}
