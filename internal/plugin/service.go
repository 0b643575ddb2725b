package plugin

import (
    "context"
    "fmt"
    "log/slog"
    "sync"

    "cryptoagent/internal/runtime"
)

// HeartbeatService is the plugin's lifecycle-managed background service.
// It logs on start and stop and exposes no other behavior.
type HeartbeatService struct {
    log *slog.Logger

    mu      sync.Mutex
    running bool
}

func NewHeartbeatService(log *slog.Logger) *HeartbeatService {
    if log == nil { log = slog.Default() }
    return &HeartbeatService{log: log}
}

func (s *HeartbeatService) Name() string { return "CRYPTO_HEARTBEAT" }

func (s *HeartbeatService) Start(ctx context.Context) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.running {
        return fmt.Errorf("service %s already started", s.Name())
    }
    s.running = true
    s.log.InfoContext(ctx, "service started", "service", s.Name())
    return nil
}

func (s *HeartbeatService) Stop(ctx context.Context) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if !s.running {
        return fmt.Errorf("service %s not running", s.Name())
    }
    s.running = false
    s.log.InfoContext(ctx, "service stopped", "service", s.Name())
    return nil
}

// Running reports the current lifecycle state.
func (s *HeartbeatService) Running() bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.running
}

var _ runtime.Service = (*HeartbeatService)(nil)
