package runtime

import (
    "context"
    "fmt"
    "log/slog"
)

// Registry holds plugin capabilities in explicit registration order.
// No reflection-based discovery: everything is registered at startup.
type Registry struct {
    log *slog.Logger

    plugins   []*Plugin
    actions   []Action
    providers []Provider
    services  []Service
    models    map[string]ModelFunc
    routes    []Route
    events    map[EventType][]EventHandler
}

func NewRegistry(log *slog.Logger) *Registry {
    if log == nil { log = slog.Default() }
    return &Registry{
        log:    log,
        models: make(map[string]ModelFunc),
        events: make(map[EventType][]EventHandler),
    }
}

// RegisterPlugin runs the plugin's Init and appends its capabilities.
// Action names must be unique across plugins; dispatch order follows
// registration order.
func (r *Registry) RegisterPlugin(ctx context.Context, p *Plugin, cfg Config) error {
    if p == nil { return fmt.Errorf("register: nil plugin") }
    if p.Name == "" { return fmt.Errorf("register: plugin name required") }
    if p.Init != nil {
        if err := p.Init(ctx, cfg); err != nil {
            return fmt.Errorf("init plugin %s: %w", p.Name, err)
        }
    }
    for _, a := range p.Actions {
        if _, ok := r.Action(a.Name()); ok {
            return fmt.Errorf("register: duplicate action %s", a.Name())
        }
        r.actions = append(r.actions, a)
    }
    r.providers = append(r.providers, p.Providers...)
    r.services = append(r.services, p.Services...)
    for name, m := range p.Models {
        if _, ok := r.models[name]; ok {
            return fmt.Errorf("register: duplicate model %s", name)
        }
        r.models[name] = m
    }
    r.routes = append(r.routes, p.Routes...)
    for t, hs := range p.Events {
        r.events[t] = append(r.events[t], hs...)
    }
    r.plugins = append(r.plugins, p)
    r.log.Info("plugin registered", "plugin", p.Name,
        "actions", len(p.Actions), "providers", len(p.Providers), "services", len(p.Services))
    return nil
}

// Action returns a registered action by name.
func (r *Registry) Action(name string) (Action, bool) {
    for _, a := range r.actions {
        if a.Name() == name { return a, true }
    }
    return nil, false
}

// Model returns a registered model function by slot name.
func (r *Registry) Model(name string) (ModelFunc, bool) {
    m, ok := r.models[name]
    return m, ok
}

// Routes returns all registered HTTP routes in registration order.
func (r *Registry) Routes() []Route { return r.routes }

// Providers returns all registered providers in registration order.
func (r *Registry) Providers() []Provider { return r.providers }

// Dispatch runs the first action whose Validate accepts the message.
// At most one handler is invoked per message; a nil action result means
// no action matched.
func (r *Registry) Dispatch(ctx context.Context, msg *Message, sink *Sink) (*Result, error) {
    for _, a := range r.actions {
        ok, err := a.Validate(ctx, msg)
        if err != nil {
            return nil, fmt.Errorf("validate %s: %w", a.Name(), err)
        }
        if !ok { continue }
        res, err := a.Handle(ctx, msg, sink)
        if err != nil {
            return nil, fmt.Errorf("handle %s: %w", a.Name(), err)
        }
        return res, nil
    }
    return nil, nil
}

// Emit fans an event out to every handler registered for its type.
// Handler errors are logged and swallowed.
func (r *Registry) Emit(ctx context.Context, ev Event) {
    for _, h := range r.events[ev.Type] {
        if err := h(ctx, ev); err != nil {
            r.log.Warn("event handler failed", "event", string(ev.Type), "err", err)
        }
    }
}

// StartServices starts registered services in registration order.
// The first failure stops the sweep and is returned.
func (r *Registry) StartServices(ctx context.Context) error {
    for _, s := range r.services {
        if err := s.Start(ctx); err != nil {
            return fmt.Errorf("start service %s: %w", s.Name(), err)
        }
    }
    return nil
}

// StopServices stops services in reverse registration order.
// All services are attempted; the first error is returned.
func (r *Registry) StopServices(ctx context.Context) error {
    var firstErr error
    for i := len(r.services) - 1; i >= 0; i-- {
        if err := r.services[i].Stop(ctx); err != nil && firstErr == nil {
            firstErr = err
        }
    }
    return firstErr
}
