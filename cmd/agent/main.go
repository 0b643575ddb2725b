package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "golang.org/x/sync/errgroup"

    "cryptoagent/internal/character"
    "cryptoagent/internal/coingecko"
    "cryptoagent/internal/config"
    "cryptoagent/internal/httpx"
    "cryptoagent/internal/plugin"
    "cryptoagent/internal/runtime"
)

func main() {
    // Optional .env for local development; absence is not an error.
    if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
        log.Printf("warning: .env: %v", err)
    }

    cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
    if err != nil { log.Fatalf("config: %v", err) }
    if err := cfg.Validate(); err != nil { log.Fatalf("config: %v", err) }

    logger := newLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)

    char, err := character.Load(cfg.Character.Path)
    if err != nil { log.Fatalf("character: %v", err) }
    char.ApplyOptions(character.Options{
        LLMProvider:   cfg.Character.LLMProvider,
        WithVoice:     cfg.Character.Voice,
        WithBootstrap: cfg.Character.Bootstrap,
    })
    if err := char.Validate(); err != nil { log.Fatalf("character: %v", err) }
    logger.Info("character loaded", "name", char.Name, "plugins", len(char.Plugins))

    httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

    gecko, err := coingecko.NewClient(cfg.CoinGecko.APIKey,
        coingecko.WithBaseURL(cfg.CoinGecko.BaseURL),
        coingecko.WithHTTPClient(httpClient),
    )
    if err != nil { log.Fatalf("coingecko client: %v", err) }

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    reg := runtime.NewRegistry(logger)
    p := plugin.New(gecko, cfg.CoinGecko.VsCurrency, logger)
    if err := reg.RegisterPlugin(ctx, p, runtime.Config{
        plugin.ConfigKeyAPIKey: cfg.CoinGecko.APIKey,
    }); err != nil {
        log.Fatalf("register plugin: %v", err)
    }

    if err := reg.StartServices(ctx); err != nil {
        log.Fatalf("start services: %v", err)
    }
    reg.Emit(ctx, runtime.Event{Type: runtime.EventWorldConnected, Payload: map[string]any{"agent": char.Name}})

    mux := http.NewServeMux()
    mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })
    for _, rt := range reg.Routes() {
        rt := rt
        mux.HandleFunc(rt.Path, func(w http.ResponseWriter, r *http.Request) {
            if r.Method != rt.Method {
                http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
                return
            }
            rt.Handler(w, r)
        })
    }

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           withJSONHeaders(withGzip(recoverPanic(limitBody(mux)))),
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    g, gctx := errgroup.WithContext(ctx)
    g.Go(func() error {
        logger.Info("server listening", "addr", srv.Addr)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            return err
        }
        return nil
    })
    g.Go(func() error {
        <-gctx.Done()
        shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        return srv.Shutdown(shutdownCtx)
    })

    if err := g.Wait(); err != nil {
        logger.Error("server", "err", err)
    }

    stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := reg.StopServices(stopCtx); err != nil {
        logger.Warn("stop services", "err", err)
    }
}
