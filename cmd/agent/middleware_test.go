package main

import (
    "compress/gzip"
    "io"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
)

func okHandler() http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        _, _ = w.Write([]byte(`{"ok":true}`))
    })
}

func TestWithJSONHeaders_SetsContentTypeAndCORS(t *testing.T) {
    rr := httptest.NewRecorder()
    withJSONHeaders(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
    if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
        t.Fatalf("content-type=%q", ct)
    }
    if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
        t.Fatalf("cors origin=%q", got)
    }
}

func TestWithJSONHeaders_OptionsShortCircuits(t *testing.T) {
    called := false
    next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
    rr := httptest.NewRecorder()
    withJSONHeaders(next).ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/", nil))
    if rr.Code != http.StatusNoContent { t.Fatalf("status=%d", rr.Code) }
    if called { t.Fatal("next handler should not run for OPTIONS") }
}

func TestWithGzip_CompressesWhenAccepted(t *testing.T) {
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    req.Header.Set("Accept-Encoding", "gzip")
    rr := httptest.NewRecorder()
    withGzip(okHandler()).ServeHTTP(rr, req)
    if enc := rr.Header().Get("Content-Encoding"); enc != "gzip" {
        t.Fatalf("encoding=%q", enc)
    }
    zr, err := gzip.NewReader(rr.Body)
    if err != nil { t.Fatalf("gzip reader: %v", err) }
    body, err := io.ReadAll(zr)
    if err != nil { t.Fatalf("read: %v", err) }
    if string(body) != `{"ok":true}` { t.Fatalf("body=%q", body) }
}

func TestWithGzip_PassthroughWithoutAcceptHeader(t *testing.T) {
    rr := httptest.NewRecorder()
    withGzip(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
    if enc := rr.Header().Get("Content-Encoding"); enc != "" {
        t.Fatalf("unexpected encoding=%q", enc)
    }
    if rr.Body.String() != `{"ok":true}` { t.Fatalf("body=%q", rr.Body.String()) }
}

func TestRecoverPanic_Returns500(t *testing.T) {
    boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
    rr := httptest.NewRecorder()
    recoverPanic(boom).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
    if rr.Code != http.StatusInternalServerError { t.Fatalf("status=%d", rr.Code) }
}

func TestLimitBody_RejectsOversizedPost(t *testing.T) {
    read := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if _, err := io.ReadAll(r.Body); err != nil {
            http.Error(w, "too large", http.StatusRequestEntityTooLarge)
            return
        }
        w.WriteHeader(http.StatusOK)
    })
    big := strings.NewReader(strings.Repeat("x", (1<<20)+1))
    rr := httptest.NewRecorder()
    limitBody(read).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", big))
    if rr.Code != http.StatusRequestEntityTooLarge { t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String()) }
}

func TestParseLogLevel(t *testing.T) {
    cases := map[string]string{
        "debug": "DEBUG", "info": "INFO", "warn": "WARN", "error": "ERROR", "weird": "INFO",
    }
    for in, want := range cases {
        if got := parseLogLevel(in).String(); got != want {
            t.Errorf("parseLogLevel(%q)=%s want %s", in, got, want)
        }
    }
}
