package plugin

import (
    "encoding/json"
    "net/http"

    "cryptoagent/internal/runtime"
)

// helloRoute is the one fixed HTTP endpoint the plugin exposes.
func helloRoute() runtime.Route {
    return runtime.Route{
        Method: http.MethodGet,
        Path:   "/api/hello",
        Handler: func(w http.ResponseWriter, r *http.Request) {
            w.Header().Set("Content-Type", "application/json; charset=utf-8")
            w.WriteHeader(http.StatusOK)
            enc := json.NewEncoder(w)
            enc.SetEscapeHTML(false)
            _ = enc.Encode(map[string]string{"message": "Hello from the crypto companion!"})
        },
    }
}
