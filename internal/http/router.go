package http

import (
	"net/http"
	"strings"
)

// RouterConfig wires handlers and middleware into the router.
type RouterConfig struct {
	Activities *ActivityHandler
	Static     http.Handler
	Middleware []func(http.Handler) http.Handler
}

// NewRouter builds the HTTP routing table for the activities API.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	static := cfg.Static
	if static == nil {
		static = StaticHandler()
	}
	mux.Handle("/static/", http.StripPrefix("/static/", static))

	if cfg.Activities != nil {
		mux.HandleFunc("/activities", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Activities.List(w, r)
		})
		mux.HandleFunc("/activities/", func(w http.ResponseWriter, r *http.Request) {
			rest := strings.TrimPrefix(r.URL.Path, "/activities/")
			idx := strings.LastIndex(rest, "/")
			if idx <= 0 || idx == len(rest)-1 {
				http.NotFound(w, r)
				return
			}

			name, action := rest[:idx], rest[idx+1:]
			ctx := ContextWithActivityName(r.Context(), name)
			r = r.WithContext(ctx)

			switch action {
			case "signup":
				if r.Method != http.MethodPost {
					methodNotAllowed(w, http.MethodPost)
					return
				}
				cfg.Activities.SignUp(w, r)
			case "unregister":
				if r.Method != http.MethodDelete {
					methodNotAllowed(w, http.MethodDelete)
					return
				}
				cfg.Activities.Unregister(w, r)
			default:
				http.NotFound(w, r)
			}
		})
	}

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
