package main

import (
	_ "embed"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacetilt/internal/config/host"
)

//go:embed index.html
var htmlPage string

func main() {
	settings, err := host.Load("")
	if err != nil {
		log.Fatal("config", "err", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacetilt-web",
	})

	page := renderPage(settings)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})

	addr := net.JoinHostPort(settings.Web.Host, settings.Web.Port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills in the SSH command shown to visitors.
func renderPage(settings host.Settings) string {
	r := strings.NewReplacer(
		"{{.SSHHost}}", settings.Web.DisplayHost,
		"{{.SSHPort}}", settings.SSH.Port,
	)
	return r.Replace(htmlPage)
}
