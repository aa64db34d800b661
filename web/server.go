package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/unrolled/render"
	"github.com/zjm/league_manager/controller"
)

//go:embed templates
var templates embed.FS

// Config carries the web server's deployment settings. AdminCreds is the
// basic-auth credential map for /admin; a nil map disables the admin routes
// entirely rather than leaving them open.
type Config struct {
	Port            int
	DefaultSeasonID int32
	AdminCreds      map[string]string
}

type Server struct {
	server *http.Server
}

func NewServer(cfg Config, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, cfg)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"date":     dateFormatter,
				"datetime": datetimeFormatter,
				"dollars":  dollarsFormatter,
				"diff":     diffFormatter,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("2006-01-02")
}

func datetimeFormatter(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("Jan 2, 2006 15:04 MST")
}

// dollarsFormatter renders a whole-dollar amount with thousands separators,
// like "$1,250,000".
func dollarsFormatter(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("%s$%s", sign, strings.Join(groups, ","))
}

// diffFormatter renders a goal differential with an explicit sign.
func diffFormatter(n int32) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
