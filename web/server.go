// Package web serves the guest-facing website. Pages are rendered on the
// server and every read or write goes through the REST API.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var errNoSession = errors.New("not signed in")

type Server struct {
	api    *APIClient
	tmpl   *template.Template
	log    *zap.Logger
	hotel  string
	secure bool
}

// Options configures NewServer.
type Options struct {
	HotelName string
	// SecureCookies marks the session cookies Secure. Enable behind TLS.
	SecureCookies bool
}

func NewServer(api *APIClient, log *zap.Logger, opts Options) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{api: api, tmpl: tmpl, log: log, hotel: opts.HotelName, secure: opts.SecureCookies}, nil
}

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("BDT %.2f", v) },
	"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
	"join":  strings.Join,
	"title": func(s string) string {
		s = strings.ReplaceAll(s, "_", " ")
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"stars": func(n int) string { return strings.Repeat("★", n) + strings.Repeat("☆", 5-n) },
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(s.log), middlewares.Recovery(s.log))
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.home)
	r.GET("/rooms", s.rooms)
	r.GET("/rooms/:id", s.room)
	r.GET("/gallery", s.gallery)
	r.GET("/contact", s.contactForm)
	r.POST("/contact", s.contactSubmit)

	r.GET("/signin", s.signinForm)
	r.POST("/signin", s.signinSubmit)
	r.GET("/signup", s.signupForm)
	r.POST("/signup", s.signupSubmit)
	r.GET("/signout", s.signout)
	r.POST("/signout", s.signout)

	r.GET("/cart", s.cart)
	r.POST("/cart/add", s.cartAdd)
	r.POST("/cart/remove", s.cartRemove)
	r.POST("/cart/confirm", s.cartConfirm)

	r.GET("/dashboard", s.dashboard)
	r.POST("/dashboard/bookings/:id/cancel", s.cancelBooking)
	r.POST("/dashboard/bookings/:id/pay", s.payBooking)
	r.GET("/dashboard/bookings/:id/receipt", s.receipt)

	r.GET("/admin", s.admin)

	r.NoRoute(func(c *gin.Context) {
		s.render(c, http.StatusNotFound, "error", gin.H{"Title": "Not found", "Message": "Page not found"})
	})
	return r
}

func (s *Server) render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Hotel"] = s.hotel
	data["Flash"] = popFlash(c)
	data["CartCount"] = len(readCart(c).RoomIDs)
	if _, err := c.Cookie(accessCookie); err == nil {
		data["SignedIn"] = true
	} else if _, err := c.Cookie(refreshCookie); err == nil {
		data["SignedIn"] = true
	}
	c.HTML(status, page, data)
}

// withSession runs call with the caller's access token. A missing or
// rejected access token is refreshed once with the refresh token; when that
// fails too the session cookies are cleared and errNoSession is returned.
func (s *Server) withSession(c *gin.Context, call func(token string) error) error {
	err := errNoSession
	if token, _ := c.Cookie(accessCookie); token != "" {
		err = call(token)
	}
	if !errors.Is(err, errNoSession) && !isStatus(err, http.StatusUnauthorized) {
		return err
	}

	refresh, _ := c.Cookie(refreshCookie)
	if refresh == "" {
		clearSession(c)
		return errNoSession
	}
	fresh, rerr := s.api.Refresh(c.Request.Context(), refresh)
	if rerr != nil {
		s.log.Debug("session refresh failed", zap.Error(rerr))
		clearSession(c)
		return errNoSession
	}
	setSession(c, fresh, "", s.secure)

	err = call(fresh)
	if isStatus(err, http.StatusUnauthorized) {
		clearSession(c)
		return errNoSession
	}
	return err
}

// fail reports err to the visitor. Client errors become a flash notice on
// the page at back; a lost session sends the visitor to sign in.
func (s *Server) fail(c *gin.Context, back string, err error) {
	if errors.Is(err, errNoSession) {
		setFlash(c, "Please sign in to continue")
		c.Redirect(http.StatusSeeOther, "/signin?next="+url.QueryEscape(c.Request.URL.Path))
		return
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		if back == c.Request.URL.Path && c.Request.Method == http.MethodGet {
			s.render(c, apiErr.Status, "error", gin.H{"Title": "Sorry", "Message": apiErr.Message})
			return
		}
		setFlash(c, apiErr.Message)
		c.Redirect(http.StatusSeeOther, back)
		return
	}
	s.log.Error("page failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	s.render(c, http.StatusBadGateway, "error", gin.H{
		"Title":   "Something went wrong",
		"Message": "The booking service is unavailable. Please try again shortly.",
	})
}

// safeNext keeps post-signin redirects on this site.
func safeNext(next, def string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return def
	}
	return next
}
