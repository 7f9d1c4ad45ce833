package sandbox

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caredesk/caredesk/pkg/pagination"
)

// signingKey is fixed: the sandbox is a development fixture, not a secure
// token issuer.
var signingKey = []byte("caredesk-sandbox")

// resources maps URL path segments to their list envelope style. The real
// backend wraps some resources in {data,total} and returns bare arrays for
// others; the sandbox keeps that inconsistency alive on purpose.
var resources = map[string]struct{ enveloped bool }{
	"appointments":    {enveloped: true},
	"doctors":         {enveloped: true},
	"patients":        {enveloped: true},
	"prescriptions":   {enveloped: false},
	"medicines":       {enveloped: false},
	"payments":        {enveloped: true},
	"pharmacy-orders": {enveloped: true},
	"users":           {enveloped: false},
	"records":         {enveloped: false},
}

type Server struct {
	store *Store
	log   zerolog.Logger
	echo  *echo.Echo
}

// NewServer builds the sandbox with seeded demo data.
func NewServer(log zerolog.Logger) *Server {
	s := &Server{store: NewStore(), log: log}
	s.store.Seed()

	e := echo.New()
	e.HideBanner = true
	e.Use(s.requestLogger)

	e.POST("/auth/login", s.login)

	authed := e.Group("", s.requireToken)
	authed.GET("/auth/me", s.me)
	for name := range resources {
		g := authed.Group("/" + name)
		g.GET("", s.list(name))
		g.GET("/:id", s.get(name))
		g.POST("", s.create(name))
		g.PATCH("/:id", s.update(name))
		g.DELETE("/:id", s.remove(name))
	}

	s.echo = e
	return s
}

// Handler exposes the sandbox as an http.Handler for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves the sandbox on addr until the process exits.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		evt := s.log.Info()
		if err != nil {
			evt = s.log.Error().Err(err)
		}
		evt.
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("latency", time.Since(start)).
			Msg("sandbox request")
		return err
	}
}

// -- Auth --

func (s *Server) login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login body")
	}
	u, ok := s.store.FindUser(body.Email)
	if !ok || u["password"] != body.Password {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid email or password"})
	}

	role, _ := u["role"].(string)
	claims := jwt.MapClaims{
		"sub":   strconv.Itoa(recordID(u)),
		"email": body.Email,
		"role":  role,
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "sign token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": claims["sub"],
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
	}).SignedString(signingKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "sign token")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"accessToken":  access,
		"refreshToken": refresh,
		"user": echo.Map{
			"id":    recordID(u),
			"email": body.Email,
			"role":  role,
		},
	})
}

func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing bearer token"})
		}
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return signingKey, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "token expired or invalid"})
		}
		c.Set("claims", token.Claims)
		return next(c)
	}
}

func (s *Server) me(c echo.Context) error {
	claims, _ := c.Get("claims").(jwt.MapClaims)
	return c.JSON(http.StatusOK, echo.Map{
		"user": echo.Map{
			"user_id": claims["sub"],
			"email":   claims["email"],
			"role":    claims["role"],
		},
	})
}

// -- Resources --

func (s *Server) list(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := pagination.FromContext(c)
		all := s.store.List(name, p.Search)

		start := p.Offset()
		if start > len(all) {
			start = len(all)
		}
		end := start + p.Limit
		if end > len(all) {
			end = len(all)
		}
		page := all[start:end]

		if resources[name].enveloped {
			return c.JSON(http.StatusOK, pagination.NewResponse(page, len(all)))
		}
		return c.JSON(http.StatusOK, page)
	}
}

func (s *Server) get(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		r, ok := s.store.Get(name, id)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"message": name + " not found"})
		}
		return c.JSON(http.StatusOK, r)
	}
}

func (s *Server) create(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload record
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
		}
		if payload == nil {
			payload = record{}
		}
		if _, ok := payload["createdAt"]; !ok {
			payload["createdAt"] = time.Now().UTC().Format(time.RFC3339)
		}
		return c.JSON(http.StatusCreated, s.store.Insert(name, payload))
	}
}

func (s *Server) update(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		var payload record
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
		}
		r, ok := s.store.Update(name, id, payload)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"message": name + " not found"})
		}
		return c.JSON(http.StatusOK, r)
	}
}

func (s *Server) remove(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
		}
		if !s.store.Delete(name, id) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": name + " not found"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
