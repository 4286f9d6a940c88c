package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/internal/core/presentation"
	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// SearchRequest is the body of POST /api/session/search
type SearchRequest struct {
	City string `json:"city" form:"city" binding:"required"`
}

// LocationRequest is the body of POST /api/session/location: either a
// position reported by the client or the reason it could not get one
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" form:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" form:"longitude" binding:"omitempty,longitude"`
	Reason    string   `json:"reason" form:"reason" binding:"omitempty,geo_reason"`
}

// UnitRequest is the optional body of POST /api/session/unit
type UnitRequest struct {
	Unit string `json:"unit" form:"unit" binding:"omitempty,unit"`
}

// ThemeRequest is the optional body of POST /api/session/theme
type ThemeRequest struct {
	Theme string `json:"theme" form:"theme" binding:"omitempty,theme"`
}

// ShareResponse is the body returned by POST /api/session/share
type ShareResponse struct {
	Shared bool   `json:"shared"`
	Text   string `json:"text,omitempty"`
}

// session resolves the caller's session, issuing a cookie for new ones,
// and makes sure its preferences are loaded
func (s *HTTPServerAdapter) session(c *gin.Context) (*lookup.Session, bool) {
	id, _ := c.Cookie(s.config.CookieName)

	session, sessionID, err := s.sessions.GetOrCreate(id)
	if err != nil {
		s.handleError(c, err)
		return nil, false
	}
	if sessionID != id {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(s.config.CookieName, sessionID, int(s.config.CookieTTL.Seconds()), "/", "", false, true)
	}

	session.Restore(c.Request.Context())
	return session, true
}

func (s *HTTPServerAdapter) renderSession(c *gin.Context, session *lookup.Session) {
	c.JSON(http.StatusOK, presentation.Render(session.View(), s.renderOptions()))
}

// getSession handles GET /api/session. The first call activates the session.
func (s *HTTPServerAdapter) getSession(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	session.Activate(c.Request.Context())
	s.renderSession(c, session)
}

// search handles POST /api/session/search
func (s *HTTPServerAdapter) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Debug("Request binding error", ports.F("error", err.Error()))
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	session, ok := s.session(c)
	if !ok {
		return
	}

	if err := session.Search(c.Request.Context(), req.City); err != nil {
		s.handleError(c, err)
		return
	}
	s.renderSession(c, session)
}

// reportLocation handles POST /api/session/location
func (s *HTTPServerAdapter) reportLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Debug("Request binding error", ports.F("error", err.Error()))
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	hasPosition := req.Latitude != nil && req.Longitude != nil
	if !hasPosition && req.Reason == "" {
		s.handleError(c, errors.NewValidationError("latitude and longitude or reason are required"))
		return
	}

	session, ok := s.session(c)
	if !ok {
		return
	}

	if req.Reason != "" {
		session.ReportLocationError(geoReasonError(req.Reason))
		s.renderSession(c, session)
		return
	}

	coords := weather.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := session.UseCoordinates(c.Request.Context(), coords); err != nil {
		s.handleError(c, err)
		return
	}
	s.renderSession(c, session)
}

// locate handles POST /api/session/locate using the server-side position source
func (s *HTTPServerAdapter) locate(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	session.UseLocation(c.Request.Context())
	s.renderSession(c, session)
}

// setUnit handles POST /api/session/unit. Without a unit the current one is toggled.
func (s *HTTPServerAdapter) setUnit(c *gin.Context) {
	var req UnitRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			s.handleError(c, errors.NewValidationError("Invalid request format"))
			return
		}
	}

	session, ok := s.session(c)
	if !ok {
		return
	}

	if req.Unit != "" {
		if want, _ := units.ParseUnit(req.Unit); want == session.View().Unit {
			s.renderSession(c, session)
			return
		}
	}
	session.ToggleUnit(c.Request.Context())
	s.renderSession(c, session)
}

// setTheme handles POST /api/session/theme. Without a theme the current one is toggled.
func (s *HTTPServerAdapter) setTheme(c *gin.Context) {
	var req ThemeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			s.handleError(c, errors.NewValidationError("Invalid request format"))
			return
		}
	}

	session, ok := s.session(c)
	if !ok {
		return
	}

	if req.Theme != "" {
		if want, _ := conditions.ParseTheme(req.Theme); want == session.View().Theme {
			s.renderSession(c, session)
			return
		}
	}
	session.ToggleTheme(c.Request.Context())
	s.renderSession(c, session)
}

// share handles POST /api/session/share
func (s *HTTPServerAdapter) share(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}

	text, shared := session.Share(c.Request.Context())
	c.JSON(http.StatusOK, ShareResponse{Shared: shared, Text: text})
}
