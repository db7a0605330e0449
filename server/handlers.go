package server

import (
	stderrors "errors"
	"net/http"
	"note-lab/errors"

	"github.com/labstack/echo/v4"
)

// callerHeader carries the authenticated user's identifier, injected by the
// upstream session layer.
const callerHeader = "X-User-ID"

func statusFromError(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrValidation):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail translates a service error into a JSON response. Unclassified errors
// become a generic 500 so collaborator details never leak to callers.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "path", c.Path(), "error", err)
		message = "internal server error"
	}
	return c.JSON(status, echo.Map{"success": false, "message": message})
}

func (s *Server) callerID(c echo.Context) (string, bool) {
	id := c.Request().Header.Get(callerHeader)
	return id, id != ""
}

type registerBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var body registerBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}

	user, err := s.users.Register(c.Request().Context(), body.Username, body.Password)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "user": toUserResponse(user)})
}

type createNoteBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (s *Server) handleCreateNote(c echo.Context) error {
	callerID, ok := s.callerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "user id not found in request"})
	}
	var body createNoteBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid request body"})
	}

	note, _, err := s.notes.CreateNote(c.Request().Context(), callerID, body.Title, body.Body)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "note": toNoteResponse(note)})
}

func (s *Server) handleGetFeed(c echo.Context) error {
	callerID, ok := s.callerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "user id not found in request"})
	}

	notes, err := s.feed.GetFeed(c.Request().Context(), callerID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "notes": toNoteResponses(notes)})
}

func (s *Server) handleGetNote(c echo.Context) error {
	note, analysis, err := s.notes.GetNoteByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	resp := toNoteResponse(note)
	if analysis != nil {
		resp.Sentiment = toSentimentResponse(*analysis)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "note": resp})
}

func (s *Server) handleSubscribe(c echo.Context) error {
	callerID, ok := s.callerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "user id not found in request"})
	}

	updated, err := s.subscriptions.Subscribe(c.Request().Context(), callerID, c.Param("userId"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "subscription successful",
		"subscriptions": updated,
	})
}

func (s *Server) handleGetSubscriptions(c echo.Context) error {
	callerID, ok := s.callerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "user id not found in request"})
	}

	views, err := s.subscriptions.GetSubscriptions(c.Request().Context(), callerID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "subscriptions": views})
}
