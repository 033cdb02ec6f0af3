// Package configsrv serves the console configuration endpoint.
package configsrv

import (
	"errors"
	"log/slog"
	"net/http"

	"dario.cat/mergo"
	"github.com/labstack/echo/v4"

	"github.com/pinpoint-apm/pinpoint-console/internal/config"
)

// Path is where the console fetches its configuration.
const Path = "/configuration.pinpoint"

// RedirectErrorCode tells the console to leave for the redirect URL.
const RedirectErrorCode = 302

// ErrUserNotFound is returned by a UserService for unknown ids.
var ErrUserNotFound = errors.New("user not found")

// User is the signed-in user shown in the console header.
type User struct {
	ID         string
	Name       string
	Department string
}

// UserService looks up users by id.
type UserService interface {
	SelectUserByUserID(id string) (User, error)
}

// StaticUsers is a UserService over a fixed list.
type StaticUsers map[string]User

// NewStaticUsers indexes users from configuration.
func NewStaticUsers(list []config.UserConfig) StaticUsers {
	ret := make(StaticUsers, len(list))
	for _, u := range list {
		ret[u.ID] = User{ID: u.ID, Name: u.Name, Department: u.Department}
	}
	return ret
}

// SelectUserByUserID implements UserService.
func (s StaticUsers) SelectUserByUserID(id string) (User, error) {
	u, ok := s[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// properties are the console switches, keyed in the response by their
// field names with a lower case initial.
type properties struct {
	SendUsage        bool
	EditUserInfo     bool
	ShowActiveThread bool
	OpenSource       bool
}

// Handler serves the configuration endpoint.
type Handler struct {
	web    config.WebConfig
	sso    config.SSOConfig
	users  UserService
	logger *slog.Logger
}

// NewHandler returns a Handler.  users may be nil when SSO is not used.
func NewHandler(web config.WebConfig, sso config.SSOConfig, users UserService, logger *slog.Logger) *Handler {
	if sso.Header == "" {
		sso.Header = "SSO_USER"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{web: web, sso: sso, users: users, logger: logger}
}

// Register adds the endpoint to e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET(Path, h.Configuration)
}

// Configuration returns the console properties, the signed-in user when the
// SSO header names one, or a redirect signal when sign-in is required.
func (h *Handler) Configuration(c echo.Context) error {
	userID := c.Request().Header.Get(h.sso.Header)

	if userID == "" && h.sso.Required && h.sso.LoginURL != "" {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"errorCode": RedirectErrorCode,
			"redirect":  h.sso.LoginURL,
		})
	}

	result := make(map[string]interface{})
	props := properties{
		SendUsage:        h.web.SendUsage,
		EditUserInfo:     h.web.EditUserInfo,
		ShowActiveThread: h.web.ShowActiveThread,
		OpenSource:       h.web.OpenSource,
	}
	if err := mergo.Map(&result, props); err != nil {
		h.logger.Error("building configuration", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	if userID != "" && h.users != nil {
		u, err := h.users.SelectUserByUserID(userID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "unknown user")
			}
			h.logger.Error("user lookup failed", "user", userID, "err", err)
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
		result["userId"] = u.ID
		result["userName"] = u.Name
		result["userDepartment"] = u.Department
	}

	if h.web.SecurityGuideURL != "" {
		result["securityGuideUrl"] = h.web.SecurityGuideURL
	}

	return c.JSON(http.StatusOK, result)
}
