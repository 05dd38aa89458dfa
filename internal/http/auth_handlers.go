package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/fairyhunter13/minimal-shop/internal/obs"
	"github.com/fairyhunter13/minimal-shop/internal/session"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *App) signupHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "email, password and name are required")
		return
	}
	acct, err := a.Session.Signup(req.Email, req.Password, req.Name)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, acct)
	obs.Logger.Info("account_created",
		zap.String("account_id", acct.ID),
		zap.String("request_id", RequestIDFromContext(r.Context())),
	)
}

func (a *App) loginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	acct, err := a.Session.Login(req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (a *App) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	a.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) meHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	acct, ok := a.Session.Current()
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "not_authenticated", "")
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrDuplicateAccount):
		WriteJSONError(w, http.StatusConflict, "duplicate_account", err.Error())
	case errors.Is(err, session.ErrAccountNotFound):
		WriteJSONError(w, http.StatusNotFound, "account_not_found", err.Error())
	case errors.Is(err, session.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
	}
}
