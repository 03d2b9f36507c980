package httpapi

import (
	"net/http"

	"restaurant-orders/internal/domain"
)

type registerUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (a *API) registerUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.directory.RegisterUser(r.Context(), req.Username, req.Password, req.Phone); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

type registerAdminRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	AdminCode string `json:"admin_code"`
}

func (a *API) registerAdmin(w http.ResponseWriter, r *http.Request) {
	var req registerAdminRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.directory.RegisterAdmin(r.Context(), req.Username, req.Password, req.AdminCode); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	account, err := a.directory.Authenticate(r.Context(), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		a.writeError(w, err)
		return
	}
	sess := a.sessions.Create(account.Username, account.Role)
	a.lg.Info("session_opened", "username", account.Username, "role", string(account.Role))
	writeJSON(w, http.StatusOK, loginResponse{
		Token:    sess.Token,
		Username: sess.Username,
		Role:     string(sess.Role),
	})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	a.sessions.Delete(sess.Token)
	a.lg.Info("session_closed", "username", sess.Username)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
