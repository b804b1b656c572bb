package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/todoapp/todo-api-go/internal/model"
	"github.com/todoapp/todo-api-go/internal/service"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondData(w, http.StatusBadRequest, "User Register Failed!", err.Error())
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		respondData(w, http.StatusBadRequest, "User Register Failed!", err.Error())
		return
	}

	respond(w, http.StatusCreated, "User Registered Successfully!")
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondData(w, http.StatusBadRequest, "User Login Failed!", err.Error())
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondData(w, http.StatusBadRequest, "User not Found!", err.Error())
		case errors.Is(err, service.ErrWrongPassword):
			respond(w, http.StatusBadRequest, "Password is incorrect!")
		default:
			respondData(w, http.StatusBadRequest, "User Login Failed!", err.Error())
		}
		return
	}

	respondData(w, http.StatusOK, "user logged in successfully!", token)
}
