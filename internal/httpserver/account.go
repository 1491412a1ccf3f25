package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"pizzaria-storefront/internal/domain"
	accountsvc "pizzaria-storefront/internal/service/account"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h handlers) signup(c *gin.Context) {
	var req accountsvc.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	customer, err := h.deps.Accounts.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			respondFail(c, http.StatusConflict, "email already registered")
			return
		}
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}
	respondOK(c, http.StatusCreated, "account created", customer)
}

func (h handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	customer, err := h.deps.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, accountsvc.ErrInvalidCredentials) {
			respondFail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondFail(c, http.StatusInternalServerError, "login failed")
		return
	}
	respondOK(c, http.StatusOK, "logged in", customer)
}

func (h handlers) getCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := h.deps.Accounts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "customer not found")
			return
		}
		respondFail(c, http.StatusInternalServerError, "failed to load customer")
		return
	}
	respondOK(c, http.StatusOK, "", customer)
}

func (h handlers) updateCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req accountsvc.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	customer, err := h.deps.Accounts.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "customer not found")
			return
		}
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}
	respondOK(c, http.StatusOK, "profile updated", customer)
}
