// Company HTTP handlers.
//
// This file exposes REST endpoints for company resources:
//   - GET    /companies          (list)
//   - GET    /companies/{code}   (get)
//   - POST   /companies          (create, Idempotency-Key aware)
//   - PUT    /companies/{code}   (replace name and description)
//   - DELETE /companies/{code}   (delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/biztime-api/internal/domain"
)

// ListCompanies godoc
// @ID          listCompanies
// @Summary     List companies
// @Description Returns every company as {code, name}.
// @Tags        Companies
// @Produce     json
// @Success     200  {object}  handlers.ListCompaniesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies [get]
func (h *Handlers) ListCompanies(c *gin.Context) {
	list, err := h.companySvc.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, ListCompaniesResponse{Companies: presentCompanies(list)})
}

// GetCompany godoc
// @ID          getCompany
// @Summary     Get a company
// @Tags        Companies
// @Produce     json
// @Param       code  path  string  true  "Company code"  example(apple)
// @Success     200  {object}  handlers.CompanyResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Company not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies/{code} [get]
func (h *Handlers) GetCompany(c *gin.Context) {
	co, err := h.companySvc.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, CompanyResponse{Company: presentCompany(co)})
}

// CreateCompany godoc
// @ID          createCompany
// @Summary     Create a company
// @Description Inserts the company exactly as submitted and echoes it back.
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Replay-safe key (<=200 chars)"
// @Param       body             body    handlers.CreateCompanyRequest  true  "Company"
// @Success     201  {object}  handlers.CompanyResponse
// @Header      201  {string}  Idempotent-Replay  "true when served from a previous request"
// @Failure     400  {object}  handlers.ErrorResponse  "Body missing"
// @Failure     413  {object}  handlers.ErrorResponse  "Body too large"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies [post]
func (h *Handlers) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := bindBody(c, &req); err != nil {
		renderError(c, err)
		return
	}
	co, err := h.companySvc.Create(c.Request.Context(), &domain.Company{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusCreated, CompanyResponse{Company: presentCompany(co)})
}

// UpdateCompany godoc
// @ID          updateCompany
// @Summary     Update a company
// @Description Replaces name and description. Absent fields are written as null.
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       code  path  string                          true  "Company code"  example(apple)
// @Param       body  body  handlers.UpdateCompanyRequest  true  "New values"
// @Success     200  {object}  handlers.CompanyResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Body missing"
// @Failure     404  {object}  handlers.ErrorResponse  "Company not found"
// @Failure     413  {object}  handlers.ErrorResponse  "Body too large"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies/{code} [put]
func (h *Handlers) UpdateCompany(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := bindBody(c, &req); err != nil {
		renderError(c, err)
		return
	}
	co, err := h.companySvc.Update(c.Request.Context(), c.Param("code"), req.Name, req.Description)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, CompanyResponse{Company: presentCompany(co)})
}

// DeleteCompany godoc
// @ID          deleteCompany
// @Summary     Delete a company
// @Tags        Companies
// @Produce     json
// @Param       code  path  string  true  "Company code"  example(apple)
// @Success     200  {object}  handlers.StatusResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Company not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (e.g. company still has invoices)"
// @Router      /companies/{code} [delete]
func (h *Handlers) DeleteCompany(c *gin.Context) {
	if err := h.companySvc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		renderError(c, err)
		return
	}
	deleted(c)
}
