// Invoice HTTP handlers.
//
// This file exposes REST endpoints for invoice resources:
//   - GET    /invoices         (list)
//   - GET    /invoices/{id}    (get, embeds the owning company)
//   - POST   /invoices         (create, Idempotency-Key aware)
//   - PUT    /invoices/{id}    (change amount)
//   - DELETE /invoices/{id}    (delete)
//
// A non-numeric {id} is malformed input: it is not classified and renders
// as a generic 500.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/biztime-api/internal/utils"
)

// invoiceID parses the :id path parameter.
func invoiceID(c *gin.Context) (int64, error) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return 0, fmt.Errorf("invoice: %w", err)
	}
	return id, nil
}

// ListInvoices godoc
// @ID          listInvoices
// @Summary     List invoices
// @Description Returns every invoice as {id, comp_code}.
// @Tags        Invoices
// @Produce     json
// @Success     200  {object}  handlers.ListInvoicesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices [get]
func (h *Handlers) ListInvoices(c *gin.Context) {
	list, err := h.invoiceSvc.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, ListInvoicesResponse{Invoices: presentInvoices(list)})
}

// GetInvoice godoc
// @ID          getInvoice
// @Summary     Get an invoice
// @Description Returns the invoice with its company embedded (null if the company no longer exists).
// @Tags        Invoices
// @Produce     json
// @Param       id  path  int  true  "Invoice ID"  example(1)
// @Success     200  {object}  handlers.InvoiceDetailResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Invoice not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices/{id} [get]
func (h *Handlers) GetInvoice(c *gin.Context) {
	id, err := invoiceID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	inv, err := h.invoiceSvc.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, InvoiceDetailResponse{Invoice: presentInvoiceDetail(inv)})
}

// CreateInvoice godoc
// @ID          createInvoice
// @Summary     Create an invoice
// @Description Creates an unpaid invoice for an existing company.
// @Tags        Invoices
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Replay-safe key (<=200 chars)"
// @Param       body             body    handlers.CreateInvoiceRequest  true  "Invoice"
// @Success     201  {object}  handlers.InvoiceResponse
// @Header      201  {string}  Idempotent-Replay  "true when served from a previous request"
// @Failure     400  {object}  handlers.ErrorResponse  "Body missing"
// @Failure     413  {object}  handlers.ErrorResponse  "Body too large"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (e.g. unknown company, malformed amt)"
// @Router      /invoices [post]
func (h *Handlers) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := bindBody(c, &req); err != nil {
		renderError(c, err)
		return
	}
	inv, err := h.invoiceSvc.Create(c.Request.Context(), req.CompCode, req.Amt)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusCreated, InvoiceResponse{Invoice: presentInvoice(inv)})
}

// UpdateInvoice godoc
// @ID          updateInvoice
// @Summary     Change an invoice amount
// @Description Updates amt only; paid and paid_date are never changed.
// @Tags        Invoices
// @Accept      json
// @Produce     json
// @Param       id    path  int                            true  "Invoice ID"  example(1)
// @Param       body  body  handlers.UpdateInvoiceRequest  true  "New amount"
// @Success     200  {object}  handlers.InvoiceResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Body missing"
// @Failure     404  {object}  handlers.ErrorResponse  "Invoice not found"
// @Failure     413  {object}  handlers.ErrorResponse  "Body too large"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (e.g. malformed id or amt)"
// @Router      /invoices/{id} [put]
func (h *Handlers) UpdateInvoice(c *gin.Context) {
	var req UpdateInvoiceRequest
	if err := bindBody(c, &req); err != nil {
		renderError(c, err)
		return
	}
	id, err := invoiceID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	inv, err := h.invoiceSvc.Update(c.Request.Context(), id, req.Amt)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, http.StatusOK, InvoiceResponse{Invoice: presentInvoice(inv)})
}

// DeleteInvoice godoc
// @ID          deleteInvoice
// @Summary     Delete an invoice
// @Tags        Invoices
// @Produce     json
// @Param       id  path  int  true  "Invoice ID"  example(1)
// @Success     200  {object}  handlers.StatusResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Invoice not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices/{id} [delete]
func (h *Handlers) DeleteInvoice(c *gin.Context) {
	id, err := invoiceID(c)
	if err != nil {
		renderError(c, err)
		return
	}
	if err := h.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	deleted(c)
}
