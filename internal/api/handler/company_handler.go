package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driverportal/portal-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for company records.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create handles POST /api/companies.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company"
// @Success      201   {object}  companyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req companyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	created, err := h.service.CreateCompany(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCompanyResponse(created))
}

// Update handles PUT /api/companies/:id.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Company id"
// @Param        body  body      companyRequest  true  "Company"
// @Success      200   {object}  companyResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req companyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	updated, err := h.service.UpdateCompany(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompanyResponse(updated))
}

// Get handles GET /api/companies/:id.
//
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Company id"
// @Success      200  {object}  companyResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	company, err := h.service.GetCompany(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompanyResponse(company))
}

// List handles GET /api/companies.
//
// @Summary      List companies, newest first
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  companyResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompanyResponses(companies))
}

// Search handles POST /api/companies/search.
//
// @Summary      Search companies
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companySearchRequest  true  "Filters and paging"
// @Success      200   {object}  pageResponse[companyResponse]
// @Router       /api/companies/search [post]
func (h *CompanyHandler) Search(c echo.Context) error {
	var req companySearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.service.SearchCompanies(c.Request().Context(), req.toSearch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toCompanyResponse))
}

// Delete handles DELETE /api/companies/:id.
//
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Company id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteCompany(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Company deleted successfully"})
}
