package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driverportal/portal-api/internal/core/ports"
)

// DriverHandler handles HTTP requests for driver records.
type DriverHandler struct {
	service ports.DriverService
}

func NewDriverHandler(service ports.DriverService) *DriverHandler {
	return &DriverHandler{service: service}
}

// Create handles POST /api/drivers.
//
// @Summary      Create a driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      driverRequest  true  "Driver"
// @Success      201   {object}  driverResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/drivers [post]
func (h *DriverHandler) Create(c echo.Context) error {
	var req driverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	created, err := h.service.CreateDriver(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDriverResponse(created))
}

// Update handles PUT /api/drivers/:id.
//
// @Summary      Update a driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Driver id"
// @Param        body  body      driverRequest  true  "Driver"
// @Success      200   {object}  driverResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/drivers/{id} [put]
func (h *DriverHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req driverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	updated, err := h.service.UpdateDriver(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDriverResponse(updated))
}

// Get handles GET /api/drivers/:id.
//
// @Summary      Get a driver
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Driver id"
// @Success      200  {object}  driverResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/drivers/{id} [get]
func (h *DriverHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	d, err := h.service.GetDriver(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDriverResponse(d))
}

// List handles GET /api/drivers.
//
// @Summary      List drivers, newest first
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  driverResponse
// @Router       /api/drivers [get]
func (h *DriverHandler) List(c echo.Context) error {
	drivers, err := h.service.ListDrivers(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]driverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, toDriverResponse(d))
	}
	return c.JSON(http.StatusOK, out)
}

// Search handles POST /api/drivers/search.
//
// @Summary      Search drivers
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      driverSearchRequest  true  "Filters and paging"
// @Success      200   {object}  pageResponse[driverResponse]
// @Router       /api/drivers/search [post]
func (h *DriverHandler) Search(c echo.Context) error {
	var req driverSearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.service.SearchDrivers(c.Request().Context(), req.toSearch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toDriverResponse))
}

// Delete handles DELETE /api/drivers/:id.
//
// @Summary      Delete a driver
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Driver id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/drivers/{id} [delete]
func (h *DriverHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDriver(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Driver deleted successfully"})
}
