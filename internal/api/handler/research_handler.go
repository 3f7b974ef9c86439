package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/researchnexus/nexus/internal/core/domain"
	"github.com/researchnexus/nexus/internal/core/ports"
)

type ResearchHandler struct {
	catalog ports.CatalogService
}

func NewResearchHandler(catalog ports.CatalogService) *ResearchHandler {
	return &ResearchHandler{catalog: catalog}
}

// toFilter normalises the bound query into a domain.Filter.
func (q researchQuery) toFilter() (domain.Filter, error) {
	f := domain.Filter{
		Search: strings.TrimSpace(q.Search),
		Field:  strings.TrimSpace(q.Field),
	}

	for _, raw := range q.Tags {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}

	date, err := domain.ParseDateOrder(q.Date)
	if err != nil {
		return domain.Filter{}, err
	}
	f.Date = date

	if q.Premium != "" {
		premium, err := strconv.ParseBool(q.Premium)
		if err != nil {
			return domain.Filter{}, domain.ErrInvalidFilter
		}
		f.Premium = &premium
	}
	return f, nil
}

// List runs the filter pipeline over the catalog.
//
// @Summary      Search research
// @Tags         research
// @Produce      json
// @Param        search   query     string  false  "Case-insensitive text over title, abstract, author and tags"
// @Param        field    query     string  false  "Exact research field"
// @Param        tags     query     []string  false  "Any of these tags (repeat or comma separate)"
// @Param        date     query     string  false  "newest or oldest"
// @Param        premium  query     bool    false  "Premium only (true) or free only (false)"
// @Success      200      {object}  researchListResponse
// @Failure      400      {object}  errorResponse
// @Router       /v1/research [get]
func (h *ResearchHandler) List(c echo.Context) error {
	var q researchQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	f, err := q.toFilter()
	if err != nil {
		return err
	}

	results, err := h.catalog.Search(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, researchListResponse{Count: len(results), Results: results})
}

// Facets lists the values the catalog can be filtered on.
//
// @Summary      Filter facets
// @Tags         research
// @Produce      json
// @Success      200  {object}  domain.Facets
// @Router       /v1/research/facets [get]
func (h *ResearchHandler) Facets(c echo.Context) error {
	facets, err := h.catalog.Facets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, facets)
}

// Get returns one research record.
//
// @Summary      Get research by id
// @Tags         research
// @Produce      json
// @Param        id   path      string  true  "Research id"
// @Success      200  {object}  domain.Research
// @Failure      404  {object}  errorResponse
// @Router       /v1/research/{id} [get]
func (h *ResearchHandler) Get(c echo.Context) error {
	r, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}
