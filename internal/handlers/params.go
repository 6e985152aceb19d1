package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
)

// listParams extracts the shared listing contract from the query string.
// Malformed page/limit values degrade to the defaults rather than erroring.
func listParams(r *http.Request) models.ListParams {
	q := r.URL.Query()

	p := models.ListParams{
		Page:     models.ParsePage(q.Get("page")),
		PageSize: models.ParseLimit(q.Get("limit"), models.DefaultPageSize),
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		FormType: q.Get("formType"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
	}

	if all, err := strconv.ParseBool(q.Get("all")); err == nil && all {
		p.All = true
	}
	if q.Has("featured") {
		if f, err := strconv.ParseBool(q.Get("featured")); err == nil {
			p.Featured = &f
		}
	}
	return p
}

// idFromQuery parses the ?id= addressing used by PUT endpoints.
func idFromQuery(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	return id, err == nil
}

// idFromBody parses the {"id": ...} body used by DELETE endpoints.
func idFromBody(r *http.Request) (uuid.UUID, bool) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(body.ID)
	return id, err == nil
}
