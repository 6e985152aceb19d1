package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	CategoryStatusActive   = "active"
	CategoryStatusInactive = "inactive"
)

type Category struct {
	ID        uuid.UUID `json:"id"`
	TitleEn   string    `json:"titleEn"`
	TitleAr   string    `json:"titleAr"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryRef is either a bare category id or the expanded category,
// resolved explicitly at the point of use. It marshals as a plain id string
// until expanded, matching what list endpoints return.
type CategoryRef struct {
	ID       uuid.UUID
	Expanded *Category
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.Expanded != nil {
		return json.Marshal(r.Expanded)
	}
	return json.Marshal(r.ID.String())
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return err
		}
		r.ID = parsed
		r.Expanded = nil
		return nil
	}

	var cat Category
	if err := json.Unmarshal(data, &cat); err != nil {
		return err
	}
	r.ID = cat.ID
	r.Expanded = &cat
	return nil
}

// CategoryIDs flattens refs to their ids.
func CategoryIDs(refs []CategoryRef) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}

// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	TitleEn string `json:"titleEn" example:"News"`
	TitleAr string `json:"titleAr" example:"أخبار"`
	Slug    string `json:"slug,omitempty" example:"news"`
	Status  string `json:"status,omitempty" example:"active"`
}

// swagger:model UpdateCategoryRequest
type UpdateCategoryRequest struct {
	TitleEn *string `json:"titleEn,omitempty"`
	TitleAr *string `json:"titleAr,omitempty"`
	Slug    *string `json:"slug,omitempty"`
	Status  *string `json:"status,omitempty"`
}
