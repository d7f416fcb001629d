package dto

import (
	"lessons/shared/constant"
	"lessons/shared/model"
	"lessons/shared/timezone"
)

// Metadata is the audit block embedded in user and lesson booking responses. The modified
// pair is omitted until the record changes after it was created.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(meta model.Metadata) {
	m.CreatedAt = timezone.Format(meta.CreatedAt, constant.DateFormat)
	m.CreatedBy = meta.CreatedBy

	if meta.ModifiedAt.After(meta.CreatedAt) {
		m.ModifiedAt = timezone.Format(meta.ModifiedAt, constant.DateFormat)
		m.ModifiedBy = meta.ModifiedBy
	}
}
