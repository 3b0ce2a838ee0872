package model

type CreateThreadDTO struct {
	AuthorID int64    `json:"-"`
	Content  *string  `json:"content,omitempty" validate:"omitempty,min=1,max=280"`
	Images   []string `json:"images,omitempty" validate:"omitempty,dive,uri"`
}
