package model

type UpdateProfileDTO struct {
	Username     *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	FullName     *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=160"`
	PhotoProfile *string `json:"photo_profile,omitempty"`
	CoverPhoto   *string `json:"cover_photo,omitempty"`
}
