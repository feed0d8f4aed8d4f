package handlers

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Drama"`
}
