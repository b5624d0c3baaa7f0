package dto

type LawInput struct {
	Country  string `json:"country" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Summary  string `json:"summary"`
	FullText string `json:"full_text"`
}
