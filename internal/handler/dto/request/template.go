package request

type SaveTemplateRequest struct {
	Message string `json:"message" binding:"required"`
}
