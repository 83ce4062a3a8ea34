package rest

type CreateTaskIn struct {
	Title       string  `json:"title"`
	Description *string `json:"description"` // Nil - поле не передано
}

type UpdateTaskIn struct {
	Status string `json:"status"` // pending|completed
}
