package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AssignmentCheck reports whether the requesting user holds the assignment on
// a task.
type AssignmentCheck struct {
	Assigned bool `json:"assigned"`
}
