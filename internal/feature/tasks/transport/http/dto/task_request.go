// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

// CreateTaskReq represents the request body for creating a task.
// Title is required and bounded; description is optional and bounded.
type CreateTaskReq struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// UpdateTaskReq represents a partial update. Pointer fields distinguish
// "absent" from "set to zero value": absent fields leave the stored value
// untouched.
type UpdateTaskReq struct {
	// omitnil (not omitempty) so a pointer to an empty string still hits min=1.
	Title       *string `json:"title" binding:"omitnil,min=1,max=255"`
	Description *string `json:"description" binding:"omitnil,max=1000"`
	Done        *bool   `json:"done"`
}
