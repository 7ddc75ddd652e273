package store

// TodoItem is one entry of the todo index. The index is an ordered JSON
// array; order is insertion/display order and is preserved verbatim on save.
type TodoItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	FolderName string `json:"folder_name"`
}

// IsZero returns true if the item is empty (has no ID).
func (t *TodoItem) IsZero() bool {
	return t.ID == ""
}
