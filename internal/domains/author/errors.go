package author

import "fmt"

// Contextual messages attached to errors raised by the author handler.
const (
	ListErrorMessage   = "Error when get authors"
	CreateErrorMessage = "Error when create author"
)

func GetErrorMessage(id string) string {
	return fmt.Sprintf("Error when get author by id %s", id)
}

func UpdateErrorMessage(id string) string {
	return fmt.Sprintf("Error when update author with id %s", id)
}

func DeleteErrorMessage(id string) string {
	return fmt.Sprintf("Error when delete author with id %s", id)
}
