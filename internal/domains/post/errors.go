package post

import "fmt"

const (
	ListErrorMessage   = "Error when get posts"
	CreateErrorMessage = "Error when create post"
)

func GetErrorMessage(id string) string {
	return fmt.Sprintf("Error when get post by id %s", id)
}

func UpdateErrorMessage(id string) string {
	return fmt.Sprintf("Error when update post with id %s", id)
}

func DeleteErrorMessage(id string) string {
	return fmt.Sprintf("Error when delete post with id %s", id)
}
