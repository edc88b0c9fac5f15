package server

import (
	"Recette/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Recipe  *handler.Recipe
	Comment *handler.Comment
	Like    *handler.Like
}
