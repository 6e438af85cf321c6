// Package controllers implements the mock backend's HTTP handlers. Each
// endpoint answers with the same envelope shape the production backend
// uses for it ({data}, {success,data}, a named collection key, or a bare
// array) so SDK envelope handling gets exercised against all of them.
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/townbook/client-go/types"
	"github.com/townbook/client-go/utils"
)

type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// actor resolves the acting user: bearer claims when present, otherwise
// the user id the request body or query carries.
func actor(c *gin.Context, fallbackID, fallbackName string) types.UserSnippet {
	if claims := utils.GetUser(c); claims != nil {
		return types.UserSnippet{ID: claims.UserID, Name: claims.Name}
	}
	return types.UserSnippet{ID: fallbackID, Name: fallbackName}
}
