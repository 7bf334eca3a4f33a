package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleIndex serves the single-page UI
func (app *App) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Skycast",
	})
}
