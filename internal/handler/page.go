package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const indexTemplate = "index.html"

// Index renders the idea form page.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, gin.H{
		"year": time.Now().Year(),
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
