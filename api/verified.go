package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listVerifiedIssues(c *gin.Context) {
	issues, err := s.mongoStore.ListVerifiedIssues()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified_issues": issues})
}
