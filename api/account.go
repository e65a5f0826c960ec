package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civic-guardian/civic-api/schema"
)

func (s *Server) accountRegister(c *gin.Context) {
	var params struct {
		Name string `json:"name"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Name == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	account, err := s.store.CreateAccount(params.Name, schema.RoleCitizen)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}
