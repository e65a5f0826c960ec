package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civic-guardian/civic-api/schema"
	"github.com/civic-guardian/civic-api/store"
)

func (s *Server) castVote(c *gin.Context) {
	var params struct {
		VoterID string          `json:"voter_id"`
		Kind    schema.VoteKind `json:"kind"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	complaint, err := s.store.CastVote(params.VoterID, c.Param("complaintID"), params.Kind)
	if err != nil {
		switch err {
		case store.ErrAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		case store.ErrComplaintNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorComplaintNotFound)
		case store.ErrInvalidVoteKind:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidVoteKind)
		case store.ErrDuplicateVote:
			abortWithEncoding(c, http.StatusConflict, errorDuplicateVote)
		default:
			// the transaction rolled back, nothing was recorded
			abortWithEncoding(c, http.StatusServiceUnavailable, errorVoteNotRecorded, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"complaint_id": complaint.ID.Hex(),
		"status":       complaint.Status(),
		"process":      complaint.State,
		"priority":     complaint.Priority,
		"score":        complaint.Score,
	})
}

func (s *Server) voteSummary(c *gin.Context) {
	id, ok := complaintIDFromParam(c)
	if !ok {
		return
	}

	summary, err := s.mongoStore.VoteSummary(id)
	if err != nil {
		if err == store.ErrComplaintNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorComplaintNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
