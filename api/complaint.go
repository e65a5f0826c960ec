package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/civic-guardian/civic-api/schema"
	"github.com/civic-guardian/civic-api/store"
)

func complaintView(complaint *schema.Complaint) gin.H {
	return gin.H{
		"id":            complaint.ID.Hex(),
		"reporter_id":   complaint.ReporterID,
		"title":         complaint.Title,
		"description":   complaint.Description,
		"department":    complaint.Department,
		"status":        complaint.Status(),
		"process":       complaint.State,
		"priority":      complaint.Priority,
		"score":         complaint.Score,
		"location":      complaint.Location.ToLocation(),
		"location_name": complaint.LocationName,
		"created_at":    complaint.CreatedAt,
	}
}

func complaintIDFromParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("complaintID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func (s *Server) submitComplaint(c *gin.Context) {
	var params struct {
		ReporterID   string           `json:"reporter_id"`
		Title        string           `json:"title"`
		Description  string           `json:"description"`
		Department   string           `json:"department"`
		Location     *schema.Location `json:"location"`
		LocationName string           `json:"location_name"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || params.Department == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	complaint, err := s.store.SubmitComplaint(params.ReporterID, params.Title,
		params.Description, params.Department, params.LocationName, params.Location)
	if err != nil {
		switch err {
		case store.ErrAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       complaint.ID.Hex(),
		"priority": complaint.Priority,
		"score":    complaint.Score,
	})
}

func (s *Server) listComplaints(c *gin.Context) {
	complaints, err := s.mongoStore.ListComplaints()
	if shouldInterupt(err, c) {
		return
	}

	views := make([]gin.H, 0, len(complaints))
	for i := range complaints {
		views = append(views, complaintView(&complaints[i]))
	}
	c.JSON(http.StatusOK, gin.H{"complaints": views})
}

func (s *Server) getComplaint(c *gin.Context) {
	id, ok := complaintIDFromParam(c)
	if !ok {
		return
	}

	complaint, err := s.mongoStore.GetComplaint(id)
	if err != nil {
		if err == store.ErrComplaintNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorComplaintNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, complaintView(complaint))
}

// rankedComplaints serves the admin dashboard: unresolved complaints
// ordered by priority score, most urgent first.
func (s *Server) rankedComplaints(c *gin.Context) {
	complaints, err := s.mongoStore.ListUnresolvedByScore()
	if shouldInterupt(err, c) {
		return
	}

	views := make([]gin.H, 0, len(complaints))
	for i := range complaints {
		views = append(views, complaintView(&complaints[i]))
	}
	c.JSON(http.StatusOK, gin.H{"complaints": views})
}

func (s *Server) pendingComplaints(c *gin.Context) {
	complaints, err := s.mongoStore.ListPendingVerification()
	if shouldInterupt(err, c) {
		return
	}

	views := make([]gin.H, 0, len(complaints))
	for i := range complaints {
		views = append(views, complaintView(&complaints[i]))
	}
	c.JSON(http.StatusOK, gin.H{"complaints": views})
}

func (s *Server) updateComplaint(c *gin.Context) {
	id, ok := complaintIDFromParam(c)
	if !ok {
		return
	}

	var params struct {
		Title        *string                `json:"title"`
		Description  *string                `json:"description"`
		Department   *string                `json:"department"`
		LocationName *string                `json:"location_name"`
		Priority     *schema.Priority       `json:"priority"`
		Process      *schema.ComplaintState `json:"process"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	complaint, err := s.mongoStore.UpdateComplaint(id, store.ComplaintUpdate{
		Title:        params.Title,
		Description:  params.Description,
		Department:   params.Department,
		LocationName: params.LocationName,
		Priority:     params.Priority,
		State:        params.Process,
	})
	if err != nil {
		switch err {
		case store.ErrComplaintNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorComplaintNotFound)
		case store.ErrInvalidStateChange:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidStateChange)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, complaintView(complaint))
}

func (s *Server) deleteComplaint(c *gin.Context) {
	id, ok := complaintIDFromParam(c)
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteComplaint(id); err != nil {
		if err == store.ErrComplaintNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorComplaintNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
