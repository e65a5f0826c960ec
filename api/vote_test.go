package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/civic-guardian/civic-api/api/mocks"
	"github.com/civic-guardian/civic-api/schema"
	"github.com/civic-guardian/civic-api/store"
)

func TestCastVote(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCivicCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	complaintID := primitive.NewObjectID()

	a.EXPECT().CastVote("voter-1", complaintID.Hex(), schema.VoteResolved).Return(&schema.Complaint{
		ID:       complaintID,
		Priority: schema.PriorityHigh,
		State:    schema.StateVerifiedResolved,
		Score:    4.5,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/complaints/:complaintID/votes", s.castVote)

	req := httptest.NewRequest("POST", "/complaints/"+complaintID.Hex()+"/votes",
		strings.NewReader(`{"voter_id":"voter-1","kind":"resolved"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, complaintID.Hex(), jResp["complaint_id"], "wrong json response of complaint id")
	assert.Equal(t, "resolved", jResp["status"], "wrong json response of status")
	assert.Equal(t, "verified_resolved", jResp["process"], "wrong json response of process")
	assert.Equal(t, 4.5, jResp["score"], "wrong json response of score")
}

func TestCastVoteErrorMapping(t *testing.T) {
	complaintID := primitive.NewObjectID()

	cases := []struct {
		name      string
		storeErr  error
		httpCode  int
		errorCode float64
	}{
		{"unknown voter", store.ErrAccountNotFound, http.StatusNotFound, 1100},
		{"unknown complaint", store.ErrComplaintNotFound, http.StatusNotFound, 1200},
		{"invalid kind", store.ErrInvalidVoteKind, http.StatusBadRequest, 1300},
		{"duplicate vote", store.ErrDuplicateVote, http.StatusConflict, 1301},
		{"rolled back transaction", fmt.Errorf("connection reset by peer"), http.StatusServiceUnavailable, 1302},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			a := mocks.NewMockCivicCore(ctl)
			s := Server{
				store:      a,
				mongoStore: mocks.NewMockMongoStore(ctl),
			}

			a.EXPECT().CastVote(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.storeErr).Times(1)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.POST("/complaints/:complaintID/votes", s.castVote)

			req := httptest.NewRequest("POST", "/complaints/"+complaintID.Hex()+"/votes",
				strings.NewReader(`{"voter_id":"voter-1","kind":"resolved"}`))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.httpCode, w.Code, "wrong status code")

			var jResp map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &jResp)

			assert.Nil(t, err, "wrong json unmarshal")
			assert.Equal(t, tc.errorCode, jResp["code"], "wrong error code")
		})
	}
}

func TestCastVoteRejectsBadBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		store:      mocks.NewMockCivicCore(ctl),
		mongoStore: mocks.NewMockMongoStore(ctl),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/complaints/:complaintID/votes", s.castVote)

	req := httptest.NewRequest("POST", "/complaints/"+primitive.NewObjectID().Hex()+"/votes",
		strings.NewReader(`{not json`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
