package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cnaize/bouncer/src/core/filter"
	"github.com/cnaize/bouncer/src/core/logger"
	"github.com/cnaize/bouncer/src/core/logger/event"
)

func checkCandidate(flt *filter.Ref, logger *logger.Logger) func(*gin.Context) {
	type In struct {
		Candidate string `json:"candidate" binding:"required"`
	}
	type Out struct {
		Filtered bool   `json:"filtered"`
		Reason   string `json:"reason"`
	}

	return func(c *gin.Context) {
		var in In
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		matched, reason := flt.Load().IsFiltered(in.Candidate)
		if matched {
			logger.Log(event.NewMatch(zerolog.InfoLevel, "candidate matched", in.Candidate, reason))
		} else {
			logger.Log(event.NewPass(zerolog.DebugLevel, "candidate passed", in.Candidate, reason))
		}

		c.JSON(http.StatusOK, Out{Filtered: matched, Reason: reason})
	}
}

func filterInfo(flt *filter.Ref) func(*gin.Context) {
	type Out struct {
		Spec    string `json:"spec"`
		Pattern string `json:"pattern,omitempty"`
		Addrs   int    `json:"addrs"`
		Ranges  int    `json:"ranges"`
		Tokens  int    `json:"tokens"`
	}

	return func(c *gin.Context) {
		f := flt.Load()
		c.JSON(http.StatusOK, Out{
			Spec:    f.Spec(),
			Pattern: f.Pattern(),
			Addrs:   f.Addrs().Len(),
			Ranges:  f.Ranges().Len(),
			Tokens:  f.Tokens().Len(),
		})
	}
}
