package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cnaize/bouncer/src/core/filter"
	"github.com/cnaize/bouncer/src/core/logger"
	"github.com/cnaize/bouncer/src/core/metrics"
)

func Register(r *gin.Engine, flt *filter.Ref, logger *logger.Logger) {
	// register prometheus metrics
	reg := prometheus.NewRegistry()
	metrics.Get().Register(reg)

	root := r.Group("/v1")
	root.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// register api endpoints
	root.POST("/check", checkCandidate(flt, logger))
	root.GET("/filter", filterInfo(flt))
}
