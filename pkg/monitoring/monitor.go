package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// DocumentUploads 按类型统计上传的学习资料,kind 为 text、binary 或 stub
	DocumentUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_uploaded_total",
			Help: "Total number of uploaded documents",
		},
		[]string{"kind"},
	)

	// AssessmentsGenerated 按题型统计生成的测验
	AssessmentsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_generated_total",
			Help: "Total number of generated assessments",
		},
		[]string{"kind"},
	)

	// StatePersistFailures 统计后台持久化失败次数,key 为 profile/documents/assessments
	StatePersistFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_persist_failures_total",
			Help: "Total number of failed state persistence writes",
		},
		[]string{"key"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DocumentUploads)
	prometheus.MustRegister(AssessmentsGenerated)
	prometheus.MustRegister(StatePersistFailures)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
