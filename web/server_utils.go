package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// enabledFeatures lists the optional parts of the console that are switched on.
func enabledFeatures(cfg *config.Config, recorder metrics.Recorder) []string {
	features := []string{}
	if _, ok := recorder.(*metrics.PrometheusRecorder); ok && cfg.EnableMetrics {
		features = append(features, "metrics")
	}
	if cfg.EnableActivityLog {
		features = append(features, "activity")
	}
	if cfg.EnableSwagger {
		features = append(features, "swagger")
	}
	if cfg.EnableAmqpProbe {
		features = append(features, "amqp-probe")
	}
	log.Debug().Strs("features", features).Msg("Console features")
	return features
}

// metricsHandler serves the recorder's registry, or nil when the recorder keeps no registry.
func metricsHandler(recorder metrics.Recorder) fiber.Handler {
	prom, ok := recorder.(*metrics.PrometheusRecorder)
	if !ok {
		return nil
	}
	return adaptor.HTTPHandler(promhttp.HandlerFor(prom.Registry(), promhttp.HandlerOpts{}))
}
