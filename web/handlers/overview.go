package handlers

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/ottermq/mbconsole/internal/amqpprobe"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/internal/session"
	"github.com/rs/zerolog/log"
)

// Overview gathers what the console knows about the broker behind the session.
func (e *Env) Overview(ctx context.Context, b *client.Client, sess session.Session) models.OverviewDTO {
	return models.OverviewDTO{
		Broker:  e.brokerDetails(ctx, b),
		AMQP:    e.amqpDetails(ctx, b, sess),
		Console: e.consoleDetails(sess),
	}
}

func (e *Env) brokerDetails(ctx context.Context, b *client.Client) models.OverviewBrokerDetails {
	details := models.OverviewBrokerDetails{BaseURL: b.Connection().BaseURL}

	start := time.Now()
	exchanges, err := b.ListExchanges(ctx)
	details.Latency = time.Since(start)
	if err != nil {
		details.Error = Describe(err)
		return details
	}
	details.Reachable = true
	details.ExchangeCount = len(exchanges)

	queues, err := b.ListQueues(ctx)
	if err != nil {
		details.Error = Describe(err)
		return details
	}
	details.QueueCount = len(queues)
	return details
}

func (e *Env) amqpDetails(ctx context.Context, b *client.Client, sess session.Session) models.OverviewAMQPDetails {
	details := models.OverviewAMQPDetails{Enabled: e.Config.EnableAmqpProbe}
	if !details.Enabled {
		return details
	}

	host := b.Connection().Host()
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	url := amqpprobe.URL(host, e.Config.AmqpPort, sess.Credentials.Username, sess.Credentials.Password)
	details.URL = amqpprobe.Redact(url)

	probeCtx, cancel := context.WithTimeout(ctx, amqpprobe.DefaultTimeout)
	defer cancel()
	probe := e.Probe
	if probe == nil {
		probe = amqpprobe.Probe
	}
	info, err := probe(probeCtx, url)
	if err != nil {
		log.Debug().Err(err).Str("url", details.URL).Msg("AMQP probe failed")
		details.Error = err.Error()
		return details
	}
	details.Reachable = true
	details.Product = info.Product
	details.Version = info.Version
	details.Platform = info.Platform
	details.Locales = strings.Join(info.Locales, ", ")
	return details
}

func (e *Env) consoleDetails(sess session.Session) models.OverviewConsoleDetails {
	stats := e.Recorder.CallStats()
	return models.OverviewConsoleDetails{
		Version:        e.Config.Version,
		Username:       sess.Credentials.Username,
		StartTime:      e.StartTime,
		UptimeSecs:     int(time.Since(e.StartTime).Seconds()),
		BrokerCalls:    stats.Total,
		BrokerFailures: stats.Failures,
		CallRate:       stats.RatePerSec,
		Features:       e.Features,
	}
}
