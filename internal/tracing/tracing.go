// Package tracing installs the global opentracing tracer of the currates
// command, reporting to a jaeger agent.
package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type config interface {
	Enabled() bool
	ServiceName() string
	AgentAddr() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init builds a jaeger tracer from cfg and sets it as the opentracing global.
// The returned closer flushes buffered spans; when tracing is disabled the
// global tracer stays a noop and the closer does nothing.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		return nopCloser{}, nil
	}

	conf := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentAddr(),
		},
	}

	tracer, closer, err := conf.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "creating jaeger tracer")
	}

	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
