package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/driftstore/cmd/storectl/internal/script"
	"github.com/go-drift/driftstore/pkg/log"
	"github.com/go-drift/driftstore/pkg/metrics"
	"github.com/go-drift/driftstore/pkg/otel"
	"github.com/go-drift/driftstore/pkg/store"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a script of actions",
		Long: `Replay the actions of a YAML script through a store.

The script names the initial store name and state and lists actions:

  version: v1.0.0
  name: counter
  state: {count: 0}
  actions:
    - type: INCREMENT
      field: count
    - type: "@@RENAME_STORE"
      name: x

Built-in action types are SET, UNSET, INCREMENT, DECREMENT and RESET.
After each action the store name and state are printed as YAML.

Flags:
  --metrics   Print Prometheus metrics gathered during the replay
  --trace     Print the dispatch spans recorded during the replay`,
		Usage: "storectl replay [--metrics] [--trace] <script.yaml>",
		Run:   runReplay,
	})
}

type replayOptions struct {
	path    string
	metrics bool
	trace   bool
}

func parseReplayArgs(args []string) (replayOptions, error) {
	var opts replayOptions
	for _, arg := range args {
		switch {
		case arg == "--metrics":
			opts.metrics = true
		case arg == "--trace":
			opts.trace = true
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %q", arg)
		case opts.path != "":
			return opts, fmt.Errorf("unexpected argument %q", arg)
		default:
			opts.path = arg
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("script path is required\n\nUsage: storectl replay [--metrics] [--trace] <script.yaml>")
	}
	return opts, nil
}

// shutdownTracer flushes and stops the replay's tracer provider.
var shutdownTracer = func(ctx context.Context, tp *sdktrace.TracerProvider) error {
	return tp.Shutdown(ctx)
}

// snapshot is the printed form of a store after an action.
type snapshot struct {
	Step   int            `yaml:"step"`
	Action string         `yaml:"action"`
	Name   string         `yaml:"name"`
	State  map[string]any `yaml:"state"`
}

func runReplay(args []string) (err error) {
	opts, err := parseReplayArgs(args)
	if err != nil {
		return err
	}

	sc, err := script.Load(opts.path)
	if err != nil {
		return err
	}

	logger := log.WithComponent("replay")
	storeOpts := []store.Option{
		store.WithName(sc.Name),
		store.WithLogger(logger),
	}

	var reg *prometheus.Registry
	if opts.metrics {
		reg = prometheus.NewRegistry()
		storeOpts = append(storeOpts, store.WithObserver(metrics.NewObserver(reg)))
	}

	var exporter *tracetest.InMemoryExporter
	var tp *sdktrace.TracerProvider
	if opts.trace {
		exporter = tracetest.NewInMemoryExporter()
		tp = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer func() {
			if serr := shutdownTracer(context.Background(), tp); serr != nil {
				logger.Error().Err(serr).Msg("tracer shutdown failed")
				if err == nil {
					err = fmt.Errorf("failed to shut down tracer: %w", serr)
				}
			}
		}()
		obs, err := otel.New(otel.WithTracerProvider(tp))
		if err != nil {
			return fmt.Errorf("failed to create tracer: %w", err)
		}
		storeOpts = append(storeOpts, store.WithObserver(obs))
	}

	s := store.New(sc.State, script.MapReducer(sc.State), storeOpts...)
	if err := printSnapshot(snapshot{Step: 0, Action: store.ActionInit, Name: s.Name(), State: s.State()}); err != nil {
		return err
	}

	for i, action := range sc.StoreActions() {
		if err := s.TryDispatch(action); err != nil {
			return fmt.Errorf("action %d (%s): %w", i+1, action.Type, err)
		}
		if err := printSnapshot(snapshot{Step: i + 1, Action: action.Type, Name: s.Name(), State: s.State()}); err != nil {
			return err
		}
	}
	logger.Info().Str("store", s.Name()).Int("actions", len(sc.Actions)).Msg("replay complete")

	if reg != nil {
		if err := printMetrics(reg); err != nil {
			return err
		}
	}
	if exporter != nil {
		printSpans(exporter.GetSpans())
	}
	return nil
}

func printSnapshot(snap snapshot) error {
	data, err := yaml.Marshal([]snapshot{snap})
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	_, err = stdout.Write(data)
	return err
}

func printMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	fmt.Fprintln(stdout, "# metrics")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(stdout, "%s%s %s\n", mf.GetName(), formatLabels(m.GetLabel()), formatValue(mf.GetType(), m))
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

func formatValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprint(m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprint(m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%s", h.GetSampleCount(), time.Duration(h.GetSampleSum()*float64(time.Second)))
	}
	return "?"
}

func printSpans(spans tracetest.SpanStubs) {
	fmt.Fprintln(stdout, "# spans")
	for _, span := range spans {
		fmt.Fprintf(stdout, "%s status=%s\n", span.Name, span.Status.Code)
	}
}
