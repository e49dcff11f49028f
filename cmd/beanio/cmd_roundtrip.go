package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/somranjan/beanio/internal/checkpoint"
	"github.com/somranjan/beanio/internal/config"
	parsectx "github.com/somranjan/beanio/internal/context"
	"github.com/somranjan/beanio/internal/metrics"
	"github.com/somranjan/beanio/internal/parser"
)

func newRoundtripCmd() *cobra.Command {
	var (
		streamName     string
		checkpointFile string
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "roundtrip <mapping.yaml> <input-file>",
		Short: "Read records from input-file and immediately re-write them to stdout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mappingPath, inputPath := args[0], args[1]

			tree, err := config.LoadYAML(mappingPath)
			if err != nil {
				return fmt.Errorf("load %s: %w", mappingPath, err)
			}

			if err := config.Validate(tree); err != nil {
				return fmt.Errorf("invalid mapping: %w", err)
			}

			registry, accessors := newEnvironment()

			trees, err := parser.Build(tree, registry, accessors)
			if err != nil {
				return fmt.Errorf("build mapping: %w", err)
			}

			st, ok := trees[streamName]
			if !ok {
				return fmt.Errorf("mapping %s has no stream named %q", mappingPath, streamName)
			}

			sink := resolveSink(metricsAddr)

			store := checkpoint.NewMemory()
			if checkpointFile != "" {
				imported, err := checkpoint.ImportYAML(checkpointFile)
				if err != nil {
					return fmt.Errorf("import checkpoint: %w", err)
				}

				if err := store.Save(cmd.Context(), imported); err != nil {
					return fmt.Errorf("restore checkpoint: %w", err)
				}

				if state, err := store.Load(cmd.Context(), streamName); err == nil && len(state) > 0 {
					if err := st.Restore(streamName, state); err != nil {
						log.Warningf("checkpoint restore: %v", err)
					}
				}
			}

			in, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", inputPath, err)
			}
			defer in.Close()

			sink.StreamOpened(streamName)
			defer sink.StreamClosed(streamName)

			reader := parser.NewReader(st, in)
			writer := parser.NewWriter(st, cmd.OutOrStdout())

			for {
				bean, name, err := reader.Read()
				if errors.Is(err, io.EOF) {
					break
				}

				var invalid *parsectx.InvalidRecord
				if errors.As(err, &invalid) {
					for _, kind := range invalid.Kinds() {
						sink.InvalidRecordOccurred(streamName, kind)
					}

					log.Warningf("%s", invalid.Error())

					continue
				}

				if err != nil {
					return fmt.Errorf("read: %w", err)
				}

				sink.RecordRead(streamName, name)

				writtenName, err := writer.Write(bean)
				if err != nil {
					return fmt.Errorf("write record %q: %w", name, err)
				}

				sink.RecordWritten(streamName, writtenName)
			}

			if checkpointFile != "" {
				if err := store.Save(context.Background(), st.Snapshot(streamName)); err != nil {
					return fmt.Errorf("snapshot checkpoint: %w", err)
				}

				if err := checkpoint.ExportYAML(checkpointFile, store.Snapshot()); err != nil {
					return fmt.Errorf("export checkpoint: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&streamName, "stream", "", "stream name within the mapping file to read/write (required)")
	cmd.Flags().StringVar(&checkpointFile, "checkpoint-file", "", "YAML file to restore/persist selector occurrence counts across runs")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while running (e.g. :9090)")
	cmd.MarkFlagRequired("stream")

	return cmd
}

// resolveSink starts a /metrics HTTP server and returns a Prometheus
// sink when addr is non-empty, or metrics.NoOp otherwise.
func resolveSink(addr string) metrics.Sink {
	if addr == "" {
		return metrics.NoOp{}
	}

	registry := prometheus.NewRegistry()
	sink := metrics.NewPrometheus(registry)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Errorf("metrics server: %v", err)
		}
	}()

	return sink
}
