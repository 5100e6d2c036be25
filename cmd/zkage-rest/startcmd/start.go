/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echopprof "github.com/sevenNt/echo-pprof"
	"github.com/spf13/cobra"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/zkage/cmd/common"
	"github.com/trustbloc/zkage/internal/workdir"
	"github.com/trustbloc/zkage/pkg/event/amqp"
	"github.com/trustbloc/zkage/pkg/keyprovider"
	"github.com/trustbloc/zkage/pkg/observability/health/healthchecks"
	"github.com/trustbloc/zkage/pkg/observability/metrics"
	noopmetrics "github.com/trustbloc/zkage/pkg/observability/metrics/noop"
	prommetrics "github.com/trustbloc/zkage/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/zkage/pkg/observability/tracing"
	ageverifytracing "github.com/trustbloc/zkage/pkg/observability/tracing/wrappers/ageverify"
	"github.com/trustbloc/zkage/pkg/registry"
	"github.com/trustbloc/zkage/pkg/restapi/handlers"
	"github.com/trustbloc/zkage/pkg/restapi/v1/ageverification"
	"github.com/trustbloc/zkage/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/zkage/pkg/restapi/v1/logapi"
	"github.com/trustbloc/zkage/pkg/restapi/v1/mw"
	"github.com/trustbloc/zkage/pkg/restapi/v1/version"
	"github.com/trustbloc/zkage/pkg/service/ageverify"
	"github.com/trustbloc/zkage/pkg/storage/s3/keystore"
	"github.com/trustbloc/zkage/pkg/zkp/prover"
	"github.com/trustbloc/zkage/pkg/zkp/toolchain"
)

var logger = log.New("zkage-rest")

const (
	metricsEndpoint   = "/metrics"
	readHeaderTimeout = 10 * time.Second
	startupTimeout    = 30 * time.Second
)

type httpServer interface {
	ListenAndServe(host, certFile, keyFile string, handler http.Handler) error
}

// HTTPServer serves the REST API with the standard library server.
type HTTPServer struct{}

// ListenAndServe starts serving. TLS is used when both certFile and keyFile are set.
func (s *HTTPServer) ListenAndServe(host, certFile, keyFile string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              host,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if certFile != "" && keyFile != "" {
		return srv.ListenAndServeTLS(certFile, keyFile)
	}

	return srv.ListenAndServe()
}

type startOpts struct {
	server        httpServer
	version       string
	serverVersion string
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets a custom HTTP server.
func WithHTTPServer(srv httpServer) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// WithVersion sets the API version reported by /version.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithServerVersion sets the server version reported by /version/system.
func WithServerVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.serverVersion = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start zkage-rest",
		Long:  "Start zkage-rest, the zero-knowledge age verification REST service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			conf := &startOpts{server: &HTTPServer{}}

			for _, opt := range opts {
				opt(conf)
			}

			return startServer(cmd.Context(), params, conf)
		},
	}
}

func startServer(ctx context.Context, params *startupParameters, opts *startOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}

	common.SetDefaultLogLevel(logger, params.logLevel)

	shutdownTracer, tracer, err := tracing.Initialize(params.tracing.exporter, params.tracing.serviceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer shutdownTracer()

	traceEnabled := params.tracing.exporter != tracing.None

	metricsProvider, err := createMetricsProvider(params)
	if err != nil {
		return err
	}

	defer func() {
		if destroyErr := metricsProvider.Destroy(); destroyErr != nil {
			logger.Warn("Failed to stop metrics provider", log.WithError(destroyErr))
		}
	}()

	setupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	blobStore, err := createKeyStore(setupCtx, params.keyStore, traceEnabled)
	if err != nil {
		return err
	}

	chainClient, err := createChainClient(setupCtx, params, traceEnabled)
	if err != nil {
		return err
	}
	defer chainClient.Close()

	if params.registry.chainID == nil {
		params.registry.chainID, err = chainClient.ChainID(setupCtx)
		if err != nil {
			return fmt.Errorf("query chain id: %w", err)
		}
	}

	writer, err := createRegistryWriter(params.registry, chainClient, metricsProvider.Metrics())
	if err != nil {
		return err
	}

	svcConfig := &ageverify.Config{
		WorkDirs:    workdir.NewManager(params.toolchain.workDirRoot),
		KeyProvider: keyprovider.New(blobStore),
		Prover: prover.New(&prover.Config{
			Runner:      toolchain.NewExecRunner(params.toolchain.binary),
			CircuitPath: params.toolchain.circuitPath,
			CheckMode:   params.toolchain.checkMode,
			Metrics:     metricsProvider.Metrics(),
		}),
		Registry:   writer,
		EventTopic: params.events.topic,
		Metrics:    metricsProvider.Metrics(),
	}

	if params.events.amqpURL != "" {
		publisher, dialErr := amqp.Dial(params.events.amqpURL, params.events.exchange)
		if dialErr != nil {
			return dialErr
		}

		defer func() {
			if closeErr := publisher.Close(); closeErr != nil {
				logger.Warn("Failed to close event publisher", log.WithError(closeErr))
			}
		}()

		svcConfig.EventPublisher = publisher
	}

	var svc ageverify.ServiceInterface = ageverify.New(svcConfig)
	if traceEnabled {
		svc = ageverifytracing.Wrap(svc, tracer)
	}

	e := buildEcho(params, tracer, traceEnabled)

	healthcheck.NewController(e, healthchecks.Get(&healthchecks.Config{
		BlobStore:   blobStore,
		ChainClient: chainClient,
		ChainID:     params.registry.chainID,
	}))
	version.NewController(e, version.Config{
		Version:       opts.version,
		ServerVersion: opts.serverVersion,
		CircuitPath:   params.toolchain.circuitPath,
	})
	logapi.NewController(e)
	ageverification.NewController(e, svc)

	if params.metricsProvider == prometheusProviderName && params.promHTTPURL == "" {
		e.GET(metricsEndpoint, echo.WrapHandler(prommetrics.NewHandler().Handler()))
	}

	ready := newReadinessController(e)
	ready.Ready(true)

	logger.Info("Starting zkage-rest", log.WithURL(params.hostURL))

	err = opts.server.ListenAndServe(params.hostURL,
		params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath, e)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server closed unexpectedly: %w", err)
	}

	return nil
}

func buildEcho(params *startupParameters, tracer trace.Tracer, traceEnabled bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(tracer)

	e.Use(echomw.Recover())

	if traceEnabled {
		e.Use(otelecho.Middleware(params.tracing.serviceName))
	}

	if params.apiToken != "" {
		e.Use(mw.APIKeyAuth(params.apiToken))
	}

	if params.enableProfiler {
		echopprof.Wrap(e)
	}

	return e
}

func createMetricsProvider(params *startupParameters) (metrics.Provider, error) {
	if params.metricsProvider != prometheusProviderName {
		return noopmetrics.NewProvider(), nil
	}

	var srv *http.Server

	if params.promHTTPURL != "" {
		mux := http.NewServeMux()
		mux.Handle(metricsEndpoint, prommetrics.NewHandler().Handler())

		srv = &http.Server{
			Addr:              params.promHTTPURL,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	provider := prommetrics.NewPrometheusProvider(srv)

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider, nil
}

func createKeyStore(ctx context.Context, params *keyStoreParameters, traceEnabled bool) (*keystore.Store, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error

	if params.region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(params.region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	if traceEnabled {
		otelaws.AppendMiddlewares(&cfg.APIOptions)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if params.endpoint != "" {
			o.BaseEndpoint = aws.String(params.endpoint)
			o.UsePathStyle = true
		}
	})

	var storeOpts []keystore.Opt
	if params.keyPrefix != "" {
		storeOpts = append(storeOpts, keystore.WithKeyPrefix(params.keyPrefix))
	}

	return keystore.NewStore(client, params.bucket, storeOpts...), nil
}

func createChainClient(ctx context.Context, params *startupParameters, traceEnabled bool) (*ethclient.Client, error) {
	rootCAs, err := tlsutils.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		return nil, fmt.Errorf("load ca certs: %w", err)
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12},
	}

	if traceEnabled {
		transport = otelhttp.NewTransport(transport)
	}

	rpcClient, err := rpc.DialOptions(ctx, params.registry.rpcURL,
		rpc.WithHTTPClient(&http.Client{Transport: transport}))
	if err != nil {
		return nil, fmt.Errorf("dial rpc %s: %w", params.registry.rpcURL, err)
	}

	return ethclient.NewClient(rpcClient), nil
}

func createRegistryWriter(
	params *registryParameters,
	client *ethclient.Client,
	m metrics.Metrics,
) (*registry.Writer, error) {
	contract, err := registry.NewBoundContract(params.contractAddress, client)
	if err != nil {
		return nil, err
	}

	signer, err := registry.NewSigner(params.verifierKey, params.chainID)
	if err != nil {
		return nil, err
	}

	return registry.NewWriter(&registry.Config{
		Contract:           contract,
		Receipts:           client,
		Signer:             signer,
		TypeTag:            params.typeTag,
		CheckAuthorization: params.checkAuthorization,
		ReceiptTimeout:     params.receiptTimeout,
		Metrics:            m,
	}), nil
}
