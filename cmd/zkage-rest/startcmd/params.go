/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/zkage/cmd/common"
	"github.com/trustbloc/zkage/pkg/event/spi"
	"github.com/trustbloc/zkage/pkg/observability/tracing"
	"github.com/trustbloc/zkage/pkg/registry"
	"github.com/trustbloc/zkage/pkg/zkp/prover"
)

const (
	commonEnvVarUsageText = " Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the zkage-rest instance on. Format: HostName:Port." +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "ZKAGE_HOST_URL"

	apiTokenFlagName  = "api-token"
	apiTokenFlagUsage = "Shared key required in the X-API-Key header (or the code query parameter)." +
		" When empty the API is served without authentication." + commonEnvVarUsageText + apiTokenEnvKey
	apiTokenEnvKey = "ZKAGE_API_TOKEN" //nolint:gosec

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool for outbound RPC calls." +
		" Possible values [true] [false]. Defaults to false if not set." +
		commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "ZKAGE_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "ZKAGE_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for the REST server." + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "ZKAGE_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for the REST server." + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "ZKAGE_TLS_KEY"

	profilerFlagName  = "enable-profiler"
	profilerFlagUsage = "Expose pprof endpoints under /debug/pprof. Defaults to false." +
		commonEnvVarUsageText + profilerEnvKey
	profilerEnvKey = "ZKAGE_ENABLE_PROFILER"
)

// key store params
const (
	blobBucketFlagName  = "blob-bucket"
	blobBucketFlagUsage = "Bucket holding the proving and verification keys." + commonEnvVarUsageText + blobBucketEnvKey
	blobBucketEnvKey    = "ZKAGE_BLOB_BUCKET"

	blobRegionFlagName  = "blob-region"
	blobRegionFlagUsage = "Region of the key bucket." + commonEnvVarUsageText + blobRegionEnvKey
	blobRegionEnvKey    = "ZKAGE_BLOB_REGION"

	blobEndpointFlagName  = "blob-endpoint"
	blobEndpointFlagUsage = "Custom S3 compatible endpoint, e.g. http://localhost:4566. Path style addressing is used" +
		" when set." + commonEnvVarUsageText + blobEndpointEnvKey
	blobEndpointEnvKey = "ZKAGE_BLOB_ENDPOINT"

	blobKeyPrefixFlagName  = "blob-key-prefix"
	blobKeyPrefixFlagUsage = "Optional prefix of the key blob names." + commonEnvVarUsageText + blobKeyPrefixEnvKey
	blobKeyPrefixEnvKey    = "ZKAGE_BLOB_KEY_PREFIX"
)

// proving toolchain params
const (
	zkBinaryFlagName  = "zk-binary"
	zkBinaryFlagUsage = "Proving toolchain executable. Defaults to zokrates." + commonEnvVarUsageText + zkBinaryEnvKey
	zkBinaryEnvKey    = "ZKAGE_ZK_BINARY"
	defaultZKBinary   = "zokrates"

	circuitPathFlagName  = "circuit-path"
	circuitPathFlagUsage = "Path to the compiled age verification circuit." + commonEnvVarUsageText + circuitPathEnvKey
	circuitPathEnvKey    = "ZKAGE_CIRCUIT_PATH"

	proofCheckFlagName  = "proof-check"
	proofCheckFlagUsage = "Proof check before registration: none, verify or strict. Defaults to none." +
		commonEnvVarUsageText + proofCheckEnvKey
	proofCheckEnvKey = "ZKAGE_PROOF_CHECK"

	workDirRootFlagName  = "work-dir-root"
	workDirRootFlagUsage = "Directory for per-request working directories. Defaults to the OS temp dir." +
		commonEnvVarUsageText + workDirRootEnvKey
	workDirRootEnvKey = "ZKAGE_WORK_DIR_ROOT"
)

// registry params
const (
	rpcURLFlagName  = "rpc-url"
	rpcURLFlagUsage = "Ethereum JSON-RPC endpoint of the registry chain." + commonEnvVarUsageText + rpcURLEnvKey
	rpcURLEnvKey    = "ZKAGE_RPC_URL"

	registryAddressFlagName  = "registry-address"
	registryAddressFlagUsage = "Address of the verification registry contract." +
		commonEnvVarUsageText + registryAddressEnvKey
	registryAddressEnvKey = "ZKAGE_REGISTRY_ADDRESS"

	verifierKeyFlagName  = "verifier-private-key"
	verifierKeyFlagUsage = "Hex encoded private key of the authorized verifier account." +
		commonEnvVarUsageText + verifierKeyEnvKey
	verifierKeyEnvKey = "ZKAGE_VERIFIER_PRIVATE_KEY" //nolint:gosec

	chainIDFlagName  = "chain-id"
	chainIDFlagUsage = "Chain id used for signing. Queried from the RPC node when not set." +
		commonEnvVarUsageText + chainIDEnvKey
	chainIDEnvKey = "ZKAGE_CHAIN_ID"

	typeTagFlagName  = "verification-type-tag"
	typeTagFlagUsage = "Verification type recorded in the registry. Defaults to " + registry.DefaultTypeTag + "." +
		commonEnvVarUsageText + typeTagEnvKey
	typeTagEnvKey = "ZKAGE_VERIFICATION_TYPE_TAG"

	authCheckFlagName  = "registry-authorization-check"
	authCheckFlagUsage = "Check that the verifier is authorized before submitting. Defaults to true." +
		commonEnvVarUsageText + authCheckEnvKey
	authCheckEnvKey = "ZKAGE_REGISTRY_AUTHORIZATION_CHECK"

	receiptTimeoutFlagName  = "receipt-timeout"
	receiptTimeoutFlagUsage = "How long to wait for the registration receipt, e.g. 2m." +
		commonEnvVarUsageText + receiptTimeoutEnvKey
	receiptTimeoutEnvKey  = "ZKAGE_RECEIPT_TIMEOUT"
	defaultReceiptTimeout = 2 * time.Minute
)

// event params
const (
	amqpURLFlagName  = "amqp-url"
	amqpURLFlagUsage = "RabbitMQ URL for registration events. Events are disabled when empty." +
		commonEnvVarUsageText + amqpURLEnvKey
	amqpURLEnvKey = "ZKAGE_AMQP_URL"

	amqpExchangeFlagName  = "amqp-exchange"
	amqpExchangeFlagUsage = "Topic exchange for registration events. Defaults to zkage." +
		commonEnvVarUsageText + amqpExchangeEnvKey
	amqpExchangeEnvKey  = "ZKAGE_AMQP_EXCHANGE"
	defaultAMQPExchange = "zkage"

	eventTopicFlagName  = "event-topic"
	eventTopicFlagUsage = "Routing key of registration events. Defaults to " + spi.AgeVerificationEventTopic + "." +
		commonEnvVarUsageText + eventTopicEnvKey
	eventTopicEnvKey = "ZKAGE_EVENT_TOPIC"
)

// observability params
const (
	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.)." +
		commonEnvVarUsageText + metricsProviderEnvKey
	metricsProviderEnvKey = "ZKAGE_METRICS_PROVIDER_NAME"

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLFlagUsage = "Separate listen address for the Prometheus endpoint. When empty /metrics is served" +
		" by the REST server." + commonEnvVarUsageText + promHTTPURLEnvKey
	promHTTPURLEnvKey = "ZKAGE_PROM_HTTP_URL"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderFlagUsage = "The tracing provider (for example, JAEGER or STDOUT)." +
		commonEnvVarUsageText + tracingProviderEnvKey
	tracingProviderEnvKey = "ZKAGE_TRACING_PROVIDER"

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameFlagUsage = "The name of the tracing service. Default: zkage." +
		commonEnvVarUsageText + tracingServiceNameEnvKey
	tracingServiceNameEnvKey  = "ZKAGE_TRACING_SERVICE_NAME"
	defaultTracingServiceName = "zkage"

	prometheusProviderName = "prometheus"
)

type startupParameters struct {
	hostURL         string
	apiToken        string
	logLevel        string
	enableProfiler  bool
	tlsParameters   *tlsParameters
	keyStore        *keyStoreParameters
	toolchain       *toolchainParameters
	registry        *registryParameters
	events          *eventParameters
	metricsProvider string
	promHTTPURL     string
	tracing         *tracingParameters
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

type keyStoreParameters struct {
	bucket    string
	region    string
	endpoint  string
	keyPrefix string
}

type toolchainParameters struct {
	binary      string
	circuitPath string
	checkMode   prover.CheckMode
	workDirRoot string
}

type registryParameters struct {
	rpcURL             string
	contractAddress    string
	verifierKey        string
	chainID            *big.Int
	typeTag            string
	checkAuthorization bool
	receiptTimeout     time.Duration
}

type eventParameters struct {
	amqpURL  string
	exchange string
	topic    string
}

type tracingParameters struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	enableProfiler, err := getBool(cmd, profilerFlagName, profilerEnvKey, false)
	if err != nil {
		return nil, err
	}

	keyStoreParams, err := getKeyStoreParameters(cmd)
	if err != nil {
		return nil, err
	}

	toolchainParams, err := getToolchainParameters(cmd)
	if err != nil {
		return nil, err
	}

	registryParams, err := getRegistryParameters(cmd)
	if err != nil {
		return nil, err
	}

	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)
	if metricsProvider != "" && metricsProvider != prometheusProviderName {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	tracingParams, err := getTracingParameters(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:         hostURL,
		apiToken:        cmdutils.GetUserSetOptionalVarFromString(cmd, apiTokenFlagName, apiTokenEnvKey),
		logLevel:        cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
		enableProfiler:  enableProfiler,
		tlsParameters:   tlsParams,
		keyStore:        keyStoreParams,
		toolchain:       toolchainParams,
		registry:        registryParams,
		events:          getEventParameters(cmd),
		metricsProvider: metricsProvider,
		promHTTPURL:     cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey),
		tracing:         tracingParams,
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	systemCertPool, err := getBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &tlsParameters{
		systemCertPool: systemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
		serveCertPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey),
		serveKeyPath:   cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey),
	}, nil
}

func getKeyStoreParameters(cmd *cobra.Command) (*keyStoreParameters, error) {
	bucket, err := cmdutils.GetUserSetVarFromString(cmd, blobBucketFlagName, blobBucketEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &keyStoreParameters{
		bucket:    bucket,
		region:    cmdutils.GetUserSetOptionalVarFromString(cmd, blobRegionFlagName, blobRegionEnvKey),
		endpoint:  cmdutils.GetUserSetOptionalVarFromString(cmd, blobEndpointFlagName, blobEndpointEnvKey),
		keyPrefix: cmdutils.GetUserSetOptionalVarFromString(cmd, blobKeyPrefixFlagName, blobKeyPrefixEnvKey),
	}, nil
}

func getToolchainParameters(cmd *cobra.Command) (*toolchainParameters, error) {
	circuitPath, err := cmdutils.GetUserSetVarFromString(cmd, circuitPathFlagName, circuitPathEnvKey, false)
	if err != nil {
		return nil, err
	}

	binary := cmdutils.GetUserSetOptionalVarFromString(cmd, zkBinaryFlagName, zkBinaryEnvKey)
	if binary == "" {
		binary = defaultZKBinary
	}

	checkMode, err := prover.ParseCheckMode(
		cmdutils.GetUserSetOptionalVarFromString(cmd, proofCheckFlagName, proofCheckEnvKey))
	if err != nil {
		return nil, err
	}

	return &toolchainParameters{
		binary:      binary,
		circuitPath: circuitPath,
		checkMode:   checkMode,
		workDirRoot: cmdutils.GetUserSetOptionalVarFromString(cmd, workDirRootFlagName, workDirRootEnvKey),
	}, nil
}

func getRegistryParameters(cmd *cobra.Command) (*registryParameters, error) {
	rpcURL, err := cmdutils.GetUserSetVarFromString(cmd, rpcURLFlagName, rpcURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	contractAddress, err := cmdutils.GetUserSetVarFromString(cmd, registryAddressFlagName,
		registryAddressEnvKey, false)
	if err != nil {
		return nil, err
	}

	verifierKey, err := cmdutils.GetUserSetVarFromString(cmd, verifierKeyFlagName, verifierKeyEnvKey, false)
	if err != nil {
		return nil, err
	}

	var chainID *big.Int

	if s := cmdutils.GetUserSetOptionalVarFromString(cmd, chainIDFlagName, chainIDEnvKey); s != "" {
		var ok bool

		chainID, ok = new(big.Int).SetString(s, 10)
		if !ok || chainID.Sign() <= 0 {
			return nil, fmt.Errorf("invalid chain id: %s", s)
		}
	}

	checkAuthorization, err := getBool(cmd, authCheckFlagName, authCheckEnvKey, true)
	if err != nil {
		return nil, err
	}

	receiptTimeout, err := getDuration(cmd, receiptTimeoutFlagName, receiptTimeoutEnvKey, defaultReceiptTimeout)
	if err != nil {
		return nil, err
	}

	typeTag := cmdutils.GetUserSetOptionalVarFromString(cmd, typeTagFlagName, typeTagEnvKey)
	if typeTag == "" {
		typeTag = registry.DefaultTypeTag
	}

	return &registryParameters{
		rpcURL:             rpcURL,
		contractAddress:    contractAddress,
		verifierKey:        verifierKey,
		chainID:            chainID,
		typeTag:            typeTag,
		checkAuthorization: checkAuthorization,
		receiptTimeout:     receiptTimeout,
	}, nil
}

func getEventParameters(cmd *cobra.Command) *eventParameters {
	exchange := cmdutils.GetUserSetOptionalVarFromString(cmd, amqpExchangeFlagName, amqpExchangeEnvKey)
	if exchange == "" {
		exchange = defaultAMQPExchange
	}

	topic := cmdutils.GetUserSetOptionalVarFromString(cmd, eventTopicFlagName, eventTopicEnvKey)
	if topic == "" {
		topic = spi.AgeVerificationEventTopic
	}

	return &eventParameters{
		amqpURL:  cmdutils.GetUserSetOptionalVarFromString(cmd, amqpURLFlagName, amqpURLEnvKey),
		exchange: exchange,
		topic:    topic,
	}
}

func getTracingParameters(cmd *cobra.Command) (*tracingParameters, error) {
	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)
	if !tracing.IsExportedSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", exporter)
	}

	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	return &tracingParameters{
		exporter:    exporter,
		serviceName: serviceName,
	}, nil
}

func getBool(cmd *cobra.Command, flagName, envKey string, defaultValue bool) (bool, error) {
	s := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if s == "" {
		return defaultValue, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s [%s]: %w", flagName, s, err)
	}

	return v, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().String(apiTokenFlagName, "", apiTokenFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	startCmd.Flags().String(tlsSystemCertPoolFlagName, "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSlice(tlsCACertsFlagName, []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().String(tlsCertificateFlagName, "", tlsCertificateFlagUsage)
	startCmd.Flags().String(tlsKeyFlagName, "", tlsKeyFlagUsage)
	startCmd.Flags().String(profilerFlagName, "", profilerFlagUsage)

	startCmd.Flags().String(blobBucketFlagName, "", blobBucketFlagUsage)
	startCmd.Flags().String(blobRegionFlagName, "", blobRegionFlagUsage)
	startCmd.Flags().String(blobEndpointFlagName, "", blobEndpointFlagUsage)
	startCmd.Flags().String(blobKeyPrefixFlagName, "", blobKeyPrefixFlagUsage)

	startCmd.Flags().String(zkBinaryFlagName, "", zkBinaryFlagUsage)
	startCmd.Flags().String(circuitPathFlagName, "", circuitPathFlagUsage)
	startCmd.Flags().String(proofCheckFlagName, "", proofCheckFlagUsage)
	startCmd.Flags().String(workDirRootFlagName, "", workDirRootFlagUsage)

	startCmd.Flags().String(rpcURLFlagName, "", rpcURLFlagUsage)
	startCmd.Flags().String(registryAddressFlagName, "", registryAddressFlagUsage)
	startCmd.Flags().String(verifierKeyFlagName, "", verifierKeyFlagUsage)
	startCmd.Flags().String(chainIDFlagName, "", chainIDFlagUsage)
	startCmd.Flags().String(typeTagFlagName, "", typeTagFlagUsage)
	startCmd.Flags().String(authCheckFlagName, "", authCheckFlagUsage)
	startCmd.Flags().String(receiptTimeoutFlagName, "", receiptTimeoutFlagUsage)

	startCmd.Flags().String(amqpURLFlagName, "", amqpURLFlagUsage)
	startCmd.Flags().String(amqpExchangeFlagName, "", amqpExchangeFlagUsage)
	startCmd.Flags().String(eventTopicFlagName, "", eventTopicFlagUsage)

	startCmd.Flags().String(metricsProviderFlagName, "", metricsProviderFlagUsage)
	startCmd.Flags().String(promHTTPURLFlagName, "", promHTTPURLFlagUsage)
	startCmd.Flags().String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	startCmd.Flags().String(tracingServiceNameFlagName, "", tracingServiceNameFlagUsage)
}
