package main

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/quic-go/quic-go"
	"github.com/varfrog/helloadapter/adapter/internal/app"
	"github.com/varfrog/helloadapter/adapter/internal/transport"
	"github.com/varfrog/helloadapter/pkg/quichelper"
	"github.com/varfrog/helloadapter/pkg/sdk"
	"go.uber.org/zap"
	"log"
	"math"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
)

// runConfig represents configuration needed to run this app.
type runConfig struct {
	Help            bool   // Prints usage and exists if true
	TLSCertsDir     string // Path to a directory containing the CA certificate of the proxy
	TLSSkipVerify   bool   // Accept any certificate the proxy presents
	ProxyHost       string
	ProxyPort       int
	MaxMessageBytes int    // Max number of bytes per message (type int required by io.Reader)
	MaxItems        int    // Max number of items published at once (type int required by ants)
	AdapterConfig   string // Config file handed to the data provider, opaque to this app
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := parseFlagsIntoConfig()
	if err != nil {
		log.Fatal(err)
	}

	if config.Help {
		flag.PrintDefaults()
		os.Exit(0)
	}

	if err := validateRunConfig(config); err != nil {
		log.Fatal(err)
	}

	tlsConfig, err := buildTLSConfig(config)
	if err != nil {
		log.Fatalf("buildTLSConfig: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("zap.NewDevelopment: %v", err)
	}

	// Non-blocking so that a Subscribe over the limit fails instead of waiting for a free worker
	itemPool, err := ants.NewPool(config.MaxItems, ants.WithNonblocking(true))
	if err != nil {
		log.Fatalf("ants.NewPool: %v", err)
	}
	defer itemPool.Release()

	provider := app.NewGreetingsProvider(
		app.NewDefaultGreetingsConfig(),
		itemPool,
		logger.Named("GreetingsProvider"))

	server := transport.NewQUICDataProviderServer(
		transport.QUICDataProviderServerConfig{
			AdapterID:       uuid.New(),
			TLSConfig:       tlsConfig,
			ProxyAddress:    net.JoinHostPort(config.ProxyHost, strconv.Itoa(config.ProxyPort)),
			MaxMessageBytes: config.MaxMessageBytes,
			ConfigFile:      config.AdapterConfig,
		},
		quic.Config{MaxIdleTimeout: math.MaxInt64}, // We send heartbeats, so no need for this
		provider,
		quichelper.NewHeartbeat(quichelper.NewDefaultHeartbeatConfig(), logger.Named("Heartbeat")),
		logger.Named("QUICDataProviderServer"))

	if err := server.Run(ctx); err != nil {
		log.Fatalf("Run: %v", err)
	}
}

// parseFlagsIntoConfig gets a config needed to run this app from command-line flags.
func parseFlagsIntoConfig() (runConfig, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return runConfig{}, errors.Wrap(err, "os.Getwd")
	}

	var (
		help            bool
		certPath        string
		skipVerify      bool
		proxyHost       string
		proxyPort       int
		maxMessageBytes int
		maxItems        int
		adapterConfig   string
	)

	flag.BoolVar(&help, "help", false, "Print usage information")
	flag.StringVar(&certPath, "cert-path", filepath.Join(workingDir, "certs"), "Path to certs dir containing ca.pem")
	flag.BoolVar(&skipVerify, "tls-skip-verify", false, "Do not verify the proxy certificate")
	flag.StringVar(&proxyHost, "proxy-host", "localhost", "Host of the proxy")
	flag.IntVar(&proxyPort, "proxy-port", 6663, "Port of the proxy")
	flag.IntVar(&maxMessageBytes, "max-message-bytes", 1000, "Max number of bytes per message")
	flag.IntVar(&maxItems, "max-items", 100, "Max number of items published at once")
	flag.StringVar(&adapterConfig, "adapter-config", "", "Config file passed to the data provider on init")
	flag.Parse()

	return runConfig{
		Help:            help,
		TLSCertsDir:     certPath,
		TLSSkipVerify:   skipVerify,
		ProxyHost:       proxyHost,
		ProxyPort:       proxyPort,
		MaxMessageBytes: maxMessageBytes,
		MaxItems:        maxItems,
		AdapterConfig:   adapterConfig,
	}, nil
}

func validateRunConfig(config runConfig) error {
	if config.MaxMessageBytes < 1 {
		return errors.New("MaxMessageBytes < 1")
	}
	if config.MaxItems < 1 {
		return errors.New("MaxItems < 1, publishing items is impossible")
	}
	if config.ProxyPort < 1 || config.ProxyPort > math.MaxUint16 {
		return fmt.Errorf("ProxyPort %d out of range", config.ProxyPort)
	}
	if config.TLSSkipVerify {
		return nil // The CA certificate is not read
	}
	if _, err := os.Stat(config.TLSCertsDir); errors.Is(err, os.ErrNotExist) {
		return errors.New("cannot stat the TLS certs dir, change the working dir to the project root or specify flag -cert-path")
	}
	return nil
}

func buildTLSConfig(config runConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		ServerName:         config.ProxyHost,
		InsecureSkipVerify: config.TLSSkipVerify,
		NextProtos:         []string{sdk.ALPN},
	}
	if config.TLSSkipVerify {
		return tlsConfig, nil
	}

	rootCAs, err := quichelper.GetRootCertPool(config.TLSCertsDir)
	if err != nil {
		return nil, errors.Wrap(err, "GetRootCertPool")
	}
	tlsConfig.RootCAs = rootCAs

	return tlsConfig, nil
}
