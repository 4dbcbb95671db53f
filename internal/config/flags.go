package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-clumio-token Clumio API token
//	-clumio-url Clumio API base URL
//	-clumio-api-version value of the Clumio-Api-Version header
//	-clumio-timeout upstream request timeout (e.g., "30s")
//	-account-native-id default AWS account for S3 inventory
//	-d restore audit database DSN
//	-retention restore record retention (e.g., "720h")
//	-prune-interval restore pruning interval (e.g., "1h")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-slack-signing-secret Slack signing secret
//	-version application version reported by /version
//	-log-level minimum log level
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

// parseFlags registers every flag on fs and parses args.
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var clumioToken, clumioURL, clumioAPIVersion, accountNativeID string
	var clumioTimeout time.Duration
	var databaseDSN string
	var retention, pruneInterval time.Duration
	var requestTimeout time.Duration
	var slackSigningSecret string
	var version string
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&clumioToken, "clumio-token", "", "Clumio API token")
	fs.StringVar(&clumioURL, "clumio-url", "", "Clumio API base URL")
	fs.StringVar(&clumioAPIVersion, "clumio-api-version", "", "Clumio-Api-Version header value")
	fs.DurationVar(&clumioTimeout, "clumio-timeout", 0, "Clumio request timeout (e.g., 30s)")
	fs.StringVar(&accountNativeID, "account-native-id", "", "Default AWS account for S3 inventory")
	fs.StringVar(&databaseDSN, "d", "", "Restore audit database DSN")
	fs.DurationVar(&retention, "retention", 0, "Restore record retention (e.g., 720h)")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "Restore pruning interval (e.g., 1h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&slackSigningSecret, "slack-signing-secret", "", "Slack signing secret")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Clumio: Clumio{
			APIToken:        clumioToken,
			APIBaseURL:      clumioURL,
			APIVersion:      clumioAPIVersion,
			RequestTimeout:  clumioTimeout,
			AccountNativeID: accountNativeID,
		},
		App: App{
			Version:            version,
			SlackSigningSecret: slackSigningSecret,
			LogLevel:           logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:       databaseDSN,
				Retention: retention,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PruneInterval: pruneInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host (":8080") binds every interface. It validates the port range,
// checks IP correctness unless host is "localhost", and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
