package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optionalBool is a flag.Value that remembers whether the flag was given.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a trigger server address in format [host]:[port]
//	-api-key Yousign API key
//	-api-key-file file holding the Yousign API key
//	-sandbox use the sandbox environment by default
//	-sandbox-url / -production-url base URL overrides
//	-request-timeout API call timeout (e.g. "30s")
//	-name default signature request name
//	-binary-property default binary property name
//	-continue-on-fail keep processing after a failed item
//	-validate validate parameters before uploading
//	-m / -manifest execution manifest path
//	-d journal database DSN
//	-f binary data directory
//	-s3-bucket / -s3-region / -s3-endpoint object storage settings
//	-c / -config JSON config file path
//	-log-level log level
//	-token-sign-key trigger JWT signing key
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("yousign-node", flag.ContinueOnError)

	var serverAddress NetAddress
	var sandbox optionalBool
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Yousign.APIKey, "api-key", "", "Yousign API key")
	fs.StringVar(&cfg.Yousign.APIKeyFile, "api-key-file", "", "File holding the Yousign API key")
	fs.Var(&sandbox, "sandbox", "Use the sandbox environment by default")
	fs.StringVar(&cfg.Yousign.SandboxURL, "sandbox-url", "", "Sandbox API base URL")
	fs.StringVar(&cfg.Yousign.ProductionURL, "production-url", "", "Production API base URL")
	fs.DurationVar(&cfg.Yousign.RequestTimeout, "request-timeout", 0, "API call timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Node.Name, "name", "", "Default signature request name")
	fs.StringVar(&cfg.Node.BinaryPropertyName, "binary-property", "", "Default binary property name")
	fs.BoolVar(&cfg.Node.ContinueOnFail, "continue-on-fail", false, "Keep processing items after a failure")
	fs.BoolVar(&cfg.Node.ValidateParameters, "validate", false, "Validate parameters before uploading")
	fs.StringVar(&cfg.Node.ManifestPath, "m", "", "Execution manifest path")
	fs.StringVar(&cfg.Node.ManifestPath, "manifest", "", "Execution manifest path (alias)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Journal database DSN")
	fs.StringVar(&cfg.Storage.Files.BinaryDataDir, "f", "", "Binary data directory")
	fs.StringVar(&cfg.Storage.S3.Bucket, "s3-bucket", "", "Binary data S3 bucket")
	fs.StringVar(&cfg.Storage.S3.Region, "s3-region", "", "Binary data S3 region")
	fs.StringVar(&cfg.Storage.S3.Endpoint, "s3-endpoint", "", "Binary data S3 endpoint override")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.Server.TokenSignKey, "token-sign-key", "", "Trigger JWT signing key")
	fs.DurationVar(&cfg.Server.RequestTimeout, "server-timeout", 0, "Trigger request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Yousign.Sandbox = sandbox.value

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1..65535")
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

var _ flag.Value = (*NetAddress)(nil)
