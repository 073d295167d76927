package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a bridge address in format [host]:[port]
//	-grpc-address grpc health endpoint address in format [host]:[port]
//	-d path to the sqlite database file
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-bcrypt-cost bcrypt cost factor for the account credential hash
//	-kdf-iterations PBKDF2 iteration count for master key derivation
//	-audit-capacity maximum retained audit entries
//	-session-sweep-interval expired session sweep interval
func ParseFlags() *StructuredConfig {
	var bridgeAddress, grpcAddress NetAddress
	var databasePath string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var bcryptCost int
	var kdfIterations int
	var auditCapacity int
	var sessionSweepInterval time.Duration

	flag.Var(&bridgeAddress, "a", "Net address host:port")
	flag.Var(&grpcAddress, "grpc-address", "Net grpc health address host:port")
	flag.StringVar(&databasePath, "d", "", "Path to the sqlite database file")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost factor for the account credential hash")
	flag.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count for master key derivation")
	flag.IntVar(&auditCapacity, "audit-capacity", 0, "Maximum retained audit entries")
	flag.DurationVar(&sessionSweepInterval, "session-sweep-interval", 0, "Expired session sweep interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			BcryptCost:    bcryptCost,
			KDFIterations: kdfIterations,
		},
		Storage: Storage{
			DB: DB{
				DSN: databasePath,
			},
		},
		Server: Server{
			HTTPAddress:    bridgeAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Audit: Audit{
			Capacity: auditCapacity,
		},
		Workers: Workers{
			SessionSweepInterval: sessionSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
