package main

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"
)

type config struct {
	HTTPListen      string
	DBPath          string
	LocalZone       string
	ConfPath        string
	Service         string
	CheckconfCmd    string
	RestartCmd      string
	DefaultTTL      uint32
	ResolverAddr    string
	ResolverTimeout time.Duration
	AdminUser       string
	AdminPassHash   string
}

func loadConfig() config {
	return config{
		HTTPListen:      envOrDefault("HTTP_LISTEN", ":8080"),
		DBPath:          envOrDefault("DB_PATH", "records.db"),
		LocalZone:       strings.TrimSuffix(envOrDefault("LOCAL_ZONE", "avexys.com"), "."),
		ConfPath:        envOrDefault("UNBOUND_CONF_PATH", "/etc/unbound/unbound.conf.d/local-data.conf"),
		Service:         envOrDefault("UNBOUND_SERVICE", "unbound"),
		CheckconfCmd:    envOrDefault("UNBOUND_CHECKCONF", "unbound-checkconf"),
		RestartCmd:      envOrDefault("RESTART_CMD", "systemctl"),
		DefaultTTL:      envOrDefaultUint32("DEFAULT_TTL", 300),
		ResolverAddr:    envOrDefault("RESOLVER_ADDR", defaultResolverAddr()),
		ResolverTimeout: time.Duration(envOrDefaultUint32("RESOLVER_TIMEOUT_SECONDS", 3)) * time.Second,
		AdminUser:       envOrDefault("ADMIN_USER", "admin"),
		AdminPassHash:   strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
	}
}

// defaultResolverAddr picks the first nameserver from resolv.conf so CNAME
// targets resolve through the same path the host already trusts.
func defaultResolverAddr() string {
	cfg, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || cfg == nil || len(cfg.Servers) == 0 {
		return "127.0.0.1:53"
	}
	return net.JoinHostPort(cfg.Servers[0], cfg.Port)
}

func envOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envOrDefaultUint32(key string, fallback uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		return fallback
	}

	return uint32(n)
}
