package internal

import (
	"flag"
	"fmt"
	"os"
)

var c *config

const (
	RunAddress         = "RUN_ADDRESS"
	DatabaseURI        = "DATABASE_URI"
	GatewayBaseURL     = "GATEWAY_BASE_URL"
	GatewayUsername    = "GATEWAY_USERNAME"
	GatewayPassword    = "GATEWAY_PASSWORD"
	GatewayInvoicePath = "GATEWAY_INVOICE_PATH"
	RedisAddr          = "REDIS_ADDR"
	JWTSecret          = "JWT_SECRET"
)

const (
	defaultRunAddress         = "localhost:8080"
	defaultGatewayInvoicePath = "/Invoice/GetInvoicesByCustomer"
	defaultJWTSecret          = "secret"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type config struct {
	RunAddress         string
	DatabaseURI        string
	GatewayBaseURL     string
	GatewayUsername    string
	GatewayPassword    string
	GatewayInvoicePath string
	RedisAddr          string
	JWTSecret          string
}

func NewConfig() *config {
	c = new(config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s sslmode=disable",
		host, port, user, password)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.GatewayBaseURL, "g", setEnvOrDefault(GatewayBaseURL, ""), "external order gateway base url")
	flag.StringVar(&c.GatewayUsername, "u", setEnvOrDefault(GatewayUsername, ""), "external order gateway username")
	flag.StringVar(&c.GatewayPassword, "p", setEnvOrDefault(GatewayPassword, ""), "external order gateway password")
	flag.StringVar(&c.GatewayInvoicePath, "i", setEnvOrDefault(GatewayInvoicePath, defaultGatewayInvoicePath), "external gateway invoice list path")
	flag.StringVar(&c.RedisAddr, "r", setEnvOrDefault(RedisAddr, ""), "redis address for the token cache, empty disables caching")
	flag.StringVar(&c.JWTSecret, "s", setEnvOrDefault(JWTSecret, defaultJWTSecret), "session token signing secret")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
