package connector

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/turtle.go/pkg/l1"
	"github.com/robotalks/turtle.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/turtle.go/pkg/l1/comm/websocket"
)

// Config provides common options to setup Connectors.
type Config struct {
	Ref l1.ControllerRef

	// DiscoverTimeout bounds how long discovery listens for meta.
	DiscoverTimeout time.Duration

	// RegistryURL specifies the URL of controller registry.
	// e.g. mqtt://host:port/topic-prefix
	RegistryURL string

	// DirectURL connects a websocket controller endpoint, skipping
	// the registry. e.g. ws://host:port/l1
	DirectURL string
}

var defaultConfig = Config{
	Ref:             l1.ControllerRef{Type: DefaultType},
	RegistryURL:     "mqtt://localhost:1883/turtle/",
	DiscoverTimeout: mqtt.DefaultDiscoverTimeout,
}

func init() {
	if val := os.Getenv("TURTLE_TYPE"); val != "" {
		defaultConfig.Ref.Type = val
	}
	if val := os.Getenv("TURTLE_ID"); val != "" {
		defaultConfig.Ref.ID = val
	}
	if val := os.Getenv("TURTLE_REGISTRY_URL"); val != "" {
		defaultConfig.RegistryURL = val
	}
	if val := os.Getenv("TURTLE_SIM_WS"); val != "" {
		defaultConfig.DirectURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "sim-type", defaultConfig.Ref.Type, "Simulator type to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "sim-id", defaultConfig.Ref.ID, "Simulator ID to connect, discovered if empty.")
	flag.StringVar(&defaultConfig.RegistryURL, "sim-reg", defaultConfig.RegistryURL, "Simulator Registry URL.")
	flag.DurationVar(&defaultConfig.DiscoverTimeout, "discover-timeout", defaultConfig.DiscoverTimeout, "How long to wait for simulators to announce.")
	flag.StringVar(&defaultConfig.DirectURL, "sim-ws", defaultConfig.DirectURL, "Websocket URL of a simulator, bypassing the registry.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewConnector creates a Connector using current config.
func (c *Config) NewConnector() (l1.Connector, error) {
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %v", err)
	}
	switch parsedURL.Scheme {
	case "mqtt", "tcp", "ssl", "ws", "wss":
		connector, err := mqtt.NewConnector(c.RegistryURL)
		if err != nil {
			return nil, err
		}
		connector.DiscoverTimeout = c.DiscoverTimeout
		return connector, nil
	default:
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
}

// MustNewConnector creates a Connector and fails on error.
func (c *Config) MustNewConnector() l1.Connector {
	conn, err := c.NewConnector()
	if err != nil {
		glog.Exit(err)
	}
	return conn
}

// DefaultType is the controller type drivers connect to.
const DefaultType = "turtlesim"

// ErrNoController indicates discovery found no matching controller.
var ErrNoController = errors.New("no controller discovered")

// Resolve fills in the controller ID by discovery if only the type is
// known. The first controller of the type wins.
func (c *Config) Resolve(ctx context.Context, connector l1.Connector) (l1.ControllerRef, error) {
	if c.Ref.IsValid() {
		return c.Ref, nil
	}
	if c.Ref.Type == "" {
		return c.Ref, fmt.Errorf("simulator type must be specified")
	}
	infoList, err := connector.Discover(ctx)
	if err != nil {
		return c.Ref, err
	}
	for _, info := range infoList {
		if info.Ref.Type == c.Ref.Type {
			return info.Ref, nil
		}
	}
	return c.Ref, ErrNoController
}

// Connect connects to L1 controller, directly if DirectURL is set,
// otherwise through the registry.
func (c *Config) Connect(ctx context.Context) (l1.ControllerConn, error) {
	if c.DirectURL != "" {
		glog.Infof("connecting %s", c.DirectURL)
		conn, err := websocket.Dial(ctx, c.DirectURL)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
	connector, err := c.NewConnector()
	if err != nil {
		return nil, err
	}
	ref, err := c.Resolve(ctx, connector)
	if err != nil {
		return nil, err
	}
	glog.Infof("connecting %s", ref.Name())
	return connector.Connect(ctx, ref)
}

// MustConnect connects to L1 controller for fail.
func (c *Config) MustConnect(ctx context.Context) l1.ControllerConn {
	conn, err := c.Connect(ctx)
	if err != nil {
		glog.Exit(err)
	}
	return conn
}
