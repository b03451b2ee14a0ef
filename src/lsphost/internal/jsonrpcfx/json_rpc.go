package jsonrpcfx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=jsonrpcfxmock/json_rpc_mock.go -package=jsonrpcfxmock . JSONRPCModule,Router,ConnectionManager

const (
	_configKeyJSONRPC     = "jsonrpc"
	_defaultHost          = "127.0.0.1"
	_defaultDialTimeout   = 10 * time.Second
	_errNoConnectionMgr   = "cannot serve connection, no connection manager set"
	_errDuplicateRegister = "cannot register a duplicate connection manager"
)

// Module is an fx module to manage JSON-RPC connections to a language server.
var Module = fx.Provide(New)

// JSONRPCModule represents a module to manage JSON-RPC connections.
type JSONRPCModule interface {
	// Connect dials the language service port and begins routing inbound requests for the connection.
	Connect(ctx context.Context, id uuid.UUID, port int) (jsonrpc2.Conn, error)
	RegisterConnectionManager(connectionManager ConnectionManager) error
}

// Router serves as the interface through which handling of requests will be implemented.
type Router interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	UUID() uuid.UUID
}

// ConnectionManager will manage each active connection and its corresponding Router throughout the lifecycle of a connection.
type ConnectionManager interface {
	NewConnection(ctx context.Context, id uuid.UUID, conn jsonrpc2.Conn) (router Router, err error)
	RemoveConnection(ctx context.Context, id uuid.UUID)
}

// Config is the jsonrpc configuration block.
type Config struct {
	Host                  string `yaml:"host"`
	ConnectTimeoutSeconds int    `yaml:"connectTimeoutSeconds"`
}

type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

type module struct {
	host        string
	dialTimeout time.Duration
	dial        dialFunc

	mu            sync.Mutex
	connectionMgr ConnectionManager
	logger        *zap.SugaredLogger
}

// Params define values to be used by JSONRPCModule.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
}

// New creates a new module for dialing JSON-RPC connections on the configured host.
func New(p Params) (JSONRPCModule, error) {
	if p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := module{
		logger: p.Logger,
	}
	m.dial = (&net.Dialer{}).DialContext

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *module) Connect(ctx context.Context, id uuid.UUID, port int) (jsonrpc2.Conn, error) {
	m.mu.Lock()
	connectionMgr := m.connectionMgr
	m.mu.Unlock()
	if connectionMgr == nil {
		m.logger.Errorf(_errNoConnectionMgr)
		return nil, errors.New(_errNoConnectionMgr)
	}

	address := net.JoinHostPort(m.host, strconv.Itoa(port))
	dialCtx, cancel := context.WithTimeout(ctx, m.dialTimeout)
	defer cancel()

	netConn, err := m.dial(dialCtx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", address, err)
	}

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(netConn))
	router, err := connectionMgr.NewConnection(ctx, id, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	// Routing outlives the dial context.
	serveCtx := context.Background()
	conn.Go(serveCtx, router.HandleReq)
	m.logger.Infow("connected to language server", zap.Stringer("uuid", id), zap.String("address", address))

	go func() {
		// Block until connection closed.
		<-conn.Done()

		// Cleanup after connection.
		connectionMgr.RemoveConnection(serveCtx, id)
		m.logger.Infow("language server disconnected", zap.Stringer("uuid", id), zap.Error(conn.Err()))
	}()

	return conn, nil
}

// RegisterConnectionManager sets the connection manager, which keeps track of current active connections and provides a Router implementation.
func (m *module) RegisterConnectionManager(connectionMgr ConnectionManager) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connectionMgr != nil {
		return errors.New(_errDuplicateRegister)
	}
	m.connectionMgr = connectionMgr
	return nil
}

// processConfig will parse the configuration for any values required by this module.
func (m *module) processConfig(cfg config.Provider) error {
	var c Config
	if err := cfg.Get(_configKeyJSONRPC).Populate(&c); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeyJSONRPC, err)
	}

	m.host = c.Host
	if m.host == "" {
		m.host = _defaultHost
	}

	m.dialTimeout = _defaultDialTimeout
	if c.ConnectTimeoutSeconds > 0 {
		m.dialTimeout = time.Duration(c.ConnectTimeoutSeconds) * time.Second
	}

	return nil
}
